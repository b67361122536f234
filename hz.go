package encoding

import "github.com/textcodec/encoding/internal/index"

// hzState enumerates the mode-switching machine: A0/A1 are ASCII mode
// (plain, and "just saw a tilde"), B0/B1 are GB mode (plain, and "just
// saw a tilde"), and B2 holds a pending GB lead byte. A0 and B0 are the
// only states where nothing is pending: every byte consumed while in
// either one is either emitted or resolved, so they're the points a
// later error can safely back up to.
type hzState int

const (
	hzA0 hzState = iota
	hzA1
	hzB0
	hzB1
	hzB2
)

type hzDecoder struct {
	state    hzState
	pendLead byte
}

func newHZDecoder() RawDecoder { return &hzDecoder{} }

func (d *hzDecoder) CloneFresh() RawDecoder  { return &hzDecoder{} }
func (d *hzDecoder) IsASCIICompatible() bool { return false }

// hzGBPointer converts a pair of 7-bit HZ bytes (each already known to lie
// in 0x21-0x7E) to the GB2312 table's pointer convention, equivalent to
// adding 0x80 to each byte to recover the EUC-GB pair and applying the
// usual (lead-0xA1)*94+(trail-0xA1) formula.
func hzGBPointer(lead, trail byte) int {
	return int(lead-0x21)*94 + int(trail-0x21)
}

func hzGBBytes(ptr int) (byte, byte) {
	return byte(ptr/94) + 0x21, byte(ptr%94) + 0x21
}

func (d *hzDecoder) Feed(input []byte, sink RuneSink) (int, *CodecError) {
	// checkpoint tracks the offset of the last byte processed while in a
	// checkpoint state (A0/B0); it never reaches back before this call's
	// own input, so a checkpoint state carried in from a previous call
	// (nothing pending) starts it at 0 rather than into that call's
	// bytes. Any escape or two-byte excursion that ends in error backs
	// up to this offset rather than to its own current byte, since the
	// byte(s) that began the excursion are the real problem.
	checkpoint := 0
	for i := 0; i < len(input); i++ {
		if d.state == hzA0 || d.state == hzB0 {
			checkpoint = i
		}
		b := input[i]
		switch d.state {
		case hzA0:
			if b == '~' {
				d.state = hzA1
				continue
			}
			sink.WriteRune(rune(b))
		case hzA1:
			switch b {
			case '{':
				d.state = hzB0
			case '}':
				d.state = hzA0
			case '~':
				sink.WriteRune('~')
				d.state = hzA0
			case '\n':
				d.state = hzA0
			default:
				d.state = hzA0
				return checkpoint, newError(i, "invalid HZ escape sequence")
			}
		case hzB0:
			switch {
			case b == '~':
				d.state = hzB1
			case b == '\n':
				return checkpoint, newError(i+1, "invalid byte in HZ GB mode")
			case b >= 0x20 && b <= 0x7F:
				d.pendLead = b
				d.state = hzB2
			default:
				return checkpoint, newError(i+1, "invalid byte in HZ GB mode")
			}
		case hzB1:
			switch b {
			case '{':
				d.state = hzB0
			case '}':
				d.state = hzA0
			case '~':
				sink.WriteRune('~')
				d.state = hzB0
			default:
				d.state = hzB0
				return checkpoint, newError(i, "invalid HZ escape sequence")
			}
		case hzB2:
			lead := d.pendLead
			if b == '\n' {
				d.state = hzA0
				return checkpoint, newError(i+1, "invalid byte ending HZ two-byte sequence")
			}
			d.state = hzB0
			cp := rune(index.Unmapped)
			if lead >= 0x21 && lead <= 0x7E && b >= 0x21 && b <= 0x7E {
				cp = index.GB2312.Forward(hzGBPointer(lead, b))
			}
			if cp == index.Unmapped {
				return checkpoint, newError(i+1, "unmapped HZ pointer")
			}
			sink.WriteRune(cp)
		}
	}
	return len(input), nil
}

func (d *hzDecoder) Finish(RuneSink) *CodecError {
	st := d.state
	d.state = hzA0
	if st != hzA0 && st != hzB0 {
		return newError(0, "incomplete HZ sequence")
	}
	return nil
}

type hzEncoder struct{ mode hzState } // only hzA0/hzB0 used

func newHZEncoder() RawEncoder { return &hzEncoder{} }

func (e *hzEncoder) CloneFresh() RawEncoder  { return &hzEncoder{} }
func (e *hzEncoder) IsASCIICompatible() bool { return false }

func (e *hzEncoder) toASCIIMode(sink ByteSink) {
	if e.mode == hzB0 {
		sink.WriteByte('~')
		sink.WriteByte('}')
		e.mode = hzA0
	}
}

func (e *hzEncoder) Feed(input string, sink ByteSink) (int, *CodecError) {
	for i, r := range input {
		if r == '~' {
			e.toASCIIMode(sink)
			sink.WriteByte('~')
			sink.WriteByte('~')
			continue
		}
		if r < 0x80 {
			e.toASCIIMode(sink)
			sink.WriteByte(byte(r))
			continue
		}
		ptr, ok := index.GB2312.Backward(r)
		if !ok {
			return i, newError(i+runeByteLen(r), "character unrepresentable in HZ")
		}
		if e.mode == hzA0 {
			sink.WriteByte('~')
			sink.WriteByte('{')
			e.mode = hzB0
		}
		lead, trail := hzGBBytes(ptr)
		sink.WriteByte(lead)
		sink.WriteByte(trail)
	}
	return len(input), nil
}

func (e *hzEncoder) Finish(sink ByteSink) *CodecError {
	e.mode = hzA0
	return nil
}

// HZGB2312 is the handle for HZ-GB-2312.
var HZGB2312 = register(&Encoding{
	name:       "hz-gb-2312",
	whatwg:     "hz-gb-2312",
	newEncoder: newHZEncoder,
	newDecoder: newHZDecoder,
})
