package encoding

import "encoding/binary"

// utf16Endian selects byte order for unit assembly/emission.
type utf16Endian bool

const (
	utf16LittleEndian utf16Endian = false
	utf16BigEndian    utf16Endian = true
)

func (e utf16Endian) decode(b []byte) uint16 {
	if e == utf16BigEndian {
		return binary.BigEndian.Uint16(b)
	}
	return binary.LittleEndian.Uint16(b)
}

func (e utf16Endian) encode(b []byte, v uint16) {
	if e == utf16BigEndian {
		binary.BigEndian.PutUint16(b, v)
	} else {
		binary.LittleEndian.PutUint16(b, v)
	}
}

const utf16EmptySentinel = 0xFFFF

// utf16Decoder holds two held-state slots: a dangling odd lead byte of a
// 16-bit unit, and a held high surrogate awaiting its low surrogate.
// hasLeadByte marks the first slot as filled; 0xFFFF in leadSurrogate
// means "empty".
type utf16Decoder struct {
	endian        utf16Endian
	leadByte      uint16 // the single pending byte, in bits 0-7; valid only while hasLeadByte
	hasLeadByte   bool
	leadSurrogate uint16 // 0xFFFF = empty
}

func newUTF16Decoder(e utf16Endian) func() RawDecoder {
	return func() RawDecoder { return &utf16Decoder{endian: e, leadSurrogate: utf16EmptySentinel} }
}

func (d *utf16Decoder) CloneFresh() RawDecoder {
	return &utf16Decoder{endian: d.endian, leadSurrogate: utf16EmptySentinel}
}
func (d *utf16Decoder) IsASCIICompatible() bool { return false }

func (d *utf16Decoder) Feed(input []byte, sink RuneSink) (int, *CodecError) {
	i := 0

	// Drain a held odd byte first, combining with the first input byte. The
	// held byte itself was already accounted for as consumed by the call
	// that stashed it, so an error here can reach back at most to i (this
	// call's own byte) and never before the start of this call's input.
	if d.hasLeadByte {
		if len(input) == 0 {
			return 0, nil
		}
		var pair [2]byte
		pair[0], pair[1] = byte(d.leadByte), input[0]
		unit := d.endian.decode(pair[:])
		d.hasLeadByte = false
		i = 1
		if err := d.consumeUnit(unit, sink, i); err != nil {
			return 0, err
		}
	}

	for i+1 < len(input) {
		unit := d.endian.decode(input[i:])
		if err := d.consumeUnit(unit, sink, i+2); err != nil {
			return i, err
		}
		i += 2
	}

	consumed := i
	if i < len(input) {
		d.leadByte = uint16(input[i])
		d.hasLeadByte = true
		consumed = i + 1
	}
	return consumed, nil
}

// consumeUnit advances the surrogate state machine for one 16-bit code unit
// whose last byte sits at this call's input offset `upto`. "Backing up"
// means retrying from upto-2 (re-reading this unit from scratch once the
// stale pending surrogate is cleared); that can never reach before upto's
// own call, so it is floored at 0 rather than reaching into a held byte
// from a previous call.
func (d *utf16Decoder) consumeUnit(unit uint16, sink RuneSink, upto int) *CodecError {
	backup := upto - 2
	if backup < 0 {
		backup = 0
	}
	switch {
	case unit >= 0xD800 && unit <= 0xDBFF: // high surrogate
		if d.leadSurrogate != utf16EmptySentinel {
			// A high surrogate cannot follow another high surrogate;
			// treat the first as an error and retry from here.
			d.leadSurrogate = utf16EmptySentinel
			return newError(backup, "lone high surrogate")
		}
		d.leadSurrogate = unit
		return nil
	case unit >= 0xDC00 && unit <= 0xDFFF: // low surrogate
		if d.leadSurrogate == utf16EmptySentinel {
			return newError(upto, "lone low surrogate")
		}
		hi := d.leadSurrogate
		d.leadSurrogate = utf16EmptySentinel
		r := 0x10000 + (rune(hi)-0xD800)<<10 + (rune(unit) - 0xDC00)
		sink.WriteRune(r)
		return nil
	default: // BMP non-surrogate
		if d.leadSurrogate != utf16EmptySentinel {
			d.leadSurrogate = utf16EmptySentinel
			return newError(backup, "incomplete surrogate pair")
		}
		sink.WriteRune(rune(unit))
		return nil
	}
}

func (d *utf16Decoder) Finish(RuneSink) *CodecError {
	hadPending := d.hasLeadByte || d.leadSurrogate != utf16EmptySentinel
	d.hasLeadByte = false
	d.leadSurrogate = utf16EmptySentinel
	if hadPending {
		return newError(0, "incomplete UTF-16 sequence")
	}
	return nil
}

type utf16Encoder struct{ endian utf16Endian }

func newUTF16Encoder(e utf16Endian) func() RawEncoder {
	return func() RawEncoder { return utf16Encoder{e} }
}

func (e utf16Encoder) CloneFresh() RawEncoder  { return e }
func (e utf16Encoder) IsASCIICompatible() bool { return false }

func (e utf16Encoder) Feed(input string, sink ByteSink) (int, *CodecError) {
	sink.Hint(len(input) * 2)
	var buf [4]byte
	for _, r := range input {
		if r <= 0xFFFF {
			e.endian.encode(buf[:2], uint16(r))
			sink.Write(buf[:2])
			continue
		}
		v := r - 0x10000
		hi := uint16(0xD800 + (v >> 10))
		lo := uint16(0xDC00 + (v & 0x3FF))
		e.endian.encode(buf[0:2], hi)
		e.endian.encode(buf[2:4], lo)
		sink.Write(buf[:4])
	}
	return len(input), nil
}

func (e utf16Encoder) Finish(ByteSink) *CodecError { return nil }

// UTF16LE and UTF16BE are the handles for the two UTF-16 byte orders.
var (
	UTF16LE = register(&Encoding{
		name:       "utf-16le",
		whatwg:     "utf-16le",
		newEncoder: newUTF16Encoder(utf16LittleEndian),
		newDecoder: newUTF16Decoder(utf16LittleEndian),
	})
	UTF16BE = register(&Encoding{
		name:       "utf-16be",
		whatwg:     "utf-16be",
		newEncoder: newUTF16Encoder(utf16BigEndian),
		newDecoder: newUTF16Decoder(utf16BigEndian),
	})
)
