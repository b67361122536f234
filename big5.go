package encoding

import "github.com/textcodec/encoding/internal/index"

// Big5-2003 + HKSCS-2008 decoder. State is a single held lead byte. Four
// distinguished pointers decode to two Unicode scalars instead of one
// (index.BigFiveSpecial).
type big5Decoder struct {
	lead    byte
	hasLead bool
}

func newBig5Decoder() RawDecoder { return &big5Decoder{} }

func (d *big5Decoder) CloneFresh() RawDecoder  { return &big5Decoder{} }
func (d *big5Decoder) IsASCIICompatible() bool { return true }

func big5Pointer(lead, trail byte) (int, bool) {
	if !((trail >= 0x40 && trail <= 0x7E) || (trail >= 0xA1 && trail <= 0xFE)) {
		return 0, false
	}
	off := byte(0x40)
	if trail >= 0x7F {
		off = 0x62
	}
	return int(lead-0x81)*157 + int(trail-off), true
}

func big5Bytes(ptr int) (byte, byte) {
	lead := byte(ptr/157) + 0x81
	rem := ptr % 157
	if rem < 0x3F {
		return lead, byte(rem) + 0x40
	}
	return lead, byte(rem) + 0x62
}

// big5EmitPointer writes either the two-scalar HKSCS special replacement or
// the ordinary single-scalar mapping for ptr.
func big5EmitPointer(ptr int, sink RuneSink) bool {
	if pair, ok := index.BigFiveSpecial[ptr]; ok {
		sink.WriteRune(pair[0])
		sink.WriteRune(pair[1])
		return true
	}
	cp := index.Big5.Forward(ptr)
	if cp == index.Unmapped {
		return false
	}
	sink.WriteRune(cp)
	return true
}

func (d *big5Decoder) Feed(input []byte, sink RuneSink) (int, *CodecError) {
	i := 0
	if d.hasLead {
		if len(input) == 0 {
			return 0, nil
		}
		lead := d.lead
		d.hasLead = false
		trail := input[0]
		ptr, ok := big5Pointer(lead, trail)
		if !ok {
			// WHATWG trail-error policy: MSB-set trail is consumed as part
			// of the problematic run; otherwise back up (leave as
			// remaining for the next lead/ASCII decision).
			if trail >= 0x80 {
				return 0, newError(1, "invalid Big5 trail byte")
			}
			return 0, newError(0, "invalid Big5 trail byte")
		}
		if !big5EmitPointer(ptr, sink) {
			return 0, newError(1, "unmapped Big5 pointer")
		}
		i = 1
	}

	lastGood := i
	flushed := i // start of the ASCII run not yet written to sink
	for i < len(input) {
		b := input[i]
		if b < 0x80 {
			i++
			lastGood = i
			continue
		}
		if b < 0x81 || b > 0xFE {
			if lastGood > 0 {
				sink.WriteString(string(input[flushed:lastGood]))
			}
			return lastGood, newError(i+1, "invalid Big5 lead byte")
		}
		if i+1 >= len(input) {
			if lastGood > 0 {
				sink.WriteString(string(input[flushed:lastGood]))
			}
			d.lead = b
			d.hasLead = true
			return lastGood, nil
		}
		trail := input[i+1]
		ptr, ok := big5Pointer(b, trail)
		if !ok {
			if lastGood > 0 {
				sink.WriteString(string(input[flushed:lastGood]))
			}
			if trail >= 0x80 {
				return lastGood, newError(i+2, "invalid Big5 trail byte")
			}
			return lastGood, newError(i+1, "invalid Big5 trail byte")
		}
		if flushed < i {
			sink.WriteString(string(input[flushed:i]))
		}
		if !big5EmitPointer(ptr, sink) {
			return lastGood, newError(i+2, "unmapped Big5 pointer")
		}
		i += 2
		lastGood = i
		flushed = i
	}
	if lastGood > 0 {
		sink.WriteString(string(input[flushed:lastGood]))
	}
	return lastGood, nil
}

func (d *big5Decoder) Finish(RuneSink) *CodecError {
	had := d.hasLead
	d.hasLead = false
	if had {
		return newError(0, "incomplete Big5 sequence")
	}
	return nil
}

type big5Encoder struct{}

func newBig5Encoder() RawEncoder { return big5Encoder{} }

func (big5Encoder) CloneFresh() RawEncoder  { return big5Encoder{} }
func (big5Encoder) IsASCIICompatible() bool { return true }

func (big5Encoder) Feed(input string, sink ByteSink) (int, *CodecError) {
	for i, r := range input {
		if r < 0x80 {
			sink.WriteByte(byte(r))
			continue
		}
		ptr, ok := index.Big5.Backward(r)
		if !ok {
			return i, newError(i+runeByteLen(r), "character unrepresentable in Big5")
		}
		lead, trail := big5Bytes(ptr)
		sink.WriteByte(lead)
		sink.WriteByte(trail)
	}
	return len(input), nil
}

func (big5Encoder) Finish(ByteSink) *CodecError { return nil }

// Big5 is the handle for Big5-2003 + HKSCS-2008.
var Big5 = register(&Encoding{
	name:       "big5",
	whatwg:     "big5",
	newEncoder: newBig5Encoder,
	newDecoder: newBig5Decoder,
})
