package encoding

import "github.com/textcodec/encoding/internal/index"

const gb18030SupplementBase = 189000

// gbkDecoder implements GBK and GB18030 decoding. They share the same
// lead/trail two-byte table; GB18030 additionally recognizes a four-byte
// extension when the second byte is a digit 0x30-0x39. State holds up to
// 3 pending bytes of a sequence begun in a previous call.
type gbkDecoder struct {
	full  bool // true: GB18030 (four-byte extension enabled); false: GBK
	pend  [3]byte
	nPend int
}

func newGBKDecoder(full bool) func() RawDecoder {
	return func() RawDecoder { return &gbkDecoder{full: full} }
}

func (d *gbkDecoder) CloneFresh() RawDecoder  { return &gbkDecoder{full: d.full} }
func (d *gbkDecoder) IsASCIICompatible() bool { return true }

func gb18030FourCodepoint(b1, b2, b3, b4 byte) (rune, bool) {
	idx := int(b1-0x81)*12600 + int(b2-0x30)*1260 + int(b3-0x81)*10 + int(b4-0x30)
	if idx >= gb18030SupplementBase && idx <= gb18030SupplementBase+0x10FFFF-0x10000 {
		return 0x10000 + rune(idx-gb18030SupplementBase), true
	}
	cp := index.GB18030Four.Forward(idx)
	if cp == index.Unmapped {
		return 0, false
	}
	return cp, true
}

func gb18030FourBytes(r rune) (b1, b2, b3, b4 byte, ok bool) {
	if r < 0x10000 {
		ptr, found := index.GB18030Four.Backward(r)
		if !found {
			return 0, 0, 0, 0, false
		}
		d1 := ptr / 12600
		rem := ptr % 12600
		d2 := rem / 1260
		rem %= 1260
		d3 := rem / 10
		d4 := rem % 10
		return byte(d1) + 0x81, byte(d2) + 0x30, byte(d3) + 0x81, byte(d4) + 0x30, true
	}
	idx := gb18030SupplementBase + int(r-0x10000)
	d1 := idx / 12600
	rem := idx % 12600
	d2 := rem / 1260
	rem %= 1260
	d3 := rem / 10
	d4 := rem % 10
	return byte(d1) + 0x81, byte(d2) + 0x30, byte(d3) + 0x81, byte(d4) + 0x30, true
}

func gbkTwoBytePointer(lead, trail byte) (int, bool) {
	if !((trail >= 0x40 && trail <= 0x7E) || (trail >= 0x80 && trail <= 0xFE)) {
		return 0, false
	}
	off := byte(0x40)
	if trail >= 0x7F {
		off = 0x41
	}
	return int(lead-0x81)*190 + int(trail-off), true
}

func gbkTwoByteBytes(ptr int) (byte, byte) {
	lead := byte(ptr/190) + 0x81
	rem := ptr % 190
	if rem < 0x3F {
		return lead, byte(rem) + 0x40
	}
	return lead, byte(rem) + 0x41
}

func (d *gbkDecoder) reset() { d.nPend = 0 }

func (d *gbkDecoder) Feed(input []byte, sink RuneSink) (int, *CodecError) {
	// Treat d.pend ++ input as one logical buffer via direct concatenation;
	// the pending prefix is at most 3 bytes so this copy is cheap and keeps
	// the state machine below free of absolute/relative index bookkeeping.
	var buf []byte
	if d.nPend > 0 {
		buf = append(append([]byte(nil), d.pend[:d.nPend]...), input...)
	} else {
		buf = input
	}
	pendLen := d.nPend
	d.reset()

	i := 0
	lastGood := 0
	flush := func(upto int) {
		if upto > lastGood {
			sink.WriteString(string(buf[lastGood:upto]))
		}
	}
	toInputOffset := func(bufIdx int) int { return bufIdx - pendLen }

	for i < len(buf) {
		b := buf[i]
		if b < 0x80 {
			i++
			continue
		}
		if b == 0x80 {
			flush(i)
			sink.WriteRune(0x20AC)
			i++
			lastGood = i
			continue
		}
		if b == 0xFF {
			flush(i)
			return toInputOffset(lastGood), newError(toInputOffset(i+1), "invalid GBK/GB18030 lead byte")
		}
		if i+1 >= len(buf) {
			flush(i)
			copy(d.pend[:], buf[i:])
			d.nPend = len(buf) - i
			consumed := toInputOffset(lastGood)
			if consumed < 0 {
				consumed = 0
			}
			return consumed, nil
		}
		b2 := buf[i+1]
		if d.full && b2 >= 0x30 && b2 <= 0x39 {
			if i+3 >= len(buf) {
				flush(i)
				copy(d.pend[:], buf[i:])
				d.nPend = len(buf) - i
				consumed := toInputOffset(lastGood)
				if consumed < 0 {
					consumed = 0
				}
				return consumed, nil
			}
			b3, b4 := buf[i+2], buf[i+3]
			if b3 < 0x81 || b3 > 0xFE || b4 < 0x30 || b4 > 0x39 {
				flush(i)
				return toInputOffset(lastGood), newError(toInputOffset(i+1), "invalid GB18030 four-byte sequence")
			}
			cp, ok := gb18030FourCodepoint(b, b2, b3, b4)
			if !ok {
				// Out-of-range four-byte index: back up 3 bytes, resuming
				// right after the lead, same as the syntactically-invalid
				// branch just above.
				flush(i)
				return toInputOffset(lastGood), newError(toInputOffset(i+1), "unmapped GB18030 four-byte pointer")
			}
			flush(i)
			sink.WriteRune(cp)
			i += 4
			lastGood = i
			continue
		}
		ptr, ok := gbkTwoBytePointer(b, b2)
		if !ok {
			flush(i)
			return toInputOffset(lastGood), newError(toInputOffset(i+1), "invalid GBK/GB18030 trail byte")
		}
		cp := index.GBK2Byte.Forward(ptr)
		if cp == index.Unmapped {
			// Same "back up 1 byte" rule as a syntactically invalid trail
			// byte.
			flush(i)
			return toInputOffset(lastGood), newError(toInputOffset(i+1), "unmapped GBK/GB18030 pointer")
		}
		flush(i)
		sink.WriteRune(cp)
		i += 2
		lastGood = i
	}
	flush(i)
	return toInputOffset(lastGood), nil
}

func (d *gbkDecoder) Finish(RuneSink) *CodecError {
	had := d.nPend > 0
	d.reset()
	if had {
		return newError(0, "incomplete GBK/GB18030 sequence")
	}
	return nil
}

type gbkEncoder struct{ full bool }

func newGBKEncoder(full bool) func() RawEncoder {
	return func() RawEncoder { return gbkEncoder{full} }
}

func (e gbkEncoder) CloneFresh() RawEncoder  { return e }
func (e gbkEncoder) IsASCIICompatible() bool { return true }

func (e gbkEncoder) Feed(input string, sink ByteSink) (int, *CodecError) {
	for i, r := range input {
		if r < 0x80 {
			sink.WriteByte(byte(r))
			continue
		}
		if !e.full && r == 0x20AC {
			// GBK encodes the euro sign as the single byte 0x80, unlike
			// GB18030 which places it in the ordinary two-byte table.
			sink.WriteByte(0x80)
			continue
		}
		if ptr, ok := index.GBK2Byte.Backward(r); ok {
			lead, trail := gbkTwoByteBytes(ptr)
			sink.WriteByte(lead)
			sink.WriteByte(trail)
			continue
		}
		if !e.full {
			return i, newError(i+runeByteLen(r), "character unrepresentable in GBK")
		}
		b1, b2, b3, b4, ok := gb18030FourBytes(r)
		if !ok {
			return i, newError(i+runeByteLen(r), "character unrepresentable in GB18030")
		}
		sink.WriteByte(b1)
		sink.WriteByte(b2)
		sink.WriteByte(b3)
		sink.WriteByte(b4)
	}
	return len(input), nil
}

func (gbkEncoder) Finish(ByteSink) *CodecError { return nil }

// GBK and GB18030 are the handles for the two-byte-only and full
// (two/four-byte) variants respectively.
var (
	GBK = register(&Encoding{
		name:       "gbk",
		whatwg:     "gbk",
		newEncoder: newGBKEncoder(false),
		newDecoder: newGBKDecoder(false),
	})
	GB18030 = register(&Encoding{
		name:       "gb18030",
		whatwg:     "gb18030",
		newEncoder: newGBKEncoder(true),
		newDecoder: newGBKDecoder(true),
	})
)
