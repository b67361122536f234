package encoding

import "github.com/textcodec/encoding/internal/index"

// Windows-949 / EUC-KR decoder. State is a single held lead byte; the
// trail range spans both the classic EUC-KR block and the UHC
// extended-Hangul block.
type eucKRDecoder struct {
	lead    byte
	hasLead bool
}

func newEUCKRDecoder() RawDecoder { return &eucKRDecoder{} }

func (d *eucKRDecoder) CloneFresh() RawDecoder  { return &eucKRDecoder{} }
func (d *eucKRDecoder) IsASCIICompatible() bool { return true }

// uhcPointer converts a (lead, trail) pair into the UHC table's pointer
// convention: the extended range below 0xC7 packs 178 trail values per
// lead byte; at and above 0xC7 it narrows to the classic 94-cell EUC-KR
// layout.
func uhcPointer(lead, trail byte) (int, bool) {
	if lead < 0x81 || lead > 0xFE {
		return 0, false
	}
	if lead < 0xC7 {
		if trail < 0x41 || trail > 0xFE || (trail > 0x5A && trail < 0x61) || (trail > 0x7A && trail < 0x81) {
			return 0, false
		}
		off := byte(0x41)
		switch {
		case trail >= 0x61 && trail <= 0x7A:
			off = 0x47
		case trail >= 0x81:
			off = 0x4D
		}
		return 178*int(lead-0x81) + int(trail-off), true
	}
	if trail < 0xA1 || trail > 0xFE {
		return 0, false
	}
	return 178*0x46 + int(lead-0xC7)*94 + int(trail-0xA1), true
}

func uhcBytes(ptr int) (byte, byte) {
	if ptr < 178*0x46 {
		lead := byte(ptr/178) + 0x81
		rem := ptr % 178
		var trail byte
		switch {
		case rem < 26:
			trail = byte(rem) + 0x41
		case rem < 52:
			trail = byte(rem-26) + 0x61
		default:
			trail = byte(rem-52) + 0x81
		}
		return lead, trail
	}
	rem := ptr - 178*0x46
	return byte(rem/94) + 0xC7, byte(rem%94) + 0xA1
}

func (d *eucKRDecoder) Feed(input []byte, sink RuneSink) (int, *CodecError) {
	i := 0
	if d.hasLead {
		if len(input) == 0 {
			return 0, nil
		}
		lead := d.lead
		d.hasLead = false
		trail := input[0]
		ptr, ok := uhcPointer(lead, trail)
		if !ok {
			// An ASCII trail byte may itself restart a valid sequence and is
			// backed up; a non-ASCII trail byte that maps to no pointer is
			// consumed along with the lead.
			if trail < 0x80 {
				return 0, newError(0, "invalid EUC-KR trail byte")
			}
			return 0, newError(1, "invalid EUC-KR trail byte")
		}
		cp := index.UHC.Forward(ptr)
		if cp == index.Unmapped {
			if trail < 0x80 {
				return 0, newError(0, "unmapped EUC-KR pointer")
			}
			return 0, newError(1, "unmapped EUC-KR pointer")
		}
		sink.WriteRune(cp)
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
			return lastGood, newError(i+1, "invalid EUC-KR lead byte")
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
		ptr, ok := uhcPointer(b, trail)
		if !ok {
			if lastGood > 0 {
				sink.WriteString(string(input[flushed:lastGood]))
			}
			if trail < 0x80 {
				return lastGood, newError(i+1, "invalid EUC-KR trail byte")
			}
			return lastGood, newError(i+2, "invalid EUC-KR trail byte")
		}
		cp := index.UHC.Forward(ptr)
		if cp == index.Unmapped {
			if lastGood > 0 {
				sink.WriteString(string(input[flushed:lastGood]))
			}
			if trail < 0x80 {
				return lastGood, newError(i+1, "unmapped EUC-KR pointer")
			}
			return lastGood, newError(i+2, "unmapped EUC-KR pointer")
		}
		if flushed < i {
			sink.WriteString(string(input[flushed:i]))
		}
		sink.WriteRune(cp)
		i += 2
		lastGood = i
		flushed = i
	}
	if lastGood > 0 {
		sink.WriteString(string(input[flushed:lastGood]))
	}
	return lastGood, nil
}

func (d *eucKRDecoder) Finish(RuneSink) *CodecError {
	had := d.hasLead
	d.hasLead = false
	if had {
		return newError(0, "incomplete EUC-KR sequence")
	}
	return nil
}

type eucKREncoder struct{}

func newEUCKREncoder() RawEncoder { return eucKREncoder{} }

func (eucKREncoder) CloneFresh() RawEncoder  { return eucKREncoder{} }
func (eucKREncoder) IsASCIICompatible() bool { return true }

func (eucKREncoder) Feed(input string, sink ByteSink) (int, *CodecError) {
	for i, r := range input {
		if r < 0x80 {
			sink.WriteByte(byte(r))
			continue
		}
		ptr, ok := index.UHC.Backward(r)
		if !ok {
			return i, newError(i+runeByteLen(r), "character unrepresentable in EUC-KR")
		}
		lead, trail := uhcBytes(ptr)
		sink.WriteByte(lead)
		sink.WriteByte(trail)
	}
	return len(input), nil
}

func (eucKREncoder) Finish(ByteSink) *CodecError { return nil }

// EUCKR is the handle for Windows-949 / EUC-KR.
var EUCKR = register(&Encoding{
	name:       "windows-949",
	whatwg:     "euc-kr",
	newEncoder: newEUCKREncoder,
	newDecoder: newEUCKRDecoder,
})
