package encoding

import "github.com/textcodec/encoding/internal/index"

// EUC-JP decoder with JIS X 0212. Two-slot state: `first` holds a single
// pending lead-kind byte (including the 0x8E/0x8F markers); `second`
// holds the middle byte of a pending 3-byte JIS X 0212 sequence.
type eucJPDecoder struct {
	first     byte
	hasFirst  bool
	second    byte
	hasSecond bool
	flushed   int // start of the current Feed call's ASCII run not yet written to the sink
}

func newEUCJPDecoder() RawDecoder { return &eucJPDecoder{} }

// eucjpBackup reports whether an out-of-range second/trail byte should be
// backed up (not consumed): true if trail is outside 0xA1-0xFE, the range
// any EUC-JP second byte (katakana, JIS X 0212, or JIS X 0208) can
// legally occupy.
func eucjpBackup(trail byte) bool {
	return trail < 0xA1 || trail > 0xFE
}

func (d *eucJPDecoder) CloneFresh() RawDecoder  { return &eucJPDecoder{} }
func (d *eucJPDecoder) IsASCIICompatible() bool { return true }

func (d *eucJPDecoder) reset() { d.hasFirst, d.hasSecond = false, false }

func (d *eucJPDecoder) Feed(input []byte, sink RuneSink) (int, *CodecError) {
	i := 0

	// Drain any held state first, as a conceptual two/three-byte
	// continuation built from previous calls' bytes.
	if d.hasFirst {
		first := d.first
		switch {
		case first == 0x8E:
			if len(input) == 0 {
				return 0, nil
			}
			b := input[0]
			d.reset()
			if b < 0xA1 || b > 0xDF {
				if eucjpBackup(b) {
					return 0, newError(0, "invalid EUC-JP katakana trail byte")
				}
				return 0, newError(1, "invalid EUC-JP katakana trail byte")
			}
			sink.WriteRune(0xFF61 + rune(b-0xA1))
			i = 1
		case first == 0x8F:
			if d.hasSecond {
				if len(input) == 0 {
					return 0, nil
				}
				b2 := input[0]
				second := d.second
				d.reset()
				if second < 0xA1 || second > 0xFE || b2 < 0xA1 || b2 > 0xFE {
					if eucjpBackup(b2) {
						return 0, newError(0, "invalid EUC-JP JIS X 0212 trail byte")
					}
					return 0, newError(1, "invalid EUC-JP JIS X 0212 trail byte")
				}
				ptr := int(second-0xA1)*94 + int(b2-0xA1)
				cp := index.JIS0212.Forward(ptr)
				if cp == index.Unmapped {
					return 0, newError(1, "unmapped EUC-JP JIS X 0212 pointer")
				}
				sink.WriteRune(cp)
				i = 1
			} else {
				if len(input) == 0 {
					return 0, nil
				}
				b := input[0]
				if b < 0xA1 || b > 0xFE {
					d.reset()
					if eucjpBackup(b) {
						return 0, newError(0, "invalid EUC-JP JIS X 0212 second byte")
					}
					return 0, newError(1, "invalid EUC-JP JIS X 0212 second byte")
				}
				d.second, d.hasSecond = b, true
				i = 1
			}
		default: // ordinary JIS X 0208 lead byte held from a previous call
			if len(input) == 0 {
				return 0, nil
			}
			b := input[0]
			d.reset()
			if b < 0xA1 || b > 0xFE {
				if eucjpBackup(b) {
					return 0, newError(0, "invalid EUC-JP trail byte")
				}
				return 0, newError(1, "invalid EUC-JP trail byte")
			}
			ptr := int(first-0xA1)*94 + int(b-0xA1)
			cp := index.JIS0208.Forward(ptr)
			if cp == index.Unmapped {
				return 0, newError(1, "unmapped EUC-JP pointer")
			}
			sink.WriteRune(cp)
			i = 1
		}
	}

	lastGood := i
	d.flushed = i
	for i < len(input) {
		b := input[i]
		switch {
		case b < 0x80:
			i++
			lastGood = i
		case b == 0x8E:
			if i+1 >= len(input) {
				d.flush(input, lastGood, sink)
				d.first, d.hasFirst = b, true
				return lastGood, nil
			}
			trail := input[i+1]
			if trail < 0xA1 || trail > 0xDF {
				d.flush(input, lastGood, sink)
				if eucjpBackup(trail) {
					return lastGood, newError(i+1, "invalid EUC-JP katakana trail byte")
				}
				return lastGood, newError(i+2, "invalid EUC-JP katakana trail byte")
			}
			d.flushRange(input, d.flushed, i, sink)
			sink.WriteRune(0xFF61 + rune(trail-0xA1))
			i += 2
			lastGood = i
			d.flushed = i
		case b == 0x8F:
			if i+2 >= len(input) {
				d.flush(input, lastGood, sink)
				d.first, d.hasFirst = b, true
				if i+1 < len(input) {
					d.second, d.hasSecond = input[i+1], true
				}
				return lastGood, nil
			}
			second, trail := input[i+1], input[i+2]
			if second < 0xA1 || second > 0xFE || trail < 0xA1 || trail > 0xFE {
				d.flush(input, lastGood, sink)
				if second < 0xA1 || second > 0xFE {
					return lastGood, newError(i+1, "invalid EUC-JP JIS X 0212 second byte")
				}
				return lastGood, newError(i+2, "invalid EUC-JP JIS X 0212 trail byte")
			}
			ptr := int(second-0xA1)*94 + int(trail-0xA1)
			cp := index.JIS0212.Forward(ptr)
			if cp == index.Unmapped {
				d.flush(input, lastGood, sink)
				return lastGood, newError(i+3, "unmapped EUC-JP JIS X 0212 pointer")
			}
			d.flushRange(input, d.flushed, i, sink)
			sink.WriteRune(cp)
			i += 3
			lastGood = i
			d.flushed = i
		case b >= 0xA1 && b <= 0xFE:
			if i+1 >= len(input) {
				d.flush(input, lastGood, sink)
				d.first, d.hasFirst = b, true
				return lastGood, nil
			}
			trail := input[i+1]
			if trail < 0xA1 || trail > 0xFE {
				d.flush(input, lastGood, sink)
				return lastGood, newError(i+1, "invalid EUC-JP trail byte")
			}
			ptr := int(b-0xA1)*94 + int(trail-0xA1)
			cp := index.JIS0208.Forward(ptr)
			if cp == index.Unmapped {
				d.flush(input, lastGood, sink)
				return lastGood, newError(i+2, "unmapped EUC-JP pointer")
			}
			d.flushRange(input, d.flushed, i, sink)
			sink.WriteRune(cp)
			i += 2
			lastGood = i
			d.flushed = i
		default:
			d.flush(input, lastGood, sink)
			return lastGood, newError(i+1, "invalid EUC-JP lead byte")
		}
	}
	d.flush(input, lastGood, sink)
	return lastGood, nil
}

func (d *eucJPDecoder) flush(input []byte, lastGood int, sink RuneSink) {
	if lastGood > d.flushed {
		sink.WriteString(string(input[d.flushed:lastGood]))
	}
}

func (d *eucJPDecoder) flushRange(input []byte, from, to int, sink RuneSink) {
	if to > from {
		sink.WriteString(string(input[from:to]))
	}
}

func (d *eucJPDecoder) Finish(RuneSink) *CodecError {
	had := d.hasFirst
	d.reset()
	if had {
		return newError(0, "incomplete EUC-JP sequence")
	}
	return nil
}

type eucJPEncoder struct{}

func newEUCJPEncoder() RawEncoder { return eucJPEncoder{} }

func (eucJPEncoder) CloneFresh() RawEncoder  { return eucJPEncoder{} }
func (eucJPEncoder) IsASCIICompatible() bool { return true }

// Feed never emits JIS X 0212: the encoder is asymmetric by design, since
// real-world EUC-JP producers never emit that supplementary plane either.
func (eucJPEncoder) Feed(input string, sink ByteSink) (int, *CodecError) {
	for i, r := range input {
		switch {
		case r < 0x80:
			sink.WriteByte(byte(r))
		case r >= 0xFF61 && r <= 0xFF9F:
			sink.WriteByte(0x8E)
			sink.WriteByte(byte(0xA1 + (r - 0xFF61)))
		default:
			ptr, ok := index.JIS0208.Backward(r)
			if !ok {
				return i, newError(i+runeByteLen(r), "character unrepresentable in EUC-JP")
			}
			sink.WriteByte(byte(ptr/94) + 0xA1)
			sink.WriteByte(byte(ptr%94) + 0xA1)
		}
	}
	return len(input), nil
}

func (eucJPEncoder) Finish(ByteSink) *CodecError { return nil }

// EUCJP is the handle for EUC-JP.
var EUCJP = register(&Encoding{
	name:       "euc-jp",
	whatwg:     "euc-jp",
	newEncoder: newEUCJPEncoder,
	newDecoder: newEUCJPDecoder,
})
