package encoding

import (
	"strconv"
	"unicode/utf8"
)

// DecoderTrap is consulted whenever a RawDecoder reports an error. It is
// handed the problematic byte run and the sink already in use, and decides
// whether decoding should continue.
type DecoderTrap interface {
	// Trap is invoked with the codec that raised the error, the
	// problematic byte slice, and the sink. It returns false to abort
	// decoding (the driver then surfaces err.Cause as a failure).
	Trap(dec RawDecoder, problem []byte, sink RuneSink) bool
}

// EncoderTrap is consulted whenever a RawEncoder reports an unrepresentable
// character.
type EncoderTrap interface {
	Trap(enc RawEncoder, problem string, sink ByteSink) bool
}

// DecoderTrapStrict fails decoding on the first error.
type DecoderTrapStrict struct{}

func (DecoderTrapStrict) Trap(RawDecoder, []byte, RuneSink) bool { return false }

// DecoderTrapReplace emits U+FFFD for the problematic run and resumes.
type DecoderTrapReplace struct{}

func (DecoderTrapReplace) Trap(_ RawDecoder, problem []byte, sink RuneSink) bool {
	if len(problem) > 0 {
		sink.WriteRune(utf8.RuneError)
	}
	return true
}

// DecoderTrapIgnore silently drops the problematic run and resumes.
type DecoderTrapIgnore struct{}

func (DecoderTrapIgnore) Trap(RawDecoder, []byte, RuneSink) bool { return true }

// DecoderTrapCallback adapts a plain function to DecoderTrap.
type DecoderTrapCallback func(dec RawDecoder, problem []byte, sink RuneSink) bool

func (f DecoderTrapCallback) Trap(dec RawDecoder, problem []byte, sink RuneSink) bool {
	return f(dec, problem, sink)
}

// EncoderTrapStrict fails encoding on the first unrepresentable character.
type EncoderTrapStrict struct{}

func (EncoderTrapStrict) Trap(RawEncoder, string, ByteSink) bool { return false }

// EncoderTrapIgnore silently drops unrepresentable characters.
type EncoderTrapIgnore struct{}

func (EncoderTrapIgnore) Trap(RawEncoder, string, ByteSink) bool { return true }

// EncoderTrapReplace re-encodes the literal "?" for every unrepresentable
// character.
type EncoderTrapReplace struct{}

func (EncoderTrapReplace) Trap(enc RawEncoder, problem string, sink ByteSink) bool {
	return reencodeReplacement(enc, "?", sink)
}

// EncoderTrapNcrEscape re-encodes the decimal XML numeric character
// reference "&#N;" for each unrepresentable scalar in problem.
type EncoderTrapNcrEscape struct{}

func (EncoderTrapNcrEscape) Trap(enc RawEncoder, problem string, sink ByteSink) bool {
	for _, r := range problem {
		ncr := "&#" + strconv.Itoa(int(r)) + ";"
		if !reencodeReplacement(enc, ncr, sink) {
			return false
		}
	}
	return true
}

// EncoderTrapCallback adapts a plain function to EncoderTrap.
type EncoderTrapCallback func(enc RawEncoder, problem string, sink ByteSink) bool

func (f EncoderTrapCallback) Trap(enc RawEncoder, problem string, sink ByteSink) bool {
	return f(enc, problem, sink)
}

// reencodeReplacement writes replacement through enc: if enc is
// ASCII-compatible the replacement text (always ASCII) is written
// directly; otherwise the encoder is re-invoked on the replacement text,
// and a failure there is a fatal programmer error (panic), since the
// trap itself cannot be satisfied.
func reencodeReplacement(enc RawEncoder, replacement string, sink ByteSink) bool {
	if enc.IsASCIICompatible() {
		sink.Write(stringToBytesUnsafe(replacement))
		return true
	}
	n, err := enc.Feed(replacement, sink)
	if err != nil || n != len(replacement) {
		panic("encoding: replacement text is unrepresentable in the target encoding")
	}
	return true
}
