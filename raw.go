package encoding

// RawEncoder is the lowest-level, per-encoding stateful object that turns a
// text slice into bytes incrementally.
type RawEncoder interface {
	// Feed consumes a prefix of input, writing encoded bytes to sink, and
	// returns the byte offset (into input) of the first unconsumed rune
	// together with an error, if any. See CodecError for the offset
	// geometry.
	Feed(input string, sink ByteSink) (consumed int, err *CodecError)

	// Finish flushes any pending state, resets the encoder to its initial
	// state, and returns an error if the encoder was left in a state that
	// cannot be completed cleanly (currently: never, for this module's
	// codecs, but the hook exists for any future stateful encoder that
	// can end mid-sequence).
	Finish(sink ByteSink) *CodecError

	// CloneFresh returns a new encoder with the same parameters but reset
	// state.
	CloneFresh() RawEncoder

	// IsASCIICompatible reports whether every ASCII input byte maps
	// byte-for-byte to itself. Consulted by Replace/NcrEscape traps to
	// avoid recursive encoder re-entry.
	IsASCIICompatible() bool
}

// RawDecoder is the lowest-level, per-encoding stateful object that turns a
// byte slice into text incrementally.
type RawDecoder interface {
	Feed(input []byte, sink RuneSink) (consumed int, err *CodecError)
	Finish(sink RuneSink) *CodecError
	CloneFresh() RawDecoder
	IsASCIICompatible() bool
}

// Encoding is a static, zero-state descriptor for one character encoding.
// Handles are process-lifetime singletons, safe to share across
// goroutines, and comparable by identity (the common pattern is to keep a
// single *Encoding value per encoding and compare pointers).
type Encoding struct {
	name       string
	whatwg     string
	newEncoder func() RawEncoder
	newDecoder func() RawDecoder
}

// Name returns the canonical, stable name of this encoding.
func (e *Encoding) Name() string { return e.name }

// WHATWGName returns the name this encoding is known by in the WHATWG
// Encoding Standard, or "" if it has none (e.g. it's an internal codec
// not part of that standard).
func (e *Encoding) WHATWGName() string { return e.whatwg }

// NewRawEncoder returns a fresh RawEncoder for this encoding.
func (e *Encoding) NewRawEncoder() RawEncoder { return e.newEncoder() }

// NewRawDecoder returns a fresh RawDecoder for this encoding.
func (e *Encoding) NewRawDecoder() RawDecoder { return e.newDecoder() }

// Encode is the easy-use driver for encoding: it runs trap to completion
// over the whole of s and returns the resulting bytes, or an error if trap
// could not recover.
func (e *Encoding) Encode(s string, trap EncoderTrap) ([]byte, error) {
	return driveEncode(e.NewRawEncoder(), s, trap)
}

// Decode is the easy-use driver for decoding.
func (e *Encoding) Decode(b []byte, trap DecoderTrap) (string, error) {
	return driveDecode(e.NewRawDecoder(), b, trap)
}
