package encoding

// ASCII is the trivial, stateless codec: bytes 00-7F map to themselves and
// nothing else is representable, so encoding a non-ASCII scalar is always
// an unrepresentable-character error.
type asciiDecoder struct{}

func newASCIIDecoder() RawDecoder { return asciiDecoder{} }

func (asciiDecoder) CloneFresh() RawDecoder  { return asciiDecoder{} }
func (asciiDecoder) IsASCIICompatible() bool { return true }

func (asciiDecoder) Feed(input []byte, sink RuneSink) (int, *CodecError) {
	for i, b := range input {
		if b >= 0x80 {
			if i > 0 {
				sink.WriteString(string(input[:i]))
			}
			return i, newError(i+1, "non-ASCII byte in ASCII stream")
		}
	}
	sink.WriteString(string(input))
	return len(input), nil
}

func (asciiDecoder) Finish(RuneSink) *CodecError { return nil }

type asciiEncoder struct{}

func newASCIIEncoder() RawEncoder { return asciiEncoder{} }

func (asciiEncoder) CloneFresh() RawEncoder  { return asciiEncoder{} }
func (asciiEncoder) IsASCIICompatible() bool { return true }

func (asciiEncoder) Feed(input string, sink ByteSink) (int, *CodecError) {
	for i, r := range input {
		if r >= 0x80 {
			if i > 0 {
				sink.Write([]byte(input[:i]))
			}
			return i, newError(i+runeByteLen(r), "non-ASCII character cannot be encoded as ASCII")
		}
	}
	sink.Write([]byte(input))
	return len(input), nil
}

func (asciiEncoder) Finish(ByteSink) *CodecError { return nil }

// ASCII is the handle for 7-bit ASCII, a simple worked example codec.
var ASCII = register(&Encoding{
	name:       "us-ascii",
	whatwg:     "",
	newEncoder: newASCIIEncoder,
	newDecoder: newASCIIDecoder,
})
