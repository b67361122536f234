package encoding

// Replacement is the WHATWG "replacement" encoding: an anti-smuggling
// device for the iso-2022-kr/iso-2022-cn/iso-2022-cn-ext/csiso2022kr
// labels. Its encoder behaves as UTF-8; its decoder fails on any
// non-empty input, refusing to interpret bytes claimed to be in one of
// those legacy ISO-2022 encodings (which this library does not
// implement) as anything other than an error.
var Replacement = register(&Encoding{
	name:       "replacement",
	whatwg:     "replacement",
	newEncoder: newUTF8Encoder,
	newDecoder: newReplacementDecoder,
})

type replacementDecoder struct{}

func newReplacementDecoder() RawDecoder { return replacementDecoder{} }

func (replacementDecoder) CloneFresh() RawDecoder  { return replacementDecoder{} }
func (replacementDecoder) IsASCIICompatible() bool { return false }

func (replacementDecoder) Feed(input []byte, _ RuneSink) (int, *CodecError) {
	if len(input) == 0 {
		return 0, nil
	}
	return 0, newError(0, "replacement encoding refuses all input")
}

func (replacementDecoder) Finish(RuneSink) *CodecError { return nil }
