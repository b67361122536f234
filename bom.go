package encoding

// DecodeWithBOMSniffing inspects the leading bytes of input for a UTF-8 or
// UTF-16 byte-order mark. If one is found, the BOM is dropped and the
// corresponding encoding is used to decode the remainder; otherwise
// fallback decodes the entire input. It reports both the decoded string
// and the encoding actually used.
func DecodeWithBOMSniffing(input []byte, trap DecoderTrap, fallback *Encoding) (string, *Encoding, error) {
	enc, body := sniffBOM(input)
	if enc == nil {
		enc, body = fallback, input
	}
	s, err := enc.Decode(body, trap)
	return s, enc, err
}

func sniffBOM(input []byte) (*Encoding, []byte) {
	switch {
	case len(input) >= 3 && input[0] == 0xEF && input[1] == 0xBB && input[2] == 0xBF:
		return UTF8, input[3:]
	case len(input) >= 2 && input[0] == 0xFE && input[1] == 0xFF:
		return UTF16BE, input[2:]
	case len(input) >= 2 && input[0] == 0xFF && input[1] == 0xFE:
		return UTF16LE, input[2:]
	default:
		return nil, nil
	}
}
