package encoding

// driveEncode feeds s to enc to completion, invoking trap on every
// reported error and resuming right after the error's problem range until
// the whole input is consumed or the trap gives up.
func driveEncode(enc RawEncoder, s string, trap EncoderTrap) ([]byte, error) {
	sink := NewByteBuffer(len(s))
	remaining := 0
	unprocessedStart := 0

	for {
		offset, err := enc.Feed(s[remaining:], sink)
		unprocessedStart = remaining + offset
		if err != nil {
			remaining += err.Upto
			if !trap.Trap(enc, s[unprocessedStart:remaining], sink) {
				return nil, err
			}
			continue
		}
		remaining = len(s)
		if err := enc.Finish(sink); err != nil {
			remaining = len(s) + err.Upto
			if !trap.Trap(enc, s[unprocessedStart:remaining], sink) {
				return nil, err
			}
			continue
		}
		return sink.Bytes(), nil
	}
}

// driveDecode is driveEncode's decoding counterpart.
func driveDecode(dec RawDecoder, b []byte, trap DecoderTrap) (string, error) {
	sink := NewStringBuffer(len(b))
	remaining := 0
	unprocessedStart := 0

	for {
		offset, err := dec.Feed(b[remaining:], sink)
		unprocessedStart = remaining + offset
		if err != nil {
			remaining += err.Upto
			if !trap.Trap(dec, b[unprocessedStart:remaining], sink) {
				return "", err
			}
			continue
		}
		remaining = len(b)
		if err := dec.Finish(sink); err != nil {
			remaining = len(b) + err.Upto
			if !trap.Trap(dec, b[unprocessedStart:remaining], sink) {
				return "", err
			}
			continue
		}
		return sink.String(), nil
	}
}
