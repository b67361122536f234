package encoding

// singleByteTable parameterizes the single-byte encoding family: bytes
// below 0x80 pass through unchanged; bytes 0x80-0xFF are looked up in
// Forward (0xFFFF marks "unmapped"), and the reverse lookup is built once
// from Forward at registration time (Backward), keeping forward/backward
// consistent by construction.
type singleByteTable struct {
	name     string
	whatwg   string
	forward  [256]rune // index 0x80-0xFF meaningful; below 0x80 unused (ASCII identity)
	backward map[rune]byte
}

func newSingleByteTable(name, whatwg string, highHalf [128]rune) *singleByteTable {
	t := &singleByteTable{name: name, whatwg: whatwg, backward: make(map[rune]byte, 128)}
	for i := 0; i < 128; i++ {
		t.forward[0x80+i] = highHalf[i]
		if highHalf[i] != 0xFFFF {
			t.backward[highHalf[i]] = byte(0x80 + i)
		}
	}
	return t
}

type singleByteDecoder struct{ t *singleByteTable }

func (d singleByteDecoder) CloneFresh() RawDecoder  { return d }
func (d singleByteDecoder) IsASCIICompatible() bool { return true }

func (d singleByteDecoder) Feed(input []byte, sink RuneSink) (int, *CodecError) {
	sink.Hint(len(input))
	for i, b := range input {
		if b < 0x80 {
			sink.WriteRune(rune(b))
			continue
		}
		r := d.t.forward[b]
		if r == 0xFFFF {
			return i, newError(i+1, "unmapped byte in "+d.t.name)
		}
		sink.WriteRune(r)
	}
	return len(input), nil
}

func (d singleByteDecoder) Finish(RuneSink) *CodecError { return nil }

type singleByteEncoder struct{ t *singleByteTable }

func (e singleByteEncoder) CloneFresh() RawEncoder  { return e }
func (e singleByteEncoder) IsASCIICompatible() bool { return true }

func (e singleByteEncoder) Feed(input string, sink ByteSink) (int, *CodecError) {
	sink.Hint(len(input))
	for i, r := range input {
		if r < 0x80 {
			sink.WriteByte(byte(r))
			continue
		}
		b, ok := e.t.backward[r]
		if !ok {
			return i, newError(i+runeByteLen(r), "character unrepresentable in "+e.t.name)
		}
		sink.WriteByte(b)
	}
	return len(input), nil
}

func (e singleByteEncoder) Finish(ByteSink) *CodecError { return nil }

func registerSingleByte(name, whatwg string, highHalf [128]rune) *Encoding {
	t := newSingleByteTable(name, whatwg, highHalf)
	return register(&Encoding{
		name:       t.name,
		whatwg:     t.whatwg,
		newEncoder: func() RawEncoder { return singleByteEncoder{t} },
		newDecoder: func() RawDecoder { return singleByteDecoder{t} },
	})
}

// identityHighHalf realizes ISO 8859-1: forward/backward are the identity
// function, so every byte 0x80-0xFF maps to the codepoint of the same
// value.
func identityHighHalf() (h [128]rune) {
	for i := range h {
		h[i] = rune(0x80 + i)
	}
	return h
}

// ISO88591 is the handle for ISO 8859-1 (Latin-1), realized via identity
// forward/backward functions.
var ISO88591 = registerSingleByte("iso-8859-1", "iso-8859-1", identityHighHalf())

// windows1252HighHalf is the Windows-1252 high half: identical to Latin-1
// except for the C1-control range 0x80-0x9F, which Windows-1252 repurposes
// for additional printable characters (curly quotes, dashes, etc). Several
// positions in that range (0x81, 0x8D, 0x8F, 0x90, 0x9D) are left as
// 0xFFFF here, so decoding them is an error.
var windows1252HighHalf = func() [128]rune {
	h := identityHighHalf()
	overrides := map[int]rune{
		0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
		0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
		0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
		0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
		0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
		0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
		0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
	}
	for b, r := range overrides {
		h[b-0x80] = r
	}
	for _, unmapped := range []int{0x81, 0x8D, 0x8F, 0x90, 0x9D} {
		h[unmapped-0x80] = 0xFFFF
	}
	return h
}()

// Windows1252 is the handle for Windows-1252.
var Windows1252 = registerSingleByte("windows-1252", "windows-1252", windows1252HighHalf)
