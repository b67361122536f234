package encoding

import "testing"

func TestISO88591IdentityHighHalf(t *testing.T) {
	got, err := ISO88591.Encode("café", EncoderTrapStrict{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{'c', 'a', 'f', 0xE9}
	if string(got) != string(want) {
		t.Fatalf("got % X want % X", got, want)
	}
	back, err := ISO88591.Decode(got, DecoderTrapStrict{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back != "café" {
		t.Fatalf("got %q want café", back)
	}
}

func TestWindows1252OverridesLatin1InC1Range(t *testing.T) {
	s, err := Windows1252.Decode([]byte{0x80}, DecoderTrapStrict{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s != "€" {
		t.Fatalf("got %q want €", s)
	}
}

func TestWindows1252UnmappedByteErrors(t *testing.T) {
	_, err := Windows1252.Decode([]byte{0x81}, DecoderTrapStrict{})
	if err == nil {
		t.Fatalf("expected unmapped-byte error for 0x81")
	}
}

func TestSingleByteEncoderUnrepresentableCharacter(t *testing.T) {
	_, err := ISO88591.Encode("中", EncoderTrapStrict{})
	if err == nil {
		t.Fatalf("expected unrepresentable error")
	}
}
