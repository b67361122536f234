package encoding

import "testing"

func TestHZASCIIPassthrough(t *testing.T) {
	got, err := HZGB2312.Encode("hello", EncoderTrapStrict{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("got %q want hello", got)
	}
	s, err := HZGB2312.Decode(got, DecoderTrapStrict{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s != "hello" {
		t.Fatalf("got %q want hello", s)
	}
}

func TestHZEscapedTilde(t *testing.T) {
	got, err := HZGB2312.Encode("a~b", EncoderTrapStrict{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(got) != "a~~b" {
		t.Fatalf("got %q want a~~b", got)
	}
	s, err := HZGB2312.Decode(got, DecoderTrapStrict{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s != "a~b" {
		t.Fatalf("got %q want a~b", s)
	}
}

func TestHZModeSwitchMidStream(t *testing.T) {
	// ASCII, then GB mode for 中, then back to ASCII.
	text := "a中b"
	got, err := HZGB2312.Encode(text, EncoderTrapStrict{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	s, err := HZGB2312.Decode(got, DecoderTrapStrict{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s != text {
		t.Fatalf("got %q want %q", s, text)
	}
}

func TestHZNewlineInGBModeErrors(t *testing.T) {
	// A raw newline while in GB mode (B0) is an error in this decoder's
	// mode table (spec §4.8), unlike in A0/A1 where it's unremarkable.
	dec := HZGB2312.NewRawDecoder()
	sink := NewStringBuffer(0)
	_, err := dec.Feed([]byte{'~', '{', '\n'}, sink)
	if err == nil {
		t.Fatalf("expected error for newline in GB mode")
	}
}

func TestHZFinishMidEscapeIsIncomplete(t *testing.T) {
	dec := HZGB2312.NewRawDecoder()
	sink := NewStringBuffer(0)
	if _, err := dec.Feed([]byte{'~'}, sink); err != nil {
		t.Fatalf("unexpected feed error: %v", err)
	}
	if err := dec.Finish(sink); err == nil {
		t.Fatalf("expected incomplete-sequence error")
	}
}
