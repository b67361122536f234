package encoding

import "testing"

func TestUTF8DecoderFourByteSplitAcrossFeeds(t *testing.T) {
	// U+1F600 GRINNING FACE, encoded F0 9F 98 80, fed one byte at a time.
	want := "\U0001F600"
	bytes := []byte(want)
	dec := UTF8.NewRawDecoder()
	sink := NewStringBuffer(0)
	for i, b := range bytes {
		if _, err := dec.Feed([]byte{b}, sink); err != nil {
			t.Fatalf("byte %d: %v", i, err)
		}
	}
	if err := dec.Finish(sink); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if sink.String() != want {
		t.Fatalf("got %q want %q", sink.String(), want)
	}
}

func TestUTF8DecoderRejectsSurrogateHalf(t *testing.T) {
	// ED A0 80 would encode U+D800, a lone surrogate; CESU-8-style
	// surrogate encoding must be rejected per the ED continuation
	// constraint (80-9F only).
	dec := UTF8.NewRawDecoder()
	sink := NewStringBuffer(0)
	_, err := dec.Feed([]byte{0xED, 0xA0, 0x80}, sink)
	if err == nil {
		t.Fatalf("expected rejection of surrogate encoding")
	}
}

func TestUTF8DecoderRejectsOutOfRangeFourByte(t *testing.T) {
	// F4 90 80 80 would encode beyond U+10FFFF; F4's continuation is
	// constrained to 80-8F.
	dec := UTF8.NewRawDecoder()
	sink := NewStringBuffer(0)
	_, err := dec.Feed([]byte{0xF4, 0x90, 0x80, 0x80}, sink)
	if err == nil {
		t.Fatalf("expected rejection of out-of-range four-byte sequence")
	}
}

func TestUTF8DecoderUnexpectedContinuationConsumed(t *testing.T) {
	// A lone continuation byte (0x80-0xBF) can never itself restart a
	// sequence, so it is consumed as part of the error rather than backed
	// up; the following ASCII byte decodes cleanly on resume.
	input := []byte{0x80, 'a'}
	dec := UTF8.NewRawDecoder()
	sink := NewStringBuffer(0)
	_, err := dec.Feed(input, sink)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Upto != 1 {
		t.Fatalf("upto: got %d want 1", err.Upto)
	}
	rest := input[err.Upto:]
	if _, err := dec.Feed(rest, sink); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if err := dec.Finish(sink); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if sink.String() != "a" {
		t.Fatalf("got %q want \"a\"", sink.String())
	}
}

func TestUTF8DecoderBackupOnASCIIRestartAfterBadLead(t *testing.T) {
	// E1 followed directly by ASCII: the ASCII byte is a valid restart
	// point and must be backed up, not consumed.
	input := []byte{0xE1, 'a'}
	dec := UTF8.NewRawDecoder()
	sink := NewStringBuffer(0)
	_, err := dec.Feed(input, sink)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Upto != 1 {
		t.Fatalf("upto: got %d want 1", err.Upto)
	}
	rest := input[err.Upto:]
	if _, err := dec.Feed(rest, sink); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if err := dec.Finish(sink); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if sink.String() != "a" {
		t.Fatalf("got %q want \"a\"", sink.String())
	}
}

func TestUTF8EncoderIsPassthrough(t *testing.T) {
	s := "plain ascii and 混合 mixed"
	got, err := UTF8.Encode(s, EncoderTrapStrict{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(got) != s {
		t.Fatalf("got %q want %q", got, s)
	}
}
