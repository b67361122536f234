package encoding

import "testing"

func TestEUCJPRoundTripKanji(t *testing.T) {
	// EUC-JP bytes A1A1 decode to JIS0208 pointer 0, mapped to U+3000.
	s, err := EUCJP.Decode([]byte{0xA1, 0xA1}, DecoderTrapStrict{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s != "　" {
		t.Fatalf("got %q want U+3000", s)
	}
}

func TestEUCJPHalfWidthKatakana(t *testing.T) {
	s, err := EUCJP.Decode([]byte{0x8E, 0xA1}, DecoderTrapStrict{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s != "｡" {
		t.Fatalf("got %q want U+FF61", s)
	}
}

func TestEUCJPJISX0212ThreeByte(t *testing.T) {
	// 8F A1 A1 -> JIS0212 pointer 0 -> U+02D8.
	s, err := EUCJP.Decode([]byte{0x8F, 0xA1, 0xA1}, DecoderTrapStrict{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s != "˘" {
		t.Fatalf("got %q want U+02D8", s)
	}
}

func TestEUCJPEncoderNeverEmitsJISX0212(t *testing.T) {
	// U+02D8 only exists in JIS0212; the encoder must refuse it, not
	// silently emit the asymmetric 3-byte form (spec §4.5/§6.1).
	_, err := EUCJP.Encode("˘", EncoderTrapStrict{})
	if err == nil {
		t.Fatalf("expected unrepresentable error for a JIS X 0212-only scalar")
	}
}

func TestEUCJPKatakanaTrailBackupOnASCII(t *testing.T) {
	// 8E followed by an ASCII byte: outside the katakana trail range and
	// below 0xA1, so the trail is backed up (spec §4.5's eucjpBackup rule).
	dec := EUCJP.NewRawDecoder()
	sink := NewStringBuffer(0)
	consumed, err := dec.Feed([]byte{0x8E, 'x'}, sink)
	if err == nil {
		t.Fatalf("expected error")
	}
	if consumed != 0 {
		t.Fatalf("consumed: got %d want 0", consumed)
	}
	if err.Upto != 1 {
		t.Fatalf("upto: got %d want 1", err.Upto)
	}
}

func TestEUCJPLoneLeadAcrossFeeds(t *testing.T) {
	dec := EUCJP.NewRawDecoder()
	sink := NewStringBuffer(0)
	if _, err := dec.Feed([]byte{0xA1}, sink); err != nil {
		t.Fatalf("unexpected error on held lead: %v", err)
	}
	if _, err := dec.Feed([]byte{0xA1}, sink); err != nil {
		t.Fatalf("unexpected error completing pair: %v", err)
	}
	if sink.String() != "　" {
		t.Fatalf("got %q want U+3000", sink.String())
	}
}
