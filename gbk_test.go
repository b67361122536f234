package encoding

import "testing"

func TestGBKTwoByteRoundTrip(t *testing.T) {
	s, err := GBK.Encode("丂", EncoderTrapStrict{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := GBK.Decode(s, DecoderTrapStrict{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back != "丂" {
		t.Fatalf("got %q want U+4E02", back)
	}
}

func TestGBKEuroSignSpecialCase(t *testing.T) {
	// spec §6.1: GBK excludes the four-byte region but still encodes the
	// euro sign as the single byte 0x80.
	got, err := GBK.Encode("€", EncoderTrapStrict{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(got) != "\x80" {
		t.Fatalf("got % X want 80", got)
	}
	back, err := GBK.Decode(got, DecoderTrapStrict{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back != "€" {
		t.Fatalf("got %q want €", back)
	}
}

func TestGBKRejectsFourByteRegion(t *testing.T) {
	// GB18030 encodes U+10FFFF via the four-byte range; GBK must refuse it.
	_, err := GBK.Encode("\U0010FFFF", EncoderTrapStrict{})
	if err == nil {
		t.Fatalf("expected GBK to reject a four-byte-only scalar")
	}
}

func TestGB18030EuroDecodesInFourByteVariant(t *testing.T) {
	// Per spec §4.7's S0 transition, 0x80 always emits U+20AC regardless of
	// which variant is decoding; GB18030 does not special-case it away.
	s, err := GB18030.Decode([]byte{0x80}, DecoderTrapStrict{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s != "€" {
		t.Fatalf("got %q want €", s)
	}
}

func TestGB18030SplitAcrossFeeds(t *testing.T) {
	want := []byte{0xE3, 0x32, 0x9A, 0x35} // U+10FFFF
	dec := GB18030.NewRawDecoder()
	sink := NewStringBuffer(0)
	for i, b := range want {
		if _, err := dec.Feed([]byte{b}, sink); err != nil {
			t.Fatalf("byte %d: %v", i, err)
		}
	}
	if err := dec.Finish(sink); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if sink.String() != "\U0010FFFF" {
		t.Fatalf("got %q want U+10FFFF", sink.String())
	}
}

func TestGB18030InvalidFourByteSequenceBacksUpToLead(t *testing.T) {
	// b3 out of the 0x81-0xFE range: spec §4.7 says back up 2 bytes from
	// the point of failure, landing right after the lead byte.
	dec := GB18030.NewRawDecoder()
	sink := NewStringBuffer(0)
	consumed, err := dec.Feed([]byte{0x81, 0x30, 0x20, 0x30}, sink)
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
