package encoding

import "testing"

func TestBig5RoundTripKanji(t *testing.T) {
	got, err := Big5.Encode("一", EncoderTrapStrict{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := Big5.Decode(got, DecoderTrapStrict{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back != "一" {
		t.Fatalf("got %q want 一", back)
	}
}

func TestBig5HKSCSTwoScalarBothSpecialPointers(t *testing.T) {
	cases := []struct {
		bytes []byte
		want  string
	}{
		{[]byte{0x88, 0x62}, "Ê̄"},
		{[]byte{0x88, 0x64}, "Ê̌"},
	}
	for _, c := range cases {
		s, err := Big5.Decode(c.bytes, DecoderTrapStrict{})
		if err != nil {
			t.Fatalf("decode % X: %v", c.bytes, err)
		}
		if s != c.want {
			t.Fatalf("decode % X: got %q want %q", c.bytes, s, c.want)
		}
	}
}

func TestBig5InvalidLowTrailBacksUp(t *testing.T) {
	// trail below 0x40 has its high bit clear and fails big5Pointer's
	// syntactic check; spec §4.9 backs it up rather than consuming it.
	dec := Big5.NewRawDecoder()
	sink := NewStringBuffer(0)
	consumed, err := dec.Feed([]byte{0x81, 0x20}, sink)
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

func TestBig5InvalidHighTrailConsumed(t *testing.T) {
	// trail with the high bit set that still fails the syntactic check is
	// consumed along with the lead (spec §4.9's MSB rule).
	dec := Big5.NewRawDecoder()
	sink := NewStringBuffer(0)
	consumed, err := dec.Feed([]byte{0x81, 0xFF}, sink)
	if err == nil {
		t.Fatalf("expected error")
	}
	if consumed != 0 {
		t.Fatalf("consumed: got %d want 0", consumed)
	}
	if err.Upto != 2 {
		t.Fatalf("upto: got %d want 2", err.Upto)
	}
}
