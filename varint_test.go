package bsdiff

import "testing"

func TestVarint64_RoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 127, -127, 128, -128,
		1<<16 - 1, -(1<<16 - 1),
		1 << 32, -(1 << 32),
		1<<62 - 1, -(1<<62 - 1),
	}

	for _, v := range values {
		buf := encodeVarint64(v)
		if len(buf) != varintSize {
			t.Fatalf("encodeVarint64(%d): length = %d, want %d", v, len(buf), varintSize)
		}

		got := getVarint64(buf)
		if got != v {
			t.Fatalf("round-trip mismatch: encode/decode %d got %d", v, got)
		}
	}
}

func TestVarint64_NegativeZeroDecodesToZero(t *testing.T) {
	buf := make([]byte, varintSize)
	buf[7] = 0x80 // sign bit set, magnitude all zero

	if got := getVarint64(buf); got != 0 {
		t.Fatalf("negative zero decoded to %d, want 0", got)
	}
}

func TestVarint64_EncodeZeroClearsSignBit(t *testing.T) {
	buf := encodeVarint64(0)
	if buf[7]&0x80 != 0 {
		t.Fatalf("encodeVarint64(0) set the sign bit: % x", buf)
	}
}

func TestVarint64_SignBitIndependentOfMagnitude(t *testing.T) {
	pos := encodeVarint64(42)
	neg := encodeVarint64(-42)

	for i := 0; i < 7; i++ {
		if pos[i] != neg[i] {
			t.Fatalf("magnitude bytes differ at index %d: %x vs %x", i, pos[i], neg[i])
		}
	}
	if pos[7]&0x80 != 0 {
		t.Fatal("positive encoding should not set the sign bit")
	}
	if neg[7]&0x80 == 0 {
		t.Fatal("negative encoding should set the sign bit")
	}
}
