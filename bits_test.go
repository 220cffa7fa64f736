package aessiv

import (
	"bytes"
	"crypto/subtle"
	"testing"
)

func TestXor(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03}
	b := []byte{0xff, 0x00, 0x0f, 0xaa}
	got := xor(a, b)
	want := []byte{0xfe, 0x02, 0x0c}
	if !bytes.Equal(got, want) {
		t.Fatalf("xor(%x, %x) = %x, want %x", a, b, got, want)
	}
}

func TestXorend(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03, 0x04}
	b := []byte{0xff, 0xff}
	got := xorend(a, b)
	want := []byte{0x01, 0x02, 0xfc, 0xfb}
	if !bytes.Equal(got, want) {
		t.Fatalf("xorend(%x, %x) = %x, want %x", a, b, got, want)
	}
}

func TestPad(t *testing.T) {
	cases := []struct {
		in   []byte
		want []byte
	}{
		{nil, append([]byte{0x80}, make([]byte, 15)...)},
		{[]byte{0x01, 0x02}, append([]byte{0x01, 0x02, 0x80}, make([]byte, 13)...)},
	}
	for _, c := range cases {
		got := pad(c.in)
		if !bytes.Equal(got, c.want) {
			t.Fatalf("pad(%x) = %x, want %x", c.in, got, c.want)
		}
		if len(got) != blockSize {
			t.Fatalf("pad(%x) length = %d, want %d", c.in, len(got), blockSize)
		}
	}
}

func TestShiftLeft1(t *testing.T) {
	block := []byte{0x80, 0x00, 0x00, 0x01}
	carry := shiftLeft1(block)
	if carry != 1 {
		t.Fatalf("carry = %d, want 1", carry)
	}
	want := []byte{0x00, 0x00, 0x00, 0x02}
	if !bytes.Equal(block, want) {
		t.Fatalf("shiftLeft1 result = %x, want %x", block, want)
	}

	block2 := []byte{0x40, 0x00}
	carry2 := shiftLeft1(block2)
	if carry2 != 0 {
		t.Fatalf("carry = %d, want 0", carry2)
	}
	if !bytes.Equal(block2, []byte{0x80, 0x00}) {
		t.Fatalf("shiftLeft1 result = %x, want 8000", block2)
	}
}

func TestDbl(t *testing.T) {
	// No carry: pure left shift.
	noCarry := make([]byte, blockSize)
	noCarry[0] = 0x40
	dbl(noCarry)
	want := make([]byte, blockSize)
	want[0] = 0x80
	if !bytes.Equal(noCarry, want) {
		t.Fatalf("dbl (no carry) = %x, want %x", noCarry, want)
	}

	// Carry: reduction constant XORed into the last byte.
	carry := make([]byte, blockSize)
	carry[0] = 0x80
	dbl(carry)
	want2 := make([]byte, blockSize)
	want2[blockSize-1] = 0x87
	if !bytes.Equal(carry, want2) {
		t.Fatalf("dbl (carry) = %x, want %x", carry, want2)
	}
}

// TestDblConstantTimeTrace checks that dbl writes the same number of bytes
// and follows the same control flow regardless of the carry bit, per
// spec.md §8 "Constant-time dbl": no branch on carry, only a XOR with a
// computed mask. We can't observe CPU branches from a Go test, but we can
// confirm the implementation never takes a data-dependent early return and
// always touches the last byte, by checking both carry cases mutate
// bytes[:len-1] identically to a plain shift and only byte[len-1] differs
// by the masked constant.
func TestDblConstantTimeTrace(t *testing.T) {
	for _, msb := range []byte{0x00, 0x80} {
		plain := make([]byte, blockSize)
		plain[0] = msb | 0x01
		shiftOnly := append([]byte(nil), plain...)
		shiftLeft1(shiftOnly)

		doubled := append([]byte(nil), plain...)
		dbl(doubled)

		if !bytes.Equal(doubled[:blockSize-1], shiftOnly[:blockSize-1]) {
			t.Fatalf("dbl touched bytes before the last one differently depending on carry: msb=%#x", msb)
		}
		wantLast := shiftOnly[blockSize-1]
		if msb == 0x80 {
			wantLast ^= 0x87
		}
		if doubled[blockSize-1] != wantLast {
			t.Fatalf("dbl last byte = %#x, want %#x (msb=%#x)", doubled[blockSize-1], wantLast, msb)
		}
	}
}

func TestConstantTimeCompareTouchesAllBytes(t *testing.T) {
	// subtle.ConstantTimeCompare is stdlib and already constant-time; this
	// documents the property spec.md §8 requires of Open's tag compare by
	// checking that equal tags compare equal and that a difference in any
	// one of the 16 byte positions is detected, so no byte is skipped.
	a := bytes.Repeat([]byte{0x42}, blockSize)
	b := append([]byte(nil), a...)
	if subtle.ConstantTimeCompare(a, b) != 1 {
		t.Fatal("equal tags compared unequal")
	}
	for i := range b {
		c := append([]byte(nil), a...)
		c[i] ^= 0x01
		if subtle.ConstantTimeCompare(a, c) != 0 {
			t.Fatalf("tags differing in byte %d compared equal", i)
		}
	}
}
