// Bit primitives shared by S2V and CMAC-style subkey derivation: xor,
// xorend, ISO/IEC 7816-4 padding, and constant-time GF(2^128) doubling.
//
// Grounded on the dbl/xor/pad/shiftLeft helpers retrieved alongside this
// package (stripe/siv-go's siv.go, luc-lynx/siv's cmac.go), generalized to
// the constant-time carry handling spec.md §4.C and §9 require: dbl must
// not branch on the high bit of block[0].
//
// MIT Licensed.

package aessiv

// xor returns a new slice of length len(a) holding a[i] ^ b[i] for
// i in [0, len(a)). Panics if len(b) < len(a) — the public API validates
// its own inputs; this is an internal precondition, not a defensive check
// (see spec.md §9's Open Question on xor/xorend).
func xor(a, b []byte) []byte {
	if len(b) < len(a) {
		panic("aessiv: xor: len(b) < len(a)")
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// xorend returns a copy of a with its trailing len(b) bytes XORed with b.
// Panics if len(a) < len(b).
func xorend(a, b []byte) []byte {
	if len(a) < len(b) {
		panic("aessiv: xorend: len(a) < len(b)")
	}
	out := make([]byte, len(a))
	copy(out, a)
	off := len(a) - len(b)
	for i := range b {
		out[off+i] ^= b[i]
	}
	return out
}

// pad implements ISO/IEC 7816-4 padding of s to a single 16-byte block:
// s ‖ 0x80 ‖ 0x00*. Requires len(s) < 16.
func pad(s []byte) []byte {
	if len(s) >= blockSize {
		panic("aessiv: pad: input already a full block")
	}
	out := make([]byte, blockSize)
	copy(out, s)
	out[len(s)] = 0x80
	return out
}

// shiftLeft1 shifts block left by one bit, big-endian across the whole
// 16-byte block, in place, and returns the bit shifted out of block[0]'s
// high bit (0 or 1).
func shiftLeft1(block []byte) byte {
	var carry byte
	for i := len(block) - 1; i >= 0; i-- {
		v := block[i]
		block[i] = (v << 1) | carry
		carry = v >> 7
	}
	return carry
}

// dbl performs the GF(2^128) doubling used by CMAC subkey derivation and by
// S2V's AD chaining: shift left one bit, then if a 1 bit was carried out of
// the top, XOR the reduction constant 0x87 into the last byte.
//
// The carry handling is constant-time: shiftLeft1 returns 0 or 1 (never
// branched on by the caller), a two's-complement mask m = 0 - carry is
// computed, and 0x87 & m is XORed into the last byte unconditionally. This
// mirrors spec.md §4.C / §9: never branch on carry.
func dbl(block []byte) {
	carry := shiftLeft1(block)
	mask := 0 - carry // carry is 0 or 1; wraps to 0x00 or 0xff
	block[len(block)-1] ^= 0x87 & mask
}
