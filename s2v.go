// S2V (String-to-Vector), RFC 5297 §2.4: chains a MAC key, an ordered
// associated-data vector, and a plaintext into a single 16-byte synthetic
// IV, by way of CMAC-AES and the GF(2^128) doubling in bits.go.
//
// Grounded on the s2v() helper retrieved alongside this package (stripe's
// siv.go), restated over github.com/chmike/cmac-go instead of a hand-rolled
// CBC-MAC, and on the teacher's CBC-MAC chaining loop in
// calculateCcmTag (ccm.go) for the "walk an ordered header vector, folding
// each element into a running MAC" shape.
//
// MIT Licensed.

package aessiv

import (
	"hash"

	"github.com/chmike/cmac-go"
)

// s2v computes the RFC 5297 S2V tag over macKey, the ordered associated-data
// vector ad, and the final plaintext pt. len(ad) must be <= maxAssociatedData;
// callers validate that at the public boundary (Seal/Open), not here.
func s2v(factory BlockCipherFactory, macKey []byte, pt []byte, ad [][]byte) ([]byte, error) {
	mac, err := newCMAC(factory, macKey)
	if err != nil {
		return nil, err
	}

	zero := make([]byte, blockSize)
	d, err := macSum(mac, zero)
	if err != nil {
		return nil, err
	}

	for _, a := range ad {
		dbl(d)
		m, err := macSum(mac, a)
		if err != nil {
			return nil, err
		}
		d = xor(d, m)
	}

	var t []byte
	if len(pt) >= blockSize {
		t = xorend(pt, d)
	} else {
		dbl(d)
		t = xor(pad(pt), d)
	}

	return macSum(mac, t)
}

// newCMAC constructs a fresh RFC 4493 CMAC engine over factory, keyed with
// macKey. A fresh hash.Hash is produced per s2v call (and per element sum,
// via Reset) rather than reused across concurrent calls, matching spec.md §5.
func newCMAC(factory BlockCipherFactory, macKey []byte) (hash.Hash, error) {
	h, err := cmac.New(factory.New, macKey)
	if err != nil {
		return nil, newErr(KindInvalidKey, err)
	}
	return h, nil
}

// macSum resets mac, writes data, and returns the 16-byte CMAC tag, leaving
// mac ready for the next element.
func macSum(mac hash.Hash, data []byte) ([]byte, error) {
	mac.Reset()
	if _, err := mac.Write(data); err != nil {
		return nil, newErr(KindInvalidInput, err)
	}
	return mac.Sum(nil), nil
}
