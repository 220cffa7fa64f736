// Package aessiv implements Synthetic Initialization Vector (SIV) mode, RFC
// 5297, over a 128-bit block cipher: deterministic authenticated encryption
// with associated data. Seal is a pure function of its inputs; Open detects
// any tampering with the synthetic IV, the ciphertext, or any
// associated-data element.
//
// The package depends on two external collaborators per spec.md §6: a
// BlockCipherFactory (crypto/aes by default) and github.com/chmike/cmac-go
// for RFC 4493 CMAC. Neither key material nor any intermediate buffer is
// retained past the call that produced it; callers sensitive to residual
// key material should wipe ctr_key/mac_key themselves once Seal/Open
// returns.
//
// Grounded on the teacher's CCMType / NewCCM / Seal / Open shape (ccm.go):
// a constructor that validates the cipher once, and a pair of envelope
// methods that tag-then-encrypt and verify-then-decrypt.
//
// MIT Licensed.
package aessiv

import "crypto/subtle"

// SivContext is configured with a block-cipher factory and exposes the
// Seal/Open envelope (spec.md §4.F). It is safe for concurrent use: the
// only state held per call is a freshly keyed cipher.Block, never shared
// across goroutines (spec.md §5).
type SivContext struct {
	factory BlockCipherFactory
}

// New validates factory and returns a SivContext. Construction fails with
// KindConfiguration if factory's block size isn't 16 bytes — RFC 5297 is
// only defined over a 128-bit block cipher.
func New(factory BlockCipherFactory) (*SivContext, error) {
	if factory == nil {
		factory = AESFactory{}
	}
	if factory.BlockSize() != blockSize {
		return nil, newErr(KindConfiguration, nil)
	}
	return &SivContext{factory: factory}, nil
}

// Overhead is the number of bytes Seal adds to the plaintext: the 16-byte
// synthetic IV.
func (s *SivContext) Overhead() int { return blockSize }

// MaxLength is the largest plaintext Seal will accept.
func (s *SivContext) MaxLength() int {
	const maxInt = int(^uint(0) >> 1)
	return maxInt - blockSize
}

// Seal computes the synthetic IV over (macKey, pt, ad...) and returns
// iv‖ct, where ct is pt XORed with the CTR keystream seeded by iv. ad
// elements are order-significant: Seal(..., a, b) != Seal(..., b, a).
//
// ctrKey and macKey must be valid key lengths for the configured
// BlockCipherFactory (16/24/32 bytes for AES). len(ad) must not exceed 126.
func (s *SivContext) Seal(ctrKey, macKey, pt []byte, ad ...[]byte) ([]byte, error) {
	if len(pt) > s.MaxLength() {
		return nil, newErr(KindInvalidInput, nil)
	}
	if len(ad) > maxAssociatedData {
		return nil, newErr(KindInvalidInput, errTooManyAD)
	}

	iv, err := s2v(s.factory, macKey, pt, ad)
	if err != nil {
		return nil, err
	}

	nb := numBlocks(len(pt))
	ks, err := keystream(s.factory, ctrKey, iv, nb)
	if err != nil {
		return nil, err
	}

	out := make([]byte, blockSize+len(pt))
	copy(out, iv)
	ct := out[blockSize:]
	for i := range pt {
		ct[i] = pt[i] ^ ks[i]
	}
	return out, nil
}

// Open splits in into iv‖ct, recovers the plaintext via the CTR keystream,
// recomputes the synthetic IV over the recovered plaintext and ad, and
// compares it to iv in constant time. It returns KindInvalidLength if in is
// shorter than 16 bytes, and KindUnauthentic — with no plaintext bytes
// returned — if the comparison fails.
func (s *SivContext) Open(ctrKey, macKey, in []byte, ad ...[]byte) ([]byte, error) {
	if len(in) < blockSize {
		return nil, newErr(KindInvalidLength, nil)
	}
	if len(ad) > maxAssociatedData {
		return nil, newErr(KindInvalidInput, errTooManyAD)
	}

	iv, ct := in[:blockSize], in[blockSize:]

	nb := numBlocks(len(ct))
	ks, err := keystream(s.factory, ctrKey, iv, nb)
	if err != nil {
		return nil, err
	}

	pt := make([]byte, len(ct))
	for i := range ct {
		pt[i] = ct[i] ^ ks[i]
	}

	ivPrime, err := s2v(s.factory, macKey, pt, ad)
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare(iv, ivPrime) != 1 {
		return nil, newErr(KindUnauthentic, nil)
	}
	return pt, nil
}

// numBlocks returns ceil(n/16), the number of keystream blocks needed for
// an n-byte plaintext or ciphertext.
func numBlocks(n int) int {
	return (n + blockSize - 1) / blockSize
}
