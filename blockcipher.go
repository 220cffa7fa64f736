// Block-cipher adapter (spec.md §4.A, §6): a narrow factory interface that
// yields encrypt-direction single-block cipher.Block instances.
//
// Grounded on the teacher's direct use of crypto/aes.NewCipher and
// cipher.Block (ccm.go's CCMType.blk field, NewCCM's block-size check).
//
// MIT Licensed.

package aessiv

import (
	"crypto/aes"
	"crypto/cipher"
)

// blockSize is the only block size this package supports: RFC 5297 is
// defined over a 128-bit block cipher.
const blockSize = 16

// BlockCipherFactory yields fresh, keyed encrypt-direction block ciphers.
// It has the same shape as crypto/aes.NewCipher so it can be handed
// directly to github.com/chmike/cmac-go's cmac.New.
type BlockCipherFactory interface {
	// New rekeys and returns a fresh cipher.Block. Implementations must
	// not retain the key past this call.
	New(key []byte) (cipher.Block, error)
	// BlockSize reports the cipher's block size in bytes. SivContext
	// construction fails unless this is exactly 16.
	BlockSize() int
}

// AESFactory is the default BlockCipherFactory, backed by crypto/aes.
type AESFactory struct{}

// New implements BlockCipherFactory.
func (AESFactory) New(key []byte) (cipher.Block, error) {
	return aes.NewCipher(key)
}

// BlockSize implements BlockCipherFactory.
func (AESFactory) BlockSize() int { return aes.BlockSize }
