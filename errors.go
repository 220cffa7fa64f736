// Implements the error taxonomy for AES-SIV (RFC 5297): construction-time
// configuration errors, key and input validation errors, and the
// open-time invalid-length / unauthentic distinction.
//
// MIT Licensed.

package aessiv

import (
	"errors"
	"fmt"
)

// Kind classifies why a SivContext construction or Seal/Open call failed.
type Kind int

const (
	// KindConfiguration means the block-cipher factory produced a cipher
	// whose block size isn't 16 bytes. Only returned from New.
	KindConfiguration Kind = iota
	// KindInvalidKey means the underlying cipher or CMAC engine rejected
	// the supplied mac_key or ctr_key length.
	KindInvalidKey
	// KindInvalidInput means the plaintext was too large or the AD
	// vector carried more than 126 elements.
	KindInvalidInput
	// KindInvalidLength means Open was called with fewer than 16 bytes.
	KindInvalidLength
	// KindUnauthentic means the constant-time tag compare in Open failed.
	KindUnauthentic
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInvalidKey:
		return "invalid-key"
	case KindInvalidInput:
		return "invalid-input"
	case KindInvalidLength:
		return "invalid-length"
	case KindUnauthentic:
		return "unauthentic"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by this package. Callers branch
// on Kind via errors.Is against the sentinel ErrXxx values below; Err carries
// the underlying cause when one exists (e.g. the cipher's own key-length
// complaint).
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("aessiv: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("aessiv: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's Kind, so that
// errors.Is(err, ErrUnauthentic) works without exposing *Error fields.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons. Only Kind is compared; Err is ignored.
var (
	ErrConfiguration = &Error{Kind: KindConfiguration}
	ErrInvalidKey    = &Error{Kind: KindInvalidKey}
	ErrInvalidInput  = &Error{Kind: KindInvalidInput}
	ErrInvalidLength = &Error{Kind: KindInvalidLength}
	ErrUnauthentic   = &Error{Kind: KindUnauthentic}
)

func newErr(kind Kind, cause error) error {
	return &Error{Kind: kind, Err: cause}
}

// maxAssociatedData is the RFC 5297 S2V limit: the construction chains one
// dbl per AD element and loses security margin beyond the cipher's block
// size in bits.
const maxAssociatedData = 126

var errTooManyAD = errors.New("more than 126 associated-data elements")
