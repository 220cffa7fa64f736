// Package hexdata provides a byte-slice wrapper that marshals to and from
// hex text, for use by the RFC 5297 test-vector fixtures in internal/testvector.
//
// Adapted from the teacher's base64data.Base64Data: same MarshalText /
// UnmarshalText / Debug_hex shape, hex instead of base64 since RFC 5297
// Appendix A publishes its vectors in hex, not base64.
package hexdata

import (
	"encoding/hex"
	"fmt"

	tr "github.com/pschlump/godebug"
)

// HexData extends the JSON marshal/unmarshal interface to support hex data.
type HexData []byte

// MarshalText implements encoding.TextMarshaler - convert to hex on output.
func (b HexData) MarshalText() ([]byte, error) {
	text := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(text, b)
	return text, nil
}

// UnmarshalText implements encoding.TextUnmarshaler - convert from hex to byte.
func (b *HexData) UnmarshalText(text []byte) error {
	if n := hex.DecodedLen(len(text)); cap(*b) < n {
		*b = make([]byte, n)
	}
	n, err := hex.Decode(*b, text)
	*b = (*b)[:n]
	return err
}

func (b HexData) ConvToString() string {
	text := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(text, b)
	return string(text)
}

func (b *HexData) CopyIn(text []byte) {
	if n := hex.DecodedLen(len(text)); cap(*b) < n {
		*b = make([]byte, n)
	}
	n, err := hex.Decode(*b, text)
	if err != nil {
		n = 0
	}
	*b = (*b)[:n]
}

func (b HexData) IsEmpty() bool {
	return len(b) == 0
}

// Debug_hex prints the vector under test when db is true, tagged with the
// call site, matching the teacher's Debug_hex.
func (b HexData) Debug_hex(db bool, name string) {
	if db {
		fmt.Printf("%s: len=%d, 0x%x = %q, %s\n", name, len(b), []byte(b), b.ConvToString(), tr.LF(2))
	}
}
