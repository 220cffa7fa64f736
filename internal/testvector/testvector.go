// Package testvector loads the RFC 5297 Appendix A known-answer vectors used
// by the package-level KAT tests.
//
// Adapted from the teacher's sjcl.go, which reads an SJCL-formatted JSON blob
// (iv/mode/cipher/adata/ct fields tied to CCM) with github.com/pschlump/json.
// RFC 5297 has no SJCL analog, so the blob shape here is specific to SIV: an
// ordered associated-data vector, a mac_key/ctr_key pair, and the expected
// iv‖ciphertext output, all hex-encoded via internal/hexdata.
package testvector

import (
	_ "embed"
	"fmt"

	"github.com/pschlump/json"

	"github.com/pschlump/aessiv/internal/hexdata"
)

//go:embed vectors.json
var vectorsJSON []byte

// Vector is one RFC 5297 known-answer test case.
type Vector struct {
	Name      string            `json:"name"`
	MacKey    hexdata.HexData   `json:"mac_key"`
	CtrKey    hexdata.HexData   `json:"ctr_key"`
	AD        []hexdata.HexData `json:"ad"`
	Plaintext hexdata.HexData   `json:"plaintext"`
	Expected  hexdata.HexData   `json:"expected"`
}

// Load parses the embedded RFC 5297 Appendix A vectors.
func Load() ([]Vector, error) {
	var vectors []Vector
	if err := json.Unmarshal(vectorsJSON, &vectors); err != nil {
		return nil, fmt.Errorf("testvector: decode vectors.json: %w", err)
	}
	return vectors, nil
}

// ADBytes flattens the AD vector into [][]byte for the public API, which
// takes a variadic []byte associated-data vector rather than hexdata.HexData.
func (v Vector) ADBytes() [][]byte {
	ad := make([][]byte, len(v.AD))
	for i, a := range v.AD {
		ad[i] = []byte(a)
	}
	return ad
}
