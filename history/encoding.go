// SPDX-License-Identifier: MIT

package history

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/katalvlaran/polyroots/complexnum"
)

// encodeComplex packs values as (re, im) little-endian float64 pairs.
func encodeComplex(vals []complexnum.Complex) []byte {
	if len(vals) == 0 {
		return nil
	}
	b := make([]byte, len(vals)*16)
	for i, v := range vals {
		binary.LittleEndian.PutUint64(b[i*16:], math.Float64bits(v.Re))
		binary.LittleEndian.PutUint64(b[i*16+8:], math.Float64bits(v.Im))
	}
	return b
}

// decodeComplex reverses encodeComplex.
func decodeComplex(b []byte) ([]complexnum.Complex, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%16 != 0 {
		return nil, fmt.Errorf("history: invalid complex blob length %d (not multiple of 16)", len(b))
	}
	out := make([]complexnum.Complex, len(b)/16)
	for i := range out {
		out[i] = complexnum.New(
			math.Float64frombits(binary.LittleEndian.Uint64(b[i*16:])),
			math.Float64frombits(binary.LittleEndian.Uint64(b[i*16+8:])),
		)
	}
	return out, nil
}
