// SPDX-License-Identifier: MIT

package notation

import "errors"

var (
	// ErrBadCoefficient indicates a complex literal that cannot be parsed.
	ErrBadCoefficient = errors.New("notation: failed to get the term coefficients")

	// ErrInvalidPower indicates a malformed power suffix on an X term.
	ErrInvalidPower = errors.New("notation: invalid power")
)
