// SPDX-License-Identifier: MIT

package rootfind

import (
	"strings"

	"github.com/katalvlaran/polyroots/complexnum"
)

// FormatRoots renders a root set as "{ r1, r2, ... }", or "{}" when empty.
func FormatRoots(roots []complexnum.Complex) string {
	if len(roots) == 0 {
		return "{}"
	}
	parts := make([]string, len(roots))
	for i, r := range roots {
		parts[i] = r.String()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
