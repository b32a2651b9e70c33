// SPDX-License-Identifier: MIT

// Command polyroots approximates every root of a complex polynomial given
// as a sequence of terms:
//
//	polyroots X^3 - 6x^2 + 11x - 6
//	polyroots -json -history runs.db X^2 + 1
package main

import (
	"context"
	"os"

	"github.com/katalvlaran/polyroots/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
