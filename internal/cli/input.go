// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
)

const (
	ExitSuccess           = 0
	ExitParseFailure      = 1
	ExitInvalidInvocation = 2
	ExitInternalError     = 3
)

// HelpText is printed for -h.
const HelpText = `Standard notation: X^5 + 4X^4 + 3iX^3 - 2+3ix^2 + (i+3)x^2 - x + 1
Clumped variables act as if they are in a parenthesis, and as such, they are optional`

// Invocation is the parsed command line.
type Invocation struct {
	Help        bool
	Verbose     bool
	JSON        bool
	Metrics     bool
	HistoryPath string
	List        int
	Terms       []string
}

// InvocationError carries the exit code for a rejected command line.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error returned by ParseInvocation to an exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var invErr *InvocationError
	if errors.As(err, &invErr) {
		return invErr.ExitCode
	}
	return ExitInternalError
}

// valueFlags take an argument; boolFlags do not.
var (
	valueFlags = []string{"history", "list"}
	boolFlags  = []string{"h", "help", "v", "json", "metrics"}
)

// ParseInvocation parses leading flags and keeps everything after them as
// polynomial terms. Flag parsing stops at the first token that is not a
// known flag, so terms such as "-1", "-x" or a lone "-" are never taken
// for flags. A "-h" among the terms still requests help.
func ParseInvocation(args []string) (Invocation, error) {
	flagArgs, terms := splitArgs(args)

	fs := flag.NewFlagSet("polyroots", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	var inv Invocation
	var help bool
	fs.BoolVar(&inv.Help, "h", false, "Print the notation help.")
	fs.BoolVar(&help, "help", false, "Print the notation help.")
	fs.BoolVar(&inv.Verbose, "v", false, "Log every round to stderr.")
	fs.BoolVar(&inv.JSON, "json", false, "Print the result as JSON.")
	fs.BoolVar(&inv.Metrics, "metrics", false, "Print run counters after the report.")
	fs.StringVar(&inv.HistoryPath, "history", "", "SQLite journal to record runs in.")
	fs.IntVar(&inv.List, "list", 0, "Print the N most recent journaled runs (needs -history).")

	if err := fs.Parse(flagArgs); err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected arguments: %q", strings.Join(fs.Args(), " "))
	}
	if inv.List < 0 {
		return Invocation{}, invalidInvocationf("-list must be >= 0 (got %d)", inv.List)
	}
	if inv.List > 0 && inv.HistoryPath == "" {
		return Invocation{}, invalidInvocationf("-list requires -history")
	}

	inv.Help = inv.Help || help || slices.Contains(terms, "-h")
	inv.Terms = terms
	return inv, nil
}

// splitArgs separates the leading known flags from the terms.
func splitArgs(args []string) (flags, terms []string) {
	i := 0
	for i < len(args) {
		a := args[i]
		if a == "--" {
			i++
			break
		}
		name, inline := flagName(a)
		switch {
		case slices.Contains(boolFlags, name):
			flags = append(flags, a)
		case slices.Contains(valueFlags, name):
			flags = append(flags, a)
			if !inline && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			return flags, args[i:]
		}
		i++
	}
	return flags, args[i:]
}

// flagName returns the flag name of a token like "-v", "--json" or
// "-history=x.db", and whether the value is inline. Non-flags yield "".
func flagName(a string) (string, bool) {
	if len(a) < 2 || a[0] != '-' {
		return "", false
	}
	name := strings.TrimPrefix(a[1:], "-")
	name, _, inline := strings.Cut(name, "=")
	return name, inline
}
