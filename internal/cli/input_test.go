package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvocation_TermsAreNotFlags(t *testing.T) {
	inv, err := ParseInvocation([]string{"-x", "-", "1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-x", "-", "1"}, inv.Terms)
	assert.False(t, inv.Help)

	inv, err = ParseInvocation([]string{"-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-1"}, inv.Terms)
}

func TestParseInvocation_LeadingFlags(t *testing.T) {
	inv, err := ParseInvocation([]string{"-v", "--json", "-history", "runs.db", "-metrics", "X^2", "-", "1"})
	require.NoError(t, err)
	assert.True(t, inv.Verbose)
	assert.True(t, inv.JSON)
	assert.True(t, inv.Metrics)
	assert.Equal(t, "runs.db", inv.HistoryPath)
	assert.Equal(t, []string{"X^2", "-", "1"}, inv.Terms)

	inv, err = ParseInvocation([]string{"-history=a.db", "-list=3"})
	require.NoError(t, err)
	assert.Equal(t, "a.db", inv.HistoryPath)
	assert.Equal(t, 3, inv.List)
	assert.Empty(t, inv.Terms)
}

func TestParseInvocation_DoubleDash(t *testing.T) {
	inv, err := ParseInvocation([]string{"-v", "--", "-v"})
	require.NoError(t, err)
	assert.True(t, inv.Verbose)
	assert.Equal(t, []string{"-v"}, inv.Terms)
}

func TestParseInvocation_Help(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}, {"X^2", "-h"}} {
		inv, err := ParseInvocation(args)
		require.NoError(t, err, args)
		assert.True(t, inv.Help, args)
	}
}

func TestParseInvocation_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"-list", "abc"},
		{"-list", "-2", "-history", "a.db"},
		{"-list", "2"},
	} {
		_, err := ParseInvocation(args)
		require.Error(t, err, args)
		assert.Equal(t, ExitInvalidInvocation, ExitCode(err), args)
	}
	assert.Equal(t, ExitSuccess, ExitCode(nil))
}
