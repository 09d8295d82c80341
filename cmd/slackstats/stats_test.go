package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTopN(t *testing.T) {
	// unset flag falls back to config
	assert.Equal(t, 20, resolveTopN(-1, 20))
	// explicit 0 requests the full leaderboard
	assert.Equal(t, 0, resolveTopN(0, 20))
	assert.Equal(t, 5, resolveTopN(5, 20))
}

func TestStatsTopFlagDefaultIsUnset(t *testing.T) {
	flag := statsCmd().Flags().Lookup("top")
	require.NotNil(t, flag)
	assert.Equal(t, "-1", flag.DefValue)
}
