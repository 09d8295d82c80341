package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDirMissingRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope")

	line := checkDir("Archive", path)
	assert.Contains(t, line, path)
	assert.Contains(t, line, "NOT FOUND")
}

func TestCheckDirOK(t *testing.T) {
	line := checkDir("Archive", t.TempDir())
	assert.Contains(t, line, "(ok)")
}

func TestCheckDirNotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	line := checkDir("Archive", path)
	assert.Contains(t, line, "not a directory")
}
