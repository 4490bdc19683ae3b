package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homier/wordprobe"
)

func TestRun_InputWords(t *testing.T) {
	stdin := bytes.NewBufferString("alpha beta gamma\n")
	var stdout bytes.Buffer

	require.NoError(t, run(stdin, &stdout, []string{"--capacity", "50"}))

	out := stdout.String()
	assert.Contains(t, out, "Inserted 3 words from input.")
	assert.Contains(t, out, "Different words from input via hash:")

	// One result line per input word, whatever the outcome.
	_, results, found := strings.Cut(out, "Different words from input via hash:\n")
	require.True(t, found)
	assert.Len(t, strings.Split(strings.TrimRight(results, "\n"), "\n"), 3)
}

func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("one two three two one\n"), 0o644))

	stdin := bytes.NewBufferString("one\n")
	var stdout bytes.Buffer

	require.NoError(t, run(stdin, &stdout, []string{"--capacity", "50", "--file", path}))

	out := stdout.String()
	assert.Contains(t, out, "Inserted 1 words from input.")
	assert.Contains(t, out, "Inserted 5 words from "+path+" (duplicates ignored).")
}

func TestRun_CapacityTooSmall(t *testing.T) {
	stdin := bytes.NewBufferString("a\n")
	var stdout bytes.Buffer

	err := run(stdin, &stdout, []string{"--capacity", "1"})
	require.ErrorIs(t, err, wordprobe.ErrCapacityTooSmall)
}

func TestRun_MissingFile(t *testing.T) {
	stdin := bytes.NewBufferString("a\n")
	var stdout bytes.Buffer

	err := run(stdin, &stdout, []string{"--file", filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
}

func TestRun_EmptyInput(t *testing.T) {
	var stdout bytes.Buffer

	require.NoError(t, run(bytes.NewBufferString("\n"), &stdout, nil))
	assert.Contains(t, stdout.String(), "Inserted 0 words from input.")
}
