package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/partbench/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_WritesBothFiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "graph.txt")
	args := []string{
		"-vertices", "30",
		"-resources", "1",
		"-partitions", "2",
		"-ratios", "0.6,0.4",
		"-util-rates", "0.8,0.7",
		"-seed", "5",
		"-output", graphPath,
	}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	require.FileExists(t, graphPath)
	require.FileExists(t, filepath.Join(dir, "graph_part.txt"))
	require.NoFileExists(t, filepath.Join(dir, "graph.svg"), "30 vertices is above the render limit")

	part, err := os.ReadFile(filepath.Join(dir, "graph_part.txt"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(part)), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "2", lines[0])
	require.Equal(t, "2", lines[1])

	require.Contains(t, out.String(), "Graph Summary:")
	require.Contains(t, errOut.String(), "Graph file saved.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ZeroRateRejectedBeforeWriting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{
		"-vertices", "10",
		"-partitions", "1",
		"-ratios", "1",
		"-util-rates", "0",
		"-output", filepath.Join(dir, "graph.txt"),
	})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
