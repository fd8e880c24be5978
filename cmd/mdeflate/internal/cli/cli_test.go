package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	compressedPath := filepath.Join(dir, "out.mdf")
	outPath := filepath.Join(dir, "out.txt")

	want := []byte("the quick brown fox jumps over the lazy dog, repeatedly, " +
		"the quick brown fox jumps over the lazy dog")
	require.NoError(t, os.WriteFile(inPath, want, 0o644))

	require.NoError(t, runCompress(inPath, compressedPath))
	require.NoError(t, runDecompress(compressedPath, outPath, 0))

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRunCompressMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := runCompress(filepath.Join(dir, "does-not-exist"), filepath.Join(dir, "out.mdf"))
	require.Error(t, err)
}

func TestRunDecompressMaxBlocksRejectsOverLimit(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	compressedPath := filepath.Join(dir, "out.mdf")
	outPath := filepath.Join(dir, "out.txt")

	want := make([]byte, 64*1024)
	require.NoError(t, os.WriteFile(inPath, want, 0o644))

	require.NoError(t, runCompress(inPath, compressedPath))
	require.Error(t, runDecompress(compressedPath, outPath, 1))
}
