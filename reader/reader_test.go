package reader

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCompression(t *testing.T) {
	tests := map[string]string{
		"data.tsv":     "",
		"data.tsv.gz":  "gzip",
		"data.gzip":    "gzip",
		"data.csv.bz2": "bzip2",
		"data.tsv.zst": "zstd",
		"data.zstd":    "zstd",
	}

	for name, want := range tests {
		if got := DetectCompression(name); got != want {
			t.Errorf("DetectCompression(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv")
	require.NoError(t, os.WriteFile(path, []byte("a\tb\n"), 0o644))

	r, err := Open(path, "")
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\n", string(data))
	assert.Equal(t, "", r.Compression)
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv.gz")

	f, err := os.Create(path)
	require.NoError(t, err)

	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("a\tb\n1\t2\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	r, err := Open(path, "")
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\n1\t2\n", string(data))
	assert.Equal(t, "gzip", r.Compression)
}

func TestOpenZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv.zst")

	f, err := os.Create(path)
	require.NoError(t, err)

	zw, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zw.Write([]byte("x\ty\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	r, err := Open(path, "")
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "x\ty\n", string(data))
	assert.Equal(t, "zstd", r.Compression)
}

func TestOpenUnknownCompression(t *testing.T) {
	_, err := Open("data.tsv", "lzma")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown compression")
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.tsv"), "")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
