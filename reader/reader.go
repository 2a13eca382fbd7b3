package reader

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// Decompress takes a compression type and a reader and returns a
// reader that will be decompressed if the type is supported.
func Decompress(t string, r io.Reader) (io.Reader, error) {
	if t == "" {
		return r, nil
	}

	switch t {
	case "gzip", "gz":
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return gr, nil

	case "bz2", "bzip2":
		return bzip2.NewReader(r), nil

	case "zst", "zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	}

	return nil, fmt.Errorf("compression type not supported: %s", t)
}

// DetectCompression detects the compression type by the file path
// extension.
func DetectCompression(name string) string {
	switch filepath.Ext(name) {
	case ".gzip", ".gz":
		return "gzip"
	case ".bzip2", ".bz2":
		return "bzip2"
	case ".zstd", ".zst":
		return "zstd"
	}

	return ""
}

// Reader encapsulates a file or stdin stream with optional
// decompression applied.
type Reader struct {
	Name        string
	Compression string

	reader io.Reader
	decomp io.Closer
	file   *os.File
}

// Read implements the io.Reader interface.
func (r *Reader) Read(buf []byte) (int, error) {
	return r.reader.Read(buf)
}

// Close implements the io.Closer interface. The underlying file handle
// is released regardless of how far reading got.
func (r *Reader) Close() error {
	if r.decomp != nil {
		r.decomp.Close()
	}

	if r.file != nil {
		return r.file.Close()
	}

	return nil
}

// Open a reader by name with optional compression. If the compression
// type is empty it is detected from the file extension. If no name is
// specified, STDIN is used.
func Open(name, compr string) (*Reader, error) {
	r := &Reader{Name: name}

	if compr == "" {
		compr = DetectCompression(name)
	}

	// Validate the compression method before touching files.
	switch compr {
	case "bzip2", "gzip", "zstd", "":
	default:
		return nil, fmt.Errorf("unknown compression type %s", compr)
	}

	if name == "" {
		r.reader = os.Stdin
	} else {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}

		r.file = file
		r.reader = file
	}

	in, err := Decompress(compr, r.reader)
	if err != nil {
		r.Close()
		return nil, err
	}

	if in != r.reader {
		if rc, ok := in.(io.Closer); ok {
			r.decomp = rc
		}
	}

	r.reader = in
	r.Compression = compr

	return r, nil
}
