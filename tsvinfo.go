package tsvinfo

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/chop-dbhi/tsv-info/analyze"
	"github.com/chop-dbhi/tsv-info/reader"
)

// Request describes one analysis of a delimited-text file.
type Request struct {
	// Input path.
	Path string

	// Delimiter is a single-character field separator. Defaults to tab.
	Delimiter string

	// Encoding is the character set of the file. Defaults to utf-8.
	Encoding string

	// Header marks the first line as column names.
	Header bool

	// Compression overrides detection by file extension.
	Compression string

	// MaxSize rejects files larger than this many bytes. Zero means
	// no limit. The whole file is held in memory during analysis.
	MaxSize int64
}

func (r *Request) delimiter() byte {
	if r.Delimiter == "" {
		return '\t'
	}

	return r.Delimiter[0]
}

func (r *Request) encoding() string {
	if r.Encoding == "" {
		return "utf-8"
	}

	return r.Encoding
}

// Load reads, decodes and splits the file named by the request into an
// immutable analyze.File snapshot. The file handle is held only for the
// duration of the call and released on every exit path.
//
// Failures are reported as *FileNotFoundError, *PermissionError,
// *EncodingError or *FileTooLargeError.
func Load(r *Request) (*analyze.File, error) {
	path, err := filepath.Abs(r.Path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, &FileNotFoundError{Path: r.Path}
	case errors.Is(err, fs.ErrPermission):
		return nil, &PermissionError{Path: r.Path}
	case err != nil:
		return nil, err
	case stat.IsDir():
		return nil, &FileNotFoundError{Path: r.Path}
	}

	if r.MaxSize > 0 && stat.Size() > r.MaxSize {
		return nil, &FileTooLargeError{Path: r.Path, Size: stat.Size(), Limit: r.MaxSize}
	}

	in, err := reader.Open(path, r.Compression)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, &PermissionError{Path: r.Path}
		}
		return nil, err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	text, err := reader.Decode(data, r.encoding())
	if err != nil {
		return nil, &EncodingError{Path: r.Path, Encoding: r.encoding(), Err: err}
	}

	return analyze.NewFile(path, stat.Size(), r.encoding(), r.delimiter(), r.Header, text), nil
}
