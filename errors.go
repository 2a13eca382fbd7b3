package tsvinfo

import "fmt"

// FileNotFoundError indicates the path does not resolve to a readable
// file.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// PermissionError indicates the file exists but cannot be read.
type PermissionError struct {
	Path string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s", e.Path)
}

// EncodingError indicates the byte stream could not be decoded under
// the requested encoding.
type EncodingError struct {
	Path     string
	Encoding string
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot decode %s as %s: %s", e.Path, e.Encoding, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// FileTooLargeError indicates the file exceeds the configured size
// limit for memory-resident analysis.
type FileTooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file too large: %s is %d bytes, limit is %d", e.Path, e.Size, e.Limit)
}
