package analyze

import (
	"fmt"
	"strings"
)

// File is an immutable snapshot of one loaded delimited-text file. All
// derived views (Info, Columns, Preview, Stats) are computed on demand
// from the row set and never mutate it, so concurrent reads are safe.
type File struct {
	// Path is the absolute path the file was read from.
	Path string `json:"file_path"`

	// SizeBytes is the file size at read time.
	SizeBytes int64 `json:"file_size"`

	// Encoding and Delimiter are the decode/split parameters used.
	Encoding  string `json:"encoding"`
	Delimiter byte   `json:"-"`

	// HasHeader reports whether the first line was consumed as the header.
	HasHeader bool `json:"has_header"`

	// Header holds the column names, either from the first line or
	// synthesized as col_1..col_N.
	Header []string `json:"header"`

	// Rows holds the data rows, header excluded.
	Rows [][]string `json:"rows"`
}

// Info is the basic file information record.
type Info struct {
	Path      string `json:"file_path"`
	SizeBytes int64  `json:"file_size"`
	TotalRows int    `json:"total_rows"`
	DataRows  int    `json:"data_rows"`
	Columns   int    `json:"columns"`
	HasHeader bool   `json:"has_header"`
	Delimiter string `json:"delimiter"`
	Encoding  string `json:"encoding"`
}

// NewFile splits decoded text into a File snapshot. Lines are separated
// with universal newline handling and cells by the single-byte literal
// delimiter, with no quoting or escaping: an embedded delimiter inside
// a field is always a field separator.
//
// Rows shorter than the header are padded with empty cells. Rows longer
// than the header keep their extra cells; they show up in raw rows and
// previews but are outside the profiled column range.
func NewFile(path string, size int64, encoding string, delimiter byte, hasHeader bool, text string) *File {
	f := &File{
		Path:      path,
		SizeBytes: size,
		Encoding:  encoding,
		Delimiter: delimiter,
		HasHeader: hasHeader,
	}

	lines := splitLines(text)

	if len(lines) == 0 {
		f.Header = []string{}
		f.Rows = [][]string{}
		return f
	}

	sep := string(delimiter)

	records := make([][]string, len(lines))
	for i, line := range lines {
		records[i] = strings.Split(line, sep)
	}

	if hasHeader {
		f.Header = records[0]
		f.Rows = records[1:]
	} else {
		f.Header = make([]string, len(records[0]))
		for i := range f.Header {
			f.Header[i] = fmt.Sprintf("col_%d", i+1)
		}
		f.Rows = records
	}

	// Pad short rows up to the header width.
	for i, row := range f.Rows {
		for len(row) < len(f.Header) {
			row = append(row, "")
		}
		f.Rows[i] = row
	}

	return f
}

// splitLines breaks text into lines, treating \r\n, \r and \n all as
// line terminators. A trailing terminator does not produce a final
// empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}

// cell returns the trimmed value at the given column index. Cells are
// whitespace-trimmed before any emptiness, type, or uniqueness check.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// Info returns the basic file information record.
func (f *File) Info() Info {
	total := len(f.Rows)
	if f.HasHeader && len(f.Header) > 0 {
		total++
	}

	return Info{
		Path:      f.Path,
		SizeBytes: f.SizeBytes,
		TotalRows: total,
		DataRows:  len(f.Rows),
		Columns:   len(f.Header),
		HasHeader: f.HasHeader,
		Delimiter: fmt.Sprintf("%q", string(f.Delimiter)),
		Encoding:  f.Encoding,
	}
}

// Headers returns the ordered column names.
func (f *File) Headers() []string {
	return f.Header
}

// Preview returns the first n rows. When the file has a header, the
// header row is included first and counts toward n. Requests beyond the
// available rows return everything without error.
func (f *File) Preview(n int) [][]string {
	if n <= 0 {
		return [][]string{}
	}

	var out [][]string

	if f.HasHeader && len(f.Header) > 0 {
		out = append(out, f.Header)
		n--
	}

	if n > len(f.Rows) {
		n = len(f.Rows)
	}

	return append(out, f.Rows[:n]...)
}
