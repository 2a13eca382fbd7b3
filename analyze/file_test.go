package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileHeader(t *testing.T) {
	f := NewFile("/data/x.tsv", 42, "utf-8", '\t', true, "a\tb\tc\n1\t2\t3\n")

	assert.Equal(t, []string{"a", "b", "c"}, f.Header)
	require.Len(t, f.Rows, 1)
	assert.Equal(t, []string{"1", "2", "3"}, f.Rows[0])
}

func TestNewFileNoHeader(t *testing.T) {
	f := NewFile("/data/x.tsv", 0, "utf-8", '\t', false, "1\t2\t3\n4\t5\t6\n7\t8\t9\n")

	assert.Equal(t, []string{"col_1", "col_2", "col_3"}, f.Headers())
	assert.Len(t, f.Rows, 3)

	info := f.Info()
	assert.Equal(t, 3, info.Columns)
	assert.Equal(t, 3, info.TotalRows)
	assert.Equal(t, 3, info.DataRows)
	assert.False(t, info.HasHeader)
}

func TestNewFileEmpty(t *testing.T) {
	f := NewFile("/data/x.tsv", 0, "utf-8", '\t', true, "")

	assert.Empty(t, f.Header)
	assert.Empty(t, f.Rows)

	info := f.Info()
	assert.Equal(t, 0, info.TotalRows)
	assert.Equal(t, 0, info.Columns)
}

func TestNewFileUniversalNewlines(t *testing.T) {
	tests := map[string]string{
		"lf":   "a\tb\n1\t2\n3\t4\n",
		"crlf": "a\tb\r\n1\t2\r\n3\t4\r\n",
		"cr":   "a\tb\r1\t2\r3\t4\r",
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			f := NewFile("/data/x.tsv", 0, "utf-8", '\t', true, text)

			assert.Equal(t, []string{"a", "b"}, f.Header)
			require.Len(t, f.Rows, 2)
			assert.Equal(t, []string{"3", "4"}, f.Rows[1])
		})
	}
}

func TestNewFileRaggedRows(t *testing.T) {
	f := NewFile("/data/x.tsv", 0, "utf-8", '\t', true, "a\tb\tc\n1\n1\t2\t3\t4\n")

	// Short rows are padded to the header width.
	assert.Equal(t, []string{"1", "", ""}, f.Rows[0])

	// Long rows keep their extra cells.
	assert.Equal(t, []string{"1", "2", "3", "4"}, f.Rows[1])
}

func TestNewFileCommaDelimiter(t *testing.T) {
	f := NewFile("/data/x.csv", 0, "utf-8", ',', true, "a,b\n1,2\n")

	assert.Equal(t, []string{"a", "b"}, f.Header)
	assert.Equal(t, []string{"1", "2"}, f.Rows[0])
}

func TestNewFileNoQuoting(t *testing.T) {
	// Quotes get no special treatment: an embedded delimiter always
	// splits the field.
	f := NewFile("/data/x.csv", 0, "utf-8", ',', true, `a,b
"x,y",2
`)

	assert.Equal(t, []string{`"x`, `y"`, "2"}, f.Rows[0])
}

func TestPreview(t *testing.T) {
	f := NewFile("/data/x.tsv", 0, "utf-8", '\t', true,
		"a\tb\n1\t2\n3\t4\n5\t6\n")

	// Header counts toward n.
	p := f.Preview(2)
	require.Len(t, p, 2)
	assert.Equal(t, []string{"a", "b"}, p[0])
	assert.Equal(t, []string{"1", "2"}, p[1])

	// Requests beyond the available rows return everything.
	p = f.Preview(100)
	assert.Len(t, p, 4)

	assert.Empty(t, f.Preview(0))
}

func TestPreviewNoHeader(t *testing.T) {
	f := NewFile("/data/x.tsv", 0, "utf-8", '\t', false, "1\t2\n3\t4\n")

	p := f.Preview(1)
	require.Len(t, p, 1)
	assert.Equal(t, []string{"1", "2"}, p[0])
}

func TestPreviewRoundTrip(t *testing.T) {
	f := NewFile("/data/x.tsv", 0, "utf-8", '\t', false,
		"1\t2\n3\t4\n5\t6\n")

	for n := 0; n <= len(f.Rows)+2; n++ {
		want := n
		if want > len(f.Rows) {
			want = len(f.Rows)
		}

		p := f.Preview(n)
		require.Len(t, p, want)

		for i := range p {
			assert.Equal(t, f.Rows[i], p[i])
		}
	}
}

func TestInfoTotalRows(t *testing.T) {
	f := NewFile("/data/x.tsv", 10, "utf-8", '\t', true, "a\tb\n1\t2\n")

	info := f.Info()
	assert.Equal(t, 2, info.TotalRows)
	assert.Equal(t, 1, info.DataRows)
	assert.Equal(t, int64(10), info.SizeBytes)
	assert.Equal(t, `"\t"`, info.Delimiter)
}
