package analyze

// maxSamples is the number of sample values retained per column.
const maxSamples = 5

// Column stores the derived classification and statistics for one column.
type Column struct {
	// Name of this column, from the header.
	Name string `json:"name"`

	// Index of the column, 1-based.
	Index int `json:"index"`

	// Inferred type of the column.
	Type ColumnType `json:"data_type"`

	// Number of non-empty cells across data rows.
	NonEmpty int `json:"non_empty_count"`

	// Number of empty cells across data rows.
	Empty int `json:"empty_count"`

	// Number of distinct non-empty values, exact string match.
	Unique int `json:"unique_count"`

	// Up to 5 distinct values in first-seen order.
	Samples []string `json:"sample_values"`
}

// rule pairs a type tag with the predicate every value must satisfy
// for the tag to apply.
type rule struct {
	typ   ColumnType
	match func(string) bool
}

// rules is evaluated in order and the first rule satisfied by every
// non-empty value wins. The order encodes precedence: a column holding
// only "0" and "1" is boolean, not integer, and anything integer-like
// that carries a decimal point falls through to numeric.
var rules = []rule{
	{BooleanType, IsBoolean},
	{IntegerType, IsInteger},
	{NumericType, IsNumeric},
	{DateType, IsDate},
}

// Classify assigns a type tag to a set of non-empty column values.
// Classification is all-or-nothing: a single non-conforming value
// demotes the column to the next, more general tag, ultimately to text.
// An empty value set is typed empty unconditionally.
func Classify(values []string) ColumnType {
	if len(values) == 0 {
		return EmptyType
	}

	for _, r := range rules {
		if all(values, r.match) {
			return r.typ
		}
	}

	return TextType
}

func all(values []string, match func(string) bool) bool {
	for _, v := range values {
		if !match(v) {
			return false
		}
	}

	return true
}

// profileColumn derives the Column record for one header index.
func (f *File) profileColumn(idx int) Column {
	col := Column{
		Name:  f.Header[idx],
		Index: idx + 1,
	}

	var values []string

	seen := make(map[string]struct{})

	for _, row := range f.Rows {
		v := cell(row, idx)

		if v == "" {
			col.Empty++
			continue
		}

		col.NonEmpty++

		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}

			if len(col.Samples) < maxSamples {
				col.Samples = append(col.Samples, v)
			}
		}

		values = append(values, v)
	}

	col.Type = Classify(values)
	col.Unique = len(seen)

	if col.Samples == nil {
		col.Samples = []string{}
	}

	return col
}

// Columns produces one profile per header column, in header order.
// It is a pure function of the row set: calling it repeatedly on the
// same File yields identical results.
func (f *File) Columns() []Column {
	cols := make([]Column, len(f.Header))

	for i := range f.Header {
		cols[i] = f.profileColumn(i)
	}

	return cols
}
