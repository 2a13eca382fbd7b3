package analyze

import (
	"encoding/json"
	"strings"
)

const (
	UnknownType ColumnType = iota
	EmptyType
	BooleanType
	IntegerType
	NumericType
	DateType
	TextType
)

// ColumnType is the inferred type of a column.
type ColumnType uint8

func (c ColumnType) String() string {
	switch c {
	case EmptyType:
		return "empty"
	case BooleanType:
		return "boolean"
	case IntegerType:
		return "integer"
	case NumericType:
		return "numeric"
	case DateType:
		return "date"
	case TextType:
		return "text"
	}

	return ""
}

func (c ColumnType) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ColumnType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	var t ColumnType

	switch strings.ToLower(s) {
	case "empty":
		t = EmptyType
	case "boolean":
		t = BooleanType
	case "integer":
		t = IntegerType
	case "numeric":
		t = NumericType
	case "date":
		t = DateType
	case "text":
		t = TextType
	}

	*c = t

	return nil
}
