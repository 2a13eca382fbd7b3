package tsvinfo

import (
	"bytes"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/lib/pq"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"

	"github.com/chop-dbhi/tsv-info/analyze"
)

var (
	badChars *regexp.Regexp
	sepChars *regexp.Regexp

	sqlTmpl = template.New("sql")

	queryTmpls = map[string]string{
		"createSchema": `create schema if not exists "{{.Schema}}"`,
		"createTable":  `create table if not exists "{{.Schema}}"."{{.Table}}" ( {{.Columns}} )`,
		"dropTable":    `drop table if exists "{{.Schema}}"."{{.Table}}"`,
		"renameTable":  `alter table "{{.Schema}}"."{{.TempTable}}" rename to "{{.Table}}"`,
		"analyzeTable": `analyze "{{.Schema}}"."{{.Table}}"`,
	}
)

func init() {
	// Initialize SQL statement templates.
	for name, tmpl := range queryTmpls {
		template.Must(sqlTmpl.New(name).Parse(tmpl))
	}

	badChars = regexp.MustCompile(`[^a-z0-9_\-\.\+]+`)
	sepChars = regexp.MustCompile(`[_\-\.\+]+`)
}

// Map of column types to SQL types.
var sqlTypeMap = map[analyze.ColumnType]string{
	analyze.UnknownType: "text",
	analyze.EmptyType:   "text",
	analyze.BooleanType: "boolean",
	analyze.IntegerType: "integer",
	analyze.NumericType: "real",
	analyze.DateType:    "date",
	analyze.TextType:    "text",
}

// Schema is a SQL table definition derived from column profiles.
type Schema struct {
	Fields []*Field `json:"fields"`
}

// Field is a data definition on a schema.
type Field struct {
	// Name is the unique name of the field with respect to the schema.
	Name string `json:"name"`

	// Type is the SQL data type of the column.
	Type string `json:"type"`

	// If true, values across the set of records are unique.
	Unique bool `json:"unique"`

	// If true, values can be null, that is, not specified.
	Nullable bool `json:"nullable"`
}

// NewSchema derives a table schema from the profiled columns of an
// analyzed file. Field order follows column order.
func NewSchema(cols []analyze.Column) *Schema {
	fields := make([]*Field, len(cols))

	for i, c := range cols {
		fields[i] = &Field{
			Name:     cleanFieldName(c.Name),
			Type:     sqlTypeMap[c.Type],
			Unique:   c.NonEmpty > 0 && c.Unique == c.NonEmpty,
			Nullable: c.Empty > 0 || c.Type == analyze.EmptyType,
		}
	}

	return &Schema{
		Fields: fields,
	}
}

type tableData struct {
	Schema    string
	TempTable string
	Table     string
	Columns   string
}

func cleanFieldName(n string) string {
	n = strings.ToLower(n)
	n = badChars.ReplaceAllString(n, "_")
	return sepChars.ReplaceAllString(n, "_")
}

// Client loads analyzed files into Postgres.
type Client struct {
	db  *sql.DB
	log *zap.Logger
}

func NewClient(db *sql.DB, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		db:  db,
		log: log,
	}
}

// execTx calls a function within a transaction.
func (c *Client) execTx(fn func(tx *sql.Tx) error) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Replace loads the file into a table, replacing any previous contents.
// Rows are copied into a temporary table which is renamed over the
// target only after the load succeeds.
func (c *Client) Replace(schemaName, tableName string, s *Schema, f *analyze.File) (int64, error) {
	tempTableName := uuid.NewV4().String()

	if err := c.createSchema(schemaName); err != nil {
		return 0, err
	}

	if err := c.createTable(schemaName, tempTableName, s); err != nil {
		return 0, err
	}

	n, err := c.copyRows(schemaName, tempTableName, s, f)
	if err != nil {
		return 0, err
	}

	if err := c.renameTable(schemaName, tempTableName, tableName); err != nil {
		return n, err
	}

	c.log.Info("replaced table",
		zap.String("schema", schemaName),
		zap.String("table", tableName),
		zap.Int64("rows", n),
	)

	return n, c.analyzeTable(schemaName, tableName)
}

// Append loads the file into a table, creating it if necessary.
func (c *Client) Append(schemaName, tableName string, s *Schema, f *analyze.File) (int64, error) {
	if err := c.createSchema(schemaName); err != nil {
		return 0, err
	}

	if err := c.createTable(schemaName, tableName, s); err != nil {
		return 0, err
	}

	n, err := c.copyRows(schemaName, tableName, s, f)
	if err != nil {
		return 0, err
	}

	c.log.Info("appended to table",
		zap.String("schema", schemaName),
		zap.String("table", tableName),
		zap.Int64("rows", n),
	)

	return n, c.analyzeTable(schemaName, tableName)
}

func (c *Client) createSchema(schemaName string) error {
	data := &tableData{
		Schema: schemaName,
	}

	var b bytes.Buffer
	if err := sqlTmpl.ExecuteTemplate(&b, "createSchema", data); err != nil {
		return err
	}

	return c.execTx(func(tx *sql.Tx) error {
		sql := b.String()
		if _, err := tx.Exec(sql); err != nil {
			return fmt.Errorf("error creating schema: %s\n%s", err, sql)
		}

		return nil
	})
}

func (c *Client) createTable(schemaName, tableName string, s *Schema) error {
	columns := make([]string, len(s.Fields))

	for i, f := range s.Fields {
		var col string

		if f.Unique {
			col = "%s %s unique"
		} else if !f.Nullable {
			col = "%s %s not null"
		} else {
			col = "%s %s"
		}

		columns[i] = fmt.Sprintf(col, pq.QuoteIdentifier(f.Name), f.Type)
	}

	data := &tableData{
		Schema:  schemaName,
		Table:   tableName,
		Columns: strings.Join(columns, ","),
	}

	return c.execTx(func(tx *sql.Tx) error {
		var b bytes.Buffer
		if err := sqlTmpl.ExecuteTemplate(&b, "createTable", data); err != nil {
			return err
		}

		sql := b.String()
		if _, err := tx.Exec(sql); err != nil {
			return fmt.Errorf("error creating table: %s\n%s", err, sql)
		}

		return nil
	})
}

func (c *Client) renameTable(schemaName, tempTableName, tableName string) error {
	data := &tableData{
		Schema:    schemaName,
		TempTable: tempTableName,
		Table:     tableName,
	}

	tmpls := []string{
		"dropTable",
		"renameTable",
	}

	var b bytes.Buffer

	return c.execTx(func(tx *sql.Tx) error {
		for _, name := range tmpls {
			b.Reset()
			if err := sqlTmpl.ExecuteTemplate(&b, name, data); err != nil {
				return err
			}

			if _, err := tx.Exec(b.String()); err != nil {
				return fmt.Errorf("error renaming table: %s", err)
			}
		}

		return nil
	})
}

func (c *Client) analyzeTable(schemaName, tableName string) error {
	data := &tableData{
		Schema: schemaName,
		Table:  tableName,
	}

	return c.execTx(func(tx *sql.Tx) error {
		var b bytes.Buffer
		if err := sqlTmpl.ExecuteTemplate(&b, "analyzeTable", data); err != nil {
			return err
		}

		sql := b.String()
		if _, err := tx.Exec(sql); err != nil {
			return fmt.Errorf("error analyzing table: %s\n%s", err, sql)
		}

		return nil
	})
}

// copyRows bulk loads the file's data rows with COPY. Empty cells are
// sent as nulls. Cells beyond the header width are not loaded.
func (c *Client) copyRows(schemaName, tableName string, s *Schema, f *analyze.File) (int64, error) {
	columns := make([]string, len(s.Fields))
	for i, fd := range s.Fields {
		columns[i] = fd.Name
	}

	var n int64

	err := c.execTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(pq.CopyInSchema(schemaName, tableName, columns...))
		if err != nil {
			return fmt.Errorf("error preparing copy: %s", err)
		}

		cargs := make([]interface{}, len(columns))

		for _, row := range f.Rows {
			for i := range columns {
				v := ""
				if i < len(row) {
					v = strings.TrimSpace(row[i])
				}

				if v == "" {
					cargs[i] = nil
				} else {
					cargs[i] = v
				}
			}

			if _, err := stmt.Exec(cargs...); err != nil {
				return fmt.Errorf("error sending row: %s", err)
			}

			n++
		}

		// Empty exec to flush the buffer.
		if _, err := stmt.Exec(); err != nil {
			return fmt.Errorf("error executing copy: %s", err)
		}

		return stmt.Close()
	})

	if err != nil {
		return 0, err
	}

	return n, nil
}
