package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path"
	"strings"

	"go.uber.org/zap"

	tsvinfo "github.com/chop-dbhi/tsv-info"
)

func main() {
	var (
		dbURL      string
		schemaName string
		tableName  string

		delimiter       string
		encodingName    string
		noHeader        bool
		compressionType string

		appendTable bool
	)

	flag.StringVar(&dbURL, "db", "", "Database URL.")
	flag.StringVar(&schemaName, "schema", "public", "Schema name.")
	flag.StringVar(&tableName, "table", "", "Table name. Defaults to the file name.")
	flag.StringVar(&delimiter, "d", "\t", "Field delimiter.")
	flag.StringVar(&encodingName, "encoding", "utf-8", "File encoding.")
	flag.BoolVar(&noHeader, "no-header", false, "Treat the first line as data, not header.")
	flag.StringVar(&compressionType, "compression", "", "Compression used.")
	flag.BoolVar(&appendTable, "append", false, "Append to table.")

	flag.Parse()
	args := flag.Args()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if len(args) == 0 {
		log.Fatal("file name required")
	}

	inputName := args[0]

	if tableName == "" {
		_, base := path.Split(inputName)
		tableName = strings.Split(base, ".")[0]
	}

	f, err := tsvinfo.Load(&tsvinfo.Request{
		Path:        inputName,
		Delimiter:   delimiter,
		Encoding:    encodingName,
		Header:      !noHeader,
		Compression: compressionType,
	})
	if err != nil {
		log.Fatal("cannot load file", zap.Error(err))
	}

	cols := f.Columns()
	schema := tsvinfo.NewSchema(cols)

	log.Info("profiled file",
		zap.String("path", inputName),
		zap.Int("columns", len(cols)),
		zap.Int("rows", len(f.Rows)),
	)

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatal("cannot open db connection", zap.Error(err))
	}
	defer db.Close()

	client := tsvinfo.NewClient(db, log)

	var n int64
	if appendTable {
		n, err = client.Append(schemaName, tableName, schema, f)
	} else {
		n, err = client.Replace(schemaName, tableName, schema, f)
	}
	if err != nil {
		log.Fatal("error loading", zap.Error(err))
	}

	log.Info("loaded records", zap.Int64("count", n))
}
