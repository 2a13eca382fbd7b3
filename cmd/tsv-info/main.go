package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	tsvinfo "github.com/chop-dbhi/tsv-info"
	"github.com/chop-dbhi/tsv-info/config"
)

func main() {
	var (
		configPath string

		showHeaders  bool
		showColumns  bool
		showStats    bool
		showPreview  bool
		previewLines int

		delimiter    string
		encodingName string
		noHeader     bool
		verbose      bool
	)

	flag.StringVar(&configPath, "config", "", "Path to a YAML config file.")
	flag.BoolVar(&showHeaders, "header", false, "Show header information.")
	flag.BoolVar(&showColumns, "c", false, "Show column details and data types.")
	flag.BoolVar(&showStats, "s", false, "Show file statistics.")
	flag.BoolVar(&showPreview, "p", false, "Show content preview.")
	flag.IntVar(&previewLines, "n", -1, "Number of lines to preview.")
	flag.StringVar(&delimiter, "d", "\t", "Field delimiter.")
	flag.StringVar(&encodingName, "encoding", "", "File encoding.")
	flag.BoolVar(&noHeader, "no-header", false, "Treat the first line as data, not header.")
	flag.BoolVar(&verbose, "v", false, "Show detailed information.")

	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: file name required")
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg.LogLevel)
	defer log.Sync()

	if encodingName == "" {
		encodingName = cfg.Encoding
	}

	if previewLines < 0 {
		previewLines = cfg.PreviewLines
	}

	log.Debug("loading file",
		zap.String("path", args[0]),
		zap.String("encoding", encodingName),
		zap.String("delimiter", fmt.Sprintf("%q", delimiter)),
	)

	f, err := tsvinfo.Load(&tsvinfo.Request{
		Path:      args[0],
		Delimiter: delimiter,
		Encoding:  encodingName,
		Header:    !noHeader,
		MaxSize:   cfg.MaxFileSize,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	out := os.Stdout

	// Default behavior: basic info and preview.
	showDefault := !showHeaders && !showColumns && !showStats && !showPreview

	if showDefault || verbose {
		writeInfo(out, f.Info())
	}

	if showHeaders || verbose {
		writeHeaders(out, f.Headers())
	}

	if showColumns || verbose {
		writeColumns(out, f.Columns())
	}

	if showStats || verbose {
		writeStats(out, f.Statistics())
	}

	if showPreview || showDefault || verbose {
		writePreview(out, f.Preview(previewLines), f.HasHeader)
	}
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return log
}
