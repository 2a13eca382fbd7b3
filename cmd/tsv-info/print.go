package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chop-dbhi/tsv-info/analyze"
)

// previewCellWidth caps column widths in the preview rendering.
const previewCellWidth = 20

// formatSize renders a byte count in human readable form.
func formatSize(n int64) string {
	size := float64(n)

	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%.1f%s", size, unit)
		}
		size /= 1024.0
	}

	return fmt.Sprintf("%.1fTB", size)
}

func writeInfo(w io.Writer, info analyze.Info) {
	fmt.Fprintf(w, "File: %s\n", info.Path)
	fmt.Fprintf(w, "Size: %s\n", formatSize(info.SizeBytes))
	fmt.Fprintf(w, "Total rows: %d\n", info.TotalRows)
	fmt.Fprintf(w, "Data rows: %d\n", info.DataRows)
	fmt.Fprintf(w, "Columns: %d\n", info.Columns)
	fmt.Fprintf(w, "Has header: %s\n", yesNo(info.HasHeader))
	fmt.Fprintf(w, "Delimiter: %s\n", info.Delimiter)
	fmt.Fprintf(w, "Encoding: %s\n", info.Encoding)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func writeHeaders(w io.Writer, headers []string) {
	fmt.Fprintf(w, "\nHeaders:\n")
	for i, h := range headers {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, h)
	}
}

func writeColumns(w io.Writer, cols []analyze.Column) {
	fmt.Fprintf(w, "\nColumn Details:\n")
	fmt.Fprintf(w, "%-3s %-20s %-10s %-10s %-7s %-8s %s\n",
		"#", "Name", "Type", "Non-Empty", "Empty", "Unique", "Samples")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, c := range cols {
		samples := strings.Join(firstN(c.Samples, 3), ", ")
		if len(c.Samples) > 3 {
			samples += "..."
		}

		fmt.Fprintf(w, "%-3d %-20s %-10s %-10d %-7d %-8d %s\n",
			c.Index, c.Name, c.Type, c.NonEmpty, c.Empty, c.Unique, samples)
	}
}

func firstN(vals []string, n int) []string {
	if len(vals) > n {
		return vals[:n]
	}
	return vals
}

func writeStats(w io.Writer, st analyze.Statistics) {
	fmt.Fprintf(w, "\nStatistics:\n")
	fmt.Fprintf(w, "Data completeness: %.1f%%\n", st.Completeness)
	fmt.Fprintf(w, "Empty cells: %d\n", st.EmptyCells)
	fmt.Fprintf(w, "Total cells: %d\n", st.TotalCells)

	if len(st.TypeDistribution) > 0 {
		fmt.Fprintf(w, "\nData type distribution:\n")

		types := make([]string, 0, len(st.TypeDistribution))
		for t := range st.TypeDistribution {
			types = append(types, t)
		}
		sort.Strings(types)

		for _, t := range types {
			fmt.Fprintf(w, "  %s: %d\n", t, st.TypeDistribution[t])
		}
	}

	fmt.Fprintf(w, "\nAverage unique values per column: %.1f\n", st.AvgUnique)
}

// writePreview renders rows with columns aligned. When the file has a
// header, the first row is the header and is separated from the data
// by a rule.
func writePreview(w io.Writer, rows [][]string, hasHeader bool) {
	if len(rows) == 0 {
		fmt.Fprintf(w, "\nPreview: (empty file)\n")
		return
	}

	fmt.Fprintf(w, "\nPreview:\n")

	widths := columnWidths(rows)

	for i, row := range rows {
		fmt.Fprintf(w, "  %s\n", formatRow(row, widths))

		if i == 0 && hasHeader {
			seps := make([]string, len(widths))
			for j, wd := range widths {
				seps[j] = strings.Repeat("-", wd)
			}
			fmt.Fprintf(w, "  %s\n", strings.Join(seps, "-+-"))
		}
	}
}

func columnWidths(rows [][]string) []int {
	var n int
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}

	widths := make([]int, n)

	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i, wd := range widths {
		if wd > previewCellWidth {
			widths[i] = previewCellWidth
		}
	}

	return widths
}

func formatRow(row []string, widths []int) string {
	cells := make([]string, len(row))

	for i, cell := range row {
		if len(cell) > widths[i] {
			cell = cell[:widths[i]]
		}
		cells[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
	}

	return strings.Join(cells, " | ")
}
