package analyze

// Stats aggregates completeness and type-distribution measures over all
// columns of a file.
type Stats struct {
	// Completeness is the percentage of non-empty cells over all data
	// cells, in [0, 100].
	Completeness float64 `json:"data_completeness"`

	// EmptyCells and TotalCells count over data rows only.
	EmptyCells int `json:"empty_cells"`
	TotalCells int `json:"total_cells"`

	// TypeDistribution tallies column types. Absent types are omitted.
	TypeDistribution map[string]int `json:"data_type_distribution"`

	// AvgUnique is the mean distinct-value count across columns.
	AvgUnique float64 `json:"avg_unique_values_per_column"`
}

// Statistics bundles the basic file information with the aggregate
// measures, the combined record the stats report is built from.
type Statistics struct {
	Info
	Stats
}

// Stats computes the file-wide aggregates from the column profiles.
// Pure function of its inputs: no caching, no shared state.
func (f *File) Stats() Stats {
	return f.stats(f.Columns())
}

func (f *File) stats(cols []Column) Stats {
	s := Stats{
		TotalCells:       len(f.Rows) * len(cols),
		TypeDistribution: make(map[string]int),
	}

	var uniqueSum int

	for _, c := range cols {
		s.EmptyCells += c.Empty
		s.TypeDistribution[c.Type.String()]++
		uniqueSum += c.Unique
	}

	// Boundary policy: an empty region is fully complete.
	if s.TotalCells > 0 {
		s.Completeness = float64(s.TotalCells-s.EmptyCells) / float64(s.TotalCells) * 100
	} else {
		s.Completeness = 100.0
	}

	if len(cols) > 0 {
		s.AvgUnique = float64(uniqueSum) / float64(len(cols))
	}

	return s
}

// Statistics returns the basic info and aggregate stats as one record.
func (f *File) Statistics() Statistics {
	return Statistics{
		Info:  f.Info(),
		Stats: f.Stats(),
	}
}
