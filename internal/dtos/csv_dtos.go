package dtos

// ImportResult reports how an import went: rows with every required
// field present become new records, the rest are skipped.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
