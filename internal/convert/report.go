package convert

// Skip reasons recorded in a Report.
const (
	ReasonNotMigrationMap = "not a migration map"
	ReasonNoClassEntries  = "no class entries"
	ReasonReadFailed      = "read failed"
	ReasonParseFailed     = "parse failed"
	ReasonWriteFailed     = "write failed"
)

// Conversion records one written recipe.
type Conversion struct {
	// Source is the migration map path.
	Source string
	// Dest is the written recipe path.
	Dest string
	// Rules is the number of class renames carried into the recipe.
	Rules int
}

// Skip records one discovered file that produced no recipe.
type Skip struct {
	Source string
	Reason string
	// Err is set for read/parse/write failures, nil for shape skips.
	Err error
}

// Report holds the per-file outcome of one conversion run.
type Report struct {
	Written []Conversion
	Skipped []Skip
}

// Count returns the number of recipes written.
func (r *Report) Count() int {
	return len(r.Written)
}
