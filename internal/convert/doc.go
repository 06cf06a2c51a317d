// Package convert orchestrates the migration map to recipe pipeline.
//
// One Convert call walks the input tree, parses every .xml file, and emits
// one recipe per migration map with at least one class rename. Per-file
// problems (malformed XML, unrecognized shape, write failures) are confined
// to the file they hit; only an unwalkable input root or an uncreatable
// output directory aborts the batch.
package convert
