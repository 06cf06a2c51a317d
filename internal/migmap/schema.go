package migmap

// Entry kinds as they appear in the type attribute of a migration map entry.
const (
	KindClass   = "class"
	KindPackage = "package"
	KindMethod  = "method"
)

// Entry is a single old->new rename from a migration map.
type Entry struct {
	// OldName is the fully-qualified legacy identifier.
	OldName string
	// NewName is the fully-qualified replacement identifier.
	NewName string
	// Kind tags what the identifier denotes (class, package, method).
	Kind string
}

// Descriptor is the parsed representation of one migration map file.
type Descriptor struct {
	// Name is the human-readable label from the <name value="..."/> element,
	// or empty when the map does not declare one.
	Name string
	// Entries holds the renames in file order. Order is preserved through
	// to the generated recipe list.
	Entries []Entry
}

// ClassEntries returns the class-kind entries in their original order.
// Package and method renames have no ChangeType counterpart and are dropped.
func (d *Descriptor) ClassEntries() []Entry {
	var out []Entry
	for _, e := range d.Entries {
		if e.Kind == KindClass {
			out = append(out, e)
		}
	}

	return out
}
