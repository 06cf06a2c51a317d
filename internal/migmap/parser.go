package migmap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// rootElement is the document element of an IntelliJ migration map.
const rootElement = "migrationMap"

// xmlMap mirrors the migration map document shape. A lone <entry> decodes
// into a one-element slice, so downstream code stays list-uniform no matter
// how many entries the map holds.
type xmlMap struct {
	Name struct {
		Value string `xml:"value,attr"`
	} `xml:"name"`
	Entries []xmlEntry `xml:"entry"`
}

// xmlEntry uses pointer attributes to tell "attribute absent" apart from
// "attribute empty".
type xmlEntry struct {
	OldName *string `xml:"oldName,attr"`
	NewName *string `xml:"newName,attr"`
	Type    *string `xml:"type,attr"`
}

// Parse decodes data as a migration map.
//
// It returns (nil, nil) when the document is well-formed XML but not a
// migration map: wrong root element, no element at all, or an entry missing
// any of its oldName/newName/type attributes. An error is returned only for
// XML that does not parse.
func Parse(data []byte) (*Descriptor, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var start xml.StartElement
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			// Ran out of tokens before any element: empty document or
			// prolog-only file. Treat as non-matching.
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parsing migration map: %w", err)
		}

		if se, ok := tok.(xml.StartElement); ok {
			start = se
			break
		}
	}

	if start.Name.Local != rootElement {
		return nil, nil
	}

	var doc xmlMap
	if err := dec.DecodeElement(&doc, &start); err != nil {
		return nil, fmt.Errorf("parsing migration map: %w", err)
	}

	d := &Descriptor{Name: doc.Name.Value}
	for _, e := range doc.Entries {
		if e.OldName == nil || e.NewName == nil || e.Type == nil {
			return nil, nil
		}

		d.Entries = append(d.Entries, Entry{
			OldName: *e.OldName,
			NewName: *e.NewName,
			Kind:    *e.Type,
		})
	}

	return d, nil
}
