package migmap

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// xmlExt is the extension matched by Locate, compared case-insensitively.
const xmlExt = ".xml"

// Locate walks root depth-first and returns every regular file with an
// .xml extension. Order across siblings is whatever the walk yields;
// callers must not rely on it.
//
// An unreadable root (or subdirectory) aborts the walk with an error.
// Deciding what each file contains is the parser's job, not the locator's.
func Locate(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if strings.EqualFold(filepath.Ext(path), xmlExt) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	return paths, nil
}
