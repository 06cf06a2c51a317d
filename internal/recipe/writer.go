package recipe

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Marshal serializes a recipe to YAML with two-space indentation. The
// whole document is buffered, so a later write failure can never leave a
// truncated file behind.
func Marshal(r Recipe) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("marshalling recipe %s: %w", r.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshalling recipe %s: %w", r.Name, err)
	}

	return buf.Bytes(), nil
}

// Write serializes r and writes it to outputDir/<DisplayName>.yml,
// creating the output directory (and any missing ancestors) if needed.
// An existing file of the same name is overwritten without warning.
// Returns the written path.
func Write(r Recipe, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	data, err := Marshal(r)
	if err != nil {
		return "", err
	}

	outputPath := filepath.Join(outputDir, r.DisplayName+Extension)
	if err := os.WriteFile(outputPath, data, filePerm); err != nil {
		return "", fmt.Errorf("writing recipe %s: %w", outputPath, err)
	}

	return outputPath, nil
}
