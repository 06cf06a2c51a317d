package convert

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/TwelveIterations/intellij-to-openrewrite/internal/migmap"
	"github.com/TwelveIterations/intellij-to-openrewrite/internal/recipe"
)

// Converter runs the migration map to recipe pipeline. The logger is the
// pipeline's reporting channel; tests inject their own handler to observe
// per-file outcomes without depending on a process-wide console.
type Converter struct {
	log *slog.Logger
}

// New returns a Converter reporting through log. A nil logger falls back
// to slog.Default().
func New(log *slog.Logger) *Converter {
	if log == nil {
		log = slog.Default()
	}

	return &Converter{log: log}
}

// Convert converts every migration map under inputDir into a recipe file
// in outputDir and returns how many were written. Zero is a valid result;
// whether an empty batch counts as a failure is the caller's concern.
func (c *Converter) Convert(inputDir, outputDir string) (int, error) {
	rep, err := c.ConvertReport(inputDir, outputDir)
	if err != nil {
		return 0, err
	}

	return rep.Count(), nil
}

// ConvertReport is Convert with the full per-file outcome report.
func (c *Converter) ConvertReport(inputDir, outputDir string) (Report, error) {
	var rep Report

	// Created once up front so a misconfigured output path fails the batch
	// before any file is processed.
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return rep, fmt.Errorf("creating output directory: %w", err)
	}

	paths, err := migmap.Locate(inputDir)
	if err != nil {
		return rep, err
	}

	for _, path := range paths {
		c.convertFile(path, outputDir, &rep)
	}

	return rep, nil
}

// convertFile runs one file through read, parse, filter, build, and write.
// Failures are recorded and logged, never returned.
func (c *Converter) convertFile(path, outputDir string, rep *Report) {
	skip := func(reason string, err error) {
		rep.Skipped = append(rep.Skipped, Skip{Source: path, Reason: reason, Err: err})
		if err != nil {
			c.log.Warn("skipping file", "path", path, "reason", reason, "error", err)
		} else {
			c.log.Debug("skipping file", "path", path, "reason", reason)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		skip(ReasonReadFailed, err)
		return
	}

	desc, err := migmap.Parse(data)
	if err != nil {
		skip(ReasonParseFailed, err)
		return
	}
	if desc == nil {
		skip(ReasonNotMigrationMap, nil)
		return
	}

	entries := desc.ClassEntries()
	if len(entries) == 0 {
		skip(ReasonNoClassEntries, nil)
		return
	}

	name := recipe.SanitizeName(recipeName(desc, path))

	dest, err := recipe.Write(recipe.Build(name, entries), outputDir)
	if err != nil {
		skip(ReasonWriteFailed, err)
		return
	}

	rep.Written = append(rep.Written, Conversion{Source: path, Dest: dest, Rules: len(entries)})
	c.log.Info("converted migration map", "source", path, "dest", dest, "rules", len(entries))
}

// recipeName picks the declared map name when present, otherwise the
// file's base name without its extension.
func recipeName(desc *migmap.Descriptor, path string) string {
	if desc.Name != "" {
		return desc.Name
	}

	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
