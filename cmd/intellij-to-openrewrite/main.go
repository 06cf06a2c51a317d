// Package main provides the CLI entrypoint for intellij-to-openrewrite.
//
// intellij-to-openrewrite is an automation-pipeline step that:
//   - Recursively scans an input tree for IntelliJ migration map XML files
//   - Keeps class-level renames (package and method entries are dropped)
//   - Emits one OpenRewrite recipe YAML per convertible map
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/TwelveIterations/intellij-to-openrewrite/internal/convert"
	"github.com/TwelveIterations/intellij-to-openrewrite/internal/migmap"
)

var (
	inputDir  string
	outputDir string
	verbose   bool
	dump      bool
)

var rootCmd = &cobra.Command{
	Use:   "intellij-to-openrewrite",
	Short: "Convert IntelliJ IDEA migration maps to OpenRewrite recipes",
	Long: `intellij-to-openrewrite scans a directory tree for IntelliJ IDEA migration
map XML files and converts each one into an OpenRewrite recipe YAML.

Only class-level renames are carried over; package and method entries are
dropped. Recipes land flat in the output directory, named after the map's
declared name (or its file name), sanitized to [A-Za-z0-9-_].

A run that converts nothing exits with an error so pipeline hosts treat an
empty batch as a failed step.

Examples:
  # Convert every migration map under ./maps into ./recipes
  intellij-to-openrewrite --input ./maps --output ./recipes

  # Inspect what the parser sees without caring about the output
  intellij-to-openrewrite --input ./maps --output /tmp/out --dump`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&inputDir, "input", "", "Directory scanned recursively for migration map XML files (required)")
	rootCmd.Flags().StringVar(&outputDir, "output", "", "Directory receiving the generated recipe YAML files (required)")
	rootCmd.MarkFlagRequired("input")
	rootCmd.MarkFlagRequired("output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log skipped files as well as conversions")
	rootCmd.Flags().BoolVar(&dump, "dump", false, "Dump every parsed migration map to stderr before converting")
}

func run() error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if dump {
		if err := dumpDescriptors(inputDir); err != nil {
			return err
		}
	}

	count, err := convert.New(logger).Convert(inputDir, outputDir)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("no convertible migration maps found under %s", inputDir)
	}

	fmt.Printf("converted %d migration map(s)\n", count)

	return nil
}

// dumpDescriptors prints the parsed form of every migration map under
// root. Debug aid only; unreadable or unrecognized files are passed over
// here because the conversion pass reports them.
func dumpDescriptors(root string) error {
	paths, err := migmap.Locate(root)
	if err != nil {
		return err
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		desc, err := migmap.Parse(data)
		if err != nil || desc == nil {
			continue
		}

		fmt.Fprintln(os.Stderr, "===", path, "===")
		spew.Fdump(os.Stderr, desc)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
