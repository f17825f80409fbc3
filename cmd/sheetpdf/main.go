// Package main provides the CLI entry point for sheetpdf-go.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf"
)

var (
	outputPath string
	scopes     []string
	setValues  []string
	setImages  []string
	portrait   bool
	marginPt   float64
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetpdf [input.xlsx]",
		Short: "Convert Excel sheets to styled PDF pages",
		Long: `sheetpdf-go renders xlsx sheets, or selected ranges of them, into a
paginated PDF preserving cell styling, merges and dimensions.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "output.pdf", "Output PDF path")
	rootCmd.Flags().StringArrayVar(&scopes, "scope", nil, "Print scope, e.g. 'Sheet1!A1:D10' (repeatable; default: all visible sheets)")
	rootCmd.Flags().StringArrayVar(&setValues, "set", nil, "Cell value override as ADDR=TEXT, e.g. B2=approved (repeatable)")
	rootCmd.Flags().StringArrayVar(&setImages, "image", nil, "Cell image as ADDR=PATH, e.g. B2=stamp.png (repeatable)")
	rootCmd.Flags().BoolVar(&portrait, "portrait", false, "Use portrait orientation instead of landscape")
	rootCmd.Flags().Float64Var(&marginPt, "margin", 24, "Page margin in points")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	values, err := parsePairs(setValues)
	if err != nil {
		return err
	}
	images, err := loadImages(setImages, logger)
	if err != nil {
		return err
	}

	opts := sheetpdf.DefaultOptions()
	opts.Scopes = scopes
	opts.Values = values
	opts.Images = images
	opts.Landscape = !portrait
	opts.MarginPt = marginPt
	opts.Logger = &logger

	pdfData, err := sheetpdf.Convert(inputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if err := os.WriteFile(outputPath, pdfData, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func parsePairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		addr, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid override %q (expected ADDR=VALUE)", pair)
		}
		out[addr] = value
	}
	return out, nil
}

func loadImages(pairs []string, logger zerolog.Logger) (map[string][]byte, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string][]byte, len(pairs))
	for _, pair := range pairs {
		addr, path, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid image override %q (expected ADDR=PATH)", pair)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable image")
			continue
		}
		out[addr] = data
	}
	return out, nil
}
