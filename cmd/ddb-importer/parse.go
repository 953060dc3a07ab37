package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-importer/internal/entities"
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
	"github.com/KirkDiggler/rpg-importer/internal/errors"
	importersvc "github.com/KirkDiggler/rpg-importer/internal/services/importer"
)

// Output formats
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	outputFormat string
	outputDir    string
	concurrency  int
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE...",
	Short: "Parse character exports into feature records",
	Long: `Parse one or more D&D Beyond character exports. Files are processed
concurrently; results are written in argument order to stdout, or one file
per character into --out.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&outputFormat, "format", formatJSON, "output format: json or yaml")
	parseCmd.Flags().StringVar(&outputDir, "out", "", "directory to write one result file per character")
	parseCmd.Flags().IntVar(&concurrency, "concurrency", 0, "files parsed at once (defaults to DDB_CONCURRENCY)")
}

// parseResult is the output record of one parsed file
type parseResult struct {
	File          string             `json:"file,omitempty" yaml:"file,omitempty"`
	ImportID      string             `json:"import_id" yaml:"import_id"`
	CharacterID   int64              `json:"character_id" yaml:"character_id"`
	CharacterName string             `json:"character_name" yaml:"character_name"`
	Stored        bool               `json:"stored" yaml:"stored"`
	Features      []*foundry.Feature `json:"features" yaml:"features"`
}

func runParse(cmd *cobra.Command, files []string) error {
	if outputFormat != formatJSON && outputFormat != formatYAML {
		return errors.InvalidArgumentf("unknown format %q", outputFormat)
	}
	limit := concurrency
	if limit <= 0 {
		limit = cfg.Concurrency
	}

	ctx := cmd.Context()
	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	results, err := parseFiles(ctx, a.service, files, limit, logger)
	if err != nil {
		return err
	}

	if outputDir != "" {
		return writeResultFiles(outputDir, outputFormat, results)
	}
	return writeResults(cmd.OutOrStdout(), outputFormat, results, len(files) > 1)
}

// parseFiles imports every file with at most limit in flight. The first
// failure cancels the remaining files.
func parseFiles(
	ctx context.Context,
	service importersvc.Service,
	files []string,
	limit int,
	logger *zap.Logger,
) ([]*parseResult, error) {
	results := make([]*parseResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, file := range files {
		g.Go(func() error {
			result, err := parseFile(ctx, service, file)
			if err != nil {
				return errors.Wrapf(err, "failed to parse %s", file)
			}
			logger.Debug("parsed file", zap.String("file", file), zap.Int("features", len(result.Features)))
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseFile(ctx context.Context, service importersvc.Service, file string) (*parseResult, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read file")
	}

	doc, err := ddb.Decode(data)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid character document")
	}

	out, err := service.ImportFeatures(ctx, &importersvc.ImportFeaturesInput{Document: doc})
	if err != nil {
		return nil, err
	}

	return newParseResult(file, out.Import, out.Stored), nil
}

func newParseResult(file string, record *entities.Import, stored bool) *parseResult {
	return &parseResult{
		File:          file,
		ImportID:      record.ID,
		CharacterID:   record.CharacterID,
		CharacterName: record.CharacterName,
		Stored:        stored,
		Features:      record.Features,
	}
}

// writeResults encodes results as YAML documents or as JSON. A JSON list is
// written only when asList is set; a single result is written bare.
func writeResults(w io.Writer, format string, results []*parseResult, asList bool) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, result := range results {
			if err := enc.Encode(result); err != nil {
				return errors.Wrap(err, "failed to encode yaml")
			}
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if !asList && len(results) == 1 {
		return enc.Encode(results[0])
	}
	return enc.Encode(results)
}

func writeResultFiles(dir, format string, results []*parseResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	for _, result := range results {
		name := filepath.Join(dir, strconv.FormatInt(result.CharacterID, 10)+"-features."+format)
		f, err := os.Create(name)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", name)
		}
		if err := writeResults(f, format, []*parseResult{result}, false); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "failed to write %s", name)
		}
		fmt.Fprintln(os.Stderr, name)
	}
	return nil
}
