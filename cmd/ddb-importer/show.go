package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-importer/internal/errors"
	importersvc "github.com/KirkDiggler/rpg-importer/internal/services/importer"
)

var listLimit int

var showCmd = &cobra.Command{
	Use:   "show IMPORT_ID",
	Short: "Print a stored import",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.service.GetImport(cmd.Context(), &importersvc.GetImportInput{ImportID: args[0]})
		if err != nil {
			return err
		}
		return writeResults(cmd.OutOrStdout(), outputFormat, []*parseResult{newParseResult("", out.Import, true)}, false)
	},
}

var listCmd = &cobra.Command{
	Use:   "list CHARACTER_ID",
	Short: "Print the stored imports of a character, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		characterID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.InvalidArgumentf("invalid character id %q", args[0])
		}

		a, err := newApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.service.ListImports(cmd.Context(), &importersvc.ListImportsInput{
			CharacterID: characterID,
			Limit:       listLimit,
		})
		if err != nil {
			return err
		}

		results := make([]*parseResult, 0, len(out.Imports))
		for _, record := range out.Imports {
			results = append(results, newParseResult("", record, true))
		}
		return writeResults(cmd.OutOrStdout(), outputFormat, results, true)
	},
}

func init() {
	showCmd.Flags().StringVar(&outputFormat, "format", formatJSON, "output format: json or yaml")
	listCmd.Flags().StringVar(&outputFormat, "format", formatJSON, "output format: json or yaml")
	listCmd.Flags().IntVar(&listLimit, "limit", 10, "maximum number of imports")
}
