package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-importer/internal/errors"
	"github.com/KirkDiggler/rpg-importer/internal/redis"
	"github.com/KirkDiggler/rpg-importer/internal/repositories/imports"
)

var assumeYes bool

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Find and delete corrupted imports in Redis",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{UseTLS: cfg.RedisTLS})
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		if err := redis.Ping(ctx, client); err != nil {
			return err
		}

		maintenance, err := imports.NewMaintenance(client, logger.Named("repair"))
		if err != nil {
			return err
		}

		found, err := maintenance.FindCorrupted(ctx)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Checked %d imports, found %d corrupted\n", found.Checked, len(found.Corrupted))
		if len(found.Corrupted) == 0 {
			return nil
		}

		keys := make([]string, 0, len(found.Corrupted))
		for _, c := range found.Corrupted {
			fmt.Fprintf(w, "  - %s (%s)\n", c.Key, c.Reason)
			keys = append(keys, c.Key)
		}

		if !assumeYes && !confirm(cmd.InOrStdin(), w, "Delete these imports?") {
			fmt.Fprintln(w, "Aborted, no changes made")
			return nil
		}

		deleted, err := maintenance.Delete(ctx, keys)
		if err != nil {
			return errors.Wrap(err, "repair failed")
		}
		fmt.Fprintf(w, "Deleted %d imports\n", deleted)
		return nil
	},
}

func init() {
	repairCmd.Flags().BoolVar(&assumeYes, "yes", false, "delete without asking")
}

func confirm(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s (yes/no): ", question)
	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	return strings.TrimSpace(answer) == "yes"
}
