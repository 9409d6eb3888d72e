package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"m4vify/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversion runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			store, err := history.Open(cfg.Paths.HistoryDB)
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			defer store.Close()

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No conversions recorded yet.")
				return nil
			}
			fmt.Fprintln(out, renderHistoryTable(entries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}

func renderHistoryTable(entries []history.Entry) string {
	headers := []string{"ID", "When", "Status", "Source", "Result"}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		result := entry.Output
		if entry.Status != history.StatusCompleted {
			result = entry.Message
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", entry.ID),
			entry.CreatedAt.Local().Format("2006-01-02 15:04"),
			string(entry.Status),
			entry.Source,
			result,
		})
	}
	return renderTable(headers, rows, []columnAlignment{alignRight})
}
