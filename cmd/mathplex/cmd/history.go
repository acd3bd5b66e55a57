package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Shows or clears recorded evaluations",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("history is disabled in the config")
	}
	defer store.Close()

	ctx := cmd.Context()
	w := cmd.OutOrStdout()
	total, err := store.Count(ctx)
	if err != nil {
		return err
	}

	if historyClear {
		if err := store.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintf(w, "Deleted %s entries\n", humanize.Comma(int64(total)))
		return nil
	}

	entries, err := store.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, e := range entries {
		fmt.Fprintf(w, "  %s\n", e.Describe(now))
	}
	fmt.Fprintf(w, "%s of %s entries\n", humanize.Comma(int64(len(entries))), humanize.Comma(int64(total)))
	return nil
}
