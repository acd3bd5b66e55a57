package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "Lists the available operations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reg := newRegistry()
		for _, name := range reg.Names() {
			op, _ := reg.Lookup(name)
			fmt.Fprintf(cmd.OutOrStdout(), "  %-18s %s\n", op.Usage(), op.Summary)
		}
	},
}

func init() {
	rootCmd.AddCommand(opsCmd)
}
