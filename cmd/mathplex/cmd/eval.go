package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	evalMode      string
	evalDigits    int
	evalNoHistory bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <op> [operands...]",
	Short: "Evaluates one operation",
	Long: `Evaluates one operation and prints the result.

Examples:
  mathplex eval add 3+5i 23-15i
  mathplex eval sqrt -4
  mathplex eval max 23+5i 12+6i 2+33i
  mathplex eval pi
  mathplex eval --mode polar mul 1+i 1-i

Flags go before the operation so negative operands such as -4 are not
read as flags. Run "mathplex ops" for the list of operations.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalMode, "mode", "m", "", "output mode: canonical, fixed, scientific or polar")
	evalCmd.Flags().IntVarP(&evalDigits, "digits", "d", -1, "digits for fixed, scientific and polar output")
	evalCmd.Flags().BoolVar(&evalNoHistory, "no-history", false, "do not record the evaluation")
	evalCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	out := cfg
	if evalMode != "" {
		out.Output.Mode = evalMode
	}
	if evalDigits >= 0 {
		out.Output.Digits = evalDigits
	}
	if err := out.Validate(); err != nil {
		return err
	}

	operands := make([]any, len(args)-1)
	for i, a := range args[1:] {
		operands[i] = a
	}
	res, err := newRegistry().Eval(cmd.Context(), args[0], operands...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.Render(res.Value))

	if evalNoHistory {
		return nil
	}
	store, err := openHistory()
	if err != nil {
		// recording is best effort
		slog.Warn("history unavailable", "error", err)
		return nil
	}
	if store == nil {
		return nil
	}
	defer store.Close()
	if _, err := store.RecordArgs(cmd.Context(), res.Op, res.Args, res.Value.String()); err != nil {
		slog.Warn("failed to record evaluation", "error", err)
	}
	return nil
}
