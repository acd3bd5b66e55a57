package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/mathplex"
	"github.com/lukaszgryglicki/mathplex/internal/tower"
)

var (
	tetrateMaxIter   int
	tetrateTolerance float64
)

var tetrateCmd = &cobra.Command{
	Use:   "tetrate <base> <height>",
	Short: "Evaluates the power tower T_b(h) = b^b^...^1",
	Long: `Evaluates T_b(h) = f^h(1) with f(z) = b^z on the principal branch.

Integer heights give the right-associated power tower. Non-integer heights use
Schröder (Koenigs) linearization and need an attracting fixed point z* = b^z*.

Examples:
  mathplex tetrate 1.4142 3
  mathplex tetrate i 0.5`,
	Args: cobra.ExactArgs(2),
	RunE: runTetrate,
}

func init() {
	tetrateCmd.Flags().IntVar(&tetrateMaxIter, "max-iter", tower.DefaultOptions().MaxIter, "fixed-point iteration limit")
	tetrateCmd.Flags().Float64Var(&tetrateTolerance, "tolerance", tower.DefaultOptions().Tolerance, "fixed-point convergence tolerance")
	tetrateCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(tetrateCmd)
}

func runTetrate(cmd *cobra.Command, args []string) error {
	b, err := mathplex.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse base: %w", err)
	}
	h, err := mathplex.Parse(args[1])
	if err != nil {
		return fmt.Errorf("parse height: %w", err)
	}
	if h.Imag() != 0 {
		return fmt.Errorf("height must be real, got %s", h)
	}

	opts := tower.Options{MaxIter: tetrateMaxIter, Tolerance: tetrateTolerance}
	res, err := tower.Tetrate(b, h.Real(), opts)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "method: %s\n", res.Method)
	fmt.Fprintf(w, "T_b(h) with b=%s, h=%s\n", cfg.Render(b), cfg.Render(h))
	fmt.Fprintf(w, "result: %s\n", cfg.Render(res.Value))
	fmt.Fprintf(w, "b^(T(h)) (sanity): %s\n", cfg.Render(res.Check))
	if z, lambda, ok := tower.FixedPoint(b, opts); ok {
		fmt.Fprintf(w, "fixed point: %s, multiplier |λ|=%.6f\n", cfg.Render(z), lambda.Magnitude())
	}
	return nil
}
