package cmd

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/mathplex/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Starts the interactive calculator",
	Long: `Starts the two-operand terminal calculator.

Navigation:
  Tab       - Cycle between operands and operators
  Up/Down   - Select an operator
  Enter     - Apply the operator
  e / p     - Insert E / Pi
  Esc       - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	opts := tui.Options{
		Registry: newRegistry(),
		Render:   cfg.Render,
		Logger:   slog.Default(),
	}
	store, err := openHistory()
	if err != nil {
		slog.Warn("history unavailable", "error", err)
	}
	if store != nil {
		defer store.Close()
		opts.Recorder = store
	}

	p := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
