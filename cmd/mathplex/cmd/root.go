package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/mathplex/internal/calc"
	"github.com/lukaszgryglicki/mathplex/internal/config"
	"github.com/lukaszgryglicki/mathplex/internal/history"
)

var (
	cfgFile string
	verbose bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mathplex",
	Short: "mathplex - complex number calculator",
	Long: `mathplex evaluates operations on complex numbers written as "a+bi".

Operands accept forms such as 3, 2.5-4i, -i, 1e-3+2E2i.
Results are rendered according to the [output] section of the config file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return err
		}
		setupLogging(os.Stderr)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func setupLogging(w io.Writer) {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func newRegistry() *calc.Registry {
	return calc.NewRegistry(slog.Default())
}

// openHistory returns nil when history is disabled.
func openHistory() (*history.Store, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return store, nil
}
