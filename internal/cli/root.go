// Package cli implements the quadrille command line host: it generates
// pieces, glues them on boards and renders the result.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadrille/grid"
	"github.com/katalvlaran/quadrille/internal/config"
	"github.com/katalvlaran/quadrille/internal/logging"
)

// env is the state shared by all subcommands once flags are parsed.
type env struct {
	configPath string
	logLevel   string
	logFile    string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:   "quadrille",
		Short: "Square-grid boards and random polyomino pieces",
		Long: `quadrille generates random free polyominoes, glues them onto boards
with collision checks, and prints the result to the terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup()
		},
	}
	root.PersistentFlags().StringVarP(&e.configPath, "config", "c", "", "path to quadrille.yaml")
	root.PersistentFlags().StringVar(&e.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&e.logFile, "log-file", "", "log file path (default stderr)")

	root.AddCommand(newGenerateCommand(e), newDemoCommand(e), newViewCommand(e))
	return root
}

// setup loads configuration and initialises logging; flags win over the file.
func (e *env) setup() error {
	cfg := config.Default()
	if e.configPath != "" {
		var err error
		if cfg, err = config.Load(e.configPath); err != nil {
			return err
		}
	}
	if e.logLevel != "" {
		cfg.Logging.Level = e.logLevel
	}
	if e.logFile != "" {
		cfg.Logging.Path = e.logFile
	}
	logger, err := logging.Init(cfg.Logging.Path, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialise logging: %w", err)
	}
	e.cfg, e.logger = cfg, logger
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		slog.Error("quadrille failed", "err", err)
		os.Exit(1)
	}
}

// parseFiller turns a flag value into a cell: "#rrggbb" is a colour, an
// empty string means the default filler, anything else must be one glyph.
func parseFiller(s string) (grid.Cell, error) {
	switch {
	case s == "":
		return grid.Empty(), nil
	case strings.HasPrefix(s, "#"):
		return grid.ColorHex(s)
	default:
		return grid.Glyph(s)
	}
}
