// Package cli implements the gcdir command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/mydehq/gcdir/internal/config"
	"github.com/mydehq/gcdir/internal/types"
	"github.com/mydehq/gcdir/internal/ui"
	"github.com/spf13/cobra"
)

// app holds the state shared by all commands of one invocation
type app struct {
	cfg    *types.Config
	logger *log.Logger
	styled bool

	flagConfig   string
	flagLogLevel string
	flagNoLock   bool
	flagSummary  bool
	flagScan     bool
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gcdir <game_dir>",
		Short: "Organize GameCube disc images into Nintendont game folders",
		Long: `Moves every loose .iso/.gcm image in game_dir into its own "<Title> [<ID>]"
folder as game.iso, and appends the game ID to existing game folders that lack one.
Only the immediate children of game_dir are touched; hidden entries are skipped.
With --scan nothing is changed; each entry is listed with the action it would get.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.flagScan {
				return a.runScan(commandContext(cmd), cmd, args[0])
			}
			return a.runNormalize(cmd, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&a.flagConfig, "config", "", "config file (default ~/.config/gcdir/config.yml)")
	f.StringVar(&a.flagLogLevel, "log-level", "", "log level: debug, info, warn or error")
	f.BoolVar(&a.flagNoLock, "no-lock", false, "do not lock the game directory during the run")
	f.BoolVar(&a.flagSummary, "summary", false, "print a table of the applied operations")
	f.BoolVar(&a.flagScan, "scan", false, "show how each entry would be handled without changing anything")
	return cmd
}

// setup resolves the configuration (defaults < file < flags) and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	var (
		cfg *types.Config
		err error
	)
	if a.flagConfig != "" {
		cfg, err = config.Load(a.flagConfig)
	} else {
		cfg, err = config.LoadGlobal()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flagLogLevel
	}
	if flags.Changed("no-lock") {
		cfg.Lock = !a.flagNoLock
	}
	if flags.Changed("summary") {
		cfg.Summary = a.flagSummary
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	out := cmd.OutOrStdout()
	a.styled = isTerminal(out)
	a.logger = ui.NewLogger(out, cfg.LogLevel, a.styled)
	if cfg.Source != "" {
		a.logger.Debug("Loaded config", "path", cfg.Source)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveRoot returns the absolute form of path. The bytes of each name are
// kept as given; filesystems such as ext4 do not fold Unicode normalization.
func resolveRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	return abs, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if a.logger != nil {
			a.logger.Error(err.Error())
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// Execute runs the gcdir command line and returns the process exit code
func Execute(ctx context.Context) int {
	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
