package cli

import (
	"errors"
	"fmt"

	"github.com/mydehq/gcdir/internal/lock"
	"github.com/mydehq/gcdir/internal/normalizer"
	"github.com/mydehq/gcdir/internal/types"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func (a *app) runNormalize(cmd *cobra.Command, path string) error {
	root, err := resolveRoot(path)
	if err != nil {
		return err
	}

	n := normalizer.New(afero.NewOsFs(), normalizer.WithEvents(a.renderEvent))
	if err := n.CheckRoot(root); err != nil {
		return err
	}

	if a.cfg.Lock {
		l, err := lock.Acquire(root)
		switch {
		case errors.Is(err, lock.ErrUnavailable):
			// Read-only directories can still be checked; any needed change fails on its own
			a.logger.Warn("Running without lock", "path", root, "error", err)
		case err != nil:
			return err
		default:
			defer func() {
				if err := l.Release(); err != nil {
					a.logger.Warn("Failed to release lock", "path", l.Path(), "error", err)
				}
			}()
		}
	}

	ops, err := n.Normalize(commandContext(cmd), root)
	if a.cfg.Summary && len(ops) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), operationsTable(root, ops))
	}
	if err != nil {
		return err
	}

	a.logger.Info(a.style(fmt.Sprintf("Done: %d operations applied", len(ops))))
	return nil
}

// renderEvent writes a normalizer event as a progress line
func (a *app) renderEvent(e types.Event) {
	msg := a.style(e.Message)
	if e.Type == types.EventSkip {
		a.logger.Debug(msg)
		return
	}
	a.logger.Info(msg)
}

func (a *app) style(msg string) string {
	if !a.styled {
		return msg
	}
	return colorizeEvent(msg)
}
