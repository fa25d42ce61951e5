package cli

import (
	"context"
	"fmt"

	"github.com/mydehq/gcdir/internal/normalizer"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// runScan prints the classification of root without changing it
func (a *app) runScan(ctx context.Context, cmd *cobra.Command, path string) error {
	root, err := resolveRoot(path)
	if err != nil {
		return err
	}

	entries, err := normalizer.New(afero.NewOsFs()).Scan(ctx, root)
	if err != nil {
		return fmt.Errorf("failed to scan directory: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintf(out, "No entries found in: %s\n", StylePath.Render(root))
		return nil
	}

	fmt.Fprintf(out, "%s in: %s\n", StyleHeader.Render("Entries"), StylePath.Render(root))
	fmt.Fprintln(out, entriesTable(root, entries))
	return nil
}
