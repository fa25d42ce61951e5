package cli

import (
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mydehq/gcdir/internal/normalizer"
	"golang.org/x/text/unicode/norm"
)

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = displayName(row[i])
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// operationsTable lists applied operations with paths relative to root
func operationsTable(root string, ops []normalizer.Operation) string {
	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, []string{string(op.Kind), relTo(root, op.Source), relTo(root, op.Target)})
	}
	return renderTable([]string{"Operation", "Source", "Target"}, rows)
}

// entriesTable lists classified entries as produced by Scan
func entriesTable(root string, entries []normalizer.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		kind := e.Kind.String()
		if e.Hidden {
			kind = "hidden"
		}
		rows = append(rows, []string{e.Name, kind, e.Action.String(), e.ID, relTo(root, e.Target)})
	}
	return renderTable([]string{"Name", "Kind", "Action", "ID", "Target"}, rows)
}

// displayName composes decomposed names (common on media copied from macOS)
// so accents occupy one table cell. Only used for output, never for paths
// handed to the filesystem.
func displayName(s string) string {
	return norm.NFC.String(s)
}

func relTo(root, path string) string {
	if path == "" {
		return ""
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
