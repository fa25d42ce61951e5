package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mydehq/gcdir/internal/matcher"
)

var (
	// Adaptive Color definitions
	colorHeader = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#00af00", ANSI256: "34", ANSI: "2"},
		Light: lipgloss.CompleteColor{TrueColor: "#008700", ANSI256: "28", ANSI: "2"},
	}
	colorCommand = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5fffff", ANSI256: "86", ANSI: "6"},
		Light: lipgloss.CompleteColor{TrueColor: "#008787", ANSI256: "30", ANSI: "6"},
	}
	colorPath = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5f5fff", ANSI256: "63", ANSI: "4"},
		Light: lipgloss.CompleteColor{TrueColor: "#0000af", ANSI256: "19", ANSI: "4"},
	}
	colorID = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#ffaf00", ANSI256: "214", ANSI: "3"},
		Light: lipgloss.CompleteColor{TrueColor: "#af5f00", ANSI256: "130", ANSI: "3"},
	}
	colorDim = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#9e9e9e", ANSI256: "247", ANSI: "8"},
		Light: lipgloss.CompleteColor{TrueColor: "#444444", ANSI256: "238", ANSI: "0"},
	}

	StyleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	StyleCommand = lipgloss.NewStyle().Bold(true).Foreground(colorCommand)
	StylePath    = lipgloss.NewStyle().Foreground(colorPath)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleID      = lipgloss.NewStyle().Bold(true).Foreground(colorID)
)

// colorizeEvent adds CLI styling to progress messages.
func colorizeEvent(msg string) string {
	// Messages with "→" (rename/move): "Renaming game folder: Qux → Qux [QQQ999]"
	if parts := strings.SplitN(msg, " → ", 2); len(parts) == 2 {
		left := parts[0]
		right := parts[1]

		// Split label from name: "Renaming game folder: Qux" → "Renaming game folder:" + "Qux"
		var label, oldName string
		if idx := strings.Index(left, ": "); idx >= 0 {
			label = StyleHeader.Render(left[:idx+1]) + " "
			oldName = left[idx+2:]
		} else {
			oldName = left
		}

		return fmt.Sprintf("%s%s %s %s",
			label,
			StyleDim.Render(oldName),
			StyleDim.Render("→"),
			styleGameName(right, StyleCommand),
		)
	}

	// Messages with ": " label: "Creating game folder: Foo [ABCDEF]"
	if idx := strings.Index(msg, ": "); idx >= 0 {
		label := msg[:idx+1]
		value := msg[idx+2:]
		return fmt.Sprintf("%s %s", StyleHeader.Render(label), styleGameName(value, StylePath))
	}

	return msg
}

// styleGameName renders a folder name (optionally followed by "/game.iso")
// with base, giving the trailing "[ID]" token its own color.
func styleGameName(name string, base lipgloss.Style) string {
	folder, file, hasFile := strings.Cut(name, "/")
	id, ok := matcher.MatchID(folder)
	if !ok {
		return base.Render(name)
	}

	title := folder[:len(folder)-len(id)-2]
	out := base.Render(title+"[") + StyleID.Render(id) + base.Render("]")
	if hasFile {
		out += base.Render("/" + file)
	}
	return out
}
