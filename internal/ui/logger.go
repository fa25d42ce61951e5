package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// NewLogger builds the application logger writing to w.
// Styled output uses the text formatter with gcdir's level colors; otherwise logfmt is used.
func NewLogger(w io.Writer, level string, styled bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: false,
	})
	if styled {
		ConfigureLoggerStyles(l)
	} else {
		l.SetFormatter(log.LogfmtFormatter)
	}
	return l
}

// ParseLevel maps a config log level to a log.Level, defaulting to info
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ConfigureLoggerStyles applies the lipgloss styling to l.
func ConfigureLoggerStyles(l *log.Logger) {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Foreground(lipgloss.Color("63"))

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO ").
		Bold(true).
		Foreground(lipgloss.Color("86"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN ").
		Bold(true).
		Foreground(lipgloss.Color("192"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))

	// Key/value pairs gcdir attaches to log lines
	styles.Keys["path"] = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	styles.Values["path"] = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)

	l.SetStyles(styles)
}
