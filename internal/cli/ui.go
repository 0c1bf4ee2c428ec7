package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Log Styles
// =============================================================================

// logStyles returns the level and key styles used on stderr. The token key
// is highlighted so the input behind a skipped graph is easy to spot.
func logStyles() *log.Styles {
	s := log.DefaultStyles()
	s.Timestamp = lipgloss.NewStyle().Foreground(colorDim)
	s.Levels[log.DebugLevel] = levelStyle("DEBU", colorGray)
	s.Levels[log.InfoLevel] = levelStyle("INFO", colorCyan)
	s.Levels[log.WarnLevel] = levelStyle("WARN", colorYellow)
	s.Levels[log.ErrorLevel] = levelStyle("ERRO", colorRed)
	s.Keys["token"] = lipgloss.NewStyle().Foreground(colorYellow)
	s.Values["token"] = lipgloss.NewStyle().Bold(true)
	s.Keys["err"] = lipgloss.NewStyle().Foreground(colorRed)
	return s
}

func levelStyle(label string, c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().SetString(label).Bold(true).MaxWidth(4).Foreground(c)
}
