package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the palette and frame used by every renderer.
// All UI helpers pull from `current`.
type Theme struct {
	Name                        string
	Title, Muted, Accent        lipgloss.Style
	Good, Info, Warn, Bad       lipgloss.Style
	Selected                    lipgloss.Style
	Border                      lipgloss.Border
	BorderColor                 lipgloss.TerminalColor
	BarFull, BarEmpty           string
	SymOK, SymFail, SymSelected string
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Good:        lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Info:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Warn:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Bad:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		BarFull:     "█", BarEmpty: "░",
		SymOK: "✔", SymFail: "✖", SymSelected: ">",
	}
}

// SetTheme switches the palette; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		t := classic()
		t.Name = "neon"
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Warn = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		t.BorderColor = lipgloss.Color("13")
		t.Border = lipgloss.NormalBorder()
		current = t
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain,
			Good: plain, Info: plain, Warn: plain, Bad: plain,
			Selected:    plain,
			Border:      asciiBorder,
			BorderColor: lipgloss.NoColor{},
			BarFull:     "#", BarEmpty: ".",
			SymOK: "ok", SymFail: "error:", SymSelected: ">",
		}
	default:
		current = classic()
	}
}

// Current exposes the active theme to renderers.
func Current() Theme { return current }
