package ui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OK prints a success line.
func OK(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Good.Render(t.SymOK+" "+msg))
}

// Fail prints an error line.
func Fail(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Bad.Render(t.SymFail+" "+msg))
}

// Panel frames lines in the theme border.
func Panel(lines []string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Bar renders value out of max as a bar of the given width.
func Bar(value, max float64, width int) string {
	if max <= 0 {
		max = 1
	}
	if width < 5 {
		width = 5
	}
	ratio := value / max
	if ratio < 0 || math.IsNaN(ratio) {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	t := Current()
	return strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
}
