package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/gpa/internal/gpa"
	"github.com/Makepad-fr/gpa/internal/grade"
	"github.com/Makepad-fr/gpa/internal/model"
)

const (
	SGPAFormula = "SGPA = Σ(Grade Point × Credit Hours) / Σ(Credit Hours)"
	CGPAFormula = "CGPA = Σ(SGPA × Semester Credits) / Σ(Semester Credits)"

	maxPoint = 4.0
	barWidth = 28

	// NameWidth is the column width of subject names, in terminal cells.
	NameWidth = 32
)

// FitName truncates s to width cells and pads it with spaces to exactly
// width. Wide and combining runes are measured as the terminal draws them.
func FitName(s string, width int) string {
	s = ansi.Truncate(s, width, "...")
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// FormatGPA renders an average with a fixed number of decimals.
func FormatGPA(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// ToneStyle maps an interpretation tone to a theme style.
func ToneStyle(tone gpa.Tone) lipgloss.Style {
	t := Current()
	switch tone {
	case gpa.ToneGood:
		return t.Good
	case gpa.ToneInfo:
		return t.Info
	case gpa.ToneWarn:
		return t.Warn
	case gpa.ToneBad:
		return t.Bad
	}
	return t.Muted
}

// ScaleLines renders the grading table and the interpretation bands.
func ScaleLines() []string {
	t := Current()
	lines := []string{
		t.Title.Render("Nepali University Grading System (TU / PU / KU)"),
		"",
		t.Accent.Render(fmt.Sprintf("%-12s %-6s %s", "Marks (%)", "Grade", "Grade Point")),
	}
	for i, b := range grade.Bands() {
		row := fmt.Sprintf("%-12s %-6s %.1f", grade.Range(i), b.Letter, b.Point)
		if b.Letter.Failed() {
			row = t.Bad.Render(row)
		}
		lines = append(lines, row)
	}
	lines = append(lines,
		t.Muted.Render("* Below 40% = Fail (F); its credit hours still count"),
		"",
		t.Title.Render("GPA Score Interpretation"),
	)
	for _, in := range gpa.Interpretations {
		lines = append(lines, ToneStyle(in.Tone).Render(
			fmt.Sprintf("%.2f – %.2f  %-16s %s", in.Min, in.Max, in.Label, in.Description)))
	}
	return lines
}

// SubjectLine renders one graded row; index is 1-based.
func SubjectLine(index int, g model.GradedSubject, precision int) string {
	t := Current()
	name := g.Name
	if name == "" {
		name = fmt.Sprintf("Subject %d", index)
	}
	gradeText := fmt.Sprintf("%-2s (%.1f GP)", g.Letter, g.Point)
	if grade.Letter(g.Letter).Failed() {
		gradeText = t.Bad.Render(gradeText)
	}
	return fmt.Sprintf("%s %s %2d cr  %6s%%  %s",
		t.Muted.Render(fmt.Sprintf("%2d.", index)), FitName(name, NameWidth), g.CreditHours,
		strconv.FormatFloat(g.Marks, 'f', precision, 64), gradeText)
}

// ResultLines renders an average with its gauge and interpretation.
func ResultLines(label string, avg float64, precision int) []string {
	t := Current()
	lines := []string{
		t.Title.Render("Your " + label),
		fmt.Sprintf("%s  %s", t.Good.Bold(true).Render(FormatGPA(avg, precision)), t.Muted.Render(Bar(avg, maxPoint, barWidth))),
	}
	if in, ok := gpa.Interpret(avg); ok {
		lines = append(lines,
			ToneStyle(in.Tone).Bold(true).Render(in.Label),
			t.Muted.Render(in.Description))
	}
	return lines
}

// SemesterLines renders a computed semester.
func SemesterLines(s model.SemesterSummary, precision int) []string {
	t := Current()
	lines := []string{t.Accent.Render(fmt.Sprintf("Semester %d", s.Number))}
	if len(s.Subjects) == 0 {
		lines = append(lines, t.Muted.Render("no subjects"))
	}
	for i, g := range s.Subjects {
		lines = append(lines, SubjectLine(i+1, g, precision))
	}
	return append(lines, t.Muted.Render(fmt.Sprintf("SGPA %s | Credits %d | Subjects %d | Failed %d",
		FormatGPA(s.Average, precision), s.TotalCredits, s.SubjectCount, s.FailedCount)))
}

// SemesterResult renders the SGPA block shown under a semester.
func SemesterResult(s model.SemesterSummary, precision int) []string {
	t := Current()
	lines := ResultLines("SGPA", s.Average, precision)
	return append(lines,
		"",
		fmt.Sprintf("Total Credits: %d", s.TotalCredits),
		fmt.Sprintf("Total Subjects: %d", s.SubjectCount),
		t.Muted.Render("Formula: "+SGPAFormula))
}

// SemesterReport is the full single-semester result.
func SemesterReport(s model.SemesterSummary, precision int) []string {
	lines := SemesterLines(s, precision)
	lines = append(lines, "")
	return append(lines, SemesterResult(s, precision)...)
}

// ProgramResult renders the cumulative block: one line per semester, the
// CGPA and its totals.
func ProgramResult(p model.ProgramSummary, precision int) []string {
	t := Current()
	var lines []string
	for _, s := range p.Semesters {
		lines = append(lines, fmt.Sprintf("Semester %d  SGPA %s  (%d cr)",
			s.Number, FormatGPA(s.Average, precision), s.TotalCredits))
	}
	lines = append(lines, "")
	lines = append(lines, ResultLines("CGPA", p.Average, precision)...)
	return append(lines,
		"",
		fmt.Sprintf("Total Semesters: %d", len(p.Semesters)),
		fmt.Sprintf("Total Credits: %d", p.TotalCredits),
		t.Muted.Render("Formula: "+CGPAFormula))
}

// ProgramReport renders every semester followed by the cumulative result.
func ProgramReport(p model.ProgramSummary, precision int) []string {
	var lines []string
	for _, s := range p.Semesters {
		lines = append(lines, SemesterLines(s, precision)...)
		lines = append(lines, "")
	}
	return append(lines, ProgramResult(p, precision)...)
}

// TermsReport renders a CGPA computed from SGPA/credit pairs.
func TermsReport(terms []gpa.Term, precision int) []string {
	t := Current()
	lines := []string{t.Accent.Render("Semesters")}
	total := 0
	for i, term := range terms {
		lines = append(lines, fmt.Sprintf("%s SGPA %s  %2d cr",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)), FormatGPA(term.Average, precision), term.Credits))
		total += term.Credits
	}
	lines = append(lines, "")
	lines = append(lines, ResultLines("CGPA", gpa.Cumulative(terms), precision)...)
	return append(lines,
		"",
		fmt.Sprintf("Total Credits: %d", total),
		t.Muted.Render("Formula: "+CGPAFormula))
}
