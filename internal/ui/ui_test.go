package ui

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/Makepad-fr/gpa/internal/gpa"
	"github.com/Makepad-fr/gpa/internal/model"
)

func joined(lines []string) string { return strings.Join(lines, "\n") }

func TestFormatGPA(t *testing.T) {
	assert.Equal(t, "3.24", FormatGPA(29.2/9, 2))
	assert.Equal(t, "3.1719", FormatGPA(180.8/57, 4))
	assert.Equal(t, "0", FormatGPA(0, 0))
}

func TestBar(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	assert.Equal(t, "#####.....", Bar(2, 4, 10))
	assert.Equal(t, "..........", Bar(-1, 4, 10))
	assert.Equal(t, "##########", Bar(9, 4, 10))
	assert.Len(t, Bar(1, 0, 2), 5)
}

func TestSetThemeFallback(t *testing.T) {
	SetTheme("nope")
	assert.Equal(t, "classic", Current().Name)
	SetTheme("NEON")
	assert.Equal(t, "neon", Current().Name)
	SetTheme("classic")
}

func TestStatusLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	OK(&buf, "saved")
	Fail(&buf, "broken")
	assert.Equal(t, "ok saved\nerror: broken\n", buf.String())
}

func TestScaleLines(t *testing.T) {
	out := joined(ScaleLines())
	for _, want := range []string{"90 – 100", "A+", "4.0", "< 40", "Distinction", "First Division", "Below Passing Grade"} {
		assert.Contains(t, out, want)
	}
}

func TestSemesterReport(t *testing.T) {
	sem := model.Semester{Number: 1, Subjects: []model.Subject{
		{Name: "Math", CreditHours: 3, Marks: 85},
		{Name: "Physics", CreditHours: 4, Marks: 72},
		{CreditHours: 2, Marks: 65},
	}}
	out := joined(SemesterReport(gpa.Summarize(sem), 2))

	assert.Contains(t, out, "Semester 1")
	assert.Contains(t, out, "Math")
	assert.Contains(t, out, "Subject 3")
	assert.Contains(t, out, "3.24")
	assert.Contains(t, out, "First Division")
	assert.Contains(t, out, "Total Credits: 9")
	assert.Contains(t, out, "Total Subjects: 3")
	assert.Contains(t, out, SGPAFormula)
}

func TestResultLinesWithoutInterpretation(t *testing.T) {
	out := joined(ResultLines("SGPA", 3.595, 3))
	assert.Contains(t, out, "3.595")
	for _, in := range gpa.Interpretations {
		assert.NotContains(t, out, in.Label)
	}
}

func TestTermsReport(t *testing.T) {
	out := joined(TermsReport([]gpa.Term{{Average: 3.10, Credits: 18}, {Average: 3.40, Credits: 20}, {Average: 3.00, Credits: 19}}, 2))
	assert.Contains(t, out, "3.17")
	assert.Contains(t, out, "Total Credits: 57")
	assert.Contains(t, out, CGPAFormula)
}

func TestPanelFramesContent(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	out := Panel([]string{"hello"})
	assert.Contains(t, out, "hello")
	assert.True(t, strings.HasPrefix(out, "+"))
}

func TestSubjectLineWideNames(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	long := strings.Repeat("गणित विज्ञान ", 6)
	g := gpa.Grade(model.Subject{Name: long, CreditHours: 3, Marks: 85})
	line := SubjectLine(1, g, 2)
	assert.True(t, utf8.ValidString(line))
	assert.Contains(t, line, "...")
	assert.Contains(t, line, "3 cr")

	short := SubjectLine(2, gpa.Grade(model.Subject{Name: "गणित", CreditHours: 3, Marks: 85}), 2)
	ascii := SubjectLine(2, gpa.Grade(model.Subject{Name: "Math", CreditHours: 3, Marks: 85}), 2)
	assert.Equal(t, lipgloss.Width(ascii), lipgloss.Width(short), "columns line up")
}

func TestFitName(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 10},
		{"Math", 10},
		{"Mathematics and Statistics", 10},
		{"गणित विज्ञान र प्रविधि", 10},
		{"数学与统计学概论", 10},
	}
	for _, tt := range tests {
		got := FitName(tt.in, 10)
		assert.True(t, utf8.ValidString(got), tt.in)
		assert.Equal(t, tt.want, lipgloss.Width(got), tt.in)
	}
	assert.Equal(t, "Mathema...", FitName("Mathematics and Statistics", 10))
}
