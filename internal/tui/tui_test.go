package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/gpa/internal/gpa"
	"github.com/Makepad-fr/gpa/internal/model"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	esc       = tea.KeyMsg{Type: tea.KeyEsc}
	tab       = tea.KeyMsg{Type: tea.KeyTab}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

// addSubject fills the add form; the credits field starts at "3".
func addSubject(t *testing.T, m Model, name, credits, marks string) Model {
	t.Helper()
	m = send(t, m, runes("a"))
	require.True(t, m.form.active)
	if name != "" {
		m = send(t, m, runes(name))
	}
	m = send(t, m, tab, backspace)
	if credits != "" {
		m = send(t, m, runes(credits))
	}
	m = send(t, m, tab)
	if marks != "" {
		m = send(t, m, runes(marks))
	}
	return send(t, m, enter)
}

func TestNewStartsWithOneBlankSubject(t *testing.T) {
	m := New(Options{Mode: ModeSGPA, Precision: 2})
	sems := m.Semesters()
	require.Len(t, sems, 1)
	assert.Equal(t, []model.Subject{model.NewSubject()}, sems[0].Subjects)
	_, ok := m.Result()
	assert.False(t, ok)
	assert.NotEmpty(t, m.View())
}

func TestSGPAFlow(t *testing.T) {
	m := New(Options{Mode: ModeSGPA, Precision: 2, Semesters: []model.Semester{
		{Subjects: []model.Subject{{Name: "Math", CreditHours: 3, Marks: 85}}},
	}})
	m = addSubject(t, m, "Physics", "4", "72")
	m = addSubject(t, m, "English", "2", "65")

	subs := m.Semesters()[0].Subjects
	require.Len(t, subs, 3)
	assert.Equal(t, model.Subject{Name: "Physics", CreditHours: 4, Marks: 72}, subs[1])
	assert.Equal(t, 2, m.Cursor())

	m = send(t, m, runes("c"))
	r, ok := m.Result()
	require.True(t, ok)
	require.Len(t, r.Semesters, 1)
	assert.InDelta(t, 29.2/9, r.Semesters[0].Average, 1e-12)
	assert.Contains(t, m.View(), "3.24")
	assert.Contains(t, m.View(), "First Division")
}

func TestFormClampsInput(t *testing.T) {
	m := New(Options{Mode: ModeSGPA})
	m = addSubject(t, m, "Lab", "99", "150")
	m = addSubject(t, m, "Seminar", "x", "abc")

	subs := m.Semesters()[0].Subjects
	require.Len(t, subs, 3)
	assert.Equal(t, model.Subject{Name: "Lab", CreditHours: MaxCredits, Marks: MaxMarks}, subs[1])
	assert.Equal(t, model.Subject{Name: "Seminar", CreditHours: 0, Marks: 0}, subs[2])
}

func TestEditReplacesMarks(t *testing.T) {
	m := New(Options{Mode: ModeSGPA, Semesters: []model.Semester{
		{Subjects: []model.Subject{{Name: "Math", CreditHours: 3, Marks: 30}}},
	}})
	m = send(t, m, runes("c"))
	_, ok := m.Result()
	require.True(t, ok)

	// re-exam: replace 30 with 65
	m = send(t, m, runes("e"), tab, tab, backspace, backspace, runes("65"), enter)
	assert.Equal(t, model.Subject{Name: "Math", CreditHours: 3, Marks: 65}, m.Semesters()[0].Subjects[0])

	_, ok = m.Result()
	assert.False(t, ok, "editing drops the stale result")
}

func TestEscCancelsForm(t *testing.T) {
	m := New(Options{Mode: ModeSGPA})
	m = send(t, m, runes("a"), runes("Ghost"), esc)
	assert.False(t, m.form.active)
	assert.Len(t, m.Semesters()[0].Subjects, 1)
}

func TestDeleteKeepsLastSubjectAndUndo(t *testing.T) {
	m := New(Options{Mode: ModeSGPA})
	m = send(t, m, runes("d"))
	assert.Len(t, m.Semesters()[0].Subjects, 1)
	assert.Equal(t, "a semester keeps at least one subject", m.Status())

	m = addSubject(t, m, "Physics", "4", "72")
	m = send(t, m, runes("d"))
	subs := m.Semesters()[0].Subjects
	require.Len(t, subs, 1)
	assert.Equal(t, model.NewSubject(), subs[0])

	m = send(t, m, runes("u"))
	subs = m.Semesters()[0].Subjects
	require.Len(t, subs, 2)
	assert.Equal(t, "Physics", subs[1].Name)

	m = send(t, m, runes("u"))
	assert.Equal(t, "nothing to undo", m.Status())
}

func TestDeleteWithEmptyFilter(t *testing.T) {
	m := New(Options{Mode: ModeSGPA})
	m = addSubject(t, m, "Physics", "4", "72")
	m.list.SetFilterText("zzz")
	require.Equal(t, -1, m.Cursor())

	m = send(t, m, runes("d"))
	assert.Equal(t, "nothing selected", m.Status())
	assert.Len(t, m.Semesters()[0].Subjects, 2)
}

func TestSGPAModeIgnoresSemesterKeys(t *testing.T) {
	m := New(Options{Mode: ModeSGPA, Semesters: []model.Semester{model.NewSemester(1), model.NewSemester(2)}})
	require.Len(t, m.Semesters(), 1)
	m = send(t, m, runes("n"))
	assert.Len(t, m.Semesters(), 1)
}

func TestCGPAFlow(t *testing.T) {
	m := New(Options{Mode: ModeCGPA, Precision: 2})
	m = send(t, m, runes("e"), runes("Math"), tab, tab, runes("85"), enter)
	m = addSubject(t, m, "Physics", "4", "30")

	m = send(t, m, runes("n"))
	assert.Equal(t, 1, m.Current())
	m = send(t, m, runes("e"), runes("Algorithms"), tab, tab, runes("91"), enter)

	m = send(t, m, runes("["))
	assert.Equal(t, 0, m.Current())
	m = send(t, m, runes("]"), runes("]"))
	assert.Equal(t, 1, m.Current())

	m = send(t, m, enter)
	r, ok := m.Result()
	require.True(t, ok)
	require.Len(t, r.Semesters, 2)
	assert.Equal(t, 10, r.TotalCredits)
	assert.InDelta(t, gpa.ProgramAverageDirect(m.Semesters()), r.Average, gpa.Tolerance)
	assert.InDelta(t, (10.8+12.0)/10, r.Average, 1e-12)
	assert.Contains(t, m.View(), "Semester 2")
}

func TestRemoveSemesterRenumbers(t *testing.T) {
	m := New(Options{Mode: ModeCGPA})
	m = send(t, m, runes("x"))
	assert.Equal(t, "at least one semester is required", m.Status())

	m = send(t, m, runes("n"), runes("n"))
	require.Len(t, m.Semesters(), 3)
	m = send(t, m, runes("["), runes("x"))

	sems := m.Semesters()
	require.Len(t, sems, 2)
	assert.Equal(t, 1, sems[0].Number)
	assert.Equal(t, 2, sems[1].Number)
	assert.Equal(t, 1, m.Current())
}

func TestReset(t *testing.T) {
	m := New(Options{Mode: ModeCGPA})
	m = addSubject(t, m, "Physics", "4", "72")
	m = send(t, m, runes("n"), runes("c"), runes("r"))

	sems := m.Semesters()
	require.Len(t, sems, 1)
	assert.Equal(t, model.NewSemester(1), sems[0])
	_, ok := m.Result()
	assert.False(t, ok)
}

func TestQuit(t *testing.T) {
	m := New(Options{Mode: ModeSGPA})
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowResize(t *testing.T) {
	m := New(Options{Mode: ModeSGPA})
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.NotEmpty(t, m.View())
}

func TestParseInput(t *testing.T) {
	assert.Equal(t, 3, ParseCredits(" 3 "))
	assert.Equal(t, 0, ParseCredits("3.5"))
	assert.Equal(t, 0, ParseCredits("-4"))
	assert.Equal(t, MaxCredits, ParseCredits("11"))

	assert.Equal(t, 72.5, ParseMarks("72.5"))
	assert.Equal(t, 0.0, ParseMarks(""))
	assert.Equal(t, 0.0, ParseMarks("NaN"))
	assert.Equal(t, 0.0, ParseMarks("-3"))
	assert.Equal(t, MaxMarks, ParseMarks("101"))
}
