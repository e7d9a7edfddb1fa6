// Package tui is the form-driven calculator: a Bubble Tea program that
// collects subjects per semester and shows SGPA or CGPA on request.
package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/gpa/internal/gpa"
	"github.com/Makepad-fr/gpa/internal/grade"
	"github.com/Makepad-fr/gpa/internal/model"
	"github.com/Makepad-fr/gpa/internal/ui"
)

type Mode int

const (
	ModeSGPA Mode = iota // single semester
	ModeCGPA             // several semesters
)

func (m Mode) String() string {
	if m == ModeCGPA {
		return "cgpa"
	}
	return "sgpa"
}

// Options configure a session.
type Options struct {
	Mode      Mode
	Precision int
	Semesters []model.Semester // optional starting rows
}

// Result is what the session held when it ended.
type Result struct {
	Summary    model.ProgramSummary
	Calculated bool // the user asked for a result at least once after the last edit
}

// subjectItem adapts a subject row to bubbles/list.Item.
type subjectItem struct {
	model.Subject
	pos int // 1-based
}

func (i subjectItem) FilterValue() string { return i.Name }

func (i subjectItem) label() string {
	if i.Name == "" {
		return fmt.Sprintf("Subject %d", i.pos)
	}
	return i.Name
}

// Custom delegate to control how rows render (single line)
type subjectDelegate struct{ precision int }

func (d subjectDelegate) Height() int                               { return 1 }
func (d subjectDelegate) Spacing() int                              { return 0 }
func (d subjectDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d subjectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(subjectItem)
	t := ui.Current()

	line := fmt.Sprintf("%s %2d cr  %6s%%", ui.FitName(it.label(), ui.NameWidth), it.CreditHours,
		strconv.FormatFloat(it.Marks, 'f', d.precision, 64))
	// preview only once marks were entered, as the paper form does
	if it.Marks > 0 {
		b := grade.Lookup(it.Marks)
		preview := fmt.Sprintf("Grade: %s (%.1f GP)", b.Letter, b.Point)
		if b.Letter.Failed() {
			preview = t.Bad.Render(preview)
		} else {
			preview = t.Muted.Render(preview)
		}
		line += "  " + preview
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(t.SymSelected + " ")
	}
	fmt.Fprintln(w, prefix+line)
}

// undoEntry remembers the last deleted row (single-level undo).
type undoEntry struct {
	semester int
	index    int
	subject  model.Subject
}

// Model implements tea.Model.
type Model struct {
	mode      Mode
	precision int
	semesters []model.Semester
	current   int

	list list.Model
	form subjectForm
	undo *undoEntry

	result *model.ProgramSummary
	status string

	width, height int
}

var (
	addBind     = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind    = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	deleteBind  = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	undoBind    = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	calcBind    = key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", "calculate"))
	resetBind   = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset"))
	semAddBind  = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new semester"))
	semDelBind  = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove semester"))
	semPrevBind = key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev semester"))
	semNextBind = key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next semester"))
)

// New builds the initial model.
func New(opts Options) Model {
	sems := make([]model.Semester, 0, len(opts.Semesters))
	for i, s := range opts.Semesters {
		if len(s.Subjects) == 0 {
			s.Subjects = []model.Subject{model.NewSubject()}
		}
		if s.Number == 0 {
			s.Number = i + 1
		}
		sems = append(sems, s)
	}
	if len(sems) == 0 {
		sems = []model.Semester{model.NewSemester(1)}
	}
	if opts.Mode == ModeSGPA {
		sems = sems[:1]
	}

	l := list.New(nil, subjectDelegate{precision: opts.Precision}, 80, 16)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("subject", "subjects")

	binds := []key.Binding{addBind, editBind, deleteBind, undoBind, calcBind, resetBind}
	if opts.Mode == ModeCGPA {
		binds = append(binds, semAddBind, semDelBind, semPrevBind, semNextBind)
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return binds[:5] }
	l.AdditionalFullHelpKeys = func() []key.Binding { return binds }

	m := Model{
		mode:      opts.Mode,
		precision: opts.Precision,
		semesters: sems,
		list:      l,
		form:      newSubjectForm(),
		width:     80,
		height:    24,
	}
	m.syncList(0)
	return m
}

// Semesters returns a copy of the rows currently entered.
func (m Model) Semesters() []model.Semester {
	out := make([]model.Semester, len(m.semesters))
	copy(out, m.semesters)
	return out
}

// Current is the index of the semester on screen.
func (m Model) Current() int { return m.current }

// Result is the last calculated summary, if it is still up to date.
func (m Model) Result() (model.ProgramSummary, bool) {
	if m.result == nil {
		return model.ProgramSummary{}, false
	}
	return *m.result, true
}

// Status is the last one-line notice.
func (m Model) Status() string { return m.status }

// Cursor is the selected row of the current semester, counted in the
// unfiltered list; -1 when nothing is selected.
func (m Model) Cursor() int {
	it, ok := m.list.SelectedItem().(subjectItem)
	if !ok {
		return -1
	}
	return it.pos - 1
}

func (m *Model) syncList(selected int) {
	sem := m.semesters[m.current]
	items := make([]list.Item, 0, len(sem.Subjects))
	for i, s := range sem.Subjects {
		items = append(items, subjectItem{Subject: s, pos: i + 1})
	}
	m.list.SetItems(items)
	m.list.Select(min(max(selected, 0), len(items)-1))

	title := ui.Current().Title.Render("SGPA Calculator")
	if m.mode == ModeCGPA {
		title = fmt.Sprintf("%s   %s %d/%d",
			ui.Current().Title.Render("CGPA Calculator"),
			ui.Current().Accent.Render("Semester"), sem.Number, len(m.semesters))
	}
	m.list.Title = fmt.Sprintf("%s   %s %d", title, ui.Current().Muted.Render("Credits"), gpa.TotalCredits(sem.Subjects))
}

// edited stores a new version of the current semester and drops any stale
// result.
func (m *Model) edited(sem model.Semester, selected int) {
	sems := make([]model.Semester, len(m.semesters))
	copy(sems, m.semesters)
	sems[m.current] = sem
	m.semesters = sems
	m.result = nil
	m.syncList(selected)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	if m.form.active {
		return m.updateForm(msg)
	}

	// typing into the filter must not trigger shortcuts
	if m.list.SettingFilter() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		m.status = ""
		switch msg.String() {
		case "esc":
			if m.list.IsFiltered() {
				break
			}
			return m, tea.Quit
		case "q", "ctrl+c":
			return m, tea.Quit
		case "a":
			m.form.open(-1, model.NewSubject())
			return m, nil
		case "e":
			i := m.Cursor()
			subs := m.semesters[m.current].Subjects
			if i >= 0 && i < len(subs) {
				m.form.open(i, subs[i])
			}
			return m, nil
		case "d":
			m.deleteSubject(m.Cursor())
			return m, nil
		case "u":
			m.undoDelete()
			return m, nil
		case "c", "enter":
			m.calculate()
			return m, nil
		case "r":
			m.reset()
			return m, nil
		}
		if m.mode == ModeCGPA {
			switch msg.String() {
			case "n":
				m.addSemester()
				return m, nil
			case "x":
				m.removeSemester()
				return m, nil
			case "[":
				m.switchSemester(m.current - 1)
				return m, nil
			case "]":
				m.switchSemester(m.current + 1)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			m.commitForm()
			return m, nil
		case "esc":
			m.form.close()
			return m, nil
		case "tab", "down":
			m.form.focusField(m.form.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.form.focusField(m.form.focus - 1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *Model) commitForm() {
	s := m.form.subject()
	sem := m.semesters[m.current]
	sel := m.Cursor()
	if m.form.index < 0 {
		sel++
		sem = sem.WithSubject(sel, s)
	} else {
		var ok bool
		if sem, ok = sem.WithReplaced(m.form.index, s); !ok {
			m.status = "row no longer exists"
		}
		sel = m.form.index
	}
	m.form.close()
	m.edited(sem, sel)
}

func (m *Model) deleteSubject(i int) {
	if i < 0 {
		m.status = "nothing selected"
		return
	}
	sem := m.semesters[m.current]
	next, ok := sem.WithoutSubject(i)
	if !ok {
		m.status = "a semester keeps at least one subject"
		return
	}
	m.undo = &undoEntry{semester: m.current, index: i, subject: sem.Subjects[i]}
	m.edited(next, i)
}

func (m *Model) undoDelete() {
	if m.undo == nil {
		m.status = "nothing to undo"
		return
	}
	u := *m.undo
	m.undo = nil
	if u.semester >= len(m.semesters) {
		m.status = "semester no longer exists"
		return
	}
	m.current = u.semester
	m.edited(m.semesters[u.semester].WithSubject(u.index, u.subject), u.index)
}

func (m *Model) calculate() {
	var s model.ProgramSummary
	if m.mode == ModeSGPA {
		s = gpa.SummarizeProgram(m.semesters[:1])
	} else {
		s = gpa.SummarizeProgram(m.semesters)
	}
	m.result = &s
}

func (m *Model) reset() {
	m.semesters = []model.Semester{model.NewSemester(1)}
	m.current = 0
	m.undo = nil
	m.result = nil
	m.syncList(0)
}

func (m *Model) addSemester() {
	sems := make([]model.Semester, len(m.semesters), len(m.semesters)+1)
	copy(sems, m.semesters)
	m.semesters = append(sems, model.NewSemester(len(sems)+1))
	m.current = len(m.semesters) - 1
	m.result = nil
	m.syncList(0)
}

// removeSemester drops the visible semester and renumbers the rest.
func (m *Model) removeSemester() {
	if len(m.semesters) <= 1 {
		m.status = "at least one semester is required"
		return
	}
	out := make([]model.Semester, 0, len(m.semesters)-1)
	out = append(out, m.semesters[:m.current]...)
	out = append(out, m.semesters[m.current+1:]...)
	for i := range out {
		out[i].Number = i + 1
	}
	m.semesters = out
	m.current = min(m.current, len(out)-1)
	m.undo = nil
	m.result = nil
	m.syncList(0)
}

func (m *Model) switchSemester(i int) {
	if i < 0 || i >= len(m.semesters) || i == m.current {
		return
	}
	m.current = i
	m.syncList(0)
}

func (m Model) View() string {
	t := ui.Current()
	var extra []string

	if m.form.active {
		title := "Add subject"
		if m.form.index >= 0 {
			title = fmt.Sprintf("Edit subject %d", m.form.index+1)
		}
		rows := []string{t.Title.Render(title)}
		for i := range m.form.inputs {
			label := fieldLabels[i]
			if i == m.form.focus {
				label = t.Accent.Render(label)
			} else {
				label = t.Muted.Render(label)
			}
			rows = append(rows, label, m.form.inputs[i].View())
		}
		rows = append(rows, t.Muted.Render("tab next field • enter save • esc cancel"))
		extra = append(extra, ui.Panel(rows))
	}

	if r, ok := m.Result(); ok {
		lines := ui.ProgramResult(r, m.precision)
		if m.mode == ModeSGPA {
			lines = ui.SemesterResult(r.Semesters[0], m.precision)
		}
		extra = append(extra, ui.Panel(lines))
	}

	if m.status != "" {
		extra = append(extra, t.Warn.Render(m.status))
	}

	used := 0
	for _, e := range extra {
		used += lipgloss.Height(e)
	}
	m.list.SetSize(max(m.width-4, 20), max(m.height-4-used, 5))

	return ui.Panel([]string{m.list.View(), strings.Join(extra, "\n")})
}

// Run starts the program and returns the final state once the user quits.
func Run(opts Options) (Result, error) {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	res := Result{Summary: gpa.SummarizeProgram(fm.semesters)}
	if s, ok := fm.Result(); ok {
		res.Summary, res.Calculated = s, true
	}
	return res, nil
}
