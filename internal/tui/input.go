package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Makepad-fr/gpa/internal/model"
)

// Input bounds mirror the form widgets: the engine itself accepts anything.
const (
	MinCredits = 0
	MaxCredits = 10
	MinMarks   = 0.0
	MaxMarks   = 100.0
)

// ParseCredits reads a whole number of credit hours; junk reads as 0.
func ParseCredits(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return min(max(n, MinCredits), MaxCredits)
}

// ParseMarks reads a percentage; junk reads as 0.
func ParseMarks(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) {
		return 0
	}
	return min(max(f, MinMarks), MaxMarks)
}

const (
	fieldName = iota
	fieldCredits
	fieldMarks
	fieldCount
)

// subjectForm is the inline add/edit form: one textinput per field.
type subjectForm struct {
	active bool
	index  int // row being edited, or -1 when adding
	focus  int
	inputs [fieldCount]textinput.Model
}

func newSubjectForm() subjectForm {
	f := subjectForm{index: -1}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		f.inputs[i] = ti
	}
	f.inputs[fieldName].Placeholder = "e.g., Mathematics"
	f.inputs[fieldName].CharLimit = 80
	f.inputs[fieldCredits].Placeholder = "1-10"
	f.inputs[fieldCredits].CharLimit = 2
	f.inputs[fieldMarks].Placeholder = "0-100"
	f.inputs[fieldMarks].CharLimit = 6
	return f
}

var fieldLabels = [fieldCount]string{"Subject Name", "Credit Hours", "Marks (%)"}

// open loads s into the inputs; index -1 means a new row.
func (f *subjectForm) open(index int, s model.Subject) {
	f.active = true
	f.index = index
	f.inputs[fieldName].SetValue(s.Name)
	f.inputs[fieldCredits].SetValue(strconv.Itoa(s.CreditHours))
	f.inputs[fieldMarks].SetValue("")
	if s.Marks != 0 {
		f.inputs[fieldMarks].SetValue(strconv.FormatFloat(s.Marks, 'f', -1, 64))
	}
	for i := range f.inputs {
		f.inputs[i].CursorEnd()
	}
	f.focusField(fieldName)
}

func (f *subjectForm) close() {
	f.active = false
	f.index = -1
	for i := range f.inputs {
		f.inputs[i].Blur()
		f.inputs[i].SetValue("")
	}
}

func (f *subjectForm) focusField(i int) {
	f.focus = (i + fieldCount) % fieldCount
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

// subject reads the inputs back, clamping the numeric fields.
func (f *subjectForm) subject() model.Subject {
	return model.Subject{
		Name:        strings.TrimSpace(f.inputs[fieldName].Value()),
		CreditHours: ParseCredits(f.inputs[fieldCredits].Value()),
		Marks:       ParseMarks(f.inputs[fieldMarks].Value()),
	}
}
