package model

// Subject is one row of a grade sheet. Letter grade and grade point are
// derived from Marks on demand and never stored.
type Subject struct {
	Name        string  `json:"name" yaml:"name"`
	CreditHours int     `json:"credits" yaml:"credits"`
	Marks       float64 `json:"marks" yaml:"marks"` // percentage, 0-100 expected
}

// DefaultCreditHours is the credit load of a freshly added row.
const DefaultCreditHours = 3

// NewSubject returns the blank row the forms start from.
func NewSubject() Subject {
	return Subject{CreditHours: DefaultCreditHours}
}

// Semester is an ordered list of subjects. Its average and credit total are
// always derived; see gpa.Summarize.
type Semester struct {
	Number   int       `json:"number" yaml:"number"`
	Subjects []Subject `json:"subjects" yaml:"subjects"`
}

// NewSemester returns a semester holding one blank subject.
func NewSemester(number int) Semester {
	return Semester{Number: number, Subjects: []Subject{NewSubject()}}
}

// WithSubject returns a copy with s inserted at index i (clamped to the
// valid range).
func (sem Semester) WithSubject(i int, s Subject) Semester {
	if i < 0 {
		i = 0
	}
	if i > len(sem.Subjects) {
		i = len(sem.Subjects)
	}
	out := make([]Subject, 0, len(sem.Subjects)+1)
	out = append(out, sem.Subjects[:i]...)
	out = append(out, s)
	out = append(out, sem.Subjects[i:]...)
	sem.Subjects = out
	return sem
}

// WithoutSubject returns a copy with the subject at i removed. The last
// remaining subject is never removed; ok reports whether anything changed.
func (sem Semester) WithoutSubject(i int) (Semester, bool) {
	if len(sem.Subjects) <= 1 || i < 0 || i >= len(sem.Subjects) {
		return sem, false
	}
	out := make([]Subject, 0, len(sem.Subjects)-1)
	out = append(out, sem.Subjects[:i]...)
	out = append(out, sem.Subjects[i+1:]...)
	sem.Subjects = out
	return sem, true
}

// WithReplaced returns a copy with the subject at i replaced by s. A passed
// re-exam is recorded this way: the latest marks replace the old ones.
func (sem Semester) WithReplaced(i int, s Subject) (Semester, bool) {
	if i < 0 || i >= len(sem.Subjects) {
		return sem, false
	}
	out := make([]Subject, len(sem.Subjects))
	copy(out, sem.Subjects)
	out[i] = s
	sem.Subjects = out
	return sem, true
}
