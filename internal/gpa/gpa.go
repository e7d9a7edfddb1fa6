// Package gpa turns marks into SGPA and CGPA. Everything here is a pure
// function of its input; summaries are fresh snapshots on every call.
package gpa

import (
	"math"

	"github.com/Makepad-fr/gpa/internal/grade"
	"github.com/Makepad-fr/gpa/internal/model"
)

// Tolerance bounds the disagreement between the two CGPA methods.
const Tolerance = 1e-9

func weighted(sum float64, credits int) float64 {
	if credits == 0 {
		return 0
	}
	return sum / float64(credits)
}

// SemesterAverage is Σ(point × credits) / Σ(credits). Failed subjects add
// their credits with a point of 0. No credits means 0.
func SemesterAverage(subjects []model.Subject) float64 {
	var sum float64
	var credits int
	for _, s := range subjects {
		sum += grade.PointOf(s.Marks) * float64(s.CreditHours)
		credits += s.CreditHours
	}
	return weighted(sum, credits)
}

// TotalCredits sums credit hours, failed subjects included.
func TotalCredits(subjects []model.Subject) int {
	n := 0
	for _, s := range subjects {
		n += s.CreditHours
	}
	return n
}

// Term is a semester reduced to its SGPA and credit total.
type Term struct {
	Average float64 `json:"sgpa" yaml:"sgpa"`
	Credits int     `json:"credits" yaml:"credits"`
}

// TermOf recomputes a semester's SGPA and credits from its subjects.
func TermOf(sem model.Semester) Term {
	return Term{Average: SemesterAverage(sem.Subjects), Credits: TotalCredits(sem.Subjects)}
}

// Cumulative is Σ(SGPA × credits) / Σ(credits) over already reduced terms.
func Cumulative(terms []Term) float64 {
	var sum float64
	var credits int
	for _, t := range terms {
		sum += t.Average * float64(t.Credits)
		credits += t.Credits
	}
	return weighted(sum, credits)
}

// ProgramAverage is the CGPA over semesters. Each semester's credits and
// SGPA are recomputed from its subjects, never read from a cache.
func ProgramAverage(semesters []model.Semester) float64 {
	terms := make([]Term, 0, len(semesters))
	for _, sem := range semesters {
		terms = append(terms, TermOf(sem))
	}
	return Cumulative(terms)
}

// ProgramAverageDirect is the CGPA in one pass over every subject.
func ProgramAverageDirect(semesters []model.Semester) float64 {
	var sum float64
	var credits int
	for _, sem := range semesters {
		for _, s := range sem.Subjects {
			sum += grade.PointOf(s.Marks) * float64(s.CreditHours)
			credits += s.CreditHours
		}
	}
	return weighted(sum, credits)
}

// CrossCheck computes both CGPA methods and reports whether they agree
// within Tolerance.
func CrossCheck(semesters []model.Semester) (twoLevel, direct float64, ok bool) {
	twoLevel = ProgramAverage(semesters)
	direct = ProgramAverageDirect(semesters)
	return twoLevel, direct, math.Abs(twoLevel-direct) <= Tolerance
}

// Grade attaches the letter and point to a subject.
func Grade(s model.Subject) model.GradedSubject {
	b := grade.Lookup(s.Marks)
	return model.GradedSubject{Subject: s, Letter: string(b.Letter), Point: b.Point}
}

// Summarize grades every subject of sem and computes its SGPA.
func Summarize(sem model.Semester) model.SemesterSummary {
	out := model.SemesterSummary{
		Number:       sem.Number,
		Subjects:     make([]model.GradedSubject, 0, len(sem.Subjects)),
		Average:      SemesterAverage(sem.Subjects),
		TotalCredits: TotalCredits(sem.Subjects),
		SubjectCount: len(sem.Subjects),
	}
	for _, s := range sem.Subjects {
		g := Grade(s)
		if grade.Letter(g.Letter).Failed() {
			out.FailedCount++
		}
		out.Subjects = append(out.Subjects, g)
	}
	return out
}

// SummarizeProgram summarizes each semester and the CGPA over all of them.
func SummarizeProgram(semesters []model.Semester) model.ProgramSummary {
	out := model.ProgramSummary{
		Semesters: make([]model.SemesterSummary, 0, len(semesters)),
		Average:   ProgramAverage(semesters),
		Direct:    ProgramAverageDirect(semesters),
	}
	for _, sem := range semesters {
		s := Summarize(sem)
		out.TotalCredits += s.TotalCredits
		out.Semesters = append(out.Semesters, s)
	}
	return out
}
