// Package grade maps percentage marks to letter grades and grade points
// on the TU / PU / KU scale.
package grade

import "fmt"

// Letter is a letter grade such as "A+" or "F".
type Letter string

const (
	APlus Letter = "A+"
	A     Letter = "A"
	BPlus Letter = "B+"
	B     Letter = "B"
	CPlus Letter = "C+"
	C     Letter = "C"
	F     Letter = "F"
)

// Failed reports whether the letter carries no grade point.
func (l Letter) Failed() bool { return l == F }

// Band is one step of the scale: marks >= Min earn Letter and Point.
type Band struct {
	Min    float64
	Letter Letter
	Point  float64
}

// Table is ordered high to low; the first band whose Min is reached wins.
var Table = []Band{
	{Min: 90, Letter: APlus, Point: 4.0},
	{Min: 80, Letter: A, Point: 3.6},
	{Min: 70, Letter: BPlus, Point: 3.2},
	{Min: 60, Letter: B, Point: 2.8},
	{Min: 50, Letter: CPlus, Point: 2.4},
	{Min: 40, Letter: C, Point: 2.0},
}

// Fail is returned for anything below the lowest band (NaN included).
var Fail = Band{Min: 0, Letter: F, Point: 0.0}

// Lookup returns the band for marks. It is total: values above 100 land in
// A+ and negatives in F; nothing is rejected.
func Lookup(marks float64) Band {
	for _, b := range Table {
		if marks >= b.Min {
			return b
		}
	}
	return Fail
}

// PointOf returns the grade point earned by marks.
func PointOf(marks float64) float64 { return Lookup(marks).Point }

// LetterOf returns the letter grade earned by marks.
func LetterOf(marks float64) Letter { return Lookup(marks).Letter }

// Letters lists every letter in display order, best first.
func Letters() []Letter {
	out := make([]Letter, 0, len(Table)+1)
	for _, b := range Table {
		out = append(out, b.Letter)
	}
	return append(out, F)
}

// PointForLetter returns the grade point for a letter.
func PointForLetter(l Letter) (float64, bool) {
	if l == F {
		return Fail.Point, true
	}
	for _, b := range Table {
		if b.Letter == l {
			return b.Point, true
		}
	}
	return 0, false
}

// Bands returns the table with the fail band appended.
func Bands() []Band {
	out := make([]Band, 0, len(Table)+1)
	out = append(out, Table...)
	return append(out, Fail)
}

// Range renders the mark range of the i-th entry of Bands, e.g. "80 – <90".
func Range(i int) string {
	switch {
	case i <= 0:
		return fmt.Sprintf("%g – 100", Table[0].Min)
	case i >= len(Table):
		return fmt.Sprintf("< %g", Table[len(Table)-1].Min)
	default:
		return fmt.Sprintf("%g – <%g", Table[i].Min, Table[i-1].Min)
	}
}
