package gpa

// Tone names the colour a band is displayed in.
type Tone string

const (
	ToneGood Tone = "good"
	ToneInfo Tone = "info"
	ToneWarn Tone = "warn"
	ToneBad  Tone = "bad"
)

// Interpretation is a qualitative band over averages; Min and Max are both
// inclusive.
type Interpretation struct {
	Label       string  `json:"label" yaml:"label"`
	Description string  `json:"description" yaml:"description"`
	Min         float64 `json:"min" yaml:"min"`
	Max         float64 `json:"max" yaml:"max"`
	Tone        Tone    `json:"-" yaml:"-"`
}

// Interpretations are checked in this order; first match wins.
var Interpretations = []Interpretation{
	{Label: "Distinction", Description: "Outstanding Performance", Min: 3.6, Max: 4.0, Tone: ToneGood},
	{Label: "First Division", Description: "Excellent Performance", Min: 3.0, Max: 3.59, Tone: ToneInfo},
	{Label: "Second Division", Description: "Good Performance", Min: 2.0, Max: 2.99, Tone: ToneWarn},
	{Label: "Fail", Description: "Below Passing Grade", Min: 0.0, Max: 1.99, Tone: ToneBad},
}

// Interpret returns the band containing avg. The second result is false
// when no band matches (negative values, values above 4.0, and values that
// fall between two bands such as 3.595); that is not an error.
func Interpret(avg float64) (Interpretation, bool) {
	for _, in := range Interpretations {
		if avg >= in.Min && avg <= in.Max {
			return in, true
		}
	}
	return Interpretation{}, false
}
