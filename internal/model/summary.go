package model

// GradedSubject is a subject with its derived letter and grade point.
type GradedSubject struct {
	Subject `yaml:",inline"`
	Letter  string  `json:"grade" yaml:"grade"`
	Point   float64 `json:"grade_point" yaml:"grade_point"`
}

// SemesterSummary is an immutable snapshot of a computed semester.
type SemesterSummary struct {
	Number       int             `json:"number" yaml:"number"`
	Subjects     []GradedSubject `json:"subjects" yaml:"subjects"`
	Average      float64         `json:"sgpa" yaml:"sgpa"`
	TotalCredits int             `json:"total_credits" yaml:"total_credits"`
	SubjectCount int             `json:"subject_count" yaml:"subject_count"`
	FailedCount  int             `json:"failed_count" yaml:"failed_count"`
}

// ProgramSummary is an immutable snapshot across semesters. Direct holds the
// flattened single-pass average and should equal Average up to rounding.
type ProgramSummary struct {
	Semesters    []SemesterSummary `json:"semesters" yaml:"semesters"`
	Average      float64           `json:"cgpa" yaml:"cgpa"`
	Direct       float64           `json:"cgpa_direct" yaml:"cgpa_direct"`
	TotalCredits int               `json:"total_credits" yaml:"total_credits"`
}
