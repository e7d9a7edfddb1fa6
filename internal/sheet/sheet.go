// Package sheet reads grade sheets supplied on the command line and writes
// computed reports. Sheets are input only; nothing typed into the forms is
// stored.
package sheet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/gpa/internal/gpa"
	"github.com/Makepad-fr/gpa/internal/model"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrEmpty is returned for a sheet with no subjects, semesters or terms.
var ErrEmpty = errors.New("sheet: no subjects, semesters or terms")

// ErrMixed is returned when a top-level subjects list sits next to
// semesters; the subjects would have no semester number of their own.
var ErrMixed = errors.New("sheet: use either a top-level subjects list or semesters, not both")

// Sheet is a decoded document. A top-level subjects list is folded into a
// single semester by Parse, so callers only see Semesters and Terms.
type Sheet struct {
	Semesters []model.Semester `json:"semesters,omitempty" yaml:"semesters,omitempty"`
	Subjects  []model.Subject  `json:"subjects,omitempty" yaml:"subjects,omitempty"`
	Terms     []gpa.Term       `json:"terms,omitempty" yaml:"terms,omitempty"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("sheet: unsupported file type %q (want .json, .yaml or .yml)", filepath.Ext(path))
}

// Load reads and parses the sheet at path.
func Load(path string) (Sheet, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Sheet{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("sheet: read file: %w", err)
	}
	return Parse(b, f)
}

// Parse decodes data. Unknown fields are rejected so typos surface early.
func Parse(data []byte, f Format) (Sheet, error) {
	var sh Sheet
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&sh); err != nil && !errors.Is(err, io.EOF) {
			return Sheet{}, fmt.Errorf("sheet: json unmarshal: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&sh); err != nil && !errors.Is(err, io.EOF) {
			return Sheet{}, fmt.Errorf("sheet: yaml unmarshal: %w", err)
		}
	default:
		return Sheet{}, fmt.Errorf("sheet: unknown format %q", f)
	}
	return normalize(sh)
}

func normalize(sh Sheet) (Sheet, error) {
	if len(sh.Subjects) > 0 && len(sh.Semesters) > 0 {
		return Sheet{}, ErrMixed
	}
	if len(sh.Subjects) > 0 {
		sh.Semesters = append([]model.Semester{{Subjects: sh.Subjects}}, sh.Semesters...)
		sh.Subjects = nil
	}
	if len(sh.Semesters) == 0 && len(sh.Terms) == 0 {
		return Sheet{}, ErrEmpty
	}
	seen := make(map[int]bool, len(sh.Semesters))
	for i := range sh.Semesters {
		if sh.Semesters[i].Number == 0 {
			sh.Semesters[i].Number = i + 1
		}
		n := sh.Semesters[i].Number
		if seen[n] {
			return Sheet{}, fmt.Errorf("sheet: semester %d appears more than once", n)
		}
		seen[n] = true
	}
	return sh, nil
}

// ParseSubjectFlag parses "name:credits:marks". The name may be empty or
// contain colons; the last two fields must be numbers.
func ParseSubjectFlag(s string) (model.Subject, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 {
		return model.Subject{}, fmt.Errorf("subject %q: want name:credits:marks", s)
	}
	n := len(parts)
	credits, err := strconv.Atoi(strings.TrimSpace(parts[n-2]))
	if err != nil {
		return model.Subject{}, fmt.Errorf("subject %q: credits: %w", s, err)
	}
	marks, err := strconv.ParseFloat(strings.TrimSpace(parts[n-1]), 64)
	if err != nil {
		return model.Subject{}, fmt.Errorf("subject %q: marks: %w", s, err)
	}
	if math.IsNaN(marks) || math.IsInf(marks, 0) {
		return model.Subject{}, fmt.Errorf("subject %q: marks must be a finite number", s)
	}
	return model.Subject{
		Name:        strings.TrimSpace(strings.Join(parts[:n-2], ":")),
		CreditHours: credits,
		Marks:       marks,
	}, nil
}

// ParseTermFlag parses "sgpa:credits", e.g. "3.10:18".
func ParseTermFlag(s string) (gpa.Term, error) {
	avg, credits, ok := strings.Cut(s, ":")
	if !ok {
		return gpa.Term{}, fmt.Errorf("term %q: want sgpa:credits", s)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(avg), 64)
	if err != nil {
		return gpa.Term{}, fmt.Errorf("term %q: sgpa: %w", s, err)
	}
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return gpa.Term{}, fmt.Errorf("term %q: sgpa must be a finite number", s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(credits))
	if err != nil {
		return gpa.Term{}, fmt.Errorf("term %q: credits: %w", s, err)
	}
	return gpa.Term{Average: a, Credits: c}, nil
}

// WriteReport encodes v as indented JSON or YAML.
func WriteReport(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("sheet: json marshal: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(b)); err != nil {
			return fmt.Errorf("sheet: write: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("sheet: yaml marshal: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("sheet: unknown format %q", f)
}
