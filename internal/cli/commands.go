package cli

import (
	"fmt"
	"strconv"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/gpa/internal/gpa"
	"github.com/Makepad-fr/gpa/internal/grade"
	"github.com/Makepad-fr/gpa/internal/model"
	"github.com/Makepad-fr/gpa/internal/sheet"
	"github.com/Makepad-fr/gpa/internal/tui"
	"github.com/Makepad-fr/gpa/internal/ui"
)

func (a *app) newScaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale",
		Short: "Print the grading scale and GPA interpretation bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.panel(ui.ScaleLines())
			return nil
		},
	}
}

func (a *app) newGradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "grade <marks...>",
		Short:   "Convert percentage marks to letter grades and grade points",
		Example: "  gpa grade 89.99 90 39.5",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			marks := make([]float64, 0, len(args))
			for _, s := range args {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return usageError("grade: not a number: %s", s)
				}
				marks = append(marks, v)
			}
			t := ui.Current()
			for _, v := range marks {
				b := grade.Lookup(v)
				line := fmt.Sprintf("%6g%%  %-2s  %.1f", v, b.Letter, b.Point)
				if b.Letter.Failed() {
					line = t.Bad.Render(line)
				}
				fmt.Fprintln(a.out, line)
			}
			return nil
		},
	}
}

type inputFlags struct {
	file     string
	subjects []string
	terms    []string
	output   string
	check    bool
}

func (f *inputFlags) format() (sheet.Format, bool, error) {
	switch f.output {
	case "", "text":
		return "", false, nil
	case "json":
		return sheet.FormatJSON, true, nil
	case "yaml", "yml":
		return sheet.FormatYAML, true, nil
	}
	return "", false, usageError("--output must be text, json or yaml, got %q", f.output)
}

func (a *app) newSGPACmd() *cobra.Command {
	f := &inputFlags{}
	cmd := &cobra.Command{
		Use:   "sgpa",
		Short: "Compute the SGPA of one semester",
		Long: `Compute the SGPA of one semester.

Subjects come from --file (JSON or YAML) and/or repeated --subject flags.
With neither, an interactive form opens.`,
		Example: `  gpa sgpa --subject Math:3:85 --subject Physics:4:72 --subject English:2:65
  gpa sgpa --file examples/semester1.json --output json
  gpa sgpa`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSGPA(f)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "Grade sheet (.json, .yaml or .yml)")
	flags.StringArrayVarP(&f.subjects, "subject", "s", nil, "Subject as name:credits:marks (repeatable)")
	flags.StringVarP(&f.output, "output", "o", "text", "Output format: text, json or yaml")
	return cmd
}

func (a *app) runSGPA(f *inputFlags) error {
	format, structured, err := f.format()
	if err != nil {
		return err
	}

	var sem model.Semester
	if f.file != "" {
		sh, err := a.loadSheet(f.file)
		if err != nil {
			return err
		}
		switch {
		case len(sh.Semesters) > 1:
			return usageError("sgpa: %s holds %d semesters; use `gpa cgpa`", f.file, len(sh.Semesters))
		case len(sh.Semesters) == 0:
			return usageError("sgpa: %s holds no subjects", f.file)
		}
		sem = sh.Semesters[0]
	}
	for _, raw := range f.subjects {
		s, err := sheet.ParseSubjectFlag(raw)
		if err != nil {
			return usageError("%v", err)
		}
		sem.Subjects = append(sem.Subjects, s)
	}
	if sem.Number == 0 {
		sem.Number = 1
	}

	if len(sem.Subjects) == 0 {
		return a.interactive(tui.ModeSGPA)
	}

	summary := gpa.Summarize(sem)
	_ = level.Info(a.logger).Log("msg", "computed sgpa", "sgpa", summary.Average,
		"credits", summary.TotalCredits, "subjects", summary.SubjectCount, "failed", summary.FailedCount)
	if structured {
		return a.report(format, summary)
	}
	a.panel(ui.SemesterReport(summary, a.cfg.Precision))
	return nil
}

func (a *app) newCGPACmd() *cobra.Command {
	f := &inputFlags{}
	cmd := &cobra.Command{
		Use:   "cgpa",
		Short: "Compute the CGPA across semesters",
		Long: `Compute the CGPA across semesters.

Semesters come from --file; alternatively give each semester's SGPA and
credit total with repeated --term flags. With neither, an interactive form
opens. --check recomputes the CGPA in a single pass over every subject and
fails when the two results disagree.`,
		Example: `  gpa cgpa --file examples/transcript.yaml --check
  gpa cgpa --term 3.10:18 --term 3.40:20 --term 3.00:19
  gpa cgpa`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCGPA(f)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "Transcript (.json, .yaml or .yml)")
	flags.StringArrayVarP(&f.terms, "term", "t", nil, "Semester as sgpa:credits (repeatable)")
	flags.StringVarP(&f.output, "output", "o", "text", "Output format: text, json or yaml")
	flags.BoolVar(&f.check, "check", false, "Cross-check against the flattened single-pass CGPA")
	return cmd
}

func (a *app) runCGPA(f *inputFlags) error {
	format, structured, err := f.format()
	if err != nil {
		return err
	}

	var sh sheet.Sheet
	if f.file != "" {
		if sh, err = a.loadSheet(f.file); err != nil {
			return err
		}
	}
	for _, raw := range f.terms {
		t, err := sheet.ParseTermFlag(raw)
		if err != nil {
			return usageError("%v", err)
		}
		sh.Terms = append(sh.Terms, t)
	}

	switch {
	case len(sh.Semesters) > 0 && len(sh.Terms) > 0:
		return usageError("cgpa: give either subject-level semesters or terms, not both")
	case len(sh.Terms) > 0:
		if f.check {
			return usageError("cgpa: --check needs subject-level semesters")
		}
		return a.termsResult(sh.Terms, format, structured)
	case len(sh.Semesters) == 0:
		return a.interactive(tui.ModeCGPA)
	}

	summary := gpa.SummarizeProgram(sh.Semesters)
	_ = level.Info(a.logger).Log("msg", "computed cgpa", "cgpa", summary.Average,
		"direct", summary.Direct, "credits", summary.TotalCredits, "semesters", len(summary.Semesters))

	if structured {
		if err := a.report(format, summary); err != nil {
			return err
		}
	} else {
		a.panel(ui.ProgramReport(summary, a.cfg.Precision))
	}

	if f.check {
		two, direct, ok := gpa.CrossCheck(sh.Semesters)
		_ = level.Debug(a.logger).Log("msg", "cross-check", "two_level", two, "direct", direct, "ok", ok)
		if !ok {
			return exitError(1, "cross-check failed: two-level %v, direct %v", two, direct)
		}
		if !structured {
			ui.OK(a.out, fmt.Sprintf("cross-check passed (direct CGPA %s)", ui.FormatGPA(direct, a.cfg.Precision)))
		}
	}
	return nil
}

func (a *app) termsResult(terms []gpa.Term, format sheet.Format, structured bool) error {
	cgpa := gpa.Cumulative(terms)
	_ = level.Info(a.logger).Log("msg", "computed cgpa from terms", "cgpa", cgpa, "terms", len(terms))
	if structured {
		credits := 0
		for _, t := range terms {
			credits += t.Credits
		}
		return a.report(format, struct {
			Terms        []gpa.Term `json:"terms" yaml:"terms"`
			Average      float64    `json:"cgpa" yaml:"cgpa"`
			TotalCredits int        `json:"total_credits" yaml:"total_credits"`
		}{terms, cgpa, credits})
	}
	a.panel(ui.TermsReport(terms, a.cfg.Precision))
	return nil
}

func (a *app) newInterpretCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interpret <average>",
		Short:   "Show the qualitative band for a GPA",
		Example: "  gpa interpret 3.8\n  gpa interpret -- -1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return usageError("interpret: not a number: %s", args[0])
			}
			in, ok := gpa.Interpret(v)
			if !ok {
				fmt.Fprintln(a.out, ui.Current().Muted.Render("no interpretation available"))
				return nil
			}
			fmt.Fprintf(a.out, "%s - %s\n", ui.ToneStyle(in.Tone).Bold(true).Render(in.Label), in.Description)
			return nil
		},
	}
}

func (a *app) newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of grade sheet files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sheet.WriteSchema(a.out); err != nil {
				return exitError(1, "schema: %v", err)
			}
			return nil
		},
	}
}

func (a *app) loadSheet(path string) (sheet.Sheet, error) {
	_ = level.Debug(a.logger).Log("msg", "loading sheet", "path", path)
	sh, err := sheet.Load(path)
	if err != nil {
		return sheet.Sheet{}, exitError(1, "load: %v", err)
	}
	_ = level.Debug(a.logger).Log("msg", "sheet loaded", "semesters", len(sh.Semesters), "terms", len(sh.Terms))
	return sh, nil
}

func (a *app) report(format sheet.Format, v any) error {
	if err := sheet.WriteReport(a.out, format, v); err != nil {
		return exitError(1, "output: %v", err)
	}
	return nil
}

// interactive opens the form and prints the last result on quit.
func (a *app) interactive(mode tui.Mode) error {
	_ = level.Debug(a.logger).Log("msg", "opening form", "mode", mode)
	res, err := runTUI(tui.Options{Mode: mode, Precision: a.cfg.Precision})
	if err != nil {
		return exitError(1, "tui: %v", err)
	}
	if !res.Calculated {
		return nil
	}
	if mode == tui.ModeSGPA && len(res.Summary.Semesters) > 0 {
		a.panel(ui.SemesterReport(res.Summary.Semesters[0], a.cfg.Precision))
	} else {
		a.panel(ui.ProgramReport(res.Summary, a.cfg.Precision))
	}
	return nil
}
