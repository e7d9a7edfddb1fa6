package cli

import (
	"errors"
	"fmt"
	"io"

	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/gpa/internal/config"
	"github.com/Makepad-fr/gpa/internal/logging"
	"github.com/Makepad-fr/gpa/internal/tui"
	"github.com/Makepad-fr/gpa/internal/ui"
)

var version = "0.1.0"

// runTUI is swapped out in tests.
var runTUI = tui.Run

// exitErr carries an exit code through cobra.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func usageError(format string, args ...any) error { return exitError(2, format, args...) }

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfg       config.Config
	logger    gokitlog.Logger
	out, errw io.Writer

	theme     string
	precision int
	verbose   bool
}

// Run executes the command line and returns an exit code (0 ok, 1 error,
// 2 usage).
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{out: stdout, errw: stderr, logger: logging.Nop()}
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(stderr, err.Error())
	var ee *exitErr
	if errors.As(err, &ee) {
		if ee.code == 2 {
			fmt.Fprintln(stderr, ui.Current().Muted.Render("Hint: run `gpa --help` for usage"))
		}
		return ee.code
	}
	// cobra's own errors are flag and argument problems
	fmt.Fprintln(stderr, ui.Current().Muted.Render("Hint: run `gpa --help` for usage"))
	return 2
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gpa",
		Short: "SGPA and CGPA calculator for the TU / PU / KU grading scale",
		Long: `gpa computes semester (SGPA) and cumulative (CGPA) grade point averages.

Marks are percentages; each subject's grade point is taken from the fixed
scale (see "gpa scale") and weighted by its credit hours. Failed subjects
earn 0.0 but their credit hours still count.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return usageError("missing subcommand")
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.theme, "theme", "", "Colour theme: classic, neon or mono (env GPA_THEME)")
	pf.IntVar(&a.precision, "precision", config.DefaultPrecision, "Decimals shown for averages (env GPA_PRECISION)")
	pf.BoolVar(&a.verbose, "verbose", false, "Log processing steps to stderr")

	root.AddCommand(
		a.newScaleCmd(),
		a.newGradeCmd(),
		a.newSGPACmd(),
		a.newCGPACmd(),
		a.newInterpretCmd(),
		a.newSchemaCmd(),
	)
	return root
}

// setup resolves env config, then lets explicit flags win.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Load()
	if cmd.Flags().Changed("theme") {
		a.cfg.Theme = a.theme
	}
	if cmd.Flags().Changed("precision") {
		if a.precision < 0 || a.precision > config.MaxPrecision {
			return usageError("--precision must be between 0 and %d", config.MaxPrecision)
		}
		a.cfg.Precision = a.precision
	}
	if a.verbose {
		a.cfg.LogLevel = "debug"
	}
	ui.SetTheme(a.cfg.Theme)
	a.logger = logging.New(a.errw, a.cfg.LogLevel)
	_ = level.Debug(a.logger).Log("msg", "starting", "command", cmd.Name(),
		"theme", a.cfg.Theme, "precision", a.cfg.Precision)
	return nil
}

func (a *app) panel(lines []string) {
	fmt.Fprintln(a.out, ui.Panel(lines))
}
