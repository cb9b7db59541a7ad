package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/bjaus/mufmt/internal/casefile"
	"github.com/bjaus/mufmt/internal/report"
)

// ErrCasesFailed is returned by "mufmt cases" when any case fails.
var ErrCasesFailed = errors.New("cases failed")

const resultColumn = 6

// fileResult is one case outcome in structured reports.
type fileResult struct {
	File            string `json:"file" yaml:"file"`
	casefile.Result `yaml:",inline"`
}

func newCasesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cases [flags] FILE...",
		Short: "Run YAML case files against the engine",
		Long: `Cases loads every FILE, renders each case and compares the output and the
returned count with the expectation. The command fails when any case does.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := cmd.Flags().GetInt("jobs")
			if err != nil {
				return fmt.Errorf("failed to get jobs flag: %w", err)
			}
			failuresOnly, err := cmd.Flags().GetBool("failures")
			if err != nil {
				return fmt.Errorf("failed to get failures flag: %w", err)
			}
			return a.runCases(cmd.Context(), args, jobs, failuresOnly)
		},
	}
	addReportFlag(cmd)
	cmd.Flags().IntP("jobs", "j", 0, "case files loaded in parallel (0 = GOMAXPROCS)")
	cmd.Flags().Bool("failures", false, "report failing cases only")
	return cmd
}

func (a *app) runCases(ctx context.Context, paths []string, jobs int, failuresOnly bool) error {
	loaded, err := loadCaseFiles(ctx, paths, jobs)
	if err != nil {
		return err
	}

	var results []fileResult
	total, failed := 0, 0
	for i, cases := range loaded {
		a.log.Debug().Str("file", paths[i]).Int("cases", len(cases)).Msg("case file loaded")
		for _, r := range casefile.RunAll(cases) {
			total++
			if !r.Pass {
				failed++
				a.log.Info().Str("file", paths[i]).Str("case", r.Case.Name).
					Str("want", r.Case.Want).Str("got", r.Got).Msg("case failed")
			}
			if failuresOnly && r.Pass {
				continue
			}
			results = append(results, fileResult{File: paths[i], Result: r})
		}
	}

	if err := a.writeReport(a.casesSheet(results, total, failed)); err != nil {
		return err
	}
	a.log.Info().Int("total", total).Int("failed", failed).Msg("cases done")
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCasesFailed, failed, total)
	}
	return nil
}

// loadCaseFiles loads paths concurrently, keeping their order.
func loadCaseFiles(ctx context.Context, paths []string, jobs int) ([][]casefile.Case, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	loaded := make([][]casefile.Case, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cases, err := casefile.Load(path)
			if err != nil {
				return err
			}
			loaded[i] = cases
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return loaded, nil
}

func (a *app) casesSheet(results []fileResult, total, failed int) report.Sheet {
	sheet := report.Sheet{
		Title:   "mufmt cases",
		Header:  []string{"File", "Case", "Format", "Args", "Want", "Got", "Result"},
		Rows:    make([][]string, len(results)),
		Footer:  []string{"", "", "", "", "", "", fmt.Sprintf("%d/%d passed", total-failed, total)},
		Records: make([]any, len(results)),
	}
	for i, r := range results {
		status := "PASS"
		if !r.Pass {
			status = "FAIL"
		}
		sheet.Rows[i] = []string{
			r.File, r.Case.Name, strconv.Quote(r.Case.Format), r.Case.ArgList(),
			strconv.Quote(r.Case.Want), strconv.Quote(r.Got), status,
		}
		sheet.Records[i] = r
	}

	pass := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)
	if a.colorEnabled() {
		pass.EnableColor()
		fail.EnableColor()
	} else {
		pass.DisableColor()
		fail.DisableColor()
	}
	sheet.Style = func(row, col int, cell string) string {
		if col != resultColumn {
			return cell
		}
		if results[row].Pass {
			return pass.Sprint(cell)
		}
		return fail.Sprint(cell)
	}
	return sheet
}

// colorEnabled resolves the color mode; auto colors only a terminal stdout.
func (a *app) colorEnabled() bool {
	switch a.opts.Color {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := a.stdout.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) writeReport(sheet report.Sheet) error {
	f, err := report.ParseFormat(a.opts.Report)
	if err != nil {
		return err
	}
	return report.Write(a.stdout, f, sheet)
}
