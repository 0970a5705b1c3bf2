package normalize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/compozy/minmax/cli/helpers"
	"github.com/compozy/minmax/engine/minmax"
	"github.com/compozy/minmax/engine/report"
	"github.com/compozy/minmax/pkg/config"
	"github.com/compozy/minmax/pkg/logger"
)

// ExampleValues are apple weights in grams, normalized when no input is given.
var ExampleValues = []float64{50.0, 150.0, 300.0}

// Options controls a single normalization run.
type Options struct {
	DryRun bool
	Print  bool
}

// Runner builds, persists and presents a report.
type Runner struct {
	fs afero.Fs
}

// NewRunner returns a Runner on fs, or on the OS filesystem when fs is nil.
func NewRunner(fs afero.Fs) *Runner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Runner{fs: fs}
}

// Run builds the report for values and, unless DryRun is set, saves it into
// the configured directory.
func (r *Runner) Run(ctx context.Context, out io.Writer, values []float64, opts Options) error {
	cfg := config.FromContext(ctx)
	log := logger.FromContext(ctx)
	rep, err := report.NewBuilder(report.WithAuthor(cfg.Report.Author)).Build(values)
	if err != nil {
		return err
	}
	log.Debug("report built", "values", len(values), "has_stats", rep.Data.Stats != nil)
	if opts.Print {
		data, err := rep.JSON(cfg.Report.Indent)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := helpers.WriteJSON(out, data); err != nil {
			return err
		}
	}
	if opts.DryRun {
		helpers.PrintSuccess(out, "Normalización completada con éxito (sin guardar)")
		return nil
	}
	store := report.NewStore(
		r.fs,
		report.WithFileName(cfg.Report.FileName),
		report.WithIndent(cfg.Report.Indent),
	)
	path, err := store.Save(ctx, rep, cfg.Report.Dir)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve report path: %w", err)
	}
	helpers.PrintSuccess(out, "Normalización completada con éxito")
	helpers.PrintInfo(out, "Reporte generado en: "+abs)
	return nil
}

// Show loads a saved report from path and writes it as JSON.
func (r *Runner) Show(ctx context.Context, out io.Writer, path string) error {
	cfg := config.FromContext(ctx)
	rep, err := report.NewStore(r.fs).Load(ctx, path)
	if err != nil {
		return err
	}
	data, err := rep.JSON(cfg.Report.Indent)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return helpers.WriteJSON(out, data)
}

// NewNormalizeCommand creates the normalize command backed by the OS filesystem.
func NewNormalizeCommand() *cobra.Command {
	return NewNormalizeCommandWithFs(nil)
}

// NewNormalizeCommandWithFs creates the normalize command on the given filesystem.
func NewNormalizeCommandWithFs(fs afero.Fs) *cobra.Command {
	runner := NewRunner(fs)
	var (
		input  string
		show   string
		values []float64
		opts   Options
	)
	cmd := &cobra.Command{
		Use:   "normalize [values...]",
		Short: "Normalize a numeric sequence and write a report",
		Long: `Scale a numeric sequence into [0, 1] with min-max normalization and write a
JSON report with the original values, the normalized values and summary statistics.

Values are read from exactly one of: positional arguments, --values, or --input
(a JSON or YAML list, or an object with a "values" list; "-" reads stdin).
Without any of them the built-in example [50, 150, 300] is used.
Positional values that start with a minus sign must follow "--".

--show prints a previously saved report instead of computing a new one.`,
		Example: `  minmax normalize 50 150 300
  minmax normalize -- -5 3 12
  minmax normalize --values 1.5,2,9 --dry-run --print
  minmax normalize --input weights.json --output-dir reports
  minmax normalize --show data/reporte_normalizacion.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if show != "" {
				if input != "" || len(args) > 0 || cmd.Flags().Changed("values") {
					return errShowWithInput
				}
				return runner.Show(cmd.Context(), cmd.OutOrStdout(), show)
			}
			seq, err := resolveValues(cmd, runner.fs, args, input, values)
			if err != nil {
				return err
			}
			return runner.Run(cmd.Context(), cmd.OutOrStdout(), seq, opts)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "Read values from a JSON or YAML file (\"-\" for stdin)")
	cmd.Flags().Float64SliceVar(&values, "values", nil, "Comma separated values to normalize")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Build the report without saving it")
	cmd.Flags().BoolVar(&opts.Print, "print", false, "Write the report JSON to stdout")
	cmd.Flags().StringVar(&show, "show", "", "Print a saved report instead of normalizing")
	cmd.SetFlagErrorFunc(negativeValueHint)
	return cmd
}

var (
	errAmbiguousInput = errors.New("only one of --input, --values or positional values may be used")
	errShowWithInput  = errors.New("--show cannot be combined with --input, --values or positional values")
)

var shorthandToken = regexp.MustCompile(`in (-\S+)$`)

// negativeValueHint explains how to pass a negative positional value that
// was parsed as a shorthand flag.
func negativeValueHint(_ *cobra.Command, err error) error {
	m := shorthandToken.FindStringSubmatch(err.Error())
	if m == nil {
		return err
	}
	if _, perr := strconv.ParseFloat(m[1], 64); perr != nil {
		return err
	}
	return fmt.Errorf("%w; negative values must follow \"--\", e.g. minmax normalize -- %s", err, m[1])
}

func resolveValues(cmd *cobra.Command, fs afero.Fs, args []string, input string, values []float64) ([]float64, error) {
	sources := 0
	if input != "" {
		sources++
	}
	if cmd.Flags().Changed("values") {
		sources++
	}
	if len(args) > 0 {
		sources++
	}
	if sources > 1 {
		return nil, errAmbiguousInput
	}
	switch {
	case input != "":
		data, err := readInput(cmd, fs, input)
		if err != nil {
			return nil, err
		}
		return minmax.Decode(data)
	case cmd.Flags().Changed("values"):
		return values, nil
	case len(args) > 0:
		return minmax.ParseStrings(args)
	default:
		return ExampleValues, nil
	}
}

func readInput(cmd *cobra.Command, fs afero.Fs, input string) ([]byte, error) {
	if input == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := afero.ReadFile(fs, input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", input, err)
	}
	return data, nil
}
