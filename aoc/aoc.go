// Package aoc runs Advent of Code solvers, first against the sample written
// in each solver's doc comment and then against the real puzzle input.
// (forked from bradfitz/aoc)
package aoc

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"maps"
	"os"
	"os/signal"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without an input uses
// the input of the sample before it.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is embedded (as a pointer) in solver structs. It gives solver
// methods access to the input of the day and part being run.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	ctx     context.Context
	client  *Client
	logger  *zap.SugaredLogger
	solver  partSolver
	samples map[string]sample
}

// Input returns the sample input in sample mode and the real puzzle input
// otherwise.
func (p *Puzzle) Input() ([]byte, error) {
	if p.SampleMode {
		s, err := p.Sample()
		if err != nil {
			return nil, err
		}
		return []byte(s.input), nil
	}
	return p.client.Input(p.ctx, p.year, p.day.day)
}

// Solve runs fn on the puzzle input. The result is fn's answer, or the error
// that prevented one.
func (p *Puzzle) Solve(fn func(input string) (string, error)) any {
	in, err := p.Input()
	if err != nil {
		return err
	}
	p.logger.Debugw("solving", "day", p.day.day, "part", p.solver.Part, "sample", p.SampleMode, "bytes", len(in))
	answer, err := fn(string(in))
	if err != nil {
		return err
	}
	return answer
}

func (p *Puzzle) Sample() (sample, error) {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		return sample, fmt.Errorf("no sample found for %v", p.solver.Name)
	}
	return sample, nil
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the methods of x named D{day}p{part}. They must
// have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("solver method %s: got %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

type options struct {
	day        int
	part       string
	debug      bool
	onlySample bool
	skipSample bool
	submit     bool
	describe   bool
	configPath string
}

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

type runner struct {
	opts   options
	year   int
	days   map[int]day
	puzzle *Puzzle
	cfg    *Config
	client *Client
	logger *zap.SugaredLogger
	out    io.Writer
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.DisableStacktrace = true
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func newRunner(year int, src []byte, slvr any, opts options, out io.Writer, logger *zap.SugaredLogger) (*runner, error) {
	samples, err := extractSamples(src)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	client := NewClient(cfg, logger)
	p := &Puzzle{
		year:    year,
		samples: samples,
		client:  client,
		logger:  logger,
	}
	field := reflect.ValueOf(slvr).Elem().FieldByName("Puzzle")
	if !field.IsValid() || field.Type() != reflect.TypeOf(p) {
		return nil, fmt.Errorf("solver %T does not embed *aoc.Puzzle", slvr)
	}
	field.Set(reflect.ValueOf(p))
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	return &runner{
		opts:   opts,
		year:   year,
		days:   days,
		puzzle: p,
		cfg:    cfg,
		client: client,
		logger: logger,
		out:    out,
	}, nil
}

func (r *runner) run(ctx context.Context) error {
	r.puzzle.ctx = ctx
	if r.opts.day != -1 {
		day, ok := r.days[r.opts.day]
		if !ok {
			return fmt.Errorf("no day %d", r.opts.day)
		}
		return r.runDay(ctx, day)
	}

	var errs []error
	for _, d := range slices.Sorted(maps.Keys(r.days)) {
		if err := r.runDay(ctx, r.days[d]); err != nil {
			errs = append(errs, err)
		}
		fmt.Fprintln(r.out)
	}
	return errors.Join(errs...)
}

func (r *runner) runDay(ctx context.Context, d day) error {
	p := r.puzzle
	p.day = d
	fmt.Fprintln(r.out, "Running day", d.day)
	if r.opts.describe {
		if err := r.describe(ctx, d.day); err != nil {
			return err
		}
	}
	for _, ps := range d.parts {
		if r.opts.part != "" && ps.Part != r.opts.part {
			continue
		}
		p.solver = ps

		for _, sm := range []bool{true, false} {
			if !sm && r.opts.onlySample {
				continue
			} else if sm && r.opts.skipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				if _, err := p.Input(); err != nil {
					return fmt.Errorf("day %d input: %w", d.day, err)
				}
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if err, ok := got.(error); ok {
				fmt.Fprintf(r.out, "part %s: %v ❌\n", ps.Part, failStyle.Render(err.Error()))
				return fmt.Errorf("day %d part %s: %w", d.day, ps.Part, err)
			}
			if sm {
				sample, err := p.Sample()
				if err != nil {
					return err
				}
				if fmt.Sprint(got) != sample.want {
					fmt.Fprintf(r.out, "part %s: %v ❌; want %v\n", ps.Part, failStyle.Render(fmt.Sprint(got)), sample.want)
					return fmt.Errorf("day %d part %s: sample got %v, want %v", d.day, ps.Part, got, sample.want)
				}
				fmt.Fprintf(r.out, "part %s sample: %v ✅ (%v) \n", ps.Part, passStyle.Render(fmt.Sprint(got)), took)
			} else {
				fmt.Fprintf(r.out, "part %s: %v (took %v) \n", ps.Part, got, took)
				if r.opts.submit {
					if err := r.submit(ctx, d.day, ps.Part, fmt.Sprint(got)); err != nil {
						return fmt.Errorf("day %d part %s submit: %w", d.day, ps.Part, err)
					}
				}
			}
		}
	}
	return nil
}

func (r *runner) describe(ctx context.Context, day int) error {
	page, err := r.client.Description(ctx, r.year, day)
	if err != nil {
		return err
	}
	md, err := articleMarkdown(page)
	if err != nil {
		return err
	}
	out, err := renderMarkdown(md)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, out)
	return nil
}

func (r *runner) submit(ctx context.Context, day int, part, answer string) error {
	in, err := r.client.Input(ctx, r.year, day)
	if err != nil {
		return err
	}
	digest := InputDigest(in)
	ledger, err := OpenLedger(r.cfg.CacheDir, r.year, day)
	if err != nil {
		return err
	}
	if s, ok := ledger.Solved(part, digest); ok {
		if s.Answer != answer {
			r.logger.Warnw("part already solved with a different answer", "day", day, "part", part, "answer", s.Answer, "got", answer)
		} else {
			r.logger.Infow("part already solved", "day", day, "part", part)
		}
		return nil
	}
	if s, ok := ledger.Lookup(part, digest, answer); ok {
		r.logger.Infow("answer already submitted", "day", day, "part", part, "answer", answer, "outcome", s.Outcome)
		return nil
	}

	v, err := r.client.Submit(ctx, r.year, day, part, answer)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, v.Message)
	r.logger.Infow("submitted", "day", day, "part", part, "answer", answer, "outcome", v.Outcome)
	return ledger.Record(Submission{
		Part:    part,
		Input:   digest,
		Answer:  answer,
		Outcome: v.Outcome,
	})
}

// NewCommand returns the command line interface for running the D{day}p{part}
// methods of slvr, a pointer to a struct embedding *Puzzle. src is the source
// of the file declaring those methods; the samples are read from it.
func NewCommand(year int, src []byte, slvr any) *cobra.Command {
	var opts options
	var logger *zap.Logger
	cmd := &cobra.Command{
		Use:          fmt.Sprintf("aoc%d", year),
		Short:        fmt.Sprintf("Solve Advent of Code %d puzzles", year),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(opts.debug)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(year, src, slvr, opts, cmd.OutOrStdout(), logger.Sugar())
			if err != nil {
				return err
			}
			return r.run(cmd.Context())
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.day, "day", -1, "day to run")
	f.StringVar(&opts.part, "part", "", "part to run")
	f.BoolVar(&opts.onlySample, "sample", false, "only run sample")
	f.BoolVar(&opts.skipSample, "skip-sample", false, "skip sample")
	f.BoolVar(&opts.debug, "debug", false, "debug mode")
	f.BoolVar(&opts.submit, "submit", false, "submit answers")
	f.BoolVar(&opts.describe, "describe", false, "print the puzzle description")
	f.StringVar(&opts.configPath, "config", DefaultConfigPath(), "config file")
	cmd.MarkFlagsMutuallyExclusive("sample", "skip-sample")
	cmd.MarkFlagsMutuallyExclusive("sample", "submit")
	return cmd
}

// Run runs the command line interface of NewCommand and exits.
func Run(year int, src []byte, slvr any) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewCommand(year, src, slvr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// Or returns the first non-zero value of list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
