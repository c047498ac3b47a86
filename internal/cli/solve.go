package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/fctp/genetic"
	"github.com/katalvlaran/fctp/internal/config"
	"github.com/katalvlaran/fctp/metrics"
	"github.com/katalvlaran/fctp/transport"
)

// legacyArgs is the positional argument count of the legacy invocation.
const legacyArgs = 7

func runSolve(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("solve", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	if err := fs.Parse(shieldNegatives(fs, args)); err != nil {
		return parseError(err)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}

	var p *transport.Problem
	switch pos := unshield(fs.Args()); {
	case len(pos) == legacyArgs:
		if p, err = legacyProblem(pos, &cfg); err != nil {
			return err
		}
	case len(pos) == 0 && cfg.Instance != "":
		if p, err = transport.ReadFile(cfg.Instance); err != nil {
			return err
		}
	default:
		return usagef("want --instance or %d positional arguments "+
			"(supply demand unitCost fixedCost generations population mutationRate), got %d",
			legacyArgs, len(pos))
	}

	log, flush, err := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		return fmt.Errorf("%w: %v", genetic.ErrInvalidConfiguration, err)
	}
	defer flush()

	opts, err := cfg.GeneticOptions()
	if err != nil {
		return err
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	opts.Logger = log.WithValues("seed", opts.Seed)

	var (
		reg *prometheus.Registry
		rec *metrics.Recorder
	)
	if cfg.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		if rec, err = metrics.NewRecorder(reg); err != nil {
			return err
		}
		opts.Observer = rec.Observe
	}

	res, err := genetic.Solve(ctx, p, opts)
	if err != nil {
		return err
	}

	if rec != nil {
		rec.ObserveResult(res)
		if err = metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			return err
		}
		log.V(1).Info("metrics written", "path", cfg.MetricsFile)
	}

	if cfg.Output == config.OutputJSON {
		return writeJSON(stdout, res, opts.Seed)
	}

	return writeLine(stdout, res)
}

// shieldMark prefixes positional tokens that pflag would otherwise read as
// shorthand flags. It cannot start a flag and never survives unshield.
const shieldMark = "\x00"

// shieldNegatives marks negative numeric tokens such as "-0.5" or
// "-2,3,4,1" so they reach the positional list. A token that is the value of
// the preceding long flag ("--mutation-rate -0.5") is left to pflag.
func shieldNegatives(fs *pflag.FlagSet, args []string) []string {
	out := make([]string, len(args))
	for k, a := range args {
		out[k] = a
		if !looksNegative(a) || (k > 0 && takesValue(fs, args[k-1])) {
			continue
		}
		out[k] = shieldMark + a
	}

	return out
}

func unshield(pos []string) []string {
	out := make([]string, len(pos))
	for k, a := range pos {
		out[k] = strings.TrimPrefix(a, shieldMark)
	}

	return out
}

func looksNegative(a string) bool {
	return len(a) > 1 && a[0] == '-' && (a[1] == '.' || (a[1] >= '0' && a[1] <= '9'))
}

// takesValue reports whether a is a long flag without "=" whose value is the
// next argument.
func takesValue(fs *pflag.FlagSet, a string) bool {
	if !strings.HasPrefix(a, "--") || strings.Contains(a, "=") {
		return false
	}
	f := fs.Lookup(a[2:])

	return f != nil && f.NoOptDefVal == ""
}

// legacyProblem decodes the seven positional arguments. The three trailing
// run parameters override whatever flags, environment or file set.
func legacyProblem(pos []string, cfg *config.Config) (*transport.Problem, error) {
	supply, err := transport.ParseVector(pos[0])
	if err != nil {
		return nil, fmt.Errorf("supply: %w", err)
	}
	demand, err := transport.ParseVector(pos[1])
	if err != nil {
		return nil, fmt.Errorf("demand: %w", err)
	}
	unit, err := transport.ParseMatrix(pos[2], len(supply), len(demand))
	if err != nil {
		return nil, fmt.Errorf("unit cost: %w", err)
	}
	fixed, err := transport.ParseMatrix(pos[3], len(supply), len(demand))
	if err != nil {
		return nil, fmt.Errorf("fixed cost: %w", err)
	}

	if cfg.Generations, err = strconv.Atoi(strings.TrimSpace(pos[4])); err != nil {
		return nil, fmt.Errorf("%w: generations %q", transport.ErrMalformedInput, pos[4])
	}
	if cfg.Population, err = strconv.Atoi(strings.TrimSpace(pos[5])); err != nil {
		return nil, fmt.Errorf("%w: population %q", transport.ErrMalformedInput, pos[5])
	}
	if cfg.MutationRate, err = strconv.ParseFloat(strings.TrimSpace(pos[6]), 64); err != nil {
		return nil, fmt.Errorf("%w: mutation rate %q", transport.ErrMalformedInput, pos[6])
	}

	return transport.NewProblem(supply, demand, unit, fixed)
}

// writeLine prints "fitness elapsed (supplier consumer amount cost)*" on one
// line, the format downstream tooling parses.
func writeLine(w io.Writer, res genetic.Result) error {
	fields := make([]string, 0, 2+4*len(res.Routes))
	fields = append(fields, formatFloat(res.BestFitness), formatFloat(res.ElapsedSeconds()))
	for _, r := range res.Routes {
		fields = append(fields,
			strconv.Itoa(r.Supplier), strconv.Itoa(r.Consumer),
			strconv.Itoa(r.Amount), formatFloat(r.Cost))
	}
	_, err := fmt.Fprintln(w, strings.Join(fields, " "))

	return err
}

type jsonResult struct {
	BestFitness    float64                   `json:"best_fitness"`
	ElapsedSeconds float64                   `json:"elapsed_seconds"`
	Generations    int                       `json:"generations"`
	Mutations      int                       `json:"mutations"`
	Seed           int64                     `json:"seed"`
	Routes         []transport.Route         `json:"routes"`
	History        []genetic.GenerationStats `json:"history"`
}

func writeJSON(w io.Writer, res genetic.Result, seed int64) error {
	routes := res.Routes
	if routes == nil {
		routes = []transport.Route{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(jsonResult{
		BestFitness:    res.BestFitness,
		ElapsedSeconds: res.ElapsedSeconds(),
		Generations:    res.Generations,
		Mutations:      res.Mutations,
		Seed:           seed,
		Routes:         routes,
		History:        res.History,
	})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
