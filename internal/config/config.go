// Package config loads the run configuration of the fctp command from flags,
// FCTP_* environment variables and an optional YAML file, in that order of
// precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/fctp/genetic"
)

// Flag and key names.
const (
	KeyConfig       = "config"
	KeyInstance     = "instance"
	KeyGenerations  = "generations"
	KeyPopulation   = "population"
	KeyMutationRate = "mutation-rate"
	KeySelection    = "selection"
	KeySeeding      = "seeding"
	KeyRepair       = "repair"
	KeyWorkers      = "workers"
	KeySeed         = "seed"
	KeyOutput       = "output"
	KeyMetricsFile  = "metrics-file"
	KeyLogLevel     = "log-level"
	KeyLogFormat    = "log-format"

	// EnvPrefix prefixes environment overrides, e.g. FCTP_MUTATION_RATE.
	EnvPrefix = "FCTP"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the resolved configuration of one solve invocation.
type Config struct {
	Instance     string  `mapstructure:"instance"`
	Generations  int     `mapstructure:"generations"`
	Population   int     `mapstructure:"population"`
	MutationRate float64 `mapstructure:"mutation-rate"`
	Selection    string  `mapstructure:"selection"`
	Seeding      string  `mapstructure:"seeding"`
	Repair       bool    `mapstructure:"repair"`
	Workers      int     `mapstructure:"workers"`
	Seed         int64   `mapstructure:"seed"`
	Output       string  `mapstructure:"output"`
	MetricsFile  string  `mapstructure:"metrics-file"`
	LogLevel     string  `mapstructure:"log-level"`
	LogFormat    string  `mapstructure:"log-format"`
}

// RegisterFlags defines the solve flags on fs with the library defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	d := genetic.DefaultOptions()

	fs.String(KeyConfig, "", "YAML file with configuration values")
	fs.String(KeyInstance, "", "instance file (.yaml/.yml or whitespace text format)")
	fs.Int(KeyGenerations, d.Generations, "number of generations")
	fs.Int(KeyPopulation, d.PopulationSize, "population size")
	fs.Float64(KeyMutationRate, d.MutationRate, "per-child mutation probability in [0,1]")
	fs.String(KeySelection, d.Weighting.String(), "selection weighting: cost, inverse or max-minus")
	fs.String(KeySeeding, d.Seeding.String(), "initial population: greedy or shuffled")
	fs.Bool(KeyRepair, d.Repair, "repair every child onto the feasible region")
	fs.Int(KeyWorkers, d.Workers, "goroutines used for fitness evaluation")
	fs.Int64(KeySeed, 0, "random seed (0 = derive from the clock)")
	fs.String(KeyOutput, OutputText, "output format: text or json")
	fs.String(KeyMetricsFile, "", "write Prometheus metrics to this file after the run")
	fs.String(KeyLogLevel, "info", "log level: debug, info, warn or error")
	fs.String(KeyLogFormat, "console", "log format: console or json")
}

// Load resolves fs (already parsed) together with the environment and the
// optional --config file into a validated Config.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the presentation settings and the policy names. Numeric
// run parameters are checked by genetic.Solve.
func (c *Config) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("%w: output must be %q or %q, got %q",
			genetic.ErrInvalidConfiguration, OutputText, OutputJSON, c.Output)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format must be console or json, got %q",
			genetic.ErrInvalidConfiguration, c.LogFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", genetic.ErrInvalidConfiguration, c.LogLevel)
	}
	if _, err := genetic.ParseWeightPolicy(c.Selection); err != nil {
		return err
	}
	if _, err := genetic.ParseSeedingPolicy(c.Seeding); err != nil {
		return err
	}

	return nil
}

// GeneticOptions converts c into solver options. The logger and observer
// are left at their defaults; callers attach them.
func (c *Config) GeneticOptions() (genetic.Options, error) {
	w, err := genetic.ParseWeightPolicy(c.Selection)
	if err != nil {
		return genetic.Options{}, err
	}
	s, err := genetic.ParseSeedingPolicy(c.Seeding)
	if err != nil {
		return genetic.Options{}, err
	}

	o := genetic.DefaultOptions()
	o.Generations = c.Generations
	o.PopulationSize = c.Population
	o.MutationRate = c.MutationRate
	o.Weighting = w
	o.Seeding = s
	o.Repair = c.Repair
	o.Workers = c.Workers
	o.Seed = c.Seed

	return o, nil
}
