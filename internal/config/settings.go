package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Settings holds process-level configuration: which backend to talk to,
// where to log and store run history, and the option lists and defaults
// the wizard offers.
type Settings struct {
	Env

	Options Options
}

// Env is the part of Settings read from SYNTH_* variables. It holds only
// scalar fields; Options is attached after parsing.
type Env struct {
	Provider    string        `env:"SYNTH_PROVIDER" envDefault:"huggingface"`
	APIKey      string        `env:"SYNTH_API_KEY"`
	BaseURL     string        `env:"SYNTH_BASE_URL"`
	HubURL      string        `env:"SYNTH_HUB_URL"`
	OptionsFile string        `env:"SYNTH_CONFIG"`
	DBPath      string        `env:"SYNTH_DB"`
	LogFile     string        `env:"SYNTH_LOG_FILE"`
	RateLimit   float64       `env:"SYNTH_RATE_LIMIT" envDefault:"0"`
	Timeout     time.Duration `env:"SYNTH_TIMEOUT" envDefault:"2m"`
	Seed        uint64        `env:"SYNTH_SEED" envDefault:"0"`
}

// Options are the wizard's enumerated choices and output defaults. They can
// be overridden by a YAML file.
type Options struct {
	UseCases      []string `yaml:"use_cases"`
	Models        []string `yaml:"models"`
	SampleSize    int      `yaml:"sample_size"`
	BatchSize     int      `yaml:"batch_size"`
	OutputDir     string   `yaml:"output_dir"`
	SaveReasoning *bool    `yaml:"save_reasoning"`
	MaxNewTokens  int      `yaml:"max_new_tokens"`
}

// DefaultOptions returns the built-in option lists and defaults.
func DefaultOptions() Options {
	save := DefaultSaveReasoning
	return Options{
		UseCases:      append([]string(nil), DefaultUseCases...),
		Models:        append([]string(nil), DefaultModels...),
		SampleSize:    DefaultSampleSize,
		BatchSize:     DefaultBatchSize,
		OutputDir:     DefaultOutputDir,
		SaveReasoning: &save,
		MaxNewTokens:  DefaultMaxNewTokens,
	}
}

// LoadSettings reads .env (if present), the SYNTH_* environment, and the
// optional YAML options file.
func LoadSettings() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("load .env: %w", err)
	}
	return loadSettings(env.Options{})
}

func loadSettings(opts env.Options) (Settings, error) {
	s := Settings{Options: DefaultOptions()}
	if err := env.ParseWithOptions(&s.Env, opts); err != nil {
		return Settings{}, fmt.Errorf("parse environment: %w", err)
	}

	if s.OptionsFile != "" {
		o, err := LoadOptionsFile(s.OptionsFile)
		if err != nil {
			return Settings{}, err
		}
		s.Options = o
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadOptionsFile reads a YAML options file. Fields left out keep their
// built-in defaults.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options file: %w", err)
	}

	o := DefaultOptions()
	var fileOpts Options
	if err := yaml.Unmarshal(data, &fileOpts); err != nil {
		return Options{}, fmt.Errorf("parse options file %s: %w", path, err)
	}

	if len(fileOpts.UseCases) > 0 {
		o.UseCases = fileOpts.UseCases
	}
	if len(fileOpts.Models) > 0 {
		o.Models = fileOpts.Models
	}
	if fileOpts.SampleSize != 0 {
		o.SampleSize = fileOpts.SampleSize
	}
	if fileOpts.BatchSize != 0 {
		o.BatchSize = fileOpts.BatchSize
	}
	if fileOpts.OutputDir != "" {
		o.OutputDir = fileOpts.OutputDir
	}
	if fileOpts.SaveReasoning != nil {
		o.SaveReasoning = fileOpts.SaveReasoning
	}
	if fileOpts.MaxNewTokens != 0 {
		o.MaxNewTokens = fileOpts.MaxNewTokens
	}
	return o, nil
}

// Validate checks the option lists and defaults.
func (s Settings) Validate() error {
	if len(s.Options.UseCases) == 0 {
		return fmt.Errorf("at least one use case must be configured")
	}
	if len(s.Options.Models) == 0 {
		return fmt.Errorf("at least one model must be configured")
	}
	if s.Options.SampleSize < 0 {
		return fmt.Errorf("default sample_size must not be negative, got %d", s.Options.SampleSize)
	}
	if s.Options.BatchSize <= 0 {
		return fmt.Errorf("default batch_size must be positive, got %d", s.Options.BatchSize)
	}
	if s.Options.MaxNewTokens <= 0 {
		return fmt.Errorf("default max_new_tokens must be positive, got %d", s.Options.MaxNewTokens)
	}
	if s.RateLimit < 0 {
		return fmt.Errorf("SYNTH_RATE_LIMIT must not be negative, got %v", s.RateLimit)
	}
	return nil
}

// NewConfig returns an empty GenerationConfig seeded with these options'
// defaults.
func (o Options) NewConfig() GenerationConfig {
	c := New()
	c.Model.MaxNewTokens = o.MaxNewTokens
	c.Output.SampleSize = o.SampleSize
	c.Output.BatchSize = o.BatchSize
	c.Output.OutputDir = o.OutputDir
	if o.SaveReasoning != nil {
		c.Output.SaveReasoning = *o.SaveReasoning
	}
	return c
}

// DefaultLogPath resolves the log file location:
// 1. SYNTH_LOG_FILE
// 2. $XDG_STATE_HOME/synthgen/synthgen.log
// 3. ~/.local/state/synthgen/synthgen.log
func (s Settings) DefaultLogPath() (string, error) {
	if s.LogFile != "" {
		return s.LogFile, nil
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "synthgen", "synthgen.log"), nil
}
