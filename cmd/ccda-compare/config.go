package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/gofhir/contentvalidator/outcome"
)

// OutputFormat specifies the output format.
type OutputFormat string

// Output format constants.
const (
	OutputText    OutputFormat = "text"
	OutputJSON    OutputFormat = "json"
	OutputOutcome OutputFormat = "outcome"
)

// envPrefix prefixes every environment override.
const envPrefix = "CCDA_COMPARE_"

// Config holds CLI configuration.
type Config struct {
	Objective  string       `toml:"objective"`
	Scenario   string       `toml:"scenario"`
	Output     OutputFormat `toml:"output"`
	FailOn     string       `toml:"fail_on"`
	LogLevel   string       `toml:"log_level"`
	Strict     bool         `toml:"strict"`
	Workers    int          `toml:"workers"`
	Trace      bool         `toml:"trace"`
	MetricsOut string       `toml:"metrics_out"`
}

func defaultConfig() *Config {
	return &Config{
		Output:   OutputText,
		FailOn:   outcome.DefaultFailOn,
		LogLevel: "warn",
	}
}

// Validate checks the settings that have a closed set of values.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputOutcome:
	default:
		return fmt.Errorf("unknown output format %q (want text, json or outcome)", c.Output)
	}
	if c.Objective == "" {
		return errors.New("objective is required")
	}
	if c.Scenario == "" {
		return errors.New("scenario is required")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// loadFile decodes a TOML config file over c. A missing file is not an
// error when the path was not given explicitly.
func (c *Config) loadFile(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// loadDotEnv loads a .env file into the process environment without
// overriding variables that are already set.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides c with CCDA_COMPARE_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok {
			*dst = v
		}
	}
	str("OBJECTIVE", &c.Objective)
	str("SCENARIO", &c.Scenario)
	str("FAIL_ON", &c.FailOn)
	str("LOG_LEVEL", &c.LogLevel)
	str("METRICS_OUT", &c.MetricsOut)

	if v, ok := lookup(envPrefix + "OUTPUT"); ok {
		c.Output = OutputFormat(strings.ToLower(v))
	}
	for name, dst := range map[string]*bool{"STRICT": &c.Strict, "TRACE": &c.Trace} {
		if v, ok := lookup(envPrefix + name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
			}
			*dst = b
		}
	}
	if v, ok := lookup(envPrefix + "WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sWORKERS: %w", envPrefix, err)
		}
		c.Workers = n
	}
	return nil
}
