package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/engine"
	"github.com/gofhir/contentvalidator/model"
	"github.com/gofhir/contentvalidator/outcome"
	"github.com/gofhir/contentvalidator/pkg/logger"
	"github.com/gofhir/contentvalidator/trace"
)

// errGateMatched is returned when the --fail-on expression matches a report.
var errGateMatched = errors.New("fail-on expression matched")

// errStdinReused is returned when stdin is named as more than one input.
var errStdinReused = errors.New("stdin can only be used for one input")

// failOnNone disables the exit gate.
const failOnNone = "none"

// flagValues holds raw flag values until they are merged into a Config.
type flagValues struct {
	configPath string
	envFile    string
	cfg        Config
}

func newRootCmd() *cobra.Command {
	fv := &flagValues{}

	cmd := &cobra.Command{
		Use:   "ccda-compare [flags] <submitted.json>...",
		Short: "Compare submitted C-CDA content against a scenario",
		Long: `Compares one or more submitted C-CDA content models (JSON) against the
scenario model for a validation objective and reports missing, unexpected
and mismatched clinical data.`,
		Example: `  ccda-compare --objective 170.315_b1_ToC_Amb --scenario scenario.json submitted.json
  ccda-compare -o outcome --scenario scenario.json --objective 170.315_b4_CCDS_Inp out/*.json
  cat submitted.json | ccda-compare --scenario scenario.json --objective 170.315_e1_VDT_Amb -`,
		Version:       cv.Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fv.resolve(cmd)
			if err != nil {
				return err
			}
			return runCompare(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.InOrStdin(), cfg, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&fv.configPath, "config", "ccda-compare.toml", "TOML config file")
	flags.StringVar(&fv.envFile, "env-file", ".env", "dotenv file with CCDA_COMPARE_* variables")
	flags.StringVar(&fv.cfg.Objective, "objective", "", "validation objective code, e.g. 170.315_b1_ToC_Amb")
	flags.StringVar(&fv.cfg.Scenario, "scenario", "", "scenario (reference) model JSON file")
	flags.StringVarP((*string)(&fv.cfg.Output), "output", "o", string(OutputText), "output format: text, json, outcome")
	flags.StringVar(&fv.cfg.FailOn, "fail-on", outcome.DefaultFailOn, "FHIRPath over each OperationOutcome that fails the run, or 'none'")
	flags.StringVar(&fv.cfg.LogLevel, "log-level", "warn", "log level: debug, info, warn, error, none")
	flags.BoolVar(&fv.cfg.Strict, "strict", false, "treat warnings as errors")
	flags.IntVar(&fv.cfg.Workers, "workers", 0, "parallel comparisons (0 = number of CPUs)")
	flags.BoolVar(&fv.cfg.Trace, "trace", false, "log which categories each document carries")
	flags.StringVar(&fv.cfg.MetricsOut, "metrics-out", "", "write Prometheus metrics in text format to this file")

	cmd.AddCommand(newObjectivesCmd())
	return cmd
}

// resolve merges defaults, config file, environment and changed flags, in
// increasing precedence.
func (fv *flagValues) resolve(cmd *cobra.Command) (*Config, error) {
	cfg := defaultConfig()

	if err := cfg.loadFile(fv.configPath, cmd.Flags().Changed("config")); err != nil {
		return nil, err
	}
	if err := loadDotEnv(fv.envFile); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("objective", func() { cfg.Objective = fv.cfg.Objective })
	set("scenario", func() { cfg.Scenario = fv.cfg.Scenario })
	set("output", func() { cfg.Output = fv.cfg.Output })
	set("fail-on", func() { cfg.FailOn = fv.cfg.FailOn })
	set("log-level", func() { cfg.LogLevel = fv.cfg.LogLevel })
	set("strict", func() { cfg.Strict = fv.cfg.Strict })
	set("workers", func() { cfg.Workers = fv.cfg.Workers })
	set("trace", func() { cfg.Trace = fv.cfg.Trace })
	set("metrics-out", func() { cfg.MetricsOut = fv.cfg.MetricsOut })

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runCompare(ctx context.Context, stdout, stderr io.Writer, stdin io.Reader, cfg *Config, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.NewConsole(stderr, level)

	var gate *outcome.Gate
	if cfg.FailOn != failOnNone {
		if gate, err = outcome.NewGate(cfg.FailOn); err != nil {
			return err
		}
	}

	names, err := expandArgs(args)
	if err != nil {
		return err
	}
	if err := checkStdinOnce(cfg.Scenario, names); err != nil {
		return err
	}

	scenario, err := loadDocument(cfg.Scenario, stdin)
	if err != nil {
		return err
	}
	submissions := make([]*model.Document, len(names))
	for i, name := range names {
		if submissions[i], err = loadDocument(name, stdin); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	opts := []cv.Option{
		cv.WithLogger(log),
		cv.WithMetrics(cv.NewMetrics(reg)),
		cv.WithStrictMode(cfg.Strict),
		cv.WithWorkerCount(cfg.Workers),
	}
	if cfg.Trace {
		if level > logger.LevelDebug {
			log.SetLevel(logger.LevelDebug)
		}
		opts = append(opts, cv.WithTraceHook(trace.Multi(trace.NewLogHook(log), trace.NewSpanHook(nil))))
	}
	v := engine.New(opts...)

	log.Info("comparing %d submission(s) against %s for %s", len(names), cfg.Scenario, cfg.Objective)
	reports, err := v.CompareBatch(ctx, cfg.Objective, scenario, submissions)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	if err := writeReports(stdout, cfg.Output, names, reports); err != nil {
		return err
	}

	if cfg.MetricsOut != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsOut, reg); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	if gate == nil {
		return nil
	}
	for i, rep := range reports {
		matched, err := gate.Match(outcome.FromReport(rep))
		if err != nil {
			return err
		}
		if matched {
			log.Warn("%s matched fail-on expression %q", names[i], gate.Expression())
			return errGateMatched
		}
	}
	return nil
}

// expandArgs resolves glob patterns. "-" is kept as stdin.
func expandArgs(args []string) ([]string, error) {
	var names []string
	for _, arg := range args {
		if arg == "-" {
			names = append(names, arg)
			continue
		}
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern '%s': %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern: %s", arg)
		}
		names = append(names, matches...)
	}
	return names, nil
}

// checkStdinOnce rejects "-" appearing more than once across the scenario
// and the submissions, since stdin can only be read once.
func checkStdinOnce(scenario string, names []string) error {
	n := 0
	if scenario == "-" {
		n++
	}
	for _, name := range names {
		if name == "-" {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("%w: '-' given %d times", errStdinReused, n)
	}
	return nil
}

// loadDocument decodes a JSON document model from path, or from stdin
// when path is "-".
func loadDocument(path string, stdin io.Reader) (*model.Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc := model.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if doc.DeviceIdentifiers == nil {
		doc.DeviceIdentifiers = []model.DeviceIdentifier{}
	}
	return doc, nil
}
