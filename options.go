package contentvalidator

import (
	"runtime"

	"github.com/gofhir/contentvalidator/pkg/logger"
	"github.com/gofhir/contentvalidator/trace"
)

// Option configures the Validator.
type Option func(*Options)

// Options holds all configuration for the Validator.
type Options struct {
	// Logger receives run-level log lines
	Logger *logger.Logger

	// Metrics records comparison counters; nil disables metrics
	Metrics *Metrics

	// TraceHook observes both documents before each comparison; nil disables tracing
	TraceHook trace.Hook

	// StrictMode reports warnings as errors
	StrictMode bool

	// WorkerCount bounds batch comparison parallelism
	WorkerCount int
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		Logger:      logger.Default(),
		StrictMode:  false,
		WorkerCount: runtime.NumCPU(),
	}
}

// Apply applies opts on top of the defaults.
func Apply(opts ...Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger. A nil logger silences the validator.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = logger.Nop()
		}
		o.Logger = l
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithTraceHook sets the presence tracing hook.
func WithTraceHook(h trace.Hook) Option {
	return func(o *Options) {
		o.TraceHook = h
	}
}

// WithStrictMode treats warnings as errors.
func WithStrictMode(enable bool) Option {
	return func(o *Options) {
		o.StrictMode = enable
	}
}

// WithWorkerCount sets the number of workers for batch comparison.
// Values <= 0 fall back to runtime.NumCPU().
func WithWorkerCount(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		o.WorkerCount = n
	}
}
