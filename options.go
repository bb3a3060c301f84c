package slotgo

import "log/slog"

type options struct {
	name             string
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures registry construction.
type Option func(*options)

// WithName attaches a human-readable registry name used in log fields and
// mismatch diagnostics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Passing nil disables collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &slotgo.BasicMetricsCollector{}
//	r, _ := slotgo.New(s, slotgo.WithMetricsCollector(metrics))
//	// ... use r ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, Avg latency: %dns\n", stats.InsertCount, stats.InsertAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations. Passing nil
// disables logging.
//
// Example with JSON logging:
//
//	logger := slotgo.NewJSONLogger(slog.LevelInfo)
//	r, _ := slotgo.New(s, slotgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
