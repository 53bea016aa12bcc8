package mappers

import (
	"log/slog"
	"os"
)

// EnvDisableOptimization names the environment variable that, when set to any non-empty value,
// makes every builder chain its steps naively instead of flattening them.
const EnvDisableOptimization = "MAPPERS_OPTIMIZATION_DISABLE"

// Options configures a builder. The zero value is not meant to be used directly; builders start
// from the defaults and apply each Option in order.
type Options struct {
	Logger              *slog.Logger // receives one Debug record per Build; discarded by default
	DisableOptimization bool         // when true, steps are chained one closure at a time
}

type Option func(*Options)

// WithLogger routes build diagnostics to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOptimization overrides the environment default. Results are identical either way.
func WithOptimization(enabled bool) Option {
	return func(o *Options) { o.DisableOptimization = !enabled }
}

func defaultOptions() Options {
	return Options{
		Logger:              slog.New(slog.DiscardHandler),
		DisableOptimization: os.Getenv(EnvDisableOptimization) != "",
	}
}

func newOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
