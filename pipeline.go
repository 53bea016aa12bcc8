package mappers

import (
	"log/slog"
	"slices"

	"github.com/Station-Manager/mappers/internal/optimizer"
)

// compose turns a step list into one function. The list is cloned first so that builders may
// keep appending after Build without affecting mappers already built.
func compose[In, Out any](kind string, steps []func(In, Out) Out, o Options) func(In, Out) Out {
	steps = slices.Clone(steps)
	o.Logger.Debug("building mapper",
		slog.String("kind", kind),
		slog.Int("steps", len(steps)),
		slog.Bool("optimized", !o.DisableOptimization),
	)
	if o.DisableOptimization {
		return optimizer.Chain(steps)
	}
	return optimizer.Flatten(steps)
}

func spyStep[In, Out any](f func(In, Out)) func(In, Out) Out {
	return func(in In, out Out) Out {
		f(in, out)
		return out
	}
}
