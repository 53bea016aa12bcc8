package mappers

import (
	"context"
	"sync/atomic"

	"github.com/Station-Manager/errors"
	"golang.org/x/sync/errgroup"
)

type recovered struct{ value any }

// ConvertConcurrently converts input on up to limit goroutines (no bound when limit <= 0) and
// returns the results in input order.
//
// Cancelling ctx stops scheduling further conversions and returns the context's error. Once
// every conversion has completed the results are returned even if ctx is cancelled afterwards. A panic
// inside c stops the remaining work and is re-raised with its original value on the calling
// goroutine once every worker has returned.
func ConvertConcurrently[In, Out any](ctx context.Context, c Converter[In, Out], input []In, limit int) ([]Out, error) {
	const op errors.Op = "mappers.ConvertConcurrently"
	requireFunc(op, c == nil, "converter")

	res := make([]Out, len(input))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	var panicked atomic.Pointer[recovered]
	scheduled := 0
	for i, in := range input {
		if gctx.Err() != nil {
			break
		}
		scheduled++
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					panicked.CompareAndSwap(nil, &recovered{value: r})
					err = errors.New(op).Msg(ErrMsgWorkerPanic)
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}
			res[i] = c.Convert(in)
			return nil
		})
	}

	err := g.Wait()
	if p := panicked.Load(); p != nil {
		panic(p.value)
	}
	if err == nil && scheduled < len(input) {
		err = ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
