package mappers

import "github.com/Station-Manager/errors"

const (
	ErrMsgNilArgument = "must not be nil"
	ErrMsgTypeChange  = "Proceed requires the matching branch to keep the probed type; use an OrElse variant instead"
	ErrMsgProxyUnset  = "proxy used before a converter was set"
	ErrMsgWorkerPanic = "conversion panicked in a worker goroutine"
)

// requireFunc panics with an op-tagged error when a mandatory argument is missing.
// Misuse is reported while the pipeline is being assembled, never during conversion.
func requireFunc(op errors.Op, isNil bool, what string) {
	if isNil {
		panic(errors.New(op).Errorf("%s %s", what, ErrMsgNilArgument))
	}
}

func stepGetter[In, T any](op errors.Op, s *Step[In, T]) func(In) T {
	requireFunc(op, s == nil, "step")
	return s.Get
}
