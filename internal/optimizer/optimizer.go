// Package optimizer folds a list of pipeline steps into a single function.
package optimizer

import "github.com/Station-Manager/mappers/internal/fn"

// maxUnrolled is the largest step count handled by a single generated combinator.
const maxUnrolled = 8

// Flatten returns one function equivalent to applying steps in order, each step receiving the
// original input and the output of its predecessor. Lists of up to eight steps are served by a
// dedicated unrolled closure; longer lists are split into a head of eight and a recursively
// flattened tail. The result of an empty list hands out back unchanged.
func Flatten[In, Out any](steps []func(In, Out) Out) func(In, Out) Out {
	switch len(steps) {
	case 0:
		return passThrough[In, Out]
	case 1:
		return steps[0]
	case 2:
		return flatten2(steps)
	case 3:
		return flatten3(steps)
	case 4:
		return flatten4(steps)
	case 5:
		return flatten5(steps)
	case 6:
		return flatten6(steps)
	case 7:
		return flatten7(steps)
	case 8:
		return flatten8(steps)
	default:
		head := flatten8(steps[:maxUnrolled])
		tail := Flatten(steps[maxUnrolled:])
		return flatten2([]func(In, Out) Out{head, tail})
	}
}

// Chain folds steps left to right through fn.ComposeBi. It yields the same results as Flatten
// with one extra closure per step.
func Chain[In, Out any](steps []func(In, Out) Out) func(In, Out) Out {
	acc := passThrough[In, Out]
	for _, step := range steps {
		acc = fn.ComposeBi(acc, step)
	}
	return acc
}

func passThrough[In, Out any](_ In, out Out) Out { return out }
