package mappers

import (
	"iter"
	"slices"

	"github.com/Station-Manager/errors"
	"github.com/samber/mo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Converter is anything able to convert an In into an Out. Mapper and Proxy implement it.
type Converter[In, Out any] interface {
	Convert(in In) Out
}

// Mapper is a built, immutable conversion. It holds no mutable state of its own and is safe for
// concurrent use as long as the functions it was built from are.
type Mapper[In, Out any] struct {
	convert func(In) Out
}

// New wraps a plain function as a Mapper.
func New[In, Out any](f func(In) Out) *Mapper[In, Out] {
	requireFunc("mappers.New", f == nil, "conversion function")
	return &Mapper[In, Out]{convert: f}
}

func (m *Mapper[In, Out]) Convert(in In) Out { return m.convert(in) }

// ConvertAll converts every element of input, preserving order.
func (m *Mapper[In, Out]) ConvertAll(input []In) []Out { return ConvertAll[In, Out](m, input) }

// ConversionSeq lazily converts the elements of input.
func (m *Mapper[In, Out]) ConversionSeq(input []In) iter.Seq[Out] {
	return ConversionSeq[In, Out](m, input)
}

// ConvertAll converts every element of input, preserving order and length.
func ConvertAll[In, Out any](c Converter[In, Out], input []In) []Out {
	requireFunc("mappers.ConvertAll", c == nil, "converter")
	res := make([]Out, len(input))
	for i, in := range input {
		res[i] = c.Convert(in)
	}
	return res
}

// ConvertToMap converts input into an insertion-ordered map keyed by the input values. When an
// input occurs twice, the key keeps its first position and the last conversion wins.
func ConvertToMap[In comparable, Out any](c Converter[In, Out], input []In) *orderedmap.OrderedMap[In, Out] {
	return ConvertToMapBy(c, input, func(in In) In { return in })
}

// ConvertToMapBy is ConvertToMap with keys computed by key.
func ConvertToMapBy[In any, K comparable, Out any](c Converter[In, Out], input []In, key func(In) K) *orderedmap.OrderedMap[K, Out] {
	const op errors.Op = "mappers.ConvertToMapBy"
	requireFunc(op, c == nil, "converter")
	requireFunc(op, key == nil, "key function")

	res := orderedmap.New[K, Out](orderedmap.WithCapacity[K, Out](len(input)))
	for _, in := range input {
		res.Set(key(in), c.Convert(in))
	}
	return res
}

// ConversionSeq returns a sequence converting the elements of input one at a time as they are
// pulled. Nothing is converted before iteration starts; ranging again converts again.
func ConversionSeq[In, Out any](c Converter[In, Out], input []In) iter.Seq[Out] {
	return ConvertSeq(c, slices.Values(input))
}

// ConvertSeq lazily converts the values of seq.
func ConvertSeq[In, Out any](c Converter[In, Out], seq iter.Seq[In]) iter.Seq[Out] {
	const op errors.Op = "mappers.ConvertSeq"
	requireFunc(op, c == nil, "converter")
	requireFunc(op, seq == nil, "sequence")
	return func(yield func(Out) bool) {
		for in := range seq {
			if !yield(c.Convert(in)) {
				return
			}
		}
	}
}

// PredicateInput converts only inputs accepted by pred. Rejected inputs are never handed to c
// and yield an absent result.
func PredicateInput[In, Out any](c Converter[In, Out], pred func(In) bool) *Mapper[In, mo.Option[Out]] {
	return Predicate(c, pred, nil)
}

// PredicateOutput converts every input and keeps the result only when pred accepts it.
func PredicateOutput[In, Out any](c Converter[In, Out], pred func(Out) bool) *Mapper[In, mo.Option[Out]] {
	return Predicate(c, nil, pred)
}

// Predicate gates a conversion on both sides: inPred is checked first and short-circuits, then
// outPred is applied to the result. A nil predicate accepts everything.
func Predicate[In, Out any](c Converter[In, Out], inPred func(In) bool, outPred func(Out) bool) *Mapper[In, mo.Option[Out]] {
	requireFunc("mappers.Predicate", c == nil, "converter")
	return New(func(in In) mo.Option[Out] {
		if inPred != nil && !inPred(in) {
			return mo.None[Out]()
		}
		out := c.Convert(in)
		if outPred != nil && !outPred(out) {
			return mo.None[Out]()
		}
		return mo.Some(out)
	})
}
