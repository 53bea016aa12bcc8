// Package mappers builds type-safe conversions between Go values out of small field steps.
//
// A conversion is assembled once, field by field, and frozen into a Mapper by Build. The built
// Mapper is a plain function value: it holds no mutable state and is safe for concurrent use as
// long as the getters, setters, predicates and constructors it was built from are.
//
// # Field Steps
//
// Every field starts with From and a getter, may be refined, and ends in a terminal:
//
//	mappers.From(getName).       // Step[In, string]
//		NullSafe().               // skip Map/Given on null values
//		Map(strings.TrimSpace).   // same type
//		Given(isEmpty).Then("-"). // conditional branch
//		Proceed()                 // keep non-matching values
//
// MapTo, GivenTo, GivenToValue and GivenToFunc are the type-changing variants; Go methods cannot
// introduce type parameters, so they are package functions taking the step as first argument.
//
// # Null Values
//
// A value is null when it is nil (pointer, map, slice, func, chan or interface) or a
// database/sql/driver.Valuer whose Value is nil, such as an invalid null.String. On a null-safe
// step a null value skips every later Map and conditional and becomes the zero value of the
// result type.
//
// # Mutable Mappings
//
// Mutable creates the output with a generator and runs the registered steps on it in order:
//
//	m := mappers.Mutable[*User](func() *UserDTO { return new(UserDTO) }).
//		Bind(mappers.Into(mappers.From(getName), (*UserDTO).SetName)).
//		Bind(mappers.To(mappers.From(getAge), withAge)).
//		Process(normalize).
//		Build()
//
// Into writes in place and hands the output on; To replaces the output with the setter's result.
//
// # Immutable Mappings
//
// Immutable1 to Immutable12 bind the parameters of a constructor one at a time, leftmost first.
// Each Bind narrows the builder by one parameter until ConstructorBuilder remains:
//
//	m := mappers.Immutable2[*User](NewUserDTO).
//		Bind(mappers.From(getName)).
//		Take(getAge).
//		Build()
//
// # Optimization
//
// Build folds the registered steps into a single closure with constant call overhead. The fold
// can be turned off with WithOptimization(false) or by setting MAPPERS_OPTIMIZATION_DISABLE;
// results are identical either way.
//
// # Collections
//
// ConvertAll, ConvertToMap, ConversionSeq and ConvertConcurrently derive collection conversions
// from any Converter. PredicateInput, PredicateOutput and Predicate gate a conversion and report
// skipped values as an absent mo.Option.
//
// # Recursive Mappings
//
// Proxy stands in for a mapper that is not built yet, so a mapping can convert nested values of
// its own type.
package mappers

//go:generate go run ./internal/cmd/genarity -root .
