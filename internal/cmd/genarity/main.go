// Command genarity renders the fixed-arity families of the module from one template each:
// the dependent-application function types in internal/fn, the constructor builders in the
// module root and the unrolled step combinators in internal/optimizer.
//
// It is run through go:generate from the module root:
//
//	go run ./internal/cmd/genarity -root .
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

const (
	maxArity    = 12
	maxUnrolled = 8
)

var paramNames = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}

var stepNames = []string{"a", "b", "c", "d", "e", "f", "g", "h"}

type output struct {
	path string
	tmpl *template.Template
	data any
}

func main() {
	root := flag.String("root", ".", "module root directory")
	flag.Parse()

	if err := run(*root); err != nil {
		fmt.Fprintln(os.Stderr, "genarity:", err)
		os.Exit(1)
	}
}

func run(root string) error {
	outputs := []output{
		{path: filepath.Join(root, "internal", "fn", "dependent_gen.go"), tmpl: dependentTemplate, data: arities(maxArity)},
		{path: filepath.Join(root, "constructor_gen.go"), tmpl: constructorTemplate, data: arities(maxArity)},
		{path: filepath.Join(root, "internal", "optimizer", "flatten_gen.go"), tmpl: flattenTemplate, data: unrolled()},
	}
	for _, o := range outputs {
		if err := render(o); err != nil {
			return errors.Wrapf(err, "rendering %s", o.path)
		}
	}
	return nil
}

func render(o output) error {
	var buf bytes.Buffer
	if err := o.tmpl.Execute(&buf, o.data); err != nil {
		return errors.Wrap(err, "executing template")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "formatting generated source")
	}
	return errors.Wrap(os.WriteFile(o.path, src, 0o644), "writing generated source")
}

// arity describes one member of a fixed-arity family; Params are the type parameters
// still to be bound, leftmost first.
type arity struct {
	N      int
	Params []string
}

func (a arity) First() string { return a.Params[0] }

func (a arity) FirstArg() string { return lower(a.Params[0]) }

func (a arity) Rest() []string { return a.Params[1:] }

// TypeParams renders "A, B, C".
func (a arity) TypeParams() string { return strings.Join(a.Params, ", ") }

// RestTypeParams renders "B, C, " or "" for the last parameter.
func (a arity) RestTypeParams() string {
	if len(a.Params) == 1 {
		return ""
	}
	return strings.Join(a.Rest(), ", ") + ", "
}

// Args renders "a A, b B, c C".
func (a arity) Args() string { return join(a.Params, func(p string) string { return lower(p) + " " + p }) }

// RestArgs renders ", b B, c C".
func (a arity) RestArgs() string {
	return join(a.Rest(), func(p string) string { return ", " + lower(p) + " " + p })
}

// RestNames renders ", b, c".
func (a arity) RestNames() string {
	return join(a.Rest(), func(p string) string { return ", " + lower(p) })
}

// Names renders "a, b, c".
func (a arity) Names() string { return join(a.Params, lower) }

func arities(n int) []arity {
	res := make([]arity, 0, n)
	for i := 1; i <= n; i++ {
		res = append(res, arity{N: i, Params: paramNames[:i]})
	}
	return res
}

type unrolledStep struct {
	N     int
	Names []string
}

// Vars renders "a, b, c".
func (u unrolledStep) Vars() string { return strings.Join(u.Names, ", ") }

// Slots renders "s[0], s[1], s[2]".
func (u unrolledStep) Slots() string {
	slots := make([]string, len(u.Names))
	for i := range u.Names {
		slots[i] = fmt.Sprintf("s[%d]", i)
	}
	return strings.Join(slots, ", ")
}

// Call renders "c(in, b(in, a(in, out)))".
func (u unrolledStep) Call() string {
	call := "out"
	for _, name := range u.Names {
		call = name + "(in, " + call + ")"
	}
	return call
}

func unrolled() []unrolledStep {
	res := make([]unrolledStep, 0, maxUnrolled-1)
	for i := 2; i <= maxUnrolled; i++ {
		res = append(res, unrolledStep{N: i, Names: stepNames[:i]})
	}
	return res
}

func join(items []string, f func(string) string) string {
	var sb strings.Builder
	for i, item := range items {
		part := f(item)
		if i > 0 && !strings.HasPrefix(part, ", ") {
			sb.WriteString(", ")
		}
		sb.WriteString(part)
	}
	return sb.String()
}

func lower(s string) string { return strings.ToLower(s) }

var funcs = template.FuncMap{
	"dec": func(i int) int { return i - 1 },
	"inc": func(i int) int { return i + 1 },
}

var dependentTemplate = template.Must(template.New("dependent").Funcs(funcs).Parse(`// Code generated by genarity. DO NOT EDIT.

package fn

// Fn1 is a function of the mapping input alone.
type Fn1[In, Out any] func(in In) Out
{{range .}}
// Fn{{inc .N}} takes the mapping input followed by arguments {{.TypeParams}}.
type Fn{{inc .N}}[In, {{.TypeParams}}, Out any] func(in In, {{.Args}}) Out

// DependentApply binds {{.FirstArg}} to get(in), leaving a function of the remaining arguments.
func (call Fn{{inc .N}}[In, {{.TypeParams}}, Out]) DependentApply(get func(In) {{.First}}) Fn{{.N}}[In, {{.RestTypeParams}}Out] {
	return func(in In{{.RestArgs}}) Out {
		return call(in, get(in){{.RestNames}})
	}
}
{{end}}`))

var constructorTemplate = template.Must(template.New("constructor").Funcs(funcs).Parse(`// Code generated by genarity. DO NOT EDIT.

package mappers

import "github.com/Station-Manager/mappers/internal/fn"
{{range .}}
// ConstructorBuilder{{.N}} is an immutable mapping stage with constructor parameters {{.TypeParams}} left to bind.
type ConstructorBuilder{{.N}}[In, {{.TypeParams}}, Out any] struct {
	ctor fn.Fn{{inc .N}}[In, {{.TypeParams}}, Out]
	opts Options
}

// Immutable{{.N}} starts an immutable mapping onto a constructor of arity {{.N}}.
func Immutable{{.N}}[In, {{.TypeParams}}, Out any](ctor func({{.TypeParams}}) Out, opts ...Option) *ConstructorBuilder{{.N}}[In, {{.TypeParams}}, Out] {
	requireFunc("mappers.Immutable{{.N}}", ctor == nil, "constructor")
	return &ConstructorBuilder{{.N}}[In, {{.TypeParams}}, Out]{
		ctor: func(_ In, {{.Args}}) Out { return ctor({{.Names}}) },
		opts: newOptions(opts),
	}
}

// Bind binds parameter {{.First}} to s.
{{if eq .N 1}}func (b *ConstructorBuilder1[In, A, Out]) Bind(s *Step[In, A]) *ConstructorBuilder[In, Out] {
	return newConstructorBuilder(b.ctor.DependentApply(stepGetter("mappers.ConstructorBuilder1.Bind", s)), b.opts)
}
{{else}}func (b *ConstructorBuilder{{.N}}[In, {{.TypeParams}}, Out]) Bind(s *Step[In, {{.First}}]) *ConstructorBuilder{{dec .N}}[In, {{.RestTypeParams}}Out] {
	return &ConstructorBuilder{{dec .N}}[In, {{.RestTypeParams}}Out]{
		ctor: b.ctor.DependentApply(stepGetter("mappers.ConstructorBuilder{{.N}}.Bind", s)),
		opts: b.opts,
	}
}
{{end}}
// Take binds parameter {{.First}} directly to getter.
{{if eq .N 1}}func (b *ConstructorBuilder1[In, A, Out]) Take(getter func(In) A) *ConstructorBuilder[In, Out] {
{{else}}func (b *ConstructorBuilder{{.N}}[In, {{.TypeParams}}, Out]) Take(getter func(In) {{.First}}) *ConstructorBuilder{{dec .N}}[In, {{.RestTypeParams}}Out] {
{{end}}	return b.Bind(From(getter))
}
{{end}}`))

var flattenTemplate = template.Must(template.New("flatten").Parse(`// Code generated by genarity. DO NOT EDIT.

package optimizer
{{range .}}
func flatten{{.N}}[In, Out any](s []func(In, Out) Out) func(In, Out) Out {
	{{.Vars}} := {{.Slots}}
	return func(in In, out Out) Out {
		return {{.Call}}
	}
}
{{end}}`))
