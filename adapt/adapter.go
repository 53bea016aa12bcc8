package adapt

import (
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Station-Manager/errors"
)

const (
	ErrMsgNilArgument   = "src and dst must not be nil"
	ErrMsgNotStruct     = "src must be a struct or a pointer to one, dst a non-nil pointer to a struct"
	ErrMsgConverterType = "converter returned a value of the wrong type"
	ErrMsgIncompatible  = "field types are incompatible"
)

const tagName = "mapper"

// ConverterFunc converts a source field value into a destination field value. Returning nil
// stores the destination's zero value.
type ConverterFunc func(src any) (any, error)

// ComposeConverters chains converters left to right. An error aborts the chain; a nil result
// ends it early.
func ComposeConverters(fns ...ConverterFunc) ConverterFunc {
	return func(src any) (any, error) {
		cur := src
		for _, fn := range fns {
			out, err := fn(cur)
			if err != nil {
				return nil, err
			}
			if out == nil {
				return nil, nil
			}
			cur = out
		}
		return cur, nil
	}
}

// MapString applies f to string values and passes anything else through.
func MapString(f func(string) string) ConverterFunc {
	return func(src any) (any, error) {
		if s, ok := src.(string); ok {
			return f(s), nil
		}
		return src, nil
	}
}

type Options struct {
	CaseInsensitive bool // match field names ignoring case when no exact or json name matches
	StrictTypes     bool // report matched fields that cannot be assigned instead of skipping them
}

type Option func(*Options)

func WithCaseInsensitive(v bool) Option { return func(o *Options) { o.CaseInsensitive = v } }
func WithStrictTypes(v bool) Option     { return func(o *Options) { o.StrictTypes = v } }

type typePair [2]reflect.Type // [src, dst]

// converterRegistry is never modified once published; registration swaps in a modified clone.
type converterRegistry struct {
	global map[string]ConverterFunc
	byDst  map[reflect.Type]map[string]ConverterFunc
	byPair map[typePair]map[string]ConverterFunc
}

func newConverterRegistry() *converterRegistry {
	return &converterRegistry{
		global: make(map[string]ConverterFunc),
		byDst:  make(map[reflect.Type]map[string]ConverterFunc),
		byPair: make(map[typePair]map[string]ConverterFunc),
	}
}

func (r *converterRegistry) clone() *converterRegistry {
	c := &converterRegistry{
		global: make(map[string]ConverterFunc, len(r.global)+1),
		byDst:  make(map[reflect.Type]map[string]ConverterFunc, len(r.byDst)+1),
		byPair: make(map[typePair]map[string]ConverterFunc, len(r.byPair)+1),
	}
	for k, v := range r.global {
		c.global[k] = v
	}
	for k, v := range r.byDst {
		c.byDst[k] = cloneFields(v)
	}
	for k, v := range r.byPair {
		c.byPair[k] = cloneFields(v)
	}
	return c
}

func cloneFields(m map[string]ConverterFunc) map[string]ConverterFunc {
	c := make(map[string]ConverterFunc, len(m)+1)
	for k, v := range m {
		c[k] = v
	}
	return c
}

func (r *converterRegistry) addGlobal(field string, fn ConverterFunc) { r.global[field] = fn }

func (r *converterRegistry) addDst(dt reflect.Type, field string, fn ConverterFunc) {
	m := r.byDst[dt]
	if m == nil {
		m = make(map[string]ConverterFunc)
		r.byDst[dt] = m
	}
	m[field] = fn
}

func (r *converterRegistry) addPair(key typePair, field string, fn ConverterFunc) {
	m := r.byPair[key]
	if m == nil {
		m = make(map[string]ConverterFunc)
		r.byPair[key] = m
	}
	m[field] = fn
}

// lookup applies the precedence pair > dst > global.
func (r *converterRegistry) lookup(st, dt reflect.Type, field string) ConverterFunc {
	if fn := r.byPair[typePair{st, dt}][field]; fn != nil {
		return fn
	}
	if fn := r.byDst[dt][field]; fn != nil {
		return fn
	}
	return r.global[field]
}

// Adapter copies fields between structs. The zero value is not usable; call New.
type Adapter struct {
	converters    atomic.Pointer[converterRegistry]
	metadataCache sync.Map // map[reflect.Type]*structMetadata
	options       Options
}

// New creates an Adapter with the given options.
func New(opts ...Option) *Adapter {
	a := &Adapter{}
	for _, f := range opts {
		f(&a.options)
	}
	a.converters.Store(newConverterRegistry())
	return a
}

func (a *Adapter) update(fn func(*converterRegistry)) {
	for {
		old := a.converters.Load()
		reg := old.clone()
		fn(reg)
		if a.converters.CompareAndSwap(old, reg) {
			return
		}
	}
}

// RegisterConverter adds a converter for fieldName on any struct pair.
func (a *Adapter) RegisterConverter(fieldName string, fn ConverterFunc) {
	a.update(func(r *converterRegistry) { r.addGlobal(fieldName, fn) })
}

// RegisterConverterFor scopes a converter to a destination type. Pass a value or a pointer.
func (a *Adapter) RegisterConverterFor(dstType any, fieldName string, fn ConverterFunc) {
	dt := structType(dstType)
	a.update(func(r *converterRegistry) { r.addDst(dt, fieldName, fn) })
}

// RegisterConverterForPair scopes a converter to one source and destination type.
func (a *Adapter) RegisterConverterForPair(srcType, dstType any, fieldName string, fn ConverterFunc) {
	key := typePair{structType(srcType), structType(dstType)}
	a.update(func(r *converterRegistry) { r.addPair(key, fieldName, fn) })
}

// WarmMetadata builds the cached metadata of the given example values ahead of first use.
func (a *Adapter) WarmMetadata(examples ...any) {
	for _, e := range examples {
		if e == nil {
			continue
		}
		if t := structType(e); t.Kind() == reflect.Struct {
			_ = a.getOrBuildMetadata(t)
		}
	}
}

// Into copies the matching fields of src into dst. src is a struct or a pointer to one; dst must
// be a non-nil pointer to a struct.
func (a *Adapter) Into(dst, src any) error {
	const op errors.Op = "adapt.Adapter.Into"
	if src == nil || dst == nil {
		return errors.New(op).Msg(ErrMsgNilArgument)
	}
	dstVal := reflect.ValueOf(dst)
	if dstVal.Kind() != reflect.Pointer || dstVal.IsNil() {
		return errors.New(op).Msg(ErrMsgNotStruct)
	}
	return a.adaptValues(dstVal.Elem(), reflect.ValueOf(src))
}

// adaptValues dereferences both sides down to structs. A nil source pointer leaves dst as is.
func (a *Adapter) adaptValues(dstVal, srcVal reflect.Value) error {
	const op errors.Op = "adapt.Adapter.adaptValues"
	for srcVal.Kind() == reflect.Pointer {
		if srcVal.IsNil() {
			return nil
		}
		srcVal = srcVal.Elem()
	}
	for dstVal.Kind() == reflect.Pointer {
		if dstVal.IsNil() {
			if !dstVal.CanSet() {
				return errors.New(op).Msg(ErrMsgNotStruct)
			}
			dstVal.Set(reflect.New(dstVal.Type().Elem()))
		}
		dstVal = dstVal.Elem()
	}
	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return errors.New(op).Msg(ErrMsgNotStruct)
	}
	return a.adaptStruct(dstVal, srcVal)
}

func (a *Adapter) adaptStruct(dstVal, srcVal reflect.Value) error {
	const op errors.Op = "adapt.Adapter.adaptStruct"
	dt, st := dstVal.Type(), srcVal.Type()
	dstMeta := a.getOrBuildMetadata(dt)
	srcMeta := a.getOrBuildMetadata(st)
	reg := a.converters.Load()

	for i := range dstMeta.fields {
		df := &dstMeta.fields[i]
		if df.ignore {
			continue
		}
		sf := srcMeta.match(df, a.options.CaseInsensitive)
		if sf == nil || sf.ignore {
			continue
		}
		srcField, ok := fieldForRead(srcVal, sf.index)
		if !ok || !srcField.CanInterface() {
			continue
		}
		dstField, ok := fieldForWrite(dstVal, df.index)
		if !ok {
			continue
		}
		if err := a.adaptField(dstField, srcField, reg.lookup(st, dt, df.name)); err != nil {
			return errors.New(op).Err(err).Msg("adapting field " + df.name)
		}
	}
	return nil
}

func (a *Adapter) adaptField(dstField, srcField reflect.Value, conv ConverterFunc) error {
	const op errors.Op = "adapt.Adapter.adaptField"
	if conv != nil {
		return applyConverter(dstField, srcField, conv)
	}

	srcType, dstType := srcField.Type(), dstField.Type()
	switch {
	case srcType.AssignableTo(dstType):
		dstField.Set(srcField)
	case convertible(srcType, dstType):
		dstField.Set(srcField.Convert(dstType))
	case isStructish(srcType) && isStructish(dstType):
		return a.adaptValues(dstField, srcField)
	case a.options.StrictTypes:
		return errors.New(op).Errorf("%s: %s to %s", ErrMsgIncompatible, srcType, dstType)
	}
	return nil
}

func applyConverter(dstField, srcField reflect.Value, conv ConverterFunc) error {
	const op errors.Op = "adapt.applyConverter"
	converted, err := conv(srcField.Interface())
	if err != nil {
		return errors.New(op).Err(err)
	}
	if converted == nil {
		dstField.Set(reflect.Zero(dstField.Type()))
		return nil
	}
	cv := reflect.ValueOf(converted)
	if !cv.Type().AssignableTo(dstField.Type()) {
		return errors.New(op).Errorf("%s: got %s, expected %s", ErrMsgConverterType, cv.Type(), dstField.Type())
	}
	dstField.Set(cv)
	return nil
}

// convertible excludes integer to string conversions, which reflect performs as rune conversions.
func convertible(src, dst reflect.Type) bool {
	if !src.ConvertibleTo(dst) {
		return false
	}
	if dst.Kind() == reflect.String {
		switch src.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return false
		}
	}
	return true
}

func isStructish(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func structType(v any) reflect.Type {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// fieldForRead walks index through embedded pointers, reporting false at a nil one.
func fieldForRead(val reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && val.Kind() == reflect.Pointer {
			if val.IsNil() {
				return reflect.Value{}, false
			}
			val = val.Elem()
		}
		val = val.Field(x)
	}
	return val, true
}

// fieldForWrite walks index through embedded pointers, allocating nil ones. It reports false
// when the field cannot be set, e.g. behind an unexported embedded struct.
func fieldForWrite(val reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && val.Kind() == reflect.Pointer {
			if val.IsNil() {
				if !val.CanSet() {
					return reflect.Value{}, false
				}
				val.Set(reflect.New(val.Type().Elem()))
			}
			val = val.Elem()
		}
		val = val.Field(x)
	}
	return val, val.CanSet()
}

type fieldInfo struct {
	index    []int
	name     string
	jsonName string
	ignore   bool
}

type structMetadata struct {
	fields           []fieldInfo
	fieldsByName     map[string]*fieldInfo
	fieldsByJSONName map[string]*fieldInfo
	fieldsByFold     map[string]*fieldInfo
}

func (m *structMetadata) match(df *fieldInfo, caseInsensitive bool) *fieldInfo {
	if sf, ok := m.fieldsByName[df.name]; ok {
		return sf
	}
	if df.jsonName != "" {
		if sf, ok := m.fieldsByJSONName[df.jsonName]; ok {
			return sf
		}
	}
	if caseInsensitive {
		return m.fieldsByFold[strings.ToLower(df.name)]
	}
	return nil
}

func (a *Adapter) getOrBuildMetadata(typ reflect.Type) *structMetadata {
	if cached, ok := a.metadataCache.Load(typ); ok {
		return cached.(*structMetadata)
	}
	meta := &structMetadata{
		fieldsByName:     make(map[string]*fieldInfo),
		fieldsByJSONName: make(map[string]*fieldInfo),
		fieldsByFold:     make(map[string]*fieldInfo),
	}
	buildFieldMetadata(typ, meta, nil)
	for i := range meta.fields {
		fi := &meta.fields[i]
		meta.fieldsByName[fi.name] = fi
		if fi.jsonName != "" {
			meta.fieldsByJSONName[fi.jsonName] = fi
		}
		if _, taken := meta.fieldsByFold[strings.ToLower(fi.name)]; !taken {
			meta.fieldsByFold[strings.ToLower(fi.name)] = fi
		}
	}
	actual, _ := a.metadataCache.LoadOrStore(typ, meta)
	return actual.(*structMetadata)
}

func buildFieldMetadata(typ reflect.Type, meta *structMetadata, prefix []int) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if tag := f.Tag.Get(tagName); tag != "ignore" && tag != "-" {
					buildFieldMetadata(ft, meta, idx)
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get(tagName)
		jsonName := ""
		if jt, ok := f.Tag.Lookup("json"); ok {
			jt, _, _ = strings.Cut(jt, ",")
			if jt != "-" {
				jsonName = jt
			}
		}
		meta.fields = append(meta.fields, fieldInfo{
			index:    idx,
			name:     f.Name,
			jsonName: jsonName,
			ignore:   tag == "ignore" || tag == "-",
		})
	}
}
