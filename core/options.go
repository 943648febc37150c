package core

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

//  ######################################################
//              OPERATION DESCRIPTORS
//  ######################################################

// Location tells the transport where a field travels in the HTTP request.
type Location int

const (
	InPath Location = iota
	InQuery
	InBody
)

func (l Location) String() string {
	switch l {
	case InPath:
		return "path"
	case InQuery:
		return "query"
	case InBody:
		return "body"
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

// Field describes one parameter of an API operation.
type Field struct {
	Name     string   // accessor name, used in validation messages (e.g. "workspaceId")
	Wire     string   // name on the wire (e.g. "workspace_id")
	In       Location // path, query or body
	Required bool
}

// Operation describes a single REST call: its verb, path template and the
// closed set of fields accepted by the matching options type.
type Operation struct {
	ID     string // operation id as published in the API reference (e.g. "listValues")
	Method string
	Path   string // template with {wire} placeholders, e.g. "/v1/workspaces/{workspace_id}"
	Fields []Field
}

// Field returns the descriptor of the field with the given wire name.
func (op *Operation) Field(wire string) (Field, bool) {
	for _, f := range op.Fields {
		if f.Wire == wire {
			return f, true
		}
	}
	return Field{}, false
}

// Clone returns a copy of op that shares nothing with it.
func (op *Operation) Clone() *Operation {
	if op == nil {
		return nil
	}
	out := *op
	out.Fields = append([]Field(nil), op.Fields...)
	return &out
}

// RequiredFields returns the wire names of all required fields in declaration order.
func (op *Operation) RequiredFields() []string {
	var names []string
	for _, f := range op.Fields {
		if f.Required {
			names = append(names, f.Wire)
		}
	}
	return names
}

//  ######################################################
//              BUILDER
//  ######################################################

// Builder is the mutable staging area for an Options value.
// It is not safe for concurrent use.
type Builder struct {
	op      *Operation
	values  map[string]any
	unknown []string
}

// NewBuilder returns an empty builder for a snapshot of op. Later changes to
// op do not affect the builder or the options it builds.
func NewBuilder(op *Operation) *Builder {
	if op == nil {
		panic("core.NewBuilder: operation cannot be nil")
	}
	return &Builder{op: op.Clone(), values: make(map[string]any)}
}

// Operation returns a copy of the descriptor the builder was created for.
func (b *Builder) Operation() *Operation {
	return b.op.Clone()
}

// Set stores value under the wire name. A nil value (or nil slice/map/pointer)
// removes the field, so optional values can be cleared through setters.
// Setting a name the operation does not declare is reported by Build.
func (b *Builder) Set(wire string, value any) *Builder {
	if _, ok := b.op.Field(wire); !ok {
		b.unknown = append(b.unknown, wire)
		return b
	}
	if isNil(value) {
		delete(b.values, wire)
		return b
	}
	b.values[wire] = value
	return b
}

// Clear removes the given fields from the builder.
func (b *Builder) Clear(wires ...string) *Builder {
	for _, wire := range wires {
		b.Set(wire, nil)
	}
	return b
}

// Build validates the staged values and returns a frozen copy of them.
// Required fields must be present; required strings must also be non-empty.
func (b *Builder) Build() (*Options, error) {
	if len(b.unknown) > 0 {
		return nil, &ValidationError{
			Operation: b.op.ID,
			Field:     b.unknown[0],
			Reason:    "is not a parameter of this operation",
		}
	}
	for _, f := range b.op.Fields {
		if !f.Required {
			continue
		}
		v, ok := b.values[f.Wire]
		if !ok {
			return nil, &ValidationError{Operation: b.op.ID, Field: f.Name, Reason: "cannot be empty"}
		}
		if s, isStr := v.(string); isStr && s == "" {
			return nil, &ValidationError{Operation: b.op.ID, Field: f.Name, Reason: "cannot be empty"}
		}
	}
	frozen := make(map[string]any, len(b.values))
	for k, v := range b.values {
		frozen[k] = deepCopy(v)
	}
	return &Options{op: b.op.Clone(), values: frozen}, nil
}

//  ######################################################
//              OPTIONS
//  ######################################################

// Options is the validated, immutable parameter set of one API call.
// All read accessors hand out copies, so an Options value may be shared
// freely between goroutines. A nil *Options reads as an empty parameter set.
type Options struct {
	op     *Operation
	values map[string]any
}

// Operation returns a copy of the descriptor of the call these options belong to.
func (o *Options) Operation() *Operation {
	if o == nil {
		return nil
	}
	return o.op.Clone()
}

// Lookup returns a copy of the value stored under wire.
func (o *Options) Lookup(wire string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[wire]
	if !ok {
		return nil, false
	}
	return deepCopy(v), true
}

// IsSet reports whether the field was supplied.
func (o *Options) IsSet(wire string) bool {
	if o == nil {
		return false
	}
	_, ok := o.values[wire]
	return ok
}

// NewBuilder returns a builder pre-seeded with a copy of every value.
// It returns nil for nil options, which have no operation to build for.
func (o *Options) NewBuilder() *Builder {
	if o == nil {
		return nil
	}
	b := NewBuilder(o.op)
	for k, v := range o.values {
		b.values[k] = deepCopy(v)
	}
	return b
}

// Values returns a copy of all supplied fields keyed by wire name.
func (o *Options) Values() Params {
	return o.paramsIn(nil)
}

// PathParams returns the string form of every path field.
func (o *Options) PathParams() map[string]string {
	loc := InPath
	out := make(map[string]string)
	for k, v := range o.paramsIn(&loc) {
		out[k] = fmt.Sprint(v)
	}
	return out
}

// QueryParams returns the query fields that were supplied.
func (o *Options) QueryParams() Params {
	loc := InQuery
	return o.paramsIn(&loc)
}

// BodyParams returns the body fields that were supplied, or nil when the
// operation carries no body values.
func (o *Options) BodyParams() Params {
	loc := InBody
	p := o.paramsIn(&loc)
	if len(p) == 0 {
		return nil
	}
	return p
}

func (o *Options) paramsIn(loc *Location) Params {
	out := make(Params)
	if o == nil {
		return out
	}
	for _, f := range o.op.Fields {
		if loc != nil && f.In != *loc {
			continue
		}
		if v, ok := o.values[f.Wire]; ok {
			out[f.Wire] = deepCopy(v)
		}
	}
	return out
}

// String renders the supplied fields in declaration order.
func (o *Options) String() string {
	if o == nil {
		return "<nil>"
	}
	var parts []string
	for _, f := range o.op.Fields {
		if v, ok := o.values[f.Wire]; ok {
			parts = append(parts, fmt.Sprintf("%s=%v", f.Name, v))
		}
	}
	return fmt.Sprintf("%s{%s}", o.op.ID, strings.Join(parts, ", "))
}

// Get returns the typed value of an optional field, or the unset marker.
// It panics if the stored value is not a T, which means the field table and
// the typed accessor disagree.
func Get[T any](o *Options, wire string) Optional[T] {
	v, ok := o.Lookup(wire)
	if !ok {
		return None[T]()
	}
	typed, ok := v.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("%s: field %q holds %T, not %T", o.op.ID, wire, v, zero))
	}
	return Some(typed)
}

// Require returns the value of a field that Build guarantees to be present.
func Require[T any](o *Options, wire string) T {
	return Get[T](o, wire).OrElse(*new(T))
}

// SortedWireNames returns the wire names of all supplied fields, sorted.
func (o *Options) SortedWireNames() []string {
	if o == nil {
		return nil
	}
	names := make([]string, 0, len(o.values))
	for k := range o.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//  ######################################################
//              COPY HELPERS
//  ######################################################

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// deepCopy copies slices, maps, pointers and the exported fields of structs
// so that values held by Options never alias caller memory.
func deepCopy(v any) any {
	if v == nil {
		return nil
	}
	return copyValue(reflect.ValueOf(v)).Interface()
}

func copyValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(copyValue(v.Index(i)))
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), copyValue(iter.Value()))
		}
		return out
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(copyValue(v.Elem()))
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		inner := copyValue(v.Elem())
		out := reflect.New(v.Type()).Elem()
		out.Set(inner)
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			if field := out.Field(i); field.CanSet() {
				field.Set(copyValue(v.Field(i)))
			}
		}
		return out
	}
	return v
}
