// Package node classifies arbitrary Go values and gives uniform, copy-on-write
// access to the members of keyed containers (maps, slices, arrays) and records
// (structs and Fielder implementations).
package node

import (
	"reflect"

	"data-accessor/primitive"
)

// Fielder is implemented by dynamic records that decide their own members.
// WithField must not modify the receiver; it returns the updated record.
type Fielder interface {
	Fields() []string
	Field(name string) (any, bool)
	WithField(name string, value any) (any, error)
}

// Entry is a single member of a container or record.
type Entry struct {
	Key   string
	Value any
}

// Dispatch classifies v. Pointers are followed, so a pointer to a struct is a
// struct and a nil pointer is null.
func Dispatch(v any) DispatcherEnum {
	if v == nil {
		return DispatcherNull
	}

	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return DispatcherNull
	}

	if _, ok := v.(Fielder); ok {
		return DispatcherInterface
	}

	if primitive.FromReflectType(rv.Type()) != 0 {
		return DispatcherPrimitive
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return DispatcherSlice
	case reflect.Map:
		return DispatcherMap
	case reflect.Struct:
		return DispatcherStruct
	}

	return DispatcherUnknown
}

// Lookup returns the member of v stored under key. Slices and arrays are
// indexed by canonical decimal keys, records by exported field name or json
// tag. Values without members never match.
func Lookup(v any, key string) (any, bool) {
	switch Dispatch(v) {
	case DispatcherInterface:
		return v.(Fielder).Field(key)
	case DispatcherSlice:
		return lookupSlice(indirect(reflect.ValueOf(v)), key)
	case DispatcherMap:
		return lookupMap(indirect(reflect.ValueOf(v)), key)
	case DispatcherStruct:
		return lookupStruct(indirect(reflect.ValueOf(v)), key)
	}

	return nil, false
}

// Assoc returns a copy of v where key is bound to the result of update, which
// receives the current member (nil when absent). v itself is never modified.
//
// Null, primitive and opaque values are replaced by a fresh map[string]any.
// Containers whose static type cannot hold the new member are promoted to
// map[string]any (or []any); records fail with a *FieldError instead.
func Assoc(v any, key string, update func(member any) (any, error)) (any, error) {
	switch Dispatch(v) {
	case DispatcherInterface:
		f := v.(Fielder)
		current, _ := f.Field(key)
		value, err := update(current)
		if err != nil {
			return nil, err
		}

		return f.WithField(key, value)
	case DispatcherSlice:
		return assocSlice(v, key, update)
	case DispatcherMap:
		return assocMap(v, key, update)
	case DispatcherStruct:
		return assocStruct(v, key, update)
	}

	value, err := update(nil)
	if err != nil {
		return nil, err
	}

	return map[string]any{key: value}, nil
}

// Entries lists the members of v: slices in index order, maps sorted by key,
// records in declaration order. Values without members have no entries.
func Entries(v any) []Entry {
	switch Dispatch(v) {
	case DispatcherInterface:
		f := v.(Fielder)
		var entries []Entry
		for _, name := range f.Fields() {
			if value, ok := f.Field(name); ok {
				entries = append(entries, Entry{Key: name, Value: value})
			}
		}
		return entries
	case DispatcherSlice:
		return sliceEntries(indirect(reflect.ValueOf(v)))
	case DispatcherMap:
		return mapEntries(indirect(reflect.ValueOf(v)))
	case DispatcherStruct:
		return structEntries(indirect(reflect.ValueOf(v)))
	}

	return nil
}

// Members returns the public members of a record, or of any container, as a
// fresh map keyed by member name.
func Members(v any) map[string]any {
	entries := Entries(v)
	members := make(map[string]any, len(entries))
	for _, e := range entries {
		members[e.Key] = e.Value
	}

	return members
}

// Len returns the number of members of v.
func Len(v any) int {
	switch Dispatch(v) {
	case DispatcherSlice, DispatcherMap:
		return indirect(reflect.ValueOf(v)).Len()
	case DispatcherInterface, DispatcherStruct:
		return len(Entries(v))
	}

	return 0
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}

	return rv
}

// rewrap returns out the way orig was held: behind a fresh pointer when orig
// was a pointer, by value otherwise.
func rewrap(orig any, out reflect.Value) any {
	if reflect.ValueOf(orig).Kind() == reflect.Pointer {
		ptr := reflect.New(out.Type())
		ptr.Elem().Set(out)
		return ptr.Interface()
	}

	return out.Interface()
}

// fitValue converts value so it can be stored in a slot of type t. Numeric
// values are converted only when the conversion is lossless.
func fitValue(value any, t reflect.Type) (reflect.Value, bool) {
	if value == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}

	vv := reflect.ValueOf(value)
	if vv.Type().AssignableTo(t) {
		return vv, true
	}

	if isNumeric(vv.Kind()) && isNumeric(t.Kind()) {
		converted := vv.Convert(t)
		if converted.Convert(vv.Type()).Interface() == value {
			return converted, true
		}
	}

	return reflect.Value{}, false
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
}
