package node

import (
	"reflect"
	"strconv"
)

func typeStr(t reflect.Type) string {
	// fully qualified named types, or builtin string for basics
	switch t.Kind() {
	case reflect.Ptr:
		return "*" + typeStr(t.Elem())
	case reflect.Slice:
		return "[]" + typeStr(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + typeStr(t.Elem())
	case reflect.Map:
		return "map[" + typeStr(t.Key()) + "]" + typeStr(t.Elem())
	default:
		if t.PkgPath() == "" {
			return t.String()
		}
		return t.PkgPath() + "." + t.Name()
	}
}

// TypeName returns the fully qualified type name of v, or "null" for nil.
func TypeName(v any) string {
	if v == nil {
		return "null"
	}

	return typeStr(reflect.TypeOf(v))
}

// RecordName returns the fully qualified name of the record type behind v,
// without pointer indirections.
func RecordName(v any) string {
	if v == nil {
		return "null"
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return typeStr(t)
}

// Descriptor describes opaque values such as funcs and chans.
func Descriptor(v any) string {
	if v == nil {
		return "resource (null)"
	}

	return "resource (" + reflect.TypeOf(v).Kind().String() + ")"
}
