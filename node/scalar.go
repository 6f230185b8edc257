package node

import (
	"reflect"

	"data-accessor/primitive"
)

// Scalar returns the primitive behind v, normalized to one of bool, int64,
// uint64, float64, string or time.Time, together with its primitive kind.
// Named types, durations and pointers to primitives are unwrapped.
func Scalar(v any) (any, primitive.KindEnum) {
	if v == nil {
		return nil, 0
	}

	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, 0
	}

	k := primitive.FromReflectType(rv.Type())
	switch {
	case k == 0:
		return nil, 0
	case k == primitive.KindTime:
		return rv.Interface(), k
	case k == primitive.KindBool:
		return rv.Bool(), k
	case k == primitive.KindString:
		return rv.String(), k
	case k.IsSigned():
		return rv.Int(), k
	case k.IsUnsigned():
		return rv.Uint(), k
	case k.IsFloat():
		return rv.Float(), k
	}

	// durations and primitive enums keep the nature of their underlying kind
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), k
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), k
	case reflect.String:
		return rv.String(), k
	}

	return nil, 0
}
