package transformer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"data-accessor/kind"
	"data-accessor/node"
)

var (
	intPrefix   = regexp.MustCompile(`^\s*[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
)

// BasicTypeConverter converts any value into any canonical type. It is the
// catch-all at the end of every chain.
//
// Without an explicit target the value keeps its own nature: strings become
// String, integers Integer, floats Number, booleans Boolean, nil Null, maps
// and slices Array, records Object and opaque values String. The type map is
// applied to the resulting target, explicit or not.
type BasicTypeConverter struct {
	typeMap map[kind.Type]kind.Type
}

func NewBasicTypeConverter(typeMap map[kind.Type]kind.Type) *BasicTypeConverter {
	return &BasicTypeConverter{typeMap: typeMap}
}

func (c *BasicTypeConverter) CanTransform(value any, target kind.Type) bool {
	return c.target(value, target).IsValid()
}

func (c *BasicTypeConverter) Transform(value any, target kind.Type) (any, error) {
	t := c.target(value, target)

	out, ok := convert(value, t)
	if !ok {
		return nil, unsupported(value, t, "converting %s to %s is not supported", t)
	}

	return out, nil
}

func (c *BasicTypeConverter) target(value any, target kind.Type) kind.Type {
	t := resolve(target, implicitTarget(value))
	if mapped, ok := c.typeMap[t]; ok {
		t = mapped
	}

	return t
}

func implicitTarget(value any) kind.Type {
	switch node.Dispatch(value) {
	case node.DispatcherNull:
		return kind.Null
	case node.DispatcherSlice, node.DispatcherMap:
		return kind.Array
	case node.DispatcherInterface, node.DispatcherStruct:
		return kind.Object
	case node.DispatcherPrimitive:
		s, _ := node.Scalar(value)
		switch s.(type) {
		case bool:
			return kind.Boolean
		case int64, uint64:
			return kind.Integer
		case float64:
			return kind.Number
		}
	}

	return kind.String
}

func convert(value any, t kind.Type) (any, bool) {
	switch node.Dispatch(value) {
	case node.DispatcherNull:
		return fromNull(t)
	case node.DispatcherPrimitive:
		return fromScalar(value, t)
	case node.DispatcherSlice, node.DispatcherMap:
		return fromContainer(value, t)
	case node.DispatcherInterface, node.DispatcherStruct:
		return fromRecord(value, t)
	}

	return fromOpaque(value, t)
}

func fromNull(t kind.Type) (any, bool) {
	switch t {
	case kind.Array:
		return []any{}, true
	case kind.Object:
		return map[string]any{}, true
	case kind.Boolean:
		return false, true
	case kind.Integer:
		return 0, true
	case kind.Null:
		return nil, true
	case kind.Number:
		return 0.0, true
	case kind.String:
		return "", true
	}

	return nil, false
}

func fromScalar(value any, t kind.Type) (any, bool) {
	s, _ := node.Scalar(value)

	switch t {
	case kind.Array:
		return []any{value}, true
	case kind.Object:
		return map[string]any{"scalar": value}, true
	case kind.Boolean:
		return scalarBool(s), true
	case kind.Integer:
		return scalarInt(s), true
	case kind.Null:
		return nil, true
	case kind.Number:
		return scalarFloat(s), true
	case kind.String:
		return scalarString(s), true
	}

	return nil, false
}

// fromContainer coerces maps and slices. Integer and Number use the first
// member: index 0 of a slice, the smallest key of a map.
func fromContainer(value any, t kind.Type) (any, bool) {
	switch t {
	case kind.Array:
		return value, true
	case kind.Object:
		return node.Members(value), true
	case kind.Boolean:
		return node.Len(value) > 0, true
	case kind.Integer, kind.Number:
		entries := node.Entries(value)
		if len(entries) == 0 {
			return fromNull(t)
		}
		return convert(entries[0].Value, t)
	case kind.Null:
		return nil, true
	case kind.String:
		return "array", true
	}

	return nil, false
}

func fromRecord(value any, t kind.Type) (any, bool) {
	switch t {
	case kind.Array, kind.Object:
		return node.Members(value), true
	case kind.Boolean:
		return true, true
	case kind.Integer:
		return 1, true
	case kind.Null:
		return nil, true
	case kind.Number:
		return 1.0, true
	case kind.String:
		return node.RecordName(value), true
	}

	return nil, false
}

func fromOpaque(value any, t kind.Type) (any, bool) {
	d := node.Descriptor(value)

	switch t {
	case kind.Array:
		return []any{d}, true
	case kind.Object:
		return map[string]any{"scalar": d}, true
	case kind.Boolean:
		return true, true
	case kind.Integer:
		return 0, true
	case kind.Null:
		return nil, true
	case kind.Number:
		return 0.0, true
	case kind.String:
		return d, true
	}

	return nil, false
}

func scalarBool(s any) bool {
	switch v := s.(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case uint64:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v != ""
	case time.Time:
		return !v.IsZero()
	}

	return false
}

func scalarInt(s any) int {
	switch v := s.(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case int64, uint64, float64:
		return cast.ToInt(v)
	case string:
		return leadingInt(v)
	case time.Time:
		return int(v.Unix())
	}

	return 0
}

func scalarFloat(s any) float64 {
	switch v := s.(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case int64, uint64, float64:
		return cast.ToFloat64(v)
	case string:
		return leadingFloat(v)
	case time.Time:
		return float64(v.UnixNano()) / float64(time.Second)
	}

	return 0
}

func scalarString(s any) string {
	switch v := s.(type) {
	case bool:
		if v {
			return "1"
		}
		return ""
	case int64, uint64, float64:
		return cast.ToString(v)
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339Nano)
	}

	return ""
}

// leadingInt parses the integer at the start of s, "12abc" gives 12. Out of
// range prefixes saturate.
func leadingInt(s string) int {
	prefix := intPrefix.FindString(s)
	if prefix == "" {
		return 0
	}

	n, _ := strconv.ParseInt(strings.TrimSpace(prefix), 10, 64)

	return int(n)
}

func leadingFloat(s string) float64 {
	prefix := floatPrefix.FindString(s)
	if prefix == "" {
		return 0
	}

	f, _ := strconv.ParseFloat(strings.TrimSpace(prefix), 64)

	return f
}
