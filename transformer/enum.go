package transformer

import (
	"fmt"
	"reflect"

	"data-accessor/kind"
	"data-accessor/node"
	"data-accessor/primitive"
)

// EnumConverter yields the symbolic name of a primitive enum: the String
// method of a named integer type, or the value of a named string type.
type EnumConverter struct {
	perDefault bool
}

func NewEnumConverter(perDefault bool) *EnumConverter {
	return &EnumConverter{perDefault: perDefault}
}

func (c *EnumConverter) CanTransform(value any, target kind.Type) bool {
	if target != kind.String && (target != kind.None || !c.perDefault) {
		return false
	}

	if node.Dispatch(value) != node.DispatcherPrimitive {
		return false
	}

	if primitive.FromReflectType(reflect.TypeOf(value)) != primitive.KindPrimitiveEnum {
		return false
	}

	if _, ok := value.(fmt.Stringer); ok {
		return true
	}

	return reflect.TypeOf(value).Kind() == reflect.String
}

func (c *EnumConverter) Transform(value any, target kind.Type) (any, error) {
	if !c.CanTransform(value, target) {
		return nil, unsupported(value, target, "enum string for %s is not supported")
	}

	if s, ok := value.(fmt.Stringer); ok {
		return s.String(), nil
	}

	return reflect.ValueOf(value).String(), nil
}
