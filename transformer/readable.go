package transformer

import (
	"strconv"

	"data-accessor/kind"
	"data-accessor/node"
	"data-accessor/primitive"
)

// ReadableConverter renders booleans and null as "true", "false" and "null".
type ReadableConverter struct {
	perDefault bool
}

// NewReadableConverter creates a ReadableConverter for String targets. With
// perDefault it also applies when no target is given.
func NewReadableConverter(perDefault bool) *ReadableConverter {
	return &ReadableConverter{perDefault: perDefault}
}

func (c *ReadableConverter) CanTransform(value any, target kind.Type) bool {
	if target != kind.String && (target != kind.None || !c.perDefault) {
		return false
	}

	if node.Dispatch(value) == node.DispatcherNull {
		return true
	}

	_, k := node.Scalar(value)

	return k == primitive.KindBool
}

func (c *ReadableConverter) Transform(value any, target kind.Type) (any, error) {
	if !c.CanTransform(value, target) {
		return nil, unsupported(value, target, "creating readable for %s is not supported")
	}

	s, _ := node.Scalar(value)
	if b, ok := s.(bool); ok {
		return strconv.FormatBool(b), nil
	}

	return "null", nil
}
