package transformer

import (
	"fmt"

	"data-accessor/kind"
	"data-accessor/node"
)

// StringableConverter renders values implementing fmt.Stringer.
type StringableConverter struct {
	perDefault bool
}

func NewStringableConverter(perDefault bool) *StringableConverter {
	return &StringableConverter{perDefault: perDefault}
}

func (c *StringableConverter) CanTransform(value any, target kind.Type) bool {
	if target != kind.String && (target != kind.None || !c.perDefault) {
		return false
	}

	_, ok := value.(fmt.Stringer)

	return ok && node.Dispatch(value) != node.DispatcherNull
}

func (c *StringableConverter) Transform(value any, target kind.Type) (any, error) {
	if !c.CanTransform(value, target) {
		return nil, unsupported(value, target, "creating stringable for %s is not supported")
	}

	return value.(fmt.Stringer).String(), nil
}
