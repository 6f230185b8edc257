// Package transformer coerces arbitrary Go values into the canonical types of
// package kind. Converters handle one family of values each and are composed
// with resolvers into a chain.
package transformer

import (
	"errors"
	"fmt"

	"data-accessor/kind"
	"data-accessor/node"
)

// Transformer converts values into canonical types. A target of kind.None
// means "no explicit target": the transformer picks one from the value.
type Transformer interface {
	// CanTransform reports whether Transform would accept value for target.
	CanTransform(value any, target kind.Type) bool
	// Transform coerces value into target.
	Transform(value any, target kind.Type) (any, error)
}

var (
	ErrUnsupported   = errors.New("unsupported coercion")
	ErrNoTransformer = errors.New("no transformer found")
	ErrInvalidTarget = errors.New("invalid default target")
)

// Error is returned when a value and target pair has no applicable converter.
type Error struct {
	Value  any
	Target kind.Type
	Reason string
	Err    error
}

func (e *Error) Error() string {
	return e.Reason
}

func (e *Error) Unwrap() error {
	return e.Err
}

// unsupported builds an ErrUnsupported error; format receives the type
// name of value as its first argument.
func unsupported(value any, target kind.Type, format string, args ...any) *Error {
	return &Error{
		Value:  value,
		Target: target,
		Reason: fmt.Sprintf(format, append([]any{node.TypeName(value)}, args...)...),
		Err:    ErrUnsupported,
	}
}

// resolve returns target, or fallback when no explicit target was given.
func resolve(target, fallback kind.Type) kind.Type {
	if target == kind.None {
		return fallback
	}

	return target
}
