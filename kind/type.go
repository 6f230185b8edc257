// Package kind defines the closed set of canonical types that values can be
// coerced into.
package kind

import (
	"errors"
	"fmt"
	"strings"

	"data-accessor/utils"
)

//go:generate go tool stringer -type=Type -linecomment -output=type_string.go

// Type is a canonical coercion target.
type Type int

const (
	None    Type = iota // none
	Array               // array
	Object              // object
	Boolean             // boolean
	Integer             // integer
	Null                // null
	Number              // number
	String              // string

	// TypeTotal is a constant that represents the total number of types defined, None included
	TypeTotal = int(iota)
)

var ErrUnknownType = errors.New("unknown canonical type")

// All returns every valid target in declaration order.
func All() []Type {
	return []Type{Array, Object, Boolean, Integer, Null, Number, String}
}

// IsValid reports whether t is one of the seven canonical targets. None is
// not a target, it means "no explicit target".
func (t Type) IsValid() bool {
	return utils.IsInRange(Array, t, String)
}

// Parse resolves a canonical type by its name, case-insensitively.
// The empty string parses to None.
func Parse(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return None, nil
	}

	for _, t := range All() {
		if t.String() == name {
			return t, nil
		}
	}

	return None, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if t != None && !t.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
