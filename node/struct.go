package node

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"data-accessor/internal/match"
)

var (
	ErrFieldNotFound      = errors.New("no such public field")
	ErrFieldNotAssignable = errors.New("field is not assignable")
)

// FieldError reports a member assignment a rigid record type does not allow.
type FieldError struct {
	Type       reflect.Type
	Field      string
	Suggestion string
	Err        error
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%s.%s: %s", typeStr(e.Type), e.Field, e.Err)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// structField resolves name against the exported fields of t, first by Go
// field name, then by json tag name.
func structField(t reflect.Type, name string) (reflect.StructField, bool) {
	if sf, ok := t.FieldByName(name); ok && sf.IsExported() {
		return sf, true
	}

	for _, sf := range reflect.VisibleFields(t) {
		if sf.IsExported() && tagName(sf) == name {
			return sf, true
		}
	}

	return reflect.StructField{}, false
}

func tagName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

// publicFields lists the exported fields of t, with embedded structs
// flattened into their promoted fields.
func publicFields(t reflect.Type) []reflect.StructField {
	var fields []reflect.StructField
	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() {
			continue
		}

		if sf.Anonymous {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				continue
			}
		}

		fields = append(fields, sf)
	}

	return fields
}

func lookupStruct(rv reflect.Value, key string) (any, bool) {
	sf, ok := structField(rv.Type(), key)
	if !ok {
		return nil, false
	}

	fv, err := rv.FieldByIndexErr(sf.Index)
	if err != nil {
		return nil, false
	}

	return fv.Interface(), true
}

// assocStruct sets field key on a shallow copy of the struct. Promoted
// fields are set on a copy of their embedded struct, so a shared embedded
// pointer is never written through.
func assocStruct(v any, key string, update func(member any) (any, error)) (any, error) {
	rv := indirect(reflect.ValueOf(v))
	t := rv.Type()

	sf, ok := structField(t, key)
	if !ok {
		names := make([]string, 0, t.NumField())
		for _, f := range publicFields(t) {
			names = append(names, f.Name)
		}

		suggestion, _ := match.Closest(key, names)

		return nil, &FieldError{Type: t, Field: key, Suggestion: suggestion, Err: ErrFieldNotFound}
	}

	out := reflect.New(t).Elem()
	out.Set(rv)

	fv := out.Field(sf.Index[0])
	if !fv.CanSet() {
		return nil, &FieldError{Type: t, Field: key, Err: ErrFieldNotAssignable}
	}

	if len(sf.Index) > 1 {
		embedded := vivify(fv)

		value, err := assocStruct(embedded, key, update)
		if err != nil {
			return nil, err
		}

		fv.Set(reflect.ValueOf(value))
		return rewrap(v, out), nil
	}

	value, err := update(vivify(fv))
	if err != nil {
		return nil, err
	}

	ev, fits := fitValue(value, sf.Type)
	if !fits {
		return nil, &FieldError{
			Type:  t,
			Field: key,
			Err:   fmt.Errorf("%w: %s is not a %s", ErrFieldNotAssignable, TypeName(value), typeStr(sf.Type)),
		}
	}

	fv.Set(ev)
	return rewrap(v, out), nil
}

// vivify returns the field value, replacing nil struct pointers and nil maps
// with empty values of the field's own type so they can be descended into.
func vivify(fv reflect.Value) any {
	switch {
	case fv.Kind() == reflect.Pointer && fv.IsNil() && fv.Type().Elem().Kind() == reflect.Struct:
		return reflect.New(fv.Type().Elem()).Interface()
	case fv.Kind() == reflect.Map && fv.IsNil():
		return reflect.MakeMap(fv.Type()).Interface()
	}

	return fv.Interface()
}

func structEntries(rv reflect.Value) []Entry {
	fields := publicFields(rv.Type())
	entries := make([]Entry, 0, len(fields))
	for _, sf := range fields {
		fv, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Key: sf.Name, Value: fv.Interface()})
	}

	return entries
}
