package node

import (
	"reflect"
	"strconv"
)

// sliceIndex parses a canonical, non-negative decimal index.
func sliceIndex(key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || strconv.Itoa(i) != key {
		return 0, false
	}

	return i, true
}

func lookupSlice(rv reflect.Value, key string) (any, bool) {
	i, ok := sliceIndex(key)
	if !ok || i >= rv.Len() {
		return nil, false
	}

	return rv.Index(i).Interface(), true
}

// assocSlice replaces index key, or appends when key equals the length.
// Any other key turns the sequence into a map[string]any keyed by index.
func assocSlice(v any, key string, update func(member any) (any, error)) (any, error) {
	rv := indirect(reflect.ValueOf(v))
	n := rv.Len()

	i, isIndex := sliceIndex(key)

	var current any
	if isIndex && i < n {
		current = rv.Index(i).Interface()
	}

	value, err := update(current)
	if err != nil {
		return nil, err
	}

	if !isIndex || i > n {
		promoted := make(map[string]any, n+1)
		for j := 0; j < n; j++ {
			promoted[strconv.Itoa(j)] = rv.Index(j).Interface()
		}
		promoted[key] = value

		return promoted, nil
	}

	ev, fits := fitValue(value, rv.Type().Elem())

	switch {
	case fits && rv.Kind() == reflect.Array && i < n:
		out := reflect.New(rv.Type()).Elem()
		out.Set(rv)
		out.Index(i).Set(ev)

		return rewrap(v, out), nil

	case fits && rv.Kind() == reflect.Slice:
		size := max(n, i+1)
		out := reflect.MakeSlice(rv.Type(), size, size)
		reflect.Copy(out, rv)
		out.Index(i).Set(ev)

		return rewrap(v, out), nil
	}

	// element type mismatch or a full array, continue with a generic slice
	out := make([]any, max(n, i+1))
	for j := 0; j < n; j++ {
		out[j] = rv.Index(j).Interface()
	}
	out[i] = value

	return out, nil
}

func sliceEntries(rv reflect.Value) []Entry {
	entries := make([]Entry, rv.Len())
	for i := range entries {
		entries[i] = Entry{Key: strconv.Itoa(i), Value: rv.Index(i).Interface()}
	}

	return entries
}
