package node

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// mapKey converts a path segment into a key of the map's key type. Integer
// keys must be spelled canonically; interface keys prefer an existing string
// key, then an existing int key.
func mapKey(rv reflect.Value, key string) (reflect.Value, bool) {
	kt := rv.Type().Key()

	switch kt.Kind() {
	case reflect.String:
		return reflect.ValueOf(key).Convert(kt), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(key, 10, kt.Bits())
		if err != nil || strconv.FormatInt(n, 10) != key {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(kt), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(key, 10, kt.Bits())
		if err != nil || strconv.FormatUint(n, 10) != key {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(kt), true

	case reflect.Interface:
		sk := reflect.ValueOf(key)
		if !sk.Type().AssignableTo(kt) {
			return reflect.Value{}, false
		}

		if rv.MapIndex(sk).IsValid() {
			return sk, true
		}

		if n, ok := sliceIndex(key); ok {
			ik := reflect.ValueOf(n)
			if ik.Type().AssignableTo(kt) && rv.MapIndex(ik).IsValid() {
				return ik, true
			}
		}

		return sk, true
	}

	return reflect.Value{}, false
}

func lookupMap(rv reflect.Value, key string) (any, bool) {
	k, ok := mapKey(rv, key)
	if !ok {
		return nil, false
	}

	value := rv.MapIndex(k)
	if !value.IsValid() {
		return nil, false
	}

	return value.Interface(), true
}

func assocMap(v any, key string, update func(member any) (any, error)) (any, error) {
	rv := indirect(reflect.ValueOf(v))

	k, keyFits := mapKey(rv, key)

	var current any
	if keyFits {
		if value := rv.MapIndex(k); value.IsValid() {
			current = value.Interface()
		}
	}

	value, err := update(current)
	if err != nil {
		return nil, err
	}

	if keyFits {
		if ev, ok := fitValue(value, rv.Type().Elem()); ok {
			out := reflect.MakeMapWithSize(rv.Type(), rv.Len()+1)
			iter := rv.MapRange()
			for iter.Next() {
				out.SetMapIndex(iter.Key(), iter.Value())
			}
			out.SetMapIndex(k, ev)

			return rewrap(v, out), nil
		}
	}

	// the typed map cannot hold the member, continue with a generic one
	promoted := make(map[string]any, rv.Len()+1)
	iter := rv.MapRange()
	for iter.Next() {
		promoted[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
	}
	promoted[key] = value

	return promoted, nil
}

func mapEntries(rv reflect.Value) []Entry {
	entries := make([]Entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, Entry{
			Key:   fmt.Sprint(iter.Key().Interface()),
			Value: iter.Value().Interface(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	return entries
}
