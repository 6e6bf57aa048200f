package eventlog

import (
	"reflect"
	"sort"
)

// isPlainRecord reports whether v is a plain key/value record: a non-nil map
// keyed by strings. Slices, structs, pointers and scalars are not records.
func isPlainRecord(v any) bool {
	if v == nil {
		return false
	}
	val := reflect.ValueOf(v)
	return val.Kind() == reflect.Map && val.Type().Key().Kind() == reflect.String && !val.IsNil()
}

// isAbsent reports whether v carries no payload: nil, or a typed nil such as
// a nil map, slice or pointer.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return val.IsNil()
	default:
		return false
	}
}

// presentData copies v, mapping typed nils to nil so they read as absent.
func presentData(v any) any {
	if isAbsent(v) {
		return nil
	}
	return cloneData(v)
}

// recordEntry is one key/value pair of a plain record.
type recordEntry struct {
	key   string
	value any
}

// recordEntries returns the entries of a plain record ordered by key.
func recordEntries(v any) []recordEntry {
	val := reflect.ValueOf(v)
	entries := make([]recordEntry, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		entries = append(entries, recordEntry{key: iter.Key().String(), value: iter.Value().Interface()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	return entries
}

// mergeData returns the payload an event exposes on read. A missing payload
// takes the defaults as they are; two plain records are shallow-merged with
// the event's keys winning; any other combination keeps the event's payload.
// The result never aliases either input.
func mergeData(data, defaults any) any {
	if defaults == nil {
		return cloneData(data)
	}
	if data == nil {
		return cloneData(defaults)
	}
	if !isPlainRecord(data) || !isPlainRecord(defaults) {
		return cloneData(data)
	}

	merged := make(map[string]any)
	for _, entry := range recordEntries(defaults) {
		merged[entry.key] = cloneData(entry.value)
	}
	for _, entry := range recordEntries(data) {
		merged[entry.key] = cloneData(entry.value)
	}
	return merged
}

// cloneData deep-copies maps and slices so two events never share mutable
// payload state. Other values are returned unchanged. A map that contains
// itself is copied into a map that contains the copy.
func cloneData(v any) any {
	if v == nil {
		return nil
	}
	return cloneValue(reflect.ValueOf(v), 0, map[uintptr]reflect.Value{}).Interface()
}

// cloneValue copies val. copied maps source maps to their copies.
func cloneValue(val reflect.Value, depth int, copied map[uintptr]reflect.Value) reflect.Value {
	if depth > maxDataDepth {
		return val
	}

	// Unwrap interfaces so the concrete kind decides how to copy.
	for val.Kind() == reflect.Interface {
		if val.IsNil() {
			return val
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Map:
		if val.IsNil() {
			return val
		}
		if out, ok := copied[val.Pointer()]; ok {
			return out
		}
		out := reflect.MakeMapWithSize(val.Type(), val.Len())
		copied[val.Pointer()] = out
		iter := val.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), settable(cloneValue(iter.Value(), depth+1, copied), val.Type().Elem()))
		}
		return out

	case reflect.Slice:
		if val.IsNil() {
			return val
		}
		out := reflect.MakeSlice(val.Type(), val.Len(), val.Len())
		for i := 0; i < val.Len(); i++ {
			out.Index(i).Set(settable(cloneValue(val.Index(i), depth+1, copied), val.Type().Elem()))
		}
		return out

	default:
		return val
	}
}

// settable converts v so it can be stored in a container with element type t.
func settable(v reflect.Value, t reflect.Type) reflect.Value {
	if !v.IsValid() {
		return reflect.Zero(t)
	}
	if v.Type() == t {
		return v
	}
	if v.Type().AssignableTo(t) {
		out := reflect.New(t).Elem()
		out.Set(v)
		return out
	}
	return v
}
