package visitor

import (
	"fmt"
	"reflect"
	"sort"
)

// MapVisitor holds a map of type map[K]E and implements the Visitor interface.
type MapVisitor[K comparable, E any] struct {
	data map[K]E
}

// MapVisitorOf creates a new MapVisitor from a typed map.
// Iteration order follows the runtime map order and is not stable; use
// AnyMapVisitorOf when a deterministic order is required.
func MapVisitorOf[K comparable, E any](aMap map[K]E) Visitor[K, E] {
	visitor := &MapVisitor[K, E]{data: aMap}
	return visitor.Visit
}

// Visit iterates over the map and calls f for each (key, element).
func (v *MapVisitor[K, E]) Visit(f func(key K, element E) (bool, error)) error {
	for k, e := range v.data {
		continueVisit, err := f(k, e)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// AnyMapVisitorOf dynamically creates a visitor over any map value.
// Keys are visited in sorted order: numerically for integer keys,
// lexically otherwise.
func AnyMapVisitorOf(value interface{}) (Visitor[any, any], error) {
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	visitor := &AnyMapVisitor{data: val}
	return visitor.Visit, nil
}

// AnyMapVisitor iterates maps of any key and element type via reflection,
// in sorted key order.
type AnyMapVisitor struct {
	data reflect.Value
}

// Visit iterates over the map entries in sorted key order.
func (v *AnyMapVisitor) Visit(f func(key any, element any) (bool, error)) error {
	keys := v.data.MapKeys()
	sortKeys(keys)
	for _, key := range keys {
		continueVisit, err := f(key.Interface(), v.data.MapIndex(key).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

func sortKeys(keys []reflect.Value) {
	if len(keys) < 2 {
		return
	}
	sort.Slice(keys, func(i, j int) bool {
		return lessKey(keys[i], keys[j])
	})
}

func lessKey(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if b.Kind() >= reflect.Int && b.Kind() <= reflect.Int64 {
			return a.Int() < b.Int()
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if b.Kind() >= reflect.Uint && b.Kind() <= reflect.Uint64 {
			return a.Uint() < b.Uint()
		}
	case reflect.Float32, reflect.Float64:
		if b.Kind() == reflect.Float32 || b.Kind() == reflect.Float64 {
			return a.Float() < b.Float()
		}
	case reflect.String:
		if b.Kind() == reflect.String {
			return a.String() < b.String()
		}
	}
	return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
}
