package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitor implements Visitor[int, E] for a typed slice.
type SliceVisitor[E any] struct {
	data []E
}

// SliceVisitorOf creates a Visitor for a []E value.
func SliceVisitorOf[E any](value interface{}) (Visitor[int, E], error) {
	slice, ok := value.([]E)
	if !ok {
		return nil, fmt.Errorf("expected []%T element slice, got %T", *new(E), value)
	}
	visitor := &SliceVisitor[E]{data: slice}
	return visitor.Visit, nil
}

// Visit iterates over the slice, calling f for each element.
// The key is the element index.
func (v *SliceVisitor[E]) Visit(f func(key int, element E) (bool, error)) error {
	for i, elem := range v.data {
		continueVisit, err := f(i, elem)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// AnySequenceVisitorOf dynamically creates a visitor over any slice or array
// value, preserving element order.
func AnySequenceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []string:
		return AnyTypedSliceVisitorOf[string](actual), nil
	case []bool:
		return AnyTypedSliceVisitorOf[bool](actual), nil
	case []int:
		return AnyTypedSliceVisitorOf[int](actual), nil
	case []int64:
		return AnyTypedSliceVisitorOf[int64](actual), nil
	case []uint64:
		return AnyTypedSliceVisitorOf[uint64](actual), nil
	case []float64:
		return AnyTypedSliceVisitorOf[float64](actual), nil
	case []float32:
		return AnyTypedSliceVisitorOf[float32](actual), nil
	case []interface{}:
		return AnyTypedSliceVisitorOf[interface{}](actual), nil
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	visitor := &AnySequenceVisitor{data: val}
	return visitor.Visit, nil
}

// AnyTypedSliceVisitorOf creates a Visitor[int, any] from a typed slice.
func AnyTypedSliceVisitorOf[E any](slice []E) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnySequenceVisitor iterates slices and arrays of any element type via
// reflection.
type AnySequenceVisitor struct {
	data reflect.Value
}

// Visit iterates over the sequence in index order.
func (v *AnySequenceVisitor) Visit(f func(key int, element any) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
