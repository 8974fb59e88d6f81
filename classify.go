package structview

import (
	"reflect"
	"time"
)

// KeyedCollection is implemented by keyed collections exposing ordered
// key/value iteration. Implementations are rendered by key regardless of
// their concrete type.
type KeyedCollection interface {
	Pairs(f func(key string, value interface{}) (bool, error)) error
}

type kind int

const (
	kindLeaf kind = iota
	kindSequence
	kindKeyed
)

var timeType = reflect.TypeOf(time.Time{})

// classify determines a value shape: ordered sequence, keyed collection or
// leaf. Classification is by capability, checked in priority order, so a
// KeyedCollection implementation is never mistaken for a plain struct and
// text is never mistaken for a sequence.
func classify(value interface{}) kind {
	if value == nil {
		return kindLeaf
	}
	if _, ok := value.(KeyedCollection); ok {
		return kindKeyed
	}
	switch value.(type) {
	case string, []byte:
		return kindLeaf
	}
	rType := reflect.TypeOf(value)
	switch rType.Kind() {
	case reflect.Slice, reflect.Array:
		return kindSequence
	case reflect.Map:
		return kindKeyed
	case reflect.Struct:
		if rType == timeType {
			return kindLeaf
		}
		return kindKeyed
	}
	return kindLeaf
}
