package visitor

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
	"unsafe"

	"github.com/viant/xunsafe"
)

var structCache = NewSyncMap[reflect.Type, *xunsafe.Struct]()

// StructVisitor implements Visitor[string, interface{}] for struct values.
// Fields are visited in declaration order; unexported fields are skipped.
type StructVisitor struct {
	value   interface{}
	ptr     unsafe.Pointer
	xStruct *xunsafe.Struct
}

// StructVisitorOf creates a StructVisitor from a struct or pointer to struct.
func StructVisitorOf(value interface{}) (Visitor[string, interface{}], error) {
	valueType := reflect.TypeOf(value)
	isPtr := false
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		isPtr = true
		structType = valueType.Elem()
	case reflect.Struct:
		structType = valueType
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}

	if !isPtr {
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	}
	xStruct, ok := structCache.Get(structType)
	if !ok {
		xStruct = xunsafe.NewStruct(structType)
		structCache.Put(structType, xStruct)
	}
	visitor := &StructVisitor{
		value:   value,
		ptr:     xunsafe.AsPointer(value),
		xStruct: xStruct,
	}
	return visitor.Visit, nil
}

// Visit iterates over exported struct fields, calling f with each field name
// and value.
func (v *StructVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	for i := 0; i < len(v.xStruct.Fields); i++ {
		xField := v.xStruct.Fields[i]
		if !isExported(xField.Name) {
			continue
		}
		continueVisit, err := f(xField.Name, xField.Value(v.ptr))
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

func isExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
