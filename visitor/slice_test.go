package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceVisitorOf(t *testing.T) {
	visit, err := SliceVisitorOf[string]([]string{"a", "b", "c"})
	if !assert.Nil(t, err) {
		return
	}
	var cloned []string
	err = visit(func(key int, element string) (bool, error) {
		cloned = append(cloned, element)
		return true, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, []string{"a", "b", "c"}, cloned)
}

func TestAnySequenceVisitorOf(t *testing.T) {
	{
		visit, err := AnySequenceVisitorOf([]int{6, 7})
		if !assert.Nil(t, err) {
			return
		}
		var keys []int
		var elements []any
		err = visit(func(key int, element any) (bool, error) {
			keys = append(keys, key)
			elements = append(elements, element)
			return true, nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, []int{0, 1}, keys)
		assert.EqualValues(t, []any{6, 7}, elements)
	}
	{ //array support
		visit, err := AnySequenceVisitorOf([2]string{"x", "y"})
		if !assert.Nil(t, err) {
			return
		}
		var elements []any
		err = visit(func(key int, element any) (bool, error) {
			elements = append(elements, element)
			return true, nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, []any{"x", "y"}, elements)
	}
	{
		_, err := AnySequenceVisitorOf(map[string]int{})
		assert.NotNil(t, err)
	}
}
