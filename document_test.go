package structview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocument_Merge(t *testing.T) {
	doc := NewDocument(
		map[string]interface{}{"key1": "value1"},
		map[string]interface{}{"key2": "value2"},
	)
	assert.Equal(t, 2, doc.Len())

	output, err := Sprint(doc)
	assert.Nil(t, err)
	expect := "key1:\n" +
		"  Value: value1\n" +
		"key2:\n" +
		"  Value: value2\n"
	assert.Equal(t, expect, output)
}

func TestDocument_PutKeepsPosition(t *testing.T) {
	doc := NewDocument().
		Put("first", 1).
		Put("second", 2).
		Put("first", 10)

	var keys []string
	err := doc.Pairs(func(key string, value interface{}) (bool, error) {
		keys = append(keys, key)
		return true, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, []string{"first", "second"}, keys)

	value, ok := doc.Value("first")
	assert.True(t, ok)
	assert.Equal(t, 10, value)
}

func TestDocument_Value(t *testing.T) {
	doc := NewDocument().Put("k", "v")
	value, ok := doc.Value("k")
	assert.True(t, ok)
	assert.Equal(t, "v", value)

	_, ok = doc.Value("missing")
	assert.False(t, ok)
}

func TestDocument_MergeOverlap(t *testing.T) {
	doc := NewDocument(
		map[string]interface{}{"a": 1, "b": 2},
		map[string]interface{}{"b": 20, "c": 3},
	)
	var keys []string
	var values []interface{}
	err := doc.Pairs(func(key string, value interface{}) (bool, error) {
		keys = append(keys, key)
		values = append(values, value)
		return true, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, []string{"a", "b", "c"}, keys)
	assert.EqualValues(t, []interface{}{1, 20, 3}, values)
}
