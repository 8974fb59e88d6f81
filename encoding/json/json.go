// Package json decodes JSON into render-ready values preserving object key
// order: objects become insertion-ordered documents, arrays slices, scalars
// leaves. The standard library map decoding loses key order; this package
// keeps it, so rendered output follows the source document.
package json

import (
	"bytes"
	"fmt"
	"io"

	"github.com/francoispqt/gojay"
	"github.com/viant/structview"
)

// Decode parses data into a render-ready value: *structview.Document for
// objects, []interface{} for arrays, string/float64/bool/nil for scalars.
func Decode(data []byte) (interface{}, error) {
	return decodeValue(data)
}

// Render decodes data and writes its indented listing to w.
func Render(w io.Writer, data []byte, opts ...structview.Option) error {
	value, err := Decode(data)
	if err != nil {
		return err
	}
	return structview.Render(w, value, opts...)
}

func decodeValue(raw []byte) (interface{}, error) {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 {
		return nil, fmt.Errorf("json: empty value")
	}
	switch data[0] {
	case '{':
		builder := &documentBuilder{doc: structview.NewDocument()}
		if err := gojay.UnmarshalJSONObject(data, builder); err != nil {
			return nil, err
		}
		return builder.doc, nil
	case '[':
		builder := &arrayBuilder{elements: []interface{}{}}
		if err := gojay.UnmarshalJSONArray(data, builder); err != nil {
			return nil, err
		}
		return builder.elements, nil
	}
	return decodeScalar(data)
}

func decodeScalar(data []byte) (interface{}, error) {
	switch data[0] {
	case '"':
		var value string
		err := gojay.Unmarshal(data, &value)
		return value, err
	case 't', 'f':
		var value bool
		err := gojay.Unmarshal(data, &value)
		return value, err
	case 'n':
		if !bytes.Equal(data, []byte("null")) {
			return nil, fmt.Errorf("json: invalid token %q", data)
		}
		return nil, nil
	}
	var value float64
	err := gojay.Unmarshal(data, &value)
	return value, err
}

// documentBuilder accumulates object keys in stream order.
type documentBuilder struct {
	doc *structview.Document
}

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject.
func (b *documentBuilder) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var raw gojay.EmbeddedJSON
	if err := dec.AddEmbeddedJSON(&raw); err != nil {
		return err
	}
	value, err := decodeValue(raw)
	if err != nil {
		return err
	}
	b.doc.Put(key, value)
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject; zero accepts any key.
func (b *documentBuilder) NKeys() int { return 0 }

type arrayBuilder struct {
	elements []interface{}
}

// UnmarshalJSONArray implements gojay.UnmarshalerJSONArray.
func (b *arrayBuilder) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var raw gojay.EmbeddedJSON
	if err := dec.AddEmbeddedJSON(&raw); err != nil {
		return err
	}
	value, err := decodeValue(raw)
	if err != nil {
		return err
	}
	b.elements = append(b.elements, value)
	return nil
}
