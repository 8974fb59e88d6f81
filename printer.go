// Package structview renders arbitrary values as indented text listings of
// their leaves. Values are classified by capability into ordered sequences,
// keyed collections and leaves; sequence elements are labeled by 1-based
// position, collection entries by key, and indentation grows by two spaces
// per nesting level.
package structview

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/viant/structview/visitor"
	"github.com/viant/tagly/format/text"
)

// DefaultLabel is the positional label used for sequence elements.
const DefaultLabel = "Element"

const indentUnit = "  "

// Printer renders values as indented text listings. A Printer is stateless
// across calls; concurrent Render calls on disjoint writers are safe.
type Printer struct {
	options *options
}

// New creates a printer with the supplied options.
func New(opts ...Option) *Printer {
	return &Printer{options: newOptions(opts)}
}

// Render writes the indented listing of value to w, one line per emitted
// item. Each call restarts at the configured starting depth; no state is
// shared across calls.
func (p *Printer) Render(w io.Writer, value interface{}) error {
	if p.options.depth < 0 {
		return fmt.Errorf("structview: negative depth: %v", p.options.depth)
	}
	r := &renderer{out: w, options: p.options, seen: make(map[cycleKey]struct{})}
	return r.render(value, p.options.depth)
}

// Render writes the indented listing of value to w.
func Render(w io.Writer, value interface{}, opts ...Option) error {
	return New(opts...).Render(w, value)
}

// Lines renders value and returns the emitted lines.
func Lines(value interface{}, opts ...Option) ([]string, error) {
	buffer := new(bytes.Buffer)
	if err := Render(buffer, value, opts...); err != nil {
		return nil, err
	}
	output := buffer.String()
	if output == "" {
		return nil, nil
	}
	return strings.Split(strings.TrimSuffix(output, "\n"), "\n"), nil
}

// Sprint renders value and returns the output as a single string.
func Sprint(value interface{}, opts ...Option) (string, error) {
	buffer := new(bytes.Buffer)
	if err := Render(buffer, value, opts...); err != nil {
		return "", err
	}
	return buffer.String(), nil
}

type cycleKey struct {
	ptr   uintptr
	rType reflect.Type
}

type renderer struct {
	out     io.Writer
	options *options
	seen    map[cycleKey]struct{}
}

func (r *renderer) render(value interface{}, depth int) error {
	if r.options.maxDepth > 0 && depth > r.options.maxDepth {
		return fmt.Errorf("%w: %v", ErrDepthExceeded, depth)
	}
	leave, err := r.enter(value)
	if err != nil {
		return err
	}
	if leave != nil {
		defer leave()
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Ptr && rValue.IsNil() {
		return r.renderLeaf(nil, depth)
	}
	if collection, ok := value.(KeyedCollection); ok {
		return r.renderCollection(collection, depth)
	}
	if rValue.IsValid() && rValue.Kind() == reflect.Ptr {
		return r.render(rValue.Elem().Interface(), depth)
	}
	switch classify(value) {
	case kindSequence:
		return r.renderSequence(value, depth)
	case kindKeyed:
		return r.renderKeyed(value, depth)
	}
	return r.renderLeaf(value, depth)
}

func (r *renderer) renderSequence(value interface{}, depth int) error {
	visit, err := visitor.AnySequenceVisitorOf(value)
	if err != nil {
		return err
	}
	return visit(func(key int, element interface{}) (bool, error) {
		if err := r.line(depth, fmt.Sprintf("%s %d:", r.options.label, key+1)); err != nil {
			return false, err
		}
		if err := r.render(element, depth+1); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (r *renderer) renderCollection(collection KeyedCollection, depth int) error {
	return collection.Pairs(func(key string, element interface{}) (bool, error) {
		if err := r.line(depth, key+":"); err != nil {
			return false, err
		}
		if err := r.render(element, depth+1); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (r *renderer) renderKeyed(value interface{}, depth int) error {
	if reflect.TypeOf(value).Kind() == reflect.Struct {
		visit, err := visitor.StructVisitorOf(value)
		if err != nil {
			return err
		}
		return visit(func(key string, element interface{}) (bool, error) {
			if err := r.line(depth, r.formatKey(key)+":"); err != nil {
				return false, err
			}
			if err := r.render(element, depth+1); err != nil {
				return false, err
			}
			return true, nil
		})
	}
	visit, err := visitor.AnyMapVisitorOf(value)
	if err != nil {
		return err
	}
	return visit(func(key interface{}, element interface{}) (bool, error) {
		if err := r.line(depth, fmt.Sprintf("%v:", key)); err != nil {
			return false, err
		}
		if err := r.render(element, depth+1); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (r *renderer) renderLeaf(value interface{}, depth int) error {
	repr := ""
	switch actual := value.(type) {
	case []byte:
		repr = string(actual)
	default:
		repr = fmt.Sprintf("%v", value)
	}
	return r.line(depth, "Value: "+repr)
}

func (r *renderer) line(depth int, content string) error {
	_, err := fmt.Fprintf(r.out, "%s%s\n", strings.Repeat(indentUnit, depth), content)
	return err
}

func (r *renderer) formatKey(name string) string {
	if r.options.caseFormat == "" {
		return name
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, r.options.caseFormat)
}

// enter guards against cyclic containers; it returns a leave callback when
// the value identity was recorded.
func (r *renderer) enter(value interface{}) (func(), error) {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if rValue.IsNil() {
			return nil, nil
		}
		key := cycleKey{ptr: rValue.Pointer(), rType: rValue.Type()}
		if _, ok := r.seen[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrCyclic, rValue.Type())
		}
		r.seen[key] = struct{}{}
		return func() { delete(r.seen, key) }, nil
	}
	return nil, nil
}
