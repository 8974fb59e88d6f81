package structview

import "github.com/viant/tagly/format/text"

// Option represents a printer option
type Option func(o *options)

type options struct {
	label      string
	depth      int
	maxDepth   int
	caseFormat text.CaseFormat
}

func newOptions(opts []Option) *options {
	ret := &options{label: DefaultLabel}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// WithLabel sets the positional label used for sequence elements;
// the default is "Element".
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithDepth sets the starting nesting depth, default 0.
func WithDepth(depth int) Option {
	return func(o *options) {
		o.depth = depth
	}
}

// WithMaxDepth bounds traversal depth; rendering past the bound fails with
// ErrDepthExceeded. Zero means unbounded.
func WithMaxDepth(maxDepth int) Option {
	return func(o *options) {
		o.maxDepth = maxDepth
	}
}

// WithCaseFormat formats struct field keys with the supplied case format.
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *options) {
		o.caseFormat = caseFormat
	}
}
