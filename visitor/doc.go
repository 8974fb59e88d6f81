// Package visitor provides generic callback-based iteration over container
// values: slices, arrays, maps, and structs. Map traversal uses a stable
// key order so that repeated visits of the same value yield the same
// pair sequence.
package visitor
