package structview

import "sort"

// Entry represents a single document entry.
type Entry struct {
	Key   string
	Value interface{}
}

// Document is an insertion-ordered keyed collection. It renders identically
// to a plain map with the same entries, except that iteration follows
// insertion order rather than key order.
type Document struct {
	entries []Entry
	index   map[string]int
}

// NewDocument creates a document by merging the supplied source maps in
// argument order; each source contributes its keys in sorted order. A key
// present in several sources keeps its first insertion position with the
// last source's value.
func NewDocument(sources ...map[string]interface{}) *Document {
	doc := &Document{index: make(map[string]int)}
	for _, source := range sources {
		keys := make([]string, 0, len(source))
		for key := range source {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			doc.Put(key, source[key])
		}
	}
	return doc
}

// Put adds or replaces an entry; a replaced entry keeps its position.
func (d *Document) Put(key string, value interface{}) *Document {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if pos, ok := d.index[key]; ok {
		d.entries[pos].Value = value
		return d
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, Entry{Key: key, Value: value})
	return d
}

// Value returns the value associated with key.
func (d *Document) Value(key string) (interface{}, bool) {
	pos, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.entries[pos].Value, true
}

// Len returns the number of entries.
func (d *Document) Len() int {
	return len(d.entries)
}

// Pairs iterates entries in insertion order, implementing KeyedCollection.
func (d *Document) Pairs(f func(key string, value interface{}) (bool, error)) error {
	for _, entry := range d.entries {
		continueVisit, err := f(entry.Key, entry.Value)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
