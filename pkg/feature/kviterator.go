package feature

import (
	"iter"

	"github.com/ice200117/mapnik/pkg/value"
)

// KVIterator walks a feature's attributes in the Context's sorted name
// order, pairing every schema entry with this feature's value for that
// slot. Entries beyond the feature's array yield the null value rather
// than being skipped (the debug text form makes the opposite choice).
//
// The iterator snapshots the sorted entries at creation. Mutating the
// feature or its Context during traversal is undefined; each call to
// Feature.Iterator produces a fresh, independent traversal.
type KVIterator struct {
	feature *Feature
	entries []ContextEntry
	pos     int
}

// Iterator returns a new attribute cursor positioned before the first
// entry. Use it scanner-style:
//
//	it := f.Iterator()
//	for it.Next() {
//	    fmt.Println(it.Key(), it.Value())
//	}
func (f *Feature) Iterator() *KVIterator {
	return &KVIterator{
		feature: f,
		entries: f.ctx.Entries(),
		pos:     -1,
	}
}

// Next advances to the next attribute and reports whether one exists.
func (it *KVIterator) Next() bool {
	if it.pos+1 >= len(it.entries) {
		return false
	}
	it.pos++
	return true
}

// Key returns the current attribute name. Valid only after a true Next.
func (it *KVIterator) Key() string {
	return it.entries[it.pos].Name
}

// Value returns the current attribute value, or the null value when the
// slot is beyond the feature's array. Valid only after a true Next.
func (it *KVIterator) Value() value.Value {
	return it.feature.GetByIndex(it.entries[it.pos].Index)
}

// All returns a range-over-func view of the same traversal:
//
//	for name, v := range f.All() {
//	    ...
//	}
func (f *Feature) All() iter.Seq2[string, value.Value] {
	return func(yield func(string, value.Value) bool) {
		for _, entry := range f.ctx.Entries() {
			if !yield(entry.Name, f.GetByIndex(entry.Index)) {
				return
			}
		}
	}
}
