package feature

import "sort"

// Context is the shared attribute schema: a mapping from attribute name to
// a slot index into each feature's value array.
//
// One Context is shared by reference among every feature built against it,
// so attribute names are stored once no matter how many features exist.
// Slot indices are dense, assigned from 0 in registration order, and never
// reused.
//
// A Context has no internal locking. See the package documentation for the
// concurrency contract.
type Context struct {
	mapping map[string]int
}

// ContextEntry is one (name, slot) pair of a Context.
type ContextEntry struct {
	Name  string
	Index int
}

// NewContext creates an empty schema.
func NewContext() *Context {
	return &Context{
		mapping: make(map[string]int),
	}
}

// Push registers name with the next free slot index and returns that
// index. If name is already registered the mapping is left untouched.
//
// Caveat: the returned index is computed before the existence check, so a
// duplicate Push returns the candidate index (the current size), which may
// differ from the name's actual slot. Callers needing the true slot of a
// possibly-registered name must use Lookup.
func (c *Context) Push(name string) int {
	index := len(c.mapping)
	if _, exists := c.mapping[name]; !exists {
		c.mapping[name] = index
	}
	return index
}

// Add registers name with an externally-assigned slot index. If name is
// already registered the mapping is left untouched. Add does not validate
// that index is unused; importers are expected to supply a consistent
// assignment.
func (c *Context) Add(name string, index int) {
	if _, exists := c.mapping[name]; !exists {
		c.mapping[name] = index
	}
}

// Lookup returns the slot index registered for name.
func (c *Context) Lookup(name string) (int, bool) {
	index, ok := c.mapping[name]
	return index, ok
}

// Size returns the number of registered names.
func (c *Context) Size() int {
	return len(c.mapping)
}

// Entries returns all (name, slot) pairs sorted by name. Sorted order is
// part of the contract: iteration and the debug text form both follow it,
// regardless of registration order.
func (c *Context) Entries() []ContextEntry {
	entries := make([]ContextEntry, 0, len(c.mapping))
	for name, index := range c.mapping {
		entries = append(entries, ContextEntry{Name: name, Index: index})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}
