package maven

import (
	"maps"
	"slices"
)

// TableBuilder accumulates coordinates during a collector pass.
// It is not safe for concurrent use.
type TableBuilder struct {
	entries map[string]Coordinate
}

// NewTableBuilder returns an empty builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{entries: make(map[string]Coordinate)}
}

// Put records c under key. A later Put with the same key replaces the
// earlier coordinate and reports replaced=true.
func (b *TableBuilder) Put(key string, c Coordinate) (replaced bool) {
	_, replaced = b.entries[key]
	b.entries[key] = c
	return replaced
}

// Build returns a read-only snapshot of the collected coordinates.
// Further calls to Put do not affect tables already built.
func (b *TableBuilder) Build() *Table {
	return &Table{entries: maps.Clone(b.entries)}
}

// Table maps artifact base names to coordinates. It is immutable once
// built and may be shared freely.
type Table struct {
	entries map[string]Coordinate
}

// Lookup returns the coordinate recorded for key.
// A nil table behaves like an empty one.
func (t *Table) Lookup(key string) (Coordinate, bool) {
	if t == nil {
		return Coordinate{}, false
	}
	c, ok := t.entries[key]
	return c, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Keys returns all base names in sorted order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.entries))
}
