// Package registry stores content records keyed by string identifier.
package registry

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when an identifier has no record
var ErrNotFound = errors.New("record not found")

// Factory holds records of one content type keyed by identifier.
// Inserting an existing identifier replaces the stored record.
// A Factory is not safe for concurrent mutation.
type Factory[T any] struct {
	typeName string
	idField  string
	records  map[string]T
	order    []string
}

// NewFactory creates an empty factory for the named content type.
// idField names the member that carries the identifier in content files.
func NewFactory[T any](typeName, idField string) *Factory[T] {
	return &Factory[T]{
		typeName: typeName,
		idField:  idField,
		records:  make(map[string]T),
	}
}

// TypeName returns the content type served by this factory
func (f *Factory[T]) TypeName() string {
	return f.typeName
}

// IDField returns the name of the identifier member in content files
func (f *Factory[T]) IDField() string {
	return f.idField
}

// Insert stores rec under id, replacing any existing record.
// It reports whether an existing record was replaced.
func (f *Factory[T]) Insert(id string, rec T) bool {
	_, exists := f.records[id]
	if !exists {
		f.order = append(f.order, id)
	}
	f.records[id] = rec
	return exists
}

// Get returns the record stored under id
func (f *Factory[T]) Get(id string) (T, error) {
	rec, ok := f.records[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s '%s'", ErrNotFound, f.typeName, id)
	}
	return rec, nil
}

// IsValid reports whether a record exists for id
func (f *Factory[T]) IsValid(id string) bool {
	_, ok := f.records[id]
	return ok
}

// Len returns the number of stored records
func (f *Factory[T]) Len() int {
	return len(f.records)
}

// IDs returns identifiers in first-insertion order
func (f *Factory[T]) IDs() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// SortedIDs returns identifiers in lexical order
func (f *Factory[T]) SortedIDs() []string {
	out := f.IDs()
	sort.Strings(out)
	return out
}

// Each calls fn for every record in first-insertion order
func (f *Factory[T]) Each(fn func(id string, rec T)) {
	for _, id := range f.order {
		fn(id, f.records[id])
	}
}

// Reset removes every record
func (f *Factory[T]) Reset() {
	f.records = make(map[string]T)
	f.order = nil
}
