// Package state holds the copy-on-write containers screens keep their records in.
package state

import "github.com/samber/lo"

type Record[T any] interface {
	GetID() string
	WithID(id string) T
	WithField(field, value string) (T, error)
}

// Store is an immutable ordered sequence of records. Every mutating method returns a
// new Store and leaves the receiver untouched.
type Store[T Record[T]] struct {
	records []T
	newID   IDGenerator
}

func NewStore[T Record[T]](newID IDGenerator, seed ...T) Store[T] {
	if newID == nil {
		newID = NewUUID
	}
	records := make([]T, len(seed))
	copy(records, seed)
	return Store[T]{records: records, newID: newID}
}

// Add appends record under a freshly generated id.
func (s Store[T]) Add(record T) Store[T] {
	records := make([]T, len(s.records), len(s.records)+1)
	copy(records, s.records)
	records = append(records, record.WithID(s.nextID()))
	return Store[T]{records: records, newID: s.newID}
}

// Update sets field on the record with the given id. An unknown id leaves the store
// unchanged; an unknown field or invalid value returns the receiver and the error.
func (s Store[T]) Update(id, field, value string) (Store[T], error) {
	return s.Apply(id, func(record T) (T, error) {
		return record.WithField(field, value)
	})
}

// Apply replaces the record with the given id by fn's result.
func (s Store[T]) Apply(id string, fn func(T) (T, error)) (Store[T], error) {
	index := s.indexOf(id)
	if index < 0 {
		return s, nil
	}

	updated, err := fn(s.records[index])
	if err != nil {
		return s, err
	}

	records := make([]T, len(s.records))
	copy(records, s.records)
	records[index] = updated.WithID(id)
	return Store[T]{records: records, newID: s.newID}, nil
}

// Remove drops the record with the given id, if any.
func (s Store[T]) Remove(id string) Store[T] {
	if s.indexOf(id) < 0 {
		return s
	}
	records := lo.Filter(s.records, func(record T, _ int) bool {
		return record.GetID() != id
	})
	return Store[T]{records: records, newID: s.newID}
}

func (s Store[T]) Get(id string) (T, bool) {
	return lo.Find(s.records, func(record T) bool {
		return record.GetID() == id
	})
}

// At returns the record at a 1-based position, the way users number list items.
func (s Store[T]) At(position int) (T, bool) {
	var zero T
	if position < 1 || position > len(s.records) {
		return zero, false
	}
	return s.records[position-1], true
}

func (s Store[T]) All() []T {
	records := make([]T, len(s.records))
	copy(records, s.records)
	return records
}

func (s Store[T]) Len() int {
	return len(s.records)
}

func (s Store[T]) indexOf(id string) int {
	_, index, found := lo.FindIndexOf(s.records, func(record T) bool {
		return record.GetID() == id
	})
	if !found {
		return -1
	}
	return index
}

func (s Store[T]) nextID() string {
	generate := s.newID
	if generate == nil {
		generate = NewUUID
	}
	for {
		id := generate()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}
