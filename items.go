package flow

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an item index is outside [0, Len).
// It is always the caller's fault and is never retried internally.
var ErrIndexOutOfRange = errors.New("index out of range")

// ItemsChange describes one mutation of an ItemList as an index range.
// Removed items occupied indices [From, From+Removed) before the change;
// added items occupy [From, From+Added) after it.
type ItemsChange struct {
	From    int
	Removed int
	Added   int
}

// Delta returns the net shift applied to indices at or after the change.
func (c ItemsChange) Delta() int {
	return c.Added - c.Removed
}

// ItemList is an ordered, observable sequence of items. Every mutation
// notifies subscribed observers with the affected index range, which is
// how a VirtualFlow keeps its realized cells consistent with the data.
//
// Like the rest of the package, an ItemList is not safe for concurrent
// use.
type ItemList[T any] struct {
	items     []T
	observers map[int]func(ItemsChange)
	nextObsID int
}

// NewItemList returns an empty item list.
func NewItemList[T any](items ...T) *ItemList[T] {
	return &ItemList[T]{
		items:     items,
		observers: make(map[int]func(ItemsChange)),
	}
}

// Len returns the number of items.
func (l *ItemList[T]) Len() int {
	return len(l.items)
}

// At returns the item at index i. Panics if i is out of range; use
// Get for a checked lookup.
func (l *ItemList[T]) At(i int) T {
	return l.items[i]
}

// Get returns the item at index i, or ErrIndexOutOfRange.
func (l *ItemList[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, fmt.Errorf("item %d of %d: %w", i, len(l.items), ErrIndexOutOfRange)
	}
	return l.items[i], nil
}

// Append adds items at the end of the list.
func (l *ItemList[T]) Append(items ...T) {
	from := len(l.items)
	l.items = append(l.items, items...)
	l.notify(ItemsChange{From: from, Added: len(items)})
}

// Insert places items before index i. i may equal Len to append.
func (l *ItemList[T]) Insert(i int, items ...T) error {
	if i < 0 || i > len(l.items) {
		return fmt.Errorf("insert at %d of %d: %w", i, len(l.items), ErrIndexOutOfRange)
	}
	l.items = append(l.items[:i], append(append([]T{}, items...), l.items[i:]...)...)
	l.notify(ItemsChange{From: i, Added: len(items)})
	return nil
}

// Remove deletes count items starting at index i.
func (l *ItemList[T]) Remove(i, count int) error {
	if count < 0 || i < 0 || i+count > len(l.items) {
		return fmt.Errorf("remove [%d,%d) of %d: %w", i, i+count, len(l.items), ErrIndexOutOfRange)
	}
	if count == 0 {
		return nil
	}
	l.items = append(l.items[:i], l.items[i+count:]...)
	l.notify(ItemsChange{From: i, Removed: count})
	return nil
}

// Set replaces the item at index i.
func (l *ItemList[T]) Set(i int, item T) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("set %d of %d: %w", i, len(l.items), ErrIndexOutOfRange)
	}
	l.items[i] = item
	l.notify(ItemsChange{From: i, Removed: 1, Added: 1})
	return nil
}

// Observe subscribes fn to change notifications. The returned function
// removes the subscription; calling it more than once is harmless.
func (l *ItemList[T]) Observe(fn func(ItemsChange)) (cancel func()) {
	id := l.nextObsID
	l.nextObsID++
	l.observers[id] = fn
	return func() {
		delete(l.observers, id)
	}
}

func (l *ItemList[T]) notify(c ItemsChange) {
	for _, fn := range l.observers {
		fn(c)
	}
}
