// Package list implements a generic doubly linked list.
//
// A [List] supports O(1) insertion and removal at both ends, so it serves
// equally as a stack (PushBack/PopBack) or a queue (PushBack/PopFront).
// Indexed access, insertion and removal are O(n) but scan from whichever end
// of the list is closer to the requested index.
//
// The zero value is an empty list ready to use. A List is not safe for
// concurrent use.
package list

import (
	"errors"
	"iter"
)

var (
	// ErrEmpty is returned when removing or peeking from an empty list.
	ErrEmpty = errors.New("list: empty")
	// ErrIndexOutOfRange is returned for an index outside the list bounds.
	ErrIndexOutOfRange = errors.New("list: index out of range")
)

// cell is a single link in the list. A cell belongs to exactly one list.
type cell[T any] struct {
	value T
	next  *cell[T]
	prev  *cell[T]
}

// List is a doubly linked list of T.
type List[T any] struct {
	head   *cell[T]
	tail   *cell[T]
	length int
}

// New returns an empty list holding the given values in order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.length
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.length == 0
}

// Front returns the first element.
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.head.value, nil
}

// Back returns the last element.
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.tail.value, nil
}

// PushBack appends v to the end of the list.
func (l *List[T]) PushBack(v T) {
	c := &cell[T]{value: v}
	if l.tail == nil {
		l.head = c
		l.tail = c
	} else {
		c.prev = l.tail
		l.tail.next = c
		l.tail = c
	}
	l.length++
}

// PushFront inserts v at the start of the list.
func (l *List[T]) PushFront(v T) {
	c := &cell[T]{value: v}
	if l.head == nil {
		l.head = c
		l.tail = c
	} else {
		c.next = l.head
		l.head.prev = c
		l.head = c
	}
	l.length++
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() (T, error) {
	c := l.tail
	if c == nil {
		var zero T
		return zero, ErrEmpty
	}
	if l.length == 1 {
		l.head = nil
		l.tail = nil
	} else {
		l.tail = c.prev
		l.tail.next = nil
		c.prev = nil
	}
	l.length--
	return c.value, nil
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, error) {
	c := l.head
	if c == nil {
		var zero T
		return zero, ErrEmpty
	}
	if l.length == 1 {
		l.head = nil
		l.tail = nil
	} else {
		l.head = c.next
		l.head.prev = nil
		c.next = nil
	}
	l.length--
	return c.value, nil
}

// cellAt returns the cell at index i, which must be in range. It walks from
// the head when i is in the first half and from the tail otherwise.
func (l *List[T]) cellAt(i int) *cell[T] {
	if i <= l.length/2 {
		c := l.head
		for n := 0; n < i; n++ {
			c = c.next
		}
		return c
	}
	c := l.tail
	for n := l.length - 1; n > i; n-- {
		c = c.prev
	}
	return c
}

// At returns the element at index i.
func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= l.length {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return l.cellAt(i).value, nil
}

// Set replaces the element at index i with v. It reports whether i was a
// valid index; the list is unchanged when it was not.
func (l *List[T]) Set(i int, v T) bool {
	if i < 0 || i >= l.length {
		return false
	}
	l.cellAt(i).value = v
	return true
}

// InsertAt inserts v so that it ends up at index i. Inserting at Len()
// appends.
func (l *List[T]) InsertAt(i int, v T) error {
	if i < 0 || i > l.length {
		return ErrIndexOutOfRange
	}
	switch i {
	case 0:
		l.PushFront(v)
		return nil
	case l.length:
		l.PushBack(v)
		return nil
	}
	before := l.cellAt(i - 1)
	after := before.next
	c := &cell[T]{value: v, prev: before, next: after}
	before.next = c
	after.prev = c
	l.length++
	return nil
}

// RemoveAt removes and returns the element at index i.
func (l *List[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= l.length {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	switch i {
	case 0:
		return l.PopFront()
	case l.length - 1:
		return l.PopBack()
	}
	c := l.cellAt(i)
	l.unlink(c)
	return c.value, nil
}

// unlink detaches c from the list and fixes up the ends.
func (l *List[T]) unlink(c *cell[T]) {
	if c.prev != nil {
		c.prev.next = c.next
	} else {
		l.head = c.next
	}
	if c.next != nil {
		c.next.prev = c.prev
	} else {
		l.tail = c.prev
	}
	c.next = nil
	c.prev = nil
	l.length--
}

// DeleteFunc removes every element for which del returns true and reports how
// many were removed. Relative order of the remaining elements is kept.
func (l *List[T]) DeleteFunc(del func(T) bool) int {
	removed := 0
	for c := l.head; c != nil; {
		next := c.next
		if del(c.value) {
			l.unlink(c)
			removed++
		}
		c = next
	}
	return removed
}

// IndexFunc returns the index of the first element satisfying f, or -1.
func (l *List[T]) IndexFunc(f func(T) bool) int {
	i := 0
	for c := l.head; c != nil; c = c.next {
		if f(c.value) {
			return i
		}
		i++
	}
	return -1
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	for c := l.head; c != nil; {
		next := c.next
		c.next = nil
		c.prev = nil
		c = next
	}
	l.head = nil
	l.tail = nil
	l.length = 0
}

// All returns an iterator over index/value pairs from front to back.
// The list must not be modified during iteration.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for c := l.head; c != nil; c = c.next {
			if !yield(i, c.value) {
				return
			}
			i++
		}
	}
}

// Backward returns an iterator over index/value pairs from back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.length - 1
		for c := l.tail; c != nil; c = c.prev {
			if !yield(i, c.value) {
				return
			}
			i--
		}
	}
}

// Values returns an iterator over the values from front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.head; c != nil; c = c.next {
			if !yield(c.value) {
				return
			}
		}
	}
}

// Slice returns the elements in order as a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.length)
	for c := l.head; c != nil; c = c.next {
		out = append(out, c.value)
	}
	return out
}

// BackPtr returns a pointer to the last element's value so it can be updated
// in place, or nil on an empty list. The pointer is valid until that element
// is removed.
func (l *List[T]) BackPtr() *T {
	if l.tail == nil {
		return nil
	}
	return &l.tail.value
}
