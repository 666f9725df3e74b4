package dynarray

import (
	"github.com/gostonefire/hashmap/crt"
	"github.com/pkg/errors"
)

// Array - Growable array used as bucket storage. Only indices below Length are addressable, any other index
// results in an error of type crt.IndexOutOfRange.
type Array[T any] struct {
	data []T
}

// New - Returns a pointer to a new empty Array
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// NewFilled - Returns a pointer to a new Array holding length copies of value
func NewFilled[T any](length int, value T) *Array[T] {
	a := &Array[T]{data: make([]T, 0, length)}
	for i := 0; i < length; i++ {
		a.Append(value)
	}
	return a
}

// Append - Adds an item at the end of the array
func (A *Array[T]) Append(item T) {
	A.data = append(A.data, item)
}

// Get - Returns the item at index
//   - index is the position of the item, it must satisfy 0 <= index < Length
//
// It returns:
//   - item is the stored item, or the zero value if index is invalid
//   - err is an error wrapping crt.IndexOutOfRange if index is invalid
func (A *Array[T]) Get(index int) (item T, err error) {
	if index < 0 || index >= len(A.data) {
		err = errors.Wrapf(crt.IndexOutOfRange{}, "get at index %d with length %d", index, len(A.data))
		return
	}

	item = A.data[index]

	return
}

// Set - Replaces the item at index
//   - index is the position of the item, it must satisfy 0 <= index < Length
//   - item is the new item
//
// It returns:
//   - err is an error wrapping crt.IndexOutOfRange if index is invalid
func (A *Array[T]) Set(index int, item T) (err error) {
	if index < 0 || index >= len(A.data) {
		err = errors.Wrapf(crt.IndexOutOfRange{}, "set at index %d with length %d", index, len(A.data))
		return
	}

	A.data[index] = item

	return
}

// Length - Returns the number of items in the array
func (A *Array[T]) Length() int {
	return len(A.data)
}
