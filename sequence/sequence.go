// Package sequence provides an ordered, mutable container with array-style operations.
package sequence

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/boxkit/boxkit/slicing"
	"github.com/samber/lo"
)

var (
	// ErrEmpty is returned by Pop and Shift on an empty sequence.
	ErrEmpty = errors.New("sequence is empty")

	// ErrIndex is returned when an index falls outside the valid range.
	ErrIndex = errors.New("index out of range")

	// ErrNotFound is returned by Delete when no element matches.
	ErrNotFound = errors.New("value not found")
)

// Sequence is an ordered list of elements. Use Sequence[any] for mixed element types.
//
// The zero value is an empty sequence ready to use.
type Sequence[T comparable] struct {
	elements []T
}

// New creates an empty sequence with its own storage.
func New[T comparable]() *Sequence[T] {
	return &Sequence[T]{elements: make([]T, 0)}
}

// From creates a sequence holding a copy of items.
func From[T comparable](items ...T) *Sequence[T] {
	elements := make([]T, len(items))
	copy(elements, items)
	return &Sequence[T]{elements: elements}
}

// Push appends an element to the end.
func (s *Sequence[T]) Push(element T) {
	s.elements = append(s.elements, element)
}

// Pop removes and returns the last element.
func (s *Sequence[T]) Pop() (element T, err error) {
	if len(s.elements) == 0 {
		return element, fmt.Errorf("pop: %w", ErrEmpty)
	}

	last := len(s.elements) - 1
	element = s.elements[last]

	var zero T
	s.elements[last] = zero
	s.elements = s.elements[:last]
	return element, nil
}

// Shift removes and returns the first element, moving the rest one position left.
func (s *Sequence[T]) Shift() (element T, err error) {
	if len(s.elements) == 0 {
		return element, fmt.Errorf("shift: %w", ErrEmpty)
	}

	element = s.elements[0]
	last := len(s.elements) - 1
	copy(s.elements, s.elements[1:])

	var zero T
	s.elements[last] = zero
	s.elements = s.elements[:last]
	return element, nil
}

// Unshift inserts an element at the front.
func (s *Sequence[T]) Unshift(element T) {
	// insert at 0 is always in range
	_ = s.Insert(0, element)
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return len(s.elements)
}

// Insert places element at index, shifting the following elements right.
// Valid indices are 0 through Len() inclusive.
func (s *Sequence[T]) Insert(index int, element T) error {
	if index < 0 || index > len(s.elements) {
		return fmt.Errorf("insert at %d into sequence of length %d: %w", index, len(s.elements), ErrIndex)
	}

	var zero T
	s.elements = append(s.elements, zero)
	copy(s.elements[index+1:], s.elements[index:])
	s.elements[index] = element
	return nil
}

// Delete removes the first element equal to element.
//
// Values whose dynamic type cannot be compared with == (slices, maps) are
// matched by deep equality.
func (s *Sequence[T]) Delete(element T) error {
	_, i, ok := lo.FindIndexOf(s.elements, func(e T) bool {
		return equal(e, element)
	})
	if !ok {
		return fmt.Errorf("delete %s: %w", repr(element), ErrNotFound)
	}

	last := len(s.elements) - 1
	copy(s.elements[i:], s.elements[i+1:])

	var zero T
	s.elements[last] = zero
	s.elements = s.elements[:last]
	return nil
}

func equal(a, b any) bool {
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

// At returns the element at index. Negative indices count from the end.
func (s *Sequence[T]) At(index int) (element T, err error) {
	i := index
	if i < 0 {
		i += len(s.elements)
	}

	if i < 0 || i >= len(s.elements) {
		return element, fmt.Errorf("at %d in sequence of length %d: %w", index, len(s.elements), ErrIndex)
	}

	return s.elements[i], nil
}

// Slice returns a new slice with the elements selected by b. The sequence is not modified.
func (s *Sequence[T]) Slice(b slicing.Bound) ([]T, error) {
	return slicing.Apply(s.elements, b)
}

// Items returns a copy of all elements in order.
func (s *Sequence[T]) Items() []T {
	items := make([]T, len(s.elements))
	copy(items, s.elements)
	return items
}

// String renders the elements as a list literal, e.g. ['e', 'a'] or [1.0, [2, 3]].
func (s *Sequence[T]) String() string {
	parts := lo.Map(s.elements, func(e T, _ int) string {
		return repr(e)
	})

	return "[" + strings.Join(parts, ", ") + "]"
}

// MarshalJSON encodes the sequence as a JSON array.
func (s *Sequence[T]) MarshalJSON() ([]byte, error) {
	if s.elements == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.elements)
}
