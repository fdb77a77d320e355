package queue

import (
	"errors"

	"github.com/avkud/xcont/lib/infra"
	"github.com/avkud/xcont/lib/list"
)

var ErrStackEmpty = errors.New("[stack] there is no element")

// Stack is a LIFO adapter over the doubly linked list. The list back is
// the stack top. Not thread safe.
type Stack[T comparable] struct {
	elements list.LinkedList[T]
}

func NewStack[T comparable](values ...T) *Stack[T] {
	return &Stack[T]{
		elements: list.NewLinkedList[T](values...),
	}
}

func (s *Stack[T]) Len() int64 {
	return s.elements.Len()
}

func (s *Stack[T]) Empty() bool {
	return s.elements.Empty()
}

func (s *Stack[T]) Push(v T) {
	s.elements.PushBack(v)
}

// PushMany pushes the values in argument order, so the last one ends up
// on top.
func (s *Stack[T]) PushMany(values ...T) {
	s.elements.AppendValue(values...)
}

func (s *Stack[T]) Pop() (T, error) {
	v, err := s.elements.PopBack()
	if err != nil {
		return *new(T), infra.WrapErrorStackWithMessage(ErrStackEmpty, "[stack] pop")
	}
	return v, nil
}

func (s *Stack[T]) Top() (T, error) {
	top := s.elements.Back()
	if top == nil {
		return *new(T), infra.WrapErrorStackWithMessage(ErrStackEmpty, "[stack] top")
	}
	return top.Value, nil
}

// Swap exchanges the contents with other.
func (s *Stack[T]) Swap(other *Stack[T]) error {
	if other == nil {
		return infra.NewErrorStack("[stack] swap with a nil stack")
	}
	if !s.elements.Swap(other.elements) {
		return infra.NewErrorStack("[stack] swap with an incompatible stack")
	}
	return nil
}

// Values snapshots the elements bottom to top.
func (s *Stack[T]) Values() []T {
	return s.elements.Values()
}
