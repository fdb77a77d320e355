package queue

import (
	"errors"

	"github.com/avkud/xcont/lib/infra"
	"github.com/avkud/xcont/lib/list"
)

var ErrQueueEmpty = errors.New("[queue] there is no element")

// Queue is a FIFO adapter over the doubly linked list. Pushes go to the
// list back, pops come from the front. Not thread safe.
type Queue[T comparable] struct {
	elements list.LinkedList[T]
}

func NewQueue[T comparable](values ...T) *Queue[T] {
	return &Queue[T]{
		elements: list.NewLinkedList[T](values...),
	}
}

func (q *Queue[T]) Len() int64 {
	return q.elements.Len()
}

func (q *Queue[T]) Empty() bool {
	return q.elements.Empty()
}

func (q *Queue[T]) Push(v T) {
	q.elements.PushBack(v)
}

func (q *Queue[T]) PushMany(values ...T) {
	q.elements.AppendValue(values...)
}

func (q *Queue[T]) Pop() (T, error) {
	v, err := q.elements.PopFront()
	if err != nil {
		return *new(T), infra.WrapErrorStackWithMessage(ErrQueueEmpty, "[queue] pop")
	}
	return v, nil
}

func (q *Queue[T]) Front() (T, error) {
	front := q.elements.Front()
	if front == nil {
		return *new(T), infra.WrapErrorStackWithMessage(ErrQueueEmpty, "[queue] front")
	}
	return front.Value, nil
}

func (q *Queue[T]) Back() (T, error) {
	back := q.elements.Back()
	if back == nil {
		return *new(T), infra.WrapErrorStackWithMessage(ErrQueueEmpty, "[queue] back")
	}
	return back.Value, nil
}

// Swap exchanges the contents with other.
func (q *Queue[T]) Swap(other *Queue[T]) error {
	if other == nil {
		return infra.NewErrorStack("[queue] swap with a nil queue")
	}
	if !q.elements.Swap(other.elements) {
		return infra.NewErrorStack("[queue] swap with an incompatible queue")
	}
	return nil
}

// Values snapshots the elements front to back.
func (q *Queue[T]) Values() []T {
	return q.elements.Values()
}
