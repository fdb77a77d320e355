package vec

import (
	"errors"

	"github.com/avkud/xcont/lib/infra"
)

var ErrArraySizeMismatch = errors.New("[array] size mismatch")

// Array is a fixed-size sequence. The size is set at construction and
// never changes afterwards.
type Array[T any] struct {
	data []T
}

func NewArray[T any](size int64) *Array[T] {
	if size < 0 {
		size = 0
	}
	return &Array[T]{
		data: make([]T, size),
	}
}

func NewArrayOf[T any](values ...T) *Array[T] {
	a := &Array[T]{
		data: make([]T, len(values)),
	}
	copy(a.data, values)
	return a
}

func (a *Array[T]) Len() int64 {
	return int64(len(a.data))
}

func (a *Array[T]) Empty() bool {
	return len(a.data) <= 0
}

func (a *Array[T]) At(idx int64) (T, error) {
	if idx < 0 || idx >= int64(len(a.data)) {
		return *new(T), infra.WrapErrorStackWithMessage(ErrIndexOutOfRange, "[array] at")
	}
	return a.data[idx], nil
}

func (a *Array[T]) Set(idx int64, value T) error {
	if idx < 0 || idx >= int64(len(a.data)) {
		return infra.WrapErrorStackWithMessage(ErrIndexOutOfRange, "[array] set")
	}
	a.data[idx] = value
	return nil
}

func (a *Array[T]) Front() (T, error) {
	if len(a.data) <= 0 {
		return *new(T), infra.WrapErrorStackWithMessage(ErrIndexOutOfRange, "[array] front")
	}
	return a.data[0], nil
}

func (a *Array[T]) Back() (T, error) {
	if len(a.data) <= 0 {
		return *new(T), infra.WrapErrorStackWithMessage(ErrIndexOutOfRange, "[array] back")
	}
	return a.data[len(a.data)-1], nil
}

func (a *Array[T]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Swap exchanges the contents with another array of the same size.
func (a *Array[T]) Swap(other *Array[T]) error {
	if other == nil || len(other.data) != len(a.data) {
		return infra.WrapErrorStackWithMessage(ErrArraySizeMismatch, "[array] swap")
	}
	a.data, other.data = other.data, a.data
	return nil
}

// Clone copies into a fresh buffer; the copy never aliases a.
func (a *Array[T]) Clone() *Array[T] {
	cp := make([]T, len(a.data))
	copy(cp, a.data)
	return &Array[T]{data: cp}
}

func (a *Array[T]) Foreach(action func(idx int64, value T) bool) {
	for i, value := range a.data {
		if !action(int64(i), value) {
			return
		}
	}
}
