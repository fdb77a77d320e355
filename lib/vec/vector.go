package vec

import (
	"errors"

	"github.com/avkud/xcont/lib/infra"
)

var (
	ErrIndexOutOfRange = errors.New("[vector] index out of range")
	ErrVectorEmpty     = errors.New("[vector] there is no element")
)

// Vector is a growable contiguous sequence. Not thread safe.
type Vector[T any] struct {
	data []T
}

func NewVector[T any](values ...T) *Vector[T] {
	v := &Vector[T]{
		data: make([]T, 0, len(values)),
	}
	v.data = append(v.data, values...)
	return v
}

// NewVectorWithSize builds a vector of n copies of value.
func NewVectorWithSize[T any](n int, value T) *Vector[T] {
	v := &Vector[T]{
		data: make([]T, n),
	}
	for i := 0; i < n; i++ {
		v.data[i] = value
	}
	return v
}

func (v *Vector[T]) Len() int64 {
	return int64(len(v.data))
}

func (v *Vector[T]) Cap() int64 {
	return int64(cap(v.data))
}

func (v *Vector[T]) Empty() bool {
	return len(v.data) <= 0
}

func (v *Vector[T]) At(idx int64) (T, error) {
	if idx < 0 || idx >= int64(len(v.data)) {
		return *new(T), infra.WrapErrorStackWithMessage(ErrIndexOutOfRange, "[vector] at")
	}
	return v.data[idx], nil
}

// Ref returns a mutable reference to the element at idx. The reference
// dies on the next reallocation, so it must not be held across growth.
func (v *Vector[T]) Ref(idx int64) (*T, error) {
	if idx < 0 || idx >= int64(len(v.data)) {
		return nil, infra.WrapErrorStackWithMessage(ErrIndexOutOfRange, "[vector] ref")
	}
	return &v.data[idx], nil
}

func (v *Vector[T]) Set(idx int64, value T) error {
	if idx < 0 || idx >= int64(len(v.data)) {
		return infra.WrapErrorStackWithMessage(ErrIndexOutOfRange, "[vector] set")
	}
	v.data[idx] = value
	return nil
}

func (v *Vector[T]) Front() (T, error) {
	if len(v.data) <= 0 {
		return *new(T), infra.WrapErrorStackWithMessage(ErrVectorEmpty, "[vector] front")
	}
	return v.data[0], nil
}

func (v *Vector[T]) Back() (T, error) {
	if len(v.data) <= 0 {
		return *new(T), infra.WrapErrorStackWithMessage(ErrVectorEmpty, "[vector] back")
	}
	return v.data[len(v.data)-1], nil
}

func (v *Vector[T]) PushBack(value T) {
	v.data = append(v.data, value)
}

func (v *Vector[T]) PushBackMany(values ...T) {
	v.data = append(v.data, values...)
}

func (v *Vector[T]) PopBack() (T, error) {
	n := len(v.data)
	if n <= 0 {
		return *new(T), infra.WrapErrorStackWithMessage(ErrVectorEmpty, "[vector] pop back")
	}
	value := v.data[n-1]
	v.data[n-1] = *new(T) // release the reference for GC
	v.data = v.data[:n-1]
	return value, nil
}

// Insert places value at idx and shifts the tail right. idx equal to
// Len() appends.
func (v *Vector[T]) Insert(idx int64, value T) error {
	if idx < 0 || idx > int64(len(v.data)) {
		return infra.WrapErrorStackWithMessage(ErrIndexOutOfRange, "[vector] insert")
	}
	v.data = append(v.data, *new(T))
	copy(v.data[idx+1:], v.data[idx:])
	v.data[idx] = value
	return nil
}

// InsertMany places the values at idx in argument order.
func (v *Vector[T]) InsertMany(idx int64, values ...T) error {
	if idx < 0 || idx > int64(len(v.data)) {
		return infra.WrapErrorStackWithMessage(ErrIndexOutOfRange, "[vector] insert many")
	}
	for i, value := range values {
		// Shift once per element; bulk inserts stay small in practice.
		if err := v.Insert(idx+int64(i), value); err != nil {
			return err
		}
	}
	return nil
}

// EraseAt removes the element at idx and shifts the tail left.
func (v *Vector[T]) EraseAt(idx int64) error {
	n := int64(len(v.data))
	if idx < 0 || idx >= n {
		return infra.WrapErrorStackWithMessage(ErrIndexOutOfRange, "[vector] erase")
	}
	copy(v.data[idx:], v.data[idx+1:])
	v.data[n-1] = *new(T) // release the reference for GC
	v.data = v.data[:n-1]
	return nil
}

// Reserve grows the capacity to at least n without changing the length.
func (v *Vector[T]) Reserve(n int64) {
	if n <= int64(cap(v.data)) {
		return
	}
	grown := make([]T, len(v.data), n)
	copy(grown, v.data)
	v.data = grown
}

// ShrinkToFit drops the spare capacity.
func (v *Vector[T]) ShrinkToFit() {
	if len(v.data) == cap(v.data) {
		return
	}
	shrunk := make([]T, len(v.data))
	copy(shrunk, v.data)
	v.data = shrunk
}

func (v *Vector[T]) Clear() {
	clear(v.data)
	v.data = v.data[:0]
}

// Swap exchanges the backing buffers in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) error {
	if other == nil {
		return infra.NewErrorStack("[vector] swap with a nil vector")
	}
	v.data, other.data = other.data, v.data
	return nil
}

// Clone copies into a fresh buffer; the copy never aliases v.
func (v *Vector[T]) Clone() *Vector[T] {
	cp := make([]T, len(v.data))
	copy(cp, v.data)
	return &Vector[T]{data: cp}
}

func (v *Vector[T]) Foreach(action func(idx int64, value T) bool) {
	for i, value := range v.data {
		if !action(int64(i), value) {
			return
		}
	}
}
