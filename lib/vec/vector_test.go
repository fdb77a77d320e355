package vec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector_PushAndPop(t *testing.T) {
	v := NewVector[int]()
	require.True(t, v.Empty())

	v.PushBack(1)
	v.PushBackMany(2, 3)
	require.Equal(t, int64(3), v.Len())

	front, err := v.Front()
	require.NoError(t, err)
	require.Equal(t, 1, front)
	back, err := v.Back()
	require.NoError(t, err)
	require.Equal(t, 3, back)

	popped, err := v.PopBack()
	require.NoError(t, err)
	require.Equal(t, 3, popped)
	require.Equal(t, int64(2), v.Len())

	v.Clear()
	require.True(t, v.Empty())
	_, err = v.PopBack()
	require.ErrorIs(t, err, ErrVectorEmpty)
	_, err = v.Front()
	require.ErrorIs(t, err, ErrVectorEmpty)
	_, err = v.Back()
	require.ErrorIs(t, err, ErrVectorEmpty)
}

func TestVector_AtRefSet(t *testing.T) {
	v := NewVector(10, 20, 30)

	val, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 20, val)
	_, err = v.At(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, v.Set(1, 25))
	require.ErrorIs(t, v.Set(3, 0), ErrIndexOutOfRange)

	ref, err := v.Ref(1)
	require.NoError(t, err)
	*ref = 26
	val, err = v.At(1)
	require.NoError(t, err)
	require.Equal(t, 26, val)
}

func TestVector_InsertAndErase(t *testing.T) {
	v := NewVector(1, 3)

	require.NoError(t, v.Insert(1, 2))
	require.NoError(t, v.Insert(3, 4)) // append position
	require.ErrorIs(t, v.Insert(9, 0), ErrIndexOutOfRange)
	requireValues(t, v, []int{1, 2, 3, 4})

	require.NoError(t, v.InsertMany(1, 10, 11))
	requireValues(t, v, []int{1, 10, 11, 2, 3, 4})

	require.NoError(t, v.EraseAt(1))
	require.NoError(t, v.EraseAt(1))
	requireValues(t, v, []int{1, 2, 3, 4})
	require.ErrorIs(t, v.EraseAt(4), ErrIndexOutOfRange)
}

func TestVector_CapacityControl(t *testing.T) {
	v := NewVectorWithSize(3, "x")
	require.Equal(t, int64(3), v.Len())
	requireValues(t, v, []string{"x", "x", "x"})

	v.Reserve(10)
	require.Equal(t, int64(3), v.Len())
	require.GreaterOrEqual(t, v.Cap(), int64(10))

	// Reserving less than the current capacity changes nothing.
	before := v.Cap()
	v.Reserve(1)
	require.Equal(t, before, v.Cap())

	v.ShrinkToFit()
	require.Equal(t, v.Len(), v.Cap())
}

func TestVector_CloneNeverAliases(t *testing.T) {
	v := NewVector(1, 2, 3)
	cp := v.Clone()

	require.NoError(t, cp.Set(0, 100))
	cp.PushBack(4)
	val, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1, val)
	require.Equal(t, int64(3), v.Len())
	require.Equal(t, int64(4), cp.Len())
}

func TestVector_Swap(t *testing.T) {
	a := NewVector(1, 2)
	b := NewVector(9)

	require.NoError(t, a.Swap(b))
	requireValues(t, a, []int{9})
	requireValues(t, b, []int{1, 2})
	require.Error(t, a.Swap(nil))
}

func TestVector_ForeachEarlyStop(t *testing.T) {
	v := NewVector(1, 2, 3, 4)
	visited := 0
	v.Foreach(func(idx int64, value int) bool {
		visited++
		return value < 2
	})
	require.Equal(t, 2, visited)
}

func requireValues[T any](t *testing.T, v *Vector[T], expected []T) {
	t.Helper()
	require.Equal(t, int64(len(expected)), v.Len())
	v.Foreach(func(idx int64, value T) bool {
		require.Equal(t, expected[idx], value)
		return true
	})
}
