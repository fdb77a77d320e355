package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack_PushPopTop(t *testing.T) {
	s := NewStack[int]()
	require.True(t, s.Empty())

	s.Push(1)
	s.PushMany(2, 3)
	require.Equal(t, int64(3), s.Len())

	top, err := s.Top()
	require.NoError(t, err)
	require.Equal(t, 3, top)
	require.Equal(t, int64(3), s.Len())

	for expected := 3; expected >= 1; expected-- {
		v, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, expected, v)
	}
	require.True(t, s.Empty())

	_, err = s.Pop()
	require.ErrorIs(t, err, ErrStackEmpty)
	_, err = s.Top()
	require.ErrorIs(t, err, ErrStackEmpty)
}

func TestStack_Swap(t *testing.T) {
	a := NewStack(1, 2)
	b := NewStack(9)

	require.NoError(t, a.Swap(b))
	require.Equal(t, []int{9}, a.Values())
	require.Equal(t, []int{1, 2}, b.Values())
	require.Error(t, a.Swap(nil))
}
