package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue[int]()
	require.True(t, q.Empty())

	q.Push(1)
	q.PushMany(2, 3)
	require.Equal(t, int64(3), q.Len())

	front, err := q.Front()
	require.NoError(t, err)
	require.Equal(t, 1, front)
	back, err := q.Back()
	require.NoError(t, err)
	require.Equal(t, 3, back)

	for expected := 1; expected <= 3; expected++ {
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, expected, v)
	}
	require.True(t, q.Empty())

	_, err = q.Pop()
	require.ErrorIs(t, err, ErrQueueEmpty)
	_, err = q.Front()
	require.ErrorIs(t, err, ErrQueueEmpty)
	_, err = q.Back()
	require.ErrorIs(t, err, ErrQueueEmpty)
}

func TestQueue_Swap(t *testing.T) {
	a := NewQueue(1, 2)
	b := NewQueue(9)

	require.NoError(t, a.Swap(b))
	require.Equal(t, []int{9}, a.Values())
	require.Equal(t, []int{1, 2}, b.Values())
	require.Error(t, a.Swap(nil))
}
