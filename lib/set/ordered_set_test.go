package set

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avkud/xcont/lib/tree"
)

func TestOrderedSet_Insert(t *testing.T) {
	s := NewOrderedSet[uint64]()
	require.True(t, s.Empty())

	_, inserted := s.Insert(5)
	require.True(t, inserted)
	_, inserted = s.Insert(5)
	require.False(t, inserted)
	require.Equal(t, int64(1), s.Len())

	_, inserted = s.Insert(3)
	require.True(t, inserted)
	require.Equal(t, []uint64{3, 5}, s.Values())
	require.NoError(t, tree.ViolationValidate[uint64, uint64](s.t))
}

func TestOrderedSet_InsertMany(t *testing.T) {
	s := NewOrderedSet[uint64](2)

	// Every element is attempted, rejections do not stop the rest.
	results := s.InsertMany(1, 2, 3)
	require.Len(t, results, 3)
	require.True(t, results[0].Inserted)
	require.False(t, results[1].Inserted)
	require.True(t, results[2].Inserted)
	require.Equal(t, []uint64{1, 2, 3}, s.Values())
}

func TestOrderedSet_FindAndErase(t *testing.T) {
	s := NewOrderedSet[uint64](3, 5, 1, 4, 2)
	require.Equal(t, []uint64{1, 2, 3, 4, 5}, s.Values())

	it := s.Find(3)
	require.True(t, it.Valid())
	require.NoError(t, s.Erase(it))
	require.False(t, s.Contains(3))
	require.Equal(t, []uint64{1, 2, 4, 5}, s.Values())

	require.ErrorIs(t, s.Erase(it), tree.ErrInvalidIterator)
	require.False(t, s.Find(3).Valid())
	require.True(t, s.Find(3).Eq(s.End()))
	require.NoError(t, tree.ViolationValidate[uint64, uint64](s.t))
}

func TestOrderedSet_IterateInOrder(t *testing.T) {
	s := NewOrderedSet[string]("pear", "apple", "fig")

	elements := make([]string, 0, 3)
	for it := s.Begin(); it.Valid(); {
		v, err := it.Key()
		require.NoError(t, err)
		elements = append(elements, v)
		require.NoError(t, it.Next())
	}
	require.Equal(t, []string{"apple", "fig", "pear"}, elements)
}

func TestOrderedSet_CloneAndSwap(t *testing.T) {
	s := NewOrderedSet[uint64](1, 2, 3)

	cp := s.Clone()
	cp.Insert(4)
	require.Equal(t, int64(3), s.Len())
	require.Equal(t, int64(4), cp.Len())
	require.False(t, s.Contains(4))

	other := NewOrderedSet[uint64](9)
	require.NoError(t, s.Swap(other))
	require.Equal(t, []uint64{9}, s.Values())
	require.Equal(t, []uint64{1, 2, 3}, other.Values())
	require.Error(t, s.Swap(nil))

	s.Clear()
	require.True(t, s.Empty())
}
