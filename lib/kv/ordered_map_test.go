package kv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avkud/xcont/lib/tree"
)

func TestOrderedMap_InsertAndAt(t *testing.T) {
	m := NewOrderedMap[uint64, string]()
	require.True(t, m.Empty())

	_, inserted := m.Insert(2, "two")
	require.True(t, inserted)
	_, inserted = m.Insert(1, "one")
	require.True(t, inserted)
	_, inserted = m.Insert(2, "TWO")
	require.False(t, inserted)
	require.Equal(t, int64(2), m.Len())

	val, err := m.At(2)
	require.NoError(t, err)
	require.Equal(t, "two", val)

	_, err = m.At(3)
	require.ErrorIs(t, err, ErrKeyNotFound)
	require.False(t, m.Contains(3))
	require.True(t, m.Contains(1))
}

func TestOrderedMap_InsertOrAssign(t *testing.T) {
	m := NewOrderedMap[uint64, string]()

	_, inserted := m.InsertOrAssign(1, "one")
	require.True(t, inserted)
	it, inserted := m.InsertOrAssign(1, "ONE")
	require.False(t, inserted)
	require.Equal(t, int64(1), m.Len())

	val, err := it.Val()
	require.NoError(t, err)
	require.Equal(t, "ONE", val)
}

func TestOrderedMap_Ref(t *testing.T) {
	m := NewOrderedMap[string, int]()

	// An absent key springs into existence with the zero value.
	ref := m.Ref("hits")
	require.NotNil(t, ref)
	require.Equal(t, 0, *ref)
	require.Equal(t, int64(1), m.Len())

	*ref = 7
	*m.Ref("hits")++
	val, err := m.At("hits")
	require.NoError(t, err)
	require.Equal(t, 8, val)
	require.Equal(t, int64(1), m.Len())
}

func TestOrderedMap_InsertMany(t *testing.T) {
	m := NewOrderedMap[uint64, string](Entry[uint64, string]{Key: 3, Val: "three"})

	results := m.InsertMany(
		Entry[uint64, string]{Key: 1, Val: "one"},
		Entry[uint64, string]{Key: 3, Val: "dup"},
		Entry[uint64, string]{Key: 2, Val: "two"},
	)
	require.Len(t, results, 3)
	require.True(t, results[0].Inserted)
	require.False(t, results[1].Inserted)
	require.True(t, results[2].Inserted)

	require.Equal(t, []uint64{1, 2, 3}, m.Keys())
	val, err := m.At(3)
	require.NoError(t, err)
	require.Equal(t, "three", val)
}

func TestOrderedMap_EraseAndIterate(t *testing.T) {
	m := NewOrderedMap[uint64, uint64]()
	for k := uint64(1); k <= 5; k++ {
		m.Insert(k, k*10)
	}

	it := m.Find(3)
	require.NoError(t, m.Erase(it))
	require.ErrorIs(t, m.Erase(it), tree.ErrInvalidIterator)
	require.ErrorIs(t, m.Erase(m.End()), tree.ErrInvalidIterator)
	require.Equal(t, []uint64{1, 2, 4, 5}, m.Keys())

	keys := make([]uint64, 0, 4)
	for walker := m.Begin(); walker.Valid(); {
		key, err := walker.Key()
		require.NoError(t, err)
		keys = append(keys, key)
		require.NoError(t, walker.Next())
	}
	require.Equal(t, []uint64{1, 2, 4, 5}, keys)
}

func TestOrderedMap_CloneAndSwap(t *testing.T) {
	m := NewOrderedMap[uint64, string](
		Entry[uint64, string]{Key: 1, Val: "one"},
		Entry[uint64, string]{Key: 2, Val: "two"},
	)

	cp := m.Clone()
	cp.InsertOrAssign(1, "uno")
	require.Equal(t, int64(2), cp.Len())
	val, err := m.At(1)
	require.NoError(t, err)
	require.Equal(t, "one", val)

	other := NewOrderedMap[uint64, string](Entry[uint64, string]{Key: 9, Val: "nine"})
	require.NoError(t, m.Swap(other))
	require.Equal(t, int64(1), m.Len())
	require.Equal(t, int64(2), other.Len())
	require.True(t, m.Contains(9))
	require.True(t, other.Contains(2))
	require.Error(t, m.Swap(nil))

	m.Clear()
	require.True(t, m.Empty())
	require.Equal(t, []uint64{}, m.Keys())
}
