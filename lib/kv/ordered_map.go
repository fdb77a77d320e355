package kv

import (
	"errors"

	"github.com/samber/lo"

	"github.com/avkud/xcont/lib/infra"
	"github.com/avkud/xcont/lib/tree"
)

var ErrKeyNotFound = errors.New("[ordered-map] key not found")

var _ OrderedStorer[uint8, uint8] = (*OrderedMap[uint8, uint8])(nil) // Type check assertion

// OrderedMap is a thin policy layer over the red-black tree engine.
type OrderedMap[K infra.OrderedKey, V any] struct {
	t tree.RBTree[K, V]
}

// NewOrderedMap builds a map holding the given entries, inserted one at
// a time in argument order. Later duplicate keys are dropped.
func NewOrderedMap[K infra.OrderedKey, V any](entries ...Entry[K, V]) *OrderedMap[K, V] {
	m := &OrderedMap[K, V]{
		t: tree.NewRBTree[K, V](),
	}
	for _, ent := range entries {
		m.t.Insert(ent.Key, ent.Val)
	}
	return m
}

func (m *OrderedMap[K, V]) Len() int64 {
	return m.t.Len()
}

func (m *OrderedMap[K, V]) Empty() bool {
	return m.t.Empty()
}

func (m *OrderedMap[K, V]) At(key K) (V, error) {
	it := m.t.Find(key)
	if !it.Valid() {
		return *new(V), infra.WrapErrorStackWithMessage(ErrKeyNotFound, "[ordered-map] at an absent key")
	}
	val, _ := it.Val()
	return val, nil
}

func (m *OrderedMap[K, V]) Ref(key K) *V {
	it, _ := m.t.Insert(key, *new(V))
	ref, _ := it.ValRef()
	return ref
}

func (m *OrderedMap[K, V]) Contains(key K) bool {
	return m.t.Find(key).Valid()
}

func (m *OrderedMap[K, V]) Find(key K) tree.Iterator[K, V] {
	return m.t.Find(key)
}

func (m *OrderedMap[K, V]) Insert(key K, val V) (tree.Iterator[K, V], bool) {
	return m.t.Insert(key, val)
}

func (m *OrderedMap[K, V]) InsertEntry(ent Entry[K, V]) (tree.Iterator[K, V], bool) {
	return m.t.Insert(ent.Key, ent.Val)
}

func (m *OrderedMap[K, V]) InsertOrAssign(key K, val V) (tree.Iterator[K, V], bool) {
	it, inserted := m.t.Insert(key, val)
	if !inserted {
		ref, _ := it.ValRef()
		*ref = val
	}
	return it, inserted
}

func (m *OrderedMap[K, V]) InsertMany(entries ...Entry[K, V]) []InsertResult[K, V] {
	return lo.Map(entries, func(ent Entry[K, V], _ int) InsertResult[K, V] {
		it, inserted := m.t.Insert(ent.Key, ent.Val)
		return InsertResult[K, V]{Iter: it, Inserted: inserted}
	})
}

func (m *OrderedMap[K, V]) Erase(it tree.Iterator[K, V]) error {
	return m.t.Erase(it)
}

func (m *OrderedMap[K, V]) Begin() tree.Iterator[K, V] {
	return m.t.Begin()
}

func (m *OrderedMap[K, V]) End() tree.Iterator[K, V] {
	return m.t.End()
}

func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.t.Len())
	m.t.Foreach(func(_ int64, _ tree.RBColor, key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (m *OrderedMap[K, V]) Clear() {
	m.t.Release()
}

// Swap exchanges the contents with other in constant time.
func (m *OrderedMap[K, V]) Swap(other *OrderedMap[K, V]) error {
	if other == nil {
		return infra.NewErrorStack("[ordered-map] swap with a nil map")
	}
	return m.t.Swap(other.t)
}

// Clone deep copies the map; the copy shares no storage with m.
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{t: m.t.Clone()}
}
