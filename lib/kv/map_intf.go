package kv

import (
	"github.com/avkud/xcont/lib/infra"
	"github.com/avkud/xcont/lib/tree"
)

// Entry is one key-value pair of an ordered map.
type Entry[K infra.OrderedKey, V any] struct {
	Key K
	Val V
}

// InsertResult reports where one bulk-inserted entry landed and whether
// a new node was created for it.
type InsertResult[K infra.OrderedKey, V any] struct {
	Iter     tree.Iterator[K, V]
	Inserted bool
}

// OrderedStorer is a key-ordered associative store with one value per
// unique key. Iteration runs in strictly ascending key order.
// Not thread safe.
type OrderedStorer[K infra.OrderedKey, V any] interface {
	Len() int64
	Empty() bool
	// At loads the value of an existing key and fails with
	// ErrKeyNotFound otherwise, leaving the store untouched.
	At(key K) (V, error)
	// Ref returns a mutable reference to the value stored under key,
	// inserting a default-valued entry first when the key is absent.
	Ref(key K) *V
	Contains(key K) bool
	Find(key K) tree.Iterator[K, V]
	Insert(key K, val V) (tree.Iterator[K, V], bool)
	InsertEntry(ent Entry[K, V]) (tree.Iterator[K, V], bool)
	// InsertOrAssign overwrites the stored value in place when the key
	// exists; the returned flag is true only for a fresh insert.
	InsertOrAssign(key K, val V) (tree.Iterator[K, V], bool)
	// InsertMany attempts every entry in argument order regardless of
	// earlier rejections and returns one result per entry.
	InsertMany(entries ...Entry[K, V]) []InsertResult[K, V]
	Erase(it tree.Iterator[K, V]) error
	Begin() tree.Iterator[K, V]
	End() tree.Iterator[K, V]
	Keys() []K
	Clear()
}
