package tree

import "github.com/avkud/xcont/lib/infra"

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

type RBNode[K infra.OrderedKey, V any] interface {
	Key() K
	Val() V
	HasKeyVal() bool
	Color() RBColor
	Left() RBNode[K, V]
	Right() RBNode[K, V]
	Parent() RBNode[K, V]
}

// RBTree is the ordered associative engine backing the set, map and
// multiset adapters. Not thread safe. Mutating operations require
// exclusive access for their duration.
type RBTree[K infra.OrderedKey, V any] interface {
	Len() int64
	Empty() bool
	Root() RBNode[K, V]
	// KeyCompare applies the tree's own key ordering, honoring the
	// comparator and descending options it was built with.
	KeyCompare(i, j K) int64
	// Insert attaches a new node unless an equal key is already present.
	// With allowDuplicates enabled the insert always succeeds and equal
	// keys land in the right subtree, so duplicates keep a stable
	// relative order. Reports the landing position and whether a new
	// node was created.
	Insert(key K, val V, allowDuplicates ...bool) (Iterator[K, V], bool)
	// Find returns an iterator to a node with an equal key, or End().
	// Among duplicate keys, which node is returned is unspecified.
	Find(key K) Iterator[K, V]
	// Search descends from x steered by fn: zero stops, negative goes
	// left, positive goes right. Returns nil when the descent runs off
	// the tree.
	Search(x RBNode[K, V], fn func(RBNode[K, V]) int64) RBNode[K, V]
	// Erase removes exactly the node the iterator references.
	// It fails with ErrInvalidIterator for the end sentinel, an already
	// erased position, or an iterator into another tree.
	Erase(it Iterator[K, V]) error
	Remove(key K) (RBNode[K, V], error)
	RemoveMin() (RBNode[K, V], error)
	Begin() Iterator[K, V]
	End() Iterator[K, V]
	Foreach(action func(idx int64, color RBColor, key K, val V) bool)
	// Swap exchanges the whole node graph with other in constant time.
	// Outstanding iterators stay usable and follow their nodes into the
	// other tree's identity.
	Swap(other RBTree[K, V]) error
	// Clone builds a structurally independent deep copy.
	Clone() RBTree[K, V]
	Release()
}
