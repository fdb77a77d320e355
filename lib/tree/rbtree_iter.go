package tree

import (
	"errors"

	"github.com/avkud/xcont/lib/infra"
)

var (
	ErrTreeEmpty       = errors.New("[rbtree] there is no element")
	ErrTreeKeyNotFound = errors.New("[rbtree] key not found")
	ErrInvalidIterator = errors.New("[rbtree] invalid iterator")
	ErrOutOfRange      = errors.New("[rbtree] iterator out of range")
)

// Iterator is a non-owning cursor over a live tree node. A nil node is
// the one-past-end sentinel shared by End() and by Begin() on an empty
// tree; it is never dereferenceable.
//
// An iterator dies the instant the node it references is erased.
// Unrelated inserts and erases elsewhere in the same tree keep it
// valid, because nodes are only ever relinked, never relocated.
type Iterator[K infra.OrderedKey, V any] struct {
	tree *rbTree[K, V]
	node *rbNode[K, V]
}

// Valid reports whether the iterator references a live, dereferenceable node.
func (it Iterator[K, V]) Valid() bool {
	return it.tree != nil && it.node != nil && it.node.hasKV
}

// Eq reports whether two iterators reference the identical node, or are
// both the end sentinel of the same tree.
func (it Iterator[K, V]) Eq(other Iterator[K, V]) bool {
	return it.tree == other.tree && it.node == other.node
}

func (it Iterator[K, V]) deref() (*rbNode[K, V], error) {
	if it.tree == nil || it.node == nil {
		return nil, infra.WrapErrorStackWithMessage(ErrOutOfRange, "[rbtree] dereference the end sentinel")
	}
	if !it.node.hasKV {
		return nil, infra.WrapErrorStackWithMessage(ErrInvalidIterator, "[rbtree] dereference an erased position")
	}
	return it.node, nil
}

func (it Iterator[K, V]) Key() (K, error) {
	node, err := it.deref()
	if err != nil {
		return *new(K), err
	}
	return node.key, nil
}

func (it Iterator[K, V]) Val() (V, error) {
	node, err := it.deref()
	if err != nil {
		return *new(V), err
	}
	return node.val, nil
}

// ValRef exposes the stored value for in-place mutation. The reference
// shares the lifetime of the node it comes from.
func (it Iterator[K, V]) ValRef() (*V, error) {
	node, err := it.deref()
	if err != nil {
		return nil, err
	}
	return &node.val, nil
}

// Next advances to the in-order successor: the leftmost descendant of
// the right subtree when it exists, otherwise the first ancestor whose
// left subtree holds the current node. Runs off the last element into
// the end sentinel.
func (it *Iterator[K, V]) Next() error {
	if it.tree == nil {
		return infra.WrapErrorStackWithMessage(ErrInvalidIterator, "[rbtree] step a zero iterator")
	}
	if it.node == nil {
		return infra.WrapErrorStackWithMessage(ErrOutOfRange, "[rbtree] step past the end sentinel")
	}
	if !it.node.hasKV {
		return infra.WrapErrorStackWithMessage(ErrInvalidIterator, "[rbtree] step an erased position")
	}
	it.node = it.node.succ()
	return nil
}

// Prev is the mirror image of Next. Stepping back from the end sentinel
// lands on the maximum node.
func (it *Iterator[K, V]) Prev() error {
	if it.tree == nil {
		return infra.WrapErrorStackWithMessage(ErrInvalidIterator, "[rbtree] step a zero iterator")
	}
	if it.node == nil {
		if it.tree.root.isNilLeaf() {
			return infra.WrapErrorStackWithMessage(ErrOutOfRange, "[rbtree] step back in an empty tree")
		}
		it.node = it.tree.root.maximum()
		return nil
	}
	if !it.node.hasKV {
		return infra.WrapErrorStackWithMessage(ErrInvalidIterator, "[rbtree] step an erased position")
	}
	p := it.node.pred()
	if p == nil {
		return infra.WrapErrorStackWithMessage(ErrOutOfRange, "[rbtree] step back past the minimum")
	}
	it.node = p
	return nil
}
