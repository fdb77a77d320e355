package set

import (
	"github.com/avkud/xcont/lib/infra"
	"github.com/avkud/xcont/lib/tree"
)

// InsertResult reports where one bulk-inserted element landed and
// whether a new node was created for it.
type InsertResult[E infra.OrderedKey] struct {
	Iter     tree.Iterator[E, E]
	Inserted bool
}

// Collection is the surface shared by OrderedSet and Multiset.
// Iteration runs in ascending element order. Not thread safe.
type Collection[E infra.OrderedKey] interface {
	Len() int64
	Empty() bool
	Contains(v E) bool
	Find(v E) tree.Iterator[E, E]
	Erase(it tree.Iterator[E, E]) error
	Begin() tree.Iterator[E, E]
	End() tree.Iterator[E, E]
	Values() []E
	Clear()
}
