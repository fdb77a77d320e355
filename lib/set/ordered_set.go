package set

import (
	"github.com/samber/lo"

	"github.com/avkud/xcont/lib/infra"
	"github.com/avkud/xcont/lib/tree"
)

var _ Collection[uint8] = (*OrderedSet[uint8])(nil) // Type check assertion

// OrderedSet keeps unique elements in ascending order. Element and key
// are the same thing, so the backing tree stores the value twice over.
type OrderedSet[E infra.OrderedKey] struct {
	t tree.RBTree[E, E]
}

// NewOrderedSet builds a set from the given elements, inserted one at a
// time in argument order. Duplicates are dropped.
func NewOrderedSet[E infra.OrderedKey](elements ...E) *OrderedSet[E] {
	s := &OrderedSet[E]{
		t: tree.NewRBTree[E, E](),
	}
	for _, v := range elements {
		s.t.Insert(v, v)
	}
	return s
}

func (s *OrderedSet[E]) Len() int64 {
	return s.t.Len()
}

func (s *OrderedSet[E]) Empty() bool {
	return s.t.Empty()
}

// Insert adds v unless it is already present. The returned flag is
// true only when a new element was created.
func (s *OrderedSet[E]) Insert(v E) (tree.Iterator[E, E], bool) {
	return s.t.Insert(v, v)
}

// InsertMany attempts every element in argument order regardless of
// earlier rejections and returns one result per element.
func (s *OrderedSet[E]) InsertMany(values ...E) []InsertResult[E] {
	return lo.Map(values, func(v E, _ int) InsertResult[E] {
		it, inserted := s.t.Insert(v, v)
		return InsertResult[E]{Iter: it, Inserted: inserted}
	})
}

func (s *OrderedSet[E]) Contains(v E) bool {
	return s.t.Find(v).Valid()
}

func (s *OrderedSet[E]) Find(v E) tree.Iterator[E, E] {
	return s.t.Find(v)
}

func (s *OrderedSet[E]) Erase(it tree.Iterator[E, E]) error {
	return s.t.Erase(it)
}

func (s *OrderedSet[E]) Begin() tree.Iterator[E, E] {
	return s.t.Begin()
}

func (s *OrderedSet[E]) End() tree.Iterator[E, E] {
	return s.t.End()
}

func (s *OrderedSet[E]) Values() []E {
	values := make([]E, 0, s.t.Len())
	s.t.Foreach(func(_ int64, _ tree.RBColor, key E, _ E) bool {
		values = append(values, key)
		return true
	})
	return values
}

func (s *OrderedSet[E]) Clear() {
	s.t.Release()
}

// Swap exchanges the contents with other in constant time.
func (s *OrderedSet[E]) Swap(other *OrderedSet[E]) error {
	if other == nil {
		return infra.NewErrorStack("[ordered-set] swap with a nil set")
	}
	return s.t.Swap(other.t)
}

// Clone deep copies the set; the copy shares no storage with s.
func (s *OrderedSet[E]) Clone() *OrderedSet[E] {
	return &OrderedSet[E]{t: s.t.Clone()}
}
