package set

import (
	"github.com/samber/lo"

	"github.com/avkud/xcont/lib/infra"
	"github.com/avkud/xcont/lib/tree"
)

var _ Collection[uint8] = (*Multiset[uint8])(nil) // Type check assertion

// Multiset permits duplicate elements. Equal elements keep a stable
// relative order because the tree always files them into the right
// subtree of their equals.
type Multiset[E infra.OrderedKey] struct {
	t tree.RBTree[E, E]
}

func NewMultiset[E infra.OrderedKey](elements ...E) *Multiset[E] {
	s := &Multiset[E]{
		t: tree.NewRBTree[E, E](),
	}
	for _, v := range elements {
		s.t.Insert(v, v, true)
	}
	return s
}

func (s *Multiset[E]) Len() int64 {
	return s.t.Len()
}

func (s *Multiset[E]) Empty() bool {
	return s.t.Empty()
}

// Insert always succeeds.
func (s *Multiset[E]) Insert(v E) tree.Iterator[E, E] {
	it, _ := s.t.Insert(v, v, true)
	return it
}

func (s *Multiset[E]) InsertMany(values ...E) []tree.Iterator[E, E] {
	return lo.Map(values, func(v E, _ int) tree.Iterator[E, E] {
		it, _ := s.t.Insert(v, v, true)
		return it
	})
}

func (s *Multiset[E]) Contains(v E) bool {
	return s.t.Find(v).Valid()
}

// Find returns an iterator to one element equal to v; which one among
// duplicates is unspecified.
func (s *Multiset[E]) Find(v E) tree.Iterator[E, E] {
	return s.t.Find(v)
}

// Count reports how many elements compare equal to v under the backing
// tree's own ordering.
func (s *Multiset[E]) Count(v E) int64 {
	count := int64(0)
	s.t.Foreach(func(_ int64, _ tree.RBColor, key E, _ E) bool {
		res := s.t.KeyCompare(key, v)
		if res == 0 {
			count++
		}
		// Keys are sorted, nothing equal can follow a greater key.
		return res <= 0
	})
	return count
}

func (s *Multiset[E]) Erase(it tree.Iterator[E, E]) error {
	return s.t.Erase(it)
}

func (s *Multiset[E]) Begin() tree.Iterator[E, E] {
	return s.t.Begin()
}

func (s *Multiset[E]) End() tree.Iterator[E, E] {
	return s.t.End()
}

func (s *Multiset[E]) Values() []E {
	values := make([]E, 0, s.t.Len())
	s.t.Foreach(func(_ int64, _ tree.RBColor, key E, _ E) bool {
		values = append(values, key)
		return true
	})
	return values
}

func (s *Multiset[E]) Clear() {
	s.t.Release()
}

// Swap exchanges the contents with other in constant time.
func (s *Multiset[E]) Swap(other *Multiset[E]) error {
	if other == nil {
		return infra.NewErrorStack("[multiset] swap with a nil multiset")
	}
	return s.t.Swap(other.t)
}

// Clone deep copies the multiset; the copy shares no storage with s.
func (s *Multiset[E]) Clone() *Multiset[E] {
	return &Multiset[E]{t: s.t.Clone()}
}
