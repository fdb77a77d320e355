package list

import (
	"errors"
	"sync/atomic"

	"github.com/avkud/xcont/lib/infra"
)

var ErrListEmpty = errors.New("[linked-list] there is no element")

var _ LinkedList[uint8] = (*doublyLinkedList[uint8])(nil) // Type check assertion

// doublyLinkedList links its elements through a circular root sentinel:
// root.next is the front, root.prev is the back, and an empty list is
// the sentinel pointing at itself. Elements carry a listRef tag so that
// an element handed to the wrong list is rejected instead of corrupting
// both lists.
type doublyLinkedList[T comparable] struct {
	root *NodeElement[T]
	len  atomic.Int64
}

func NewLinkedList[T comparable](values ...T) LinkedList[T] {
	l := &doublyLinkedList[T]{}
	l.root = &NodeElement[T]{listRef: l}
	l.root.prev = l.root
	l.root.next = l.root
	l.AppendValue(values...)
	return l
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len.Load()
}

func (l *doublyLinkedList[T]) Empty() bool {
	return l.len.Load() == 0
}

// contains reports whether e is a live element of l. Unlinked elements
// have nil side pointers, so they fail here even with a stale listRef.
func (l *doublyLinkedList[T]) contains(e *NodeElement[T]) bool {
	return e != nil && e != l.root && e.listRef == l &&
		e.prev != nil && e.next != nil
}

// linkAfter threads e between at and at.next. The sentinel makes the
// front, back and middle cases identical.
func (l *doublyLinkedList[T]) linkAfter(e, at *NodeElement[T]) *NodeElement[T] {
	e.listRef = l
	e.prev = at
	e.next = at.next
	at.next.prev = e
	at.next = e
	l.len.Add(1)
	return e
}

func (l *doublyLinkedList[T]) unlink(e *NodeElement[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil // avoid memory leaks
	e.next = nil // avoid memory leaks
	e.listRef = nil
	l.len.Add(-1)
}

func (l *doublyLinkedList[T]) Front() *NodeElement[T] {
	if l.len.Load() == 0 {
		return nil
	}
	return l.root.next
}

func (l *doublyLinkedList[T]) Back() *NodeElement[T] {
	if l.len.Load() == 0 {
		return nil
	}
	return l.root.prev
}

func (l *doublyLinkedList[T]) PushFront(v T) *NodeElement[T] {
	return l.linkAfter(newNodeElement(v, l), l.root)
}

func (l *doublyLinkedList[T]) PushBack(v T) *NodeElement[T] {
	return l.linkAfter(newNodeElement(v, l), l.root.prev)
}

func (l *doublyLinkedList[T]) AppendValue(values ...T) []*NodeElement[T] {
	if len(values) == 0 {
		return nil
	}
	elements := make([]*NodeElement[T], 0, len(values))
	for _, v := range values {
		elements = append(elements, l.PushBack(v))
	}
	return elements
}

func (l *doublyLinkedList[T]) PopFront() (T, error) {
	front := l.Front()
	if front == nil {
		return *new(T), infra.WrapErrorStackWithMessage(ErrListEmpty, "[linked-list] pop front")
	}
	v := front.Value
	l.unlink(front)
	return v, nil
}

func (l *doublyLinkedList[T]) PopBack() (T, error) {
	back := l.Back()
	if back == nil {
		return *new(T), infra.WrapErrorStackWithMessage(ErrListEmpty, "[linked-list] pop back")
	}
	v := back.Value
	l.unlink(back)
	return v, nil
}

func (l *doublyLinkedList[T]) InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.linkAfter(newNodeElement(v, l), dstE.prev)
}

func (l *doublyLinkedList[T]) InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.linkAfter(newNodeElement(v, l), dstE)
}

func (l *doublyLinkedList[T]) Remove(targetE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(targetE) {
		return nil
	}
	l.unlink(targetE)
	return targetE
}

func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, e *NodeElement[T]) error) error {
	idx := int64(0)
	for e := l.root.next; e != l.root; idx++ {
		next := e.next // fn may remove e
		if err := fn(idx, e); err != nil {
			return err
		}
		e = next
	}
	return nil
}

func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, e *NodeElement[T])) {
	idx := int64(0)
	for e := l.root.prev; e != l.root; idx++ {
		prev := e.prev
		fn(idx, e)
		e = prev
	}
}

func (l *doublyLinkedList[T]) FindFirst(v T, compareFn ...func(e *NodeElement[T]) bool) (*NodeElement[T], bool) {
	match := func(e *NodeElement[T]) bool { return e.Value == v }
	if len(compareFn) > 0 && compareFn[0] != nil {
		match = compareFn[0]
	}
	for e := l.root.next; e != l.root; e = e.next {
		if match(e) {
			return e, true
		}
	}
	return nil, false
}

func (l *doublyLinkedList[T]) Reverse() {
	// Flip the side pointers of every element and of the sentinel.
	// Elements are relinked in place, so held element handles survive.
	for e := l.root.next; e != l.root; {
		next := e.next
		e.prev, e.next = e.next, e.prev
		e = next
	}
	l.root.prev, l.root.next = l.root.next, l.root.prev
}

func (l *doublyLinkedList[T]) Unique() {
	for e := l.root.next; e != l.root && e.next != l.root; {
		if e.next.Value == e.Value {
			l.unlink(e.next)
		} else {
			e = e.next
		}
	}
}

func (l *doublyLinkedList[T]) Merge(src LinkedList[T], less func(a, b T) bool) {
	sl, ok := src.(*doublyLinkedList[T])
	if !ok || sl == nil || sl == l || sl.len.Load() == 0 {
		return
	}
	if less == nil {
		l.Splice(nil, src)
		return
	}
	dst := l.root.next
	for sl.len.Load() > 0 {
		e := sl.root.next
		for dst != l.root && !less(e.Value, dst.Value) {
			dst = dst.next
		}
		sl.unlink(e)
		l.linkAfter(e, dst.prev)
	}
}

func (l *doublyLinkedList[T]) Splice(dstE *NodeElement[T], src LinkedList[T]) {
	sl, ok := src.(*doublyLinkedList[T])
	if !ok || sl == nil || sl == l || sl.len.Load() == 0 {
		return
	}
	at := l.root.prev
	if l.contains(dstE) {
		at = dstE.prev
	}
	for sl.len.Load() > 0 {
		e := sl.root.next
		sl.unlink(e)
		at = l.linkAfter(e, at)
	}
}

func (l *doublyLinkedList[T]) Swap(other LinkedList[T]) bool {
	ol, ok := other.(*doublyLinkedList[T])
	if !ok || ol == nil || ol == l {
		return false
	}
	// Retag every element so the membership checks keep working, then
	// exchange the sentinels. Linear, unlike the tree swap.
	for e := l.root.next; e != l.root; e = e.next {
		e.listRef = ol
	}
	for e := ol.root.next; e != ol.root; e = e.next {
		e.listRef = l
	}
	l.root, ol.root = ol.root, l.root
	l.root.listRef, ol.root.listRef = l, ol
	length := l.len.Load()
	l.len.Store(ol.len.Load())
	ol.len.Store(length)
	return true
}

func (l *doublyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.len.Load())
	for e := l.root.next; e != l.root; e = e.next {
		values = append(values, e.Value)
	}
	return values
}
