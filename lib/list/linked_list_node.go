package list

type NodeElement[T comparable] struct {
	prev, next *NodeElement[T]
	listRef    *doublyLinkedList[T]
	Value      T // Keep the possibly small value field last to reduce padding.
}

func newNodeElement[T comparable](v T, list *doublyLinkedList[T]) *NodeElement[T] {
	return &NodeElement[T]{
		Value:   v,
		listRef: list,
	}
}

func (e *NodeElement[T]) HasNext() bool {
	return e.Next() != nil
}

func (e *NodeElement[T]) HasPrev() bool {
	return e.Prev() != nil
}

// Next returns the successor element, or nil at the back of the list.
func (e *NodeElement[T]) Next() *NodeElement[T] {
	if e == nil || e.listRef == nil || e.next == nil || e.next == e.listRef.root {
		return nil
	}
	return e.next
}

// Prev returns the predecessor element, or nil at the front of the list.
func (e *NodeElement[T]) Prev() *NodeElement[T] {
	if e == nil || e.listRef == nil || e.prev == nil || e.prev == e.listRef.root {
		return nil
	}
	return e.prev
}
