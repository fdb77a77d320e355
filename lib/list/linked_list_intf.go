package list

// Note that the linked list is not thread safe.
// A singly linked list walk is the Foreach direction of the doubly
// linked one, so only the doubly linked implementation is kept.

// LinkedList is the doubly linked list interface.
type LinkedList[T comparable] interface {
	Len() int64
	Empty() bool
	// Front returns the first element or nil if the list is empty.
	Front() *NodeElement[T]
	// Back returns the last element or nil if the list is empty.
	Back() *NodeElement[T]
	// PushFront inserts a new element with value v at the front and returns it.
	PushFront(v T) *NodeElement[T]
	// PushBack inserts a new element with value v at the back and returns it.
	PushBack(v T) *NodeElement[T]
	// AppendValue appends the values to the list and returns the new elements.
	AppendValue(values ...T) []*NodeElement[T]
	// PopFront removes the first element and returns its value.
	PopFront() (T, error)
	// PopBack removes the last element and returns its value.
	PopBack() (T, error)
	// InsertBefore inserts v immediately before dstE and returns the
	// new element, or nil if dstE is not an element of this list.
	InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T]
	// InsertAfter inserts v immediately after dstE and returns the
	// new element, or nil if dstE is not an element of this list.
	InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T]
	// Remove unlinks targetE if it is an element of this list and
	// returns it, otherwise nil.
	Remove(targetE *NodeElement[T]) *NodeElement[T]
	// Foreach walks front to back and stops at the first error.
	// Removing the visited element inside fn is allowed.
	Foreach(fn func(idx int64, e *NodeElement[T]) error) error
	// ReverseForeach walks back to front.
	ReverseForeach(fn func(idx int64, e *NodeElement[T]))
	// FindFirst finds the first element satisfying compareFn, by value
	// equality when compareFn is not provided.
	FindFirst(v T, compareFn ...func(e *NodeElement[T]) bool) (*NodeElement[T], bool)
	// Reverse flips the element order in place.
	Reverse()
	// Unique removes consecutive duplicate values.
	Unique()
	// Merge drains src into this list. With a less function both lists
	// are assumed sorted by it and the result stays sorted; without it
	// src is appended at the back.
	Merge(src LinkedList[T], less func(a, b T) bool)
	// Splice moves every element of src before dstE, or to the back
	// when dstE is nil. src is left empty.
	Splice(dstE *NodeElement[T], src LinkedList[T])
	// Swap exchanges the contents with other.
	Swap(other LinkedList[T]) bool
	// Values snapshots the element values front to back.
	Values() []T
}
