package linkedlist

// Node - One key/value entry in a List. The value may be updated in place.
type Node[V any] struct {
	Key   string
	Value V
	next  *Node[V]
}

// Next - Returns the following node or nil if this is the last node
func (N *Node[V]) Next() *Node[V] {
	return N.next
}

// List - Singly linked list of key/value nodes, used as a bucket in separate chaining.
// The zero value is an empty list ready to use.
type List[V any] struct {
	head   *Node[V]
	tail   *Node[V]
	length int
}

// New - Returns a pointer to a new empty List
func New[V any]() *List[V] {
	return &List[V]{}
}

// Insert - Appends a new node at the end of the list. It does not check for an existing node with the same key.
func (L *List[V]) Insert(key string, value V) {
	n := &Node[V]{Key: key, Value: value}
	if L.tail == nil {
		L.head = n
	} else {
		L.tail.next = n
	}
	L.tail = n
	L.length++
}

// Contains - Returns the first node having key, or nil if there is none
func (L *List[V]) Contains(key string) *Node[V] {
	for n := L.head; n != nil; n = n.next {
		if n.Key == key {
			return n
		}
	}

	return nil
}

// Remove - Unlinks the first node having key.
// It returns true if a node was removed and false if the key was not in the list.
func (L *List[V]) Remove(key string) bool {
	var prev *Node[V]
	for n := L.head; n != nil; prev, n = n, n.next {
		if n.Key != key {
			continue
		}

		if prev == nil {
			L.head = n.next
		} else {
			prev.next = n.next
		}
		if L.tail == n {
			L.tail = prev
		}
		n.next = nil
		L.length--

		return true
	}

	return false
}

// Front - Returns the first node or nil if the list is empty
func (L *List[V]) Front() *Node[V] {
	return L.head
}

// Length - Returns the number of nodes in the list
func (L *List[V]) Length() int {
	return L.length
}
