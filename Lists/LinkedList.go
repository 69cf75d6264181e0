package Lists

import "iter"

type node[E any] struct {
	v          E
	prev, next *node[E]
}

// LinkedList is an unbounded doubly linked LinearList. The zero value is an empty list ready to use.
type LinkedList[E comparable] struct {
	head, tail *node[E]
	sz         uint
	cmp        func(E, E) int // nil means ==.
}

var _ LinearList[int] = (*LinkedList[int])(nil)

func NewLinkedList[E comparable]() *LinkedList[E] {
	return new(LinkedList[E])
}

// NewLinkedListFunc is NewLinkedList matching elements with cmp instead of ==: e matches v iff cmp(e, v) is 0.
func NewLinkedListFunc[E comparable](cmp func(E, E) int) *LinkedList[E] {
	return &LinkedList[E]{cmp: cmp}
}

// AddFirst always succeeds.
func (u *LinkedList[E]) AddFirst(e E) bool {
	n := &node[E]{v: e, next: u.head}
	if u.head == nil {
		u.tail = n
	} else {
		u.head.prev = n
	}
	u.head = n
	u.sz++
	return true
}

// AddLast always succeeds.
func (u *LinkedList[E]) AddLast(e E) bool {
	n := &node[E]{v: e, prev: u.tail}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.next = n
	}
	u.tail = n
	u.sz++
	return true
}

// unlink n from the list and clear it so it holds no references.
func (u *LinkedList[E]) unlink(n *node[E]) E {
	if n.prev == nil {
		u.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		u.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	v := n.v
	*n = node[E]{}
	u.sz--
	return v
}

func (u *LinkedList[E]) RemoveFirst() (e E, ok bool) {
	if u.head == nil {
		return
	}
	return u.unlink(u.head), true
}

func (u *LinkedList[E]) RemoveLast() (e E, ok bool) {
	if u.tail == nil {
		return
	}
	return u.unlink(u.tail), true
}

func (u *LinkedList[E]) eq(a, b E) bool {
	if u.cmp == nil {
		return a == b
	}
	return u.cmp(a, b) == 0
}

func (u *LinkedList[E]) find(e E) *node[E] {
	for cur := u.head; cur != nil; cur = cur.next {
		if u.eq(cur.v, e) {
			return cur
		}
	}
	return nil
}

func (u *LinkedList[E]) Remove(e E) bool {
	if n := u.find(e); n != nil {
		u.unlink(n)
		return true
	}
	return false
}

func (u *LinkedList[E]) PeekFirst() (e E, ok bool) {
	if u.head == nil {
		return
	}
	return u.head.v, true
}

func (u *LinkedList[E]) PeekLast() (e E, ok bool) {
	if u.tail == nil {
		return
	}
	return u.tail.v, true
}

func (u *LinkedList[E]) Contains(e E) bool {
	return u.find(e) != nil
}

func (u *LinkedList[E]) Find(e E) (E, bool) {
	if n := u.find(e); n != nil {
		return n.v, true
	}
	return *new(E), false
}

// Clear the list. Nodes are unlinked one by one so none keeps the others alive.
func (u *LinkedList[E]) Clear() {
	for cur := u.head; cur != nil; {
		next := cur.next
		*cur = node[E]{}
		cur = next
	}
	u.head, u.tail, u.sz = nil, nil, 0
}

func (u *LinkedList[E]) IsEmpty() bool {
	return u.sz == 0
}

// IsFull is always false.
func (u *LinkedList[E]) IsFull() bool {
	return false
}

func (u *LinkedList[E]) Size() uint {
	return u.sz
}

func (u *LinkedList[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for cur := u.head; cur != nil; cur = cur.next {
			if !yield(cur.v) {
				return
			}
		}
	}
}
