package Lists

import "iter"

// ArrayList is a LinearList in a fixed size circular array.
// The first element added to an empty list is placed in the middle of the array, so both ends have room to grow.
type ArrayList[E comparable] struct {
	sz, front, rear uint
	content         []E
	cmp             func(E, E) int // nil means ==.
}

var _ LinearList[int] = (*ArrayList[int])(nil)

// NewArrayList holding at most capacity elements. A capacity of 0 means DefaultCap.
func NewArrayList[E comparable](capacity uint) *ArrayList[E] {
	if capacity == 0 {
		capacity = DefaultCap
	}
	return &ArrayList[E]{content: make([]E, capacity)}
}

// NewArrayListFunc is NewArrayList matching elements with cmp instead of ==: e matches v iff cmp(e, v) is 0.
func NewArrayListFunc[E comparable](capacity uint, cmp func(E, E) int) *ArrayList[E] {
	u := NewArrayList[E](capacity)
	u.cmp = cmp
	return u
}

func (u *ArrayList[E]) eq(a, b E) bool {
	if u.cmp == nil {
		return a == b
	}
	return u.cmp(a, b) == 0
}

func (u *ArrayList[E]) n() uint {
	return uint(len(u.content))
}

// at returns the array index of the i-th element from the front.
func (u *ArrayList[E]) at(i uint) uint {
	return (u.front + i) % u.n()
}

func (u *ArrayList[E]) AddFirst(e E) bool {
	if u.IsFull() {
		return false
	}
	if u.sz == 0 {
		u.front, u.rear = u.n()/2, u.n()/2
	} else {
		u.front = (u.front + u.n() - 1) % u.n()
	}
	u.content[u.front] = e
	u.sz++
	return true
}

func (u *ArrayList[E]) AddLast(e E) bool {
	if u.IsFull() {
		return false
	}
	if u.sz == 0 {
		u.front, u.rear = u.n()/2, u.n()/2
	} else {
		u.rear = (u.rear + 1) % u.n()
	}
	u.content[u.rear] = e
	u.sz++
	return true
}

func (u *ArrayList[E]) RemoveFirst() (e E, ok bool) {
	if u.sz == 0 {
		return
	}
	e, ok = u.content[u.front], true
	u.content[u.front] = *new(E)
	u.front = (u.front + 1) % u.n()
	u.sz--
	return
}

func (u *ArrayList[E]) RemoveLast() (e E, ok bool) {
	if u.sz == 0 {
		return
	}
	e, ok = u.content[u.rear], true
	u.content[u.rear] = *new(E)
	u.rear = (u.rear + u.n() - 1) % u.n()
	u.sz--
	return
}

// Remove shifts every element after the removed one a slot toward the front. O(Size).
func (u *ArrayList[E]) Remove(e E) bool {
	for i := uint(0); i < u.sz; i++ {
		if u.eq(u.content[u.at(i)], e) {
			for ; i+1 < u.sz; i++ {
				u.content[u.at(i)] = u.content[u.at(i+1)]
			}
			u.content[u.rear] = *new(E)
			u.rear = (u.rear + u.n() - 1) % u.n()
			u.sz--
			return true
		}
	}
	return false
}

func (u *ArrayList[E]) PeekFirst() (e E, ok bool) {
	if u.sz == 0 {
		return
	}
	return u.content[u.front], true
}

func (u *ArrayList[E]) PeekLast() (e E, ok bool) {
	if u.sz == 0 {
		return
	}
	return u.content[u.rear], true
}

func (u *ArrayList[E]) Contains(e E) bool {
	_, ok := u.Find(e)
	return ok
}

func (u *ArrayList[E]) Find(e E) (E, bool) {
	for i := uint(0); i < u.sz; i++ {
		if v := u.content[u.at(i)]; u.eq(v, e) {
			return v, true
		}
	}
	return *new(E), false
}

// Clear the list and drop references to its elements. O(Size).
func (u *ArrayList[E]) Clear() {
	for i := uint(0); i < u.sz; i++ {
		u.content[u.at(i)] = *new(E)
	}
	u.sz, u.front, u.rear = 0, 0, 0
}

func (u *ArrayList[E]) IsEmpty() bool {
	return u.sz == 0
}

func (u *ArrayList[E]) IsFull() bool {
	return u.sz == u.n()
}

func (u *ArrayList[E]) Size() uint {
	return u.sz
}

// Cap is the maximum size.
func (u *ArrayList[E]) Cap() uint {
	return u.n()
}

func (u *ArrayList[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := uint(0); i < u.sz; i++ {
			if !yield(u.content[u.at(i)]) {
				return
			}
		}
	}
}
