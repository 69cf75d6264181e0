package Queues

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// DefaultCap is the capacity of a PriorityQueue created with a capacity of 0.
const DefaultCap uint = 1000

type ticket[T any] struct {
	v   T
	seq uint64 // insertion order; breaks ties between equal priorities.
}

// PriorityQueue is a fixed-capacity binary min-heap. Smaller items come out first, and among equal items the one inserted earliest.
type PriorityQueue[T any] struct {
	heap []ticket[T] // len(heap) is the size, cap(heap) the capacity.
	seq  uint64
	cmp  func(T, T) int
}

// NewPriorityQueue holding at most capacity items ordered by cmp. A capacity of 0 means DefaultCap.
func NewPriorityQueue[T any](capacity uint, cmp func(T, T) int) *PriorityQueue[T] {
	if capacity == 0 {
		capacity = DefaultCap
	}
	return &PriorityQueue[T]{heap: make([]ticket[T], 0, capacity), cmp: cmp}
}

// NewOrdered is NewPriorityQueue using the natural order of T.
func NewOrdered[T constraints.Ordered](capacity uint) *PriorityQueue[T] {
	return NewPriorityQueue[T](capacity, cmp.Compare[T])
}

func (u *PriorityQueue[T]) less(i, j int) bool {
	if c := u.cmp(u.heap[i].v, u.heap[j].v); c != 0 {
		return c < 0
	}
	return u.heap[i].seq < u.heap[j].seq
}

func (u *PriorityQueue[T]) up(i int) {
	for i > 0 {
		p := (i - 1) >> 1
		if !u.less(i, p) {
			break
		}
		u.heap[i], u.heap[p] = u.heap[p], u.heap[i]
		i = p
	}
}

func (u *PriorityQueue[T]) down(i int) {
	for n := len(u.heap); ; {
		c := i<<1 + 1
		if c >= n {
			return
		}
		if r := c + 1; r < n && u.less(r, c) {
			c = r
		}
		if !u.less(c, i) {
			return
		}
		u.heap[i], u.heap[c] = u.heap[c], u.heap[i]
		i = c
	}
}

// removeAt i by moving the last item into its place.
func (u *PriorityQueue[T]) removeAt(i int) T {
	v, last := u.heap[i].v, len(u.heap)-1
	u.heap[i] = u.heap[last]
	u.heap[last] = ticket[T]{}
	u.heap = u.heap[:last]
	if i < last {
		u.down(i)
		u.up(i)
	}
	return v
}

// Insert v. Returns false if the queue is full.
func (u *PriorityQueue[T]) Insert(v T) bool {
	if u.IsFull() {
		return false
	}
	u.heap = append(u.heap, ticket[T]{v, u.seq})
	u.seq++
	u.up(len(u.heap) - 1)
	return true
}

// Pop the smallest item, the oldest one among equals.
func (u *PriorityQueue[T]) Pop() (T, error) {
	if len(u.heap) == 0 {
		return *new(T), &EmptyQueueError{}
	}
	return u.removeAt(0), nil
}

func (u *PriorityQueue[T]) Peek() (v T, ok bool) {
	if len(u.heap) == 0 {
		return
	}
	return u.heap[0].v, true
}

// Delete every item comparing equal to v. Returns false if there was none. O(Size).
func (u *PriorityQueue[T]) Delete(v T) bool {
	kept := u.heap[:0]
	for _, t := range u.heap {
		if u.cmp(t.v, v) != 0 {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(u.heap) {
		return false
	}
	clear(u.heap[len(kept):])
	u.heap = kept
	for i := len(u.heap)/2 - 1; i > -1; i-- {
		u.down(i)
	}
	return true
}

// Contains an item comparing equal to v.
func (u *PriorityQueue[T]) Contains(v T) bool {
	for i := range u.heap {
		if u.cmp(u.heap[i].v, v) == 0 {
			return true
		}
	}
	return false
}

func (u *PriorityQueue[T]) Size() uint {
	return uint(len(u.heap))
}

// Cap is the maximum size.
func (u *PriorityQueue[T]) Cap() uint {
	return uint(cap(u.heap))
}

func (u *PriorityQueue[T]) Clear() {
	clear(u.heap)
	u.heap = u.heap[:0]
}

func (u *PriorityQueue[T]) IsEmpty() bool {
	return len(u.heap) == 0
}

func (u *PriorityQueue[T]) IsFull() bool {
	return len(u.heap) == cap(u.heap)
}

// All items in heap array order, which is not sorted order. The queue mustn't be modified during the iteration.
func (u *PriorityQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range u.heap {
			if !yield(u.heap[i].v) {
				return
			}
		}
	}
}
