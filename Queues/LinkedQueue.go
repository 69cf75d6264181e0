package Queues

import (
	"iter"

	"github.com/g-m-twostay/go-containers/Lists"
)

// LinkedQueue is an unbounded FIFO queue. The zero value is an empty queue ready to use.
type LinkedQueue[T comparable] struct {
	l Lists.LinkedList[T]
}

var _ Queue[int] = (*LinkedQueue[int])(nil)

func NewLinkedQueue[T comparable]() *LinkedQueue[T] {
	return new(LinkedQueue[T])
}

// Push item to the back.
func (u *LinkedQueue[T]) Push(item T) {
	u.l.AddLast(item)
}

// Pop the item at the front.
func (u *LinkedQueue[T]) Pop() (T, error) {
	if t, ok := u.l.RemoveFirst(); ok {
		return t, nil
	}
	return *new(T), &EmptyQueueError{}
}

func (u *LinkedQueue[T]) Peek() (T, bool) {
	return u.l.PeekFirst()
}

func (u *LinkedQueue[T]) Empty() bool {
	return u.l.IsEmpty()
}

func (u *LinkedQueue[T]) Size() uint {
	return u.l.Size()
}

func (u *LinkedQueue[T]) Contains(item T) bool {
	return u.l.Contains(item)
}

// Remove the item closest to the front that equals item.
func (u *LinkedQueue[T]) Remove(item T) bool {
	return u.l.Remove(item)
}

func (u *LinkedQueue[T]) Clear() {
	u.l.Clear()
}

// All items in the order Pop would return them.
func (u *LinkedQueue[T]) All() iter.Seq[T] {
	return u.l.All()
}
