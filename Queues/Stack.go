package Queues

import (
	"iter"

	"github.com/g-m-twostay/go-containers/Lists"
)

// Stack is an unbounded LIFO queue. The zero value is an empty stack ready to use.
type Stack[T comparable] struct {
	l Lists.LinkedList[T]
}

var _ Queue[int] = (*Stack[int])(nil)

func NewStack[T comparable]() *Stack[T] {
	return new(Stack[T])
}

// Push item on top.
func (u *Stack[T]) Push(item T) {
	u.l.AddFirst(item)
}

// Pop the item on top.
func (u *Stack[T]) Pop() (T, error) {
	if t, ok := u.l.RemoveFirst(); ok {
		return t, nil
	}
	return *new(T), &EmptyQueueError{}
}

func (u *Stack[T]) Peek() (T, bool) {
	return u.l.PeekFirst()
}

func (u *Stack[T]) Empty() bool {
	return u.l.IsEmpty()
}

func (u *Stack[T]) Size() uint {
	return u.l.Size()
}

func (u *Stack[T]) Contains(item T) bool {
	return u.l.Contains(item)
}

// Remove the item closest to the top that equals item.
func (u *Stack[T]) Remove(item T) bool {
	return u.l.Remove(item)
}

func (u *Stack[T]) Clear() {
	u.l.Clear()
}

// All items in the order Pop would return them.
func (u *Stack[T]) All() iter.Seq[T] {
	return u.l.All()
}
