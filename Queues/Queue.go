/*
Package Queues implements FIFO, LIFO and priority queues. LinkedQueue and Stack are adapters over Lists.LinkedList; PriorityQueue is a fixed-capacity binary heap.
None of the types are safe for concurrent use.
*/
package Queues

type Queue[T any] interface {
	Push(item T)
	//Pop the next item. Returns *EmptyQueueError if there's none.
	Pop() (T, error)
	//Peek at the next item without removing it. The bool is false if the queue is empty.
	Peek() (T, bool)
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
