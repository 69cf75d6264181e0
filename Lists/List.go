/*
Package Lists implements sequential containers with a common LinearList interface: a fixed-capacity circular ArrayList and an unbounded doubly linked LinkedList.
Elements are matched with == unless the list was made with a comparison function, in which case two elements match iff they compare 0.
None of the types are safe for concurrent use.
*/
package Lists

import "iter"

// DefaultCap is the capacity of an ArrayList created with a capacity of 0.
const DefaultCap uint = 1000

// LinearList is a sequence that can be edited at both ends.
// Receivers with a bool as the last return value use it to tell whether the first return value is defined.
type LinearList[E comparable] interface {
	//AddFirst puts e at the front. Returns false if the list is full.
	AddFirst(e E) bool
	//AddLast puts e at the back. Returns false if the list is full.
	AddLast(e E) bool
	RemoveFirst() (E, bool)
	RemoveLast() (E, bool)
	//Remove the element closest to the front that equals e. The order of the others is preserved.
	Remove(e E) bool
	PeekFirst() (E, bool)
	PeekLast() (E, bool)
	Contains(e E) bool
	//Find the element closest to the front that equals e.
	Find(e E) (E, bool)
	Clear()
	IsEmpty() bool
	IsFull() bool
	Size() uint
	//All elements from front to back. The list mustn't be modified during the iteration.
	All() iter.Seq[E]
}
