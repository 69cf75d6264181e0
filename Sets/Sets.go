package Sets

type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	// Take removes some element and returns it. The bool is false if the set is empty.
	Take() (E, bool)
	Range(func(E) bool)
}
