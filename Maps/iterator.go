package Maps

import "iter"

// ExhaustedError is returned when Next is called on an iterator that has nothing left. Check HasNext first.
type ExhaustedError struct {
}

func (e *ExhaustedError) Error() string {
	return "Iterator is exhausted: cannot call Next."
}

// KeyIterator walks a sorted snapshot of keys. The snapshot is owned by the iterator, so later changes to the dictionary it came from aren't visible.
// It can't be restarted; ask the dictionary for a new one instead.
type KeyIterator[K any] struct {
	ks []K
	i  uint
}

// NewKeyIterator sorts ks in place with cmp and takes ownership of it. The caller mustn't modify ks afterward.
func NewKeyIterator[K any](ks []K, cmp func(K, K) int) *KeyIterator[K] {
	QuickSort(ks, cmp)
	return &KeyIterator[K]{ks: ks}
}

func (u *KeyIterator[K]) HasNext() bool {
	return u.i < uint(len(u.ks))
}

// Next key in ascending order.
func (u *KeyIterator[K]) Next() (K, error) {
	if !u.HasNext() {
		return *new(K), &ExhaustedError{}
	}
	k := u.ks[u.i]
	u.i++
	return k, nil
}

// Len of the snapshot, including keys already returned.
func (u *KeyIterator[K]) Len() uint {
	return uint(len(u.ks))
}

// All remaining keys. Consumes the iterator.
func (u *KeyIterator[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for u.HasNext() {
			k := u.ks[u.i]
			u.i++
			if !yield(k) {
				return
			}
		}
	}
}

// ValueIterator yields values in the order of a KeyIterator, resolving every key through lookup when it's reached rather than when the snapshot was taken.
// A key removed from the dictionary in between resolves to not found.
type ValueIterator[K, V any] struct {
	keys   *KeyIterator[K]
	lookup func(K) (V, bool)
}

func NewValueIterator[K, V any](keys *KeyIterator[K], lookup func(K) (V, bool)) *ValueIterator[K, V] {
	return &ValueIterator[K, V]{keys, lookup}
}

func (u *ValueIterator[K, V]) HasNext() bool {
	return u.keys.HasNext()
}

// Next value. found is false if its key no longer exists.
func (u *ValueIterator[K, V]) Next() (v V, found bool, e error) {
	k, e := u.keys.Next()
	if e != nil {
		return
	}
	v, found = u.lookup(k)
	return
}

// All remaining values with their found flags. Consumes the iterator.
func (u *ValueIterator[K, V]) All() iter.Seq2[V, bool] {
	return func(yield func(V, bool) bool) {
		for k := range u.keys.All() {
			if !yield(u.lookup(k)) {
				return
			}
		}
	}
}
