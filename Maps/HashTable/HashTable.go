/*
Package HashTable implements a fixed-capacity hash table with separate chaining and sorted iteration.

# Capacity
The capacity given to New is both the number of buckets and the maximum number of entries. The table is full once it holds capacity entries,
regardless of how they are spread across buckets, and it never grows or rehashes. Entries are stored in a single arena of capacity slots, so
adding and deleting don't allocate.

# Ordering
Keys and values are compared through a total ordering, which is also the only notion of equality: two keys are the same iff they compare 0.
The hash function must agree with it.

# Iteration
Keys and Values sort a snapshot of the keys on every call, O(n log n). Later changes to the table don't affect a Keys iterator.
Values looks each key up again when it's reached, so a key deleted after the snapshot comes back as not found.

# Concurrency
None of the methods are safe for concurrent use. Callers sharing a table between goroutines must lock around every call, including iterator calls.
*/
package HashTable

import (
	"cmp"
	"fmt"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Maps"
	"golang.org/x/exp/constraints"
)

// InvalidCapacityError is the panic value of constructors given a capacity of 0.
type InvalidCapacityError struct {
	Capacity uint
}

func (e *InvalidCapacityError) Error() string {
	return fmt.Sprintf("invalid hash table capacity %d: must be at least 1", e.Capacity)
}

type HashTable[K, V any] struct {
	buckets  []chain[K, V]
	entries  arena[K, V]
	occupied Go_Containers.BitArray // bit i is set iff buckets[i] is non-empty.
	sz       uint
	hash     func(K) uint
	cmpK     func(K, K) int
	cmpV     func(V, V) int
}

var _ Maps.Dictionary[string, int] = (*HashTable[string, int])(nil)

// New HashTable with capacity buckets for ordered keys and values, hashed with seed.
// Panics with *InvalidCapacityError if capacity is 0.
func New[K, V constraints.Ordered](capacity uint, seed Go_Containers.Hasher) *HashTable[K, V] {
	return NewFunc[K, V](capacity, Go_Containers.HashOrdered[K](seed), cmp.Compare[K], cmp.Compare[V])
}

// NewFunc creates a HashTable with capacity buckets using the given hash and comparison functions.
// hash must be consistent with cmpK: cmpK(a, b)==0 implies hash(a)==hash(b). cmpV is only used by GetKey.
// Panics with *InvalidCapacityError if capacity is 0.
func NewFunc[K, V any](capacity uint, hash func(K) uint, cmpK func(K, K) int, cmpV func(V, V) int) *HashTable[K, V] {
	if capacity == 0 {
		panic(&InvalidCapacityError{capacity})
	}
	return &HashTable[K, V]{
		buckets:  make([]chain[K, V], capacity),
		entries:  newArena[K, V](capacity),
		occupied: Go_Containers.NewBitArray(capacity),
		hash:     hash,
		cmpK:     cmpK,
		cmpV:     cmpV,
	}
}

func (u *HashTable[K, V]) bucket(k K) (*chain[K, V], uint) {
	i := Maps.Index(u.hash(k), uint(len(u.buckets)))
	return &u.buckets[i], i
}

// Contains k. O(1) expected, O(length of k's chain) worst case.
func (u *HashTable[K, V]) Contains(k K) bool {
	c, _ := u.bucket(k)
	return c.contains(&u.entries, k, u.cmpK)
}

// Add k/v to the table. Returns false without modifying the table if it's full or k is already present; an existing value is never replaced.
func (u *HashTable[K, V]) Add(k K, v V) bool {
	if u.IsFull() {
		return false
	}
	c, i := u.bucket(k)
	if c.contains(&u.entries, k, u.cmpK) {
		return false
	}
	c.addFirst(&u.entries, entry[K, V]{k, v})
	u.occupied.Set(i)
	u.sz++
	return true
}

// Delete the entry with key k. Returns false if there's none.
func (u *HashTable[K, V]) Delete(k K) bool {
	if u.sz == 0 {
		return false
	}
	c, i := u.bucket(k)
	if !c.removeFirst(&u.entries, k, u.cmpK) {
		return false
	}
	if c.size() == 0 {
		u.occupied.Clr(i)
	}
	u.sz--
	return true
}

// GetValue of key k. The bool is false if k isn't present.
func (u *HashTable[K, V]) GetValue(k K) (v V, found bool) {
	if u.sz == 0 {
		return
	}
	c, _ := u.bucket(k)
	if e := c.find(&u.entries, k, u.cmpK); e != nil {
		v, found = e.v, true
	}
	return
}

// GetKey returns the key of an entry whose value compares 0 with v. If several entries share v, which key is returned is unspecified;
// currently it's the first one met walking buckets in index order and each chain from its newest entry, which depends on the hash function.
func (u *HashTable[K, V]) GetKey(v V) (k K, found bool) {
	if u.sz == 0 {
		return
	}
	for i := u.occupied.First(); i > -1 && !found; i = u.occupied.Next(uint(i) + 1) {
		u.buckets[i].each(&u.entries, func(e *entry[K, V]) bool {
			if u.cmpV(e.v, v) == 0 {
				k, found = e.k, true
			}
			return !found
		})
	}
	return
}

// Size is the number of entries.
func (u *HashTable[K, V]) Size() uint {
	return u.sz
}

// Cap is the number of buckets, which is also the maximum Size.
func (u *HashTable[K, V]) Cap() uint {
	return uint(len(u.buckets))
}

func (u *HashTable[K, V]) IsEmpty() bool {
	return u.sz == 0
}

func (u *HashTable[K, V]) IsFull() bool {
	return u.sz == uint(len(u.buckets))
}

// Clear all entries. Capacity is kept. O(number of occupied buckets + entries ever stored since the last Clear).
func (u *HashTable[K, V]) Clear() {
	for i := u.occupied.First(); i > -1; i = u.occupied.Next(uint(i) + 1) {
		u.buckets[i].reset()
	}
	u.occupied.Reset()
	u.entries.reset()
	u.sz = 0
}

// snapshot copies all keys, in bucket order.
func (u *HashTable[K, V]) snapshot() []K {
	ks := make([]K, 0, u.sz)
	for i := u.occupied.First(); i > -1; i = u.occupied.Next(uint(i) + 1) {
		u.buckets[i].each(&u.entries, func(e *entry[K, V]) bool {
			ks = append(ks, e.k)
			return true
		})
	}
	return ks
}

// Keys in ascending order. The iterator works on a copy of the keys taken now; it's unaffected by later changes to the table.
func (u *HashTable[K, V]) Keys() *Maps.KeyIterator[K] {
	return Maps.NewKeyIterator(u.snapshot(), u.cmpK)
}

// Values in ascending order of their keys. Each value is looked up when the iterator reaches its key, so keys deleted after this call resolve
// to not found, while the iterator still visits them.
func (u *HashTable[K, V]) Values() *Maps.ValueIterator[K, V] {
	return Maps.NewValueIterator(u.Keys(), u.GetValue)
}

// Stats describes how entries are spread over the buckets.
type Stats struct {
	Buckets, Occupied, Entries, Longest uint
	// Lengths[n] is the number of buckets whose chain holds n entries, up to Longest.
	Lengths []uint
}

// Stats of the current bucket distribution. O(capacity).
func (u *HashTable[K, V]) Stats() Stats {
	s := Stats{Buckets: uint(len(u.buckets)), Occupied: u.occupied.Count(), Entries: u.sz}
	for i := range u.buckets {
		s.Longest = max(s.Longest, u.buckets[i].size())
	}
	s.Lengths = make([]uint, s.Longest+1)
	for i := range u.buckets {
		s.Lengths[u.buckets[i].size()]++
	}
	return s
}
