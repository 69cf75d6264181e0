package HashSet

import (
	"cmp"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Maps/HashTable"
	"github.com/g-m-twostay/go-containers/Sets"
	"golang.org/x/exp/constraints"
)

// HashSet is a fixed-capacity set over a HashTable with empty values. Like the table, it isn't safe for concurrent use.
type HashSet[E any] struct {
	t *HashTable.HashTable[E, struct{}]
}

var _ Sets.Set[int] = (*HashSet[int])(nil)

func none(struct{}, struct{}) int {
	return 0
}

// New HashSet holding at most capacity ordered elements. Panics with *HashTable.InvalidCapacityError if capacity is 0.
func New[E constraints.Ordered](capacity uint, seed Go_Containers.Hasher) *HashSet[E] {
	return &HashSet[E]{HashTable.NewFunc[E, struct{}](capacity, Go_Containers.HashOrdered[E](seed), cmp.Compare[E], none)}
}

// NewFunc is New for any element type; hash must agree with cmp.
func NewFunc[E any](capacity uint, hash func(E) uint, cmp func(E, E) int) *HashSet[E] {
	return &HashSet[E]{HashTable.NewFunc[E, struct{}](capacity, hash, cmp, none)}
}

// Put e in the set. Returns false if it's already there or the set is full.
func (u *HashSet[E]) Put(e E) bool {
	return u.t.Add(e, struct{}{})
}

func (u *HashSet[E]) Has(e E) bool {
	return u.t.Contains(e)
}

// Remove e from the set. Returns true if the removal is successful.
func (u *HashSet[E]) Remove(e E) bool {
	return u.t.Delete(e)
}

// Size of the set.
func (u *HashSet[E]) Size() uint {
	return u.t.Size()
}

func (u *HashSet[E]) Cap() uint {
	return u.t.Cap()
}

// Take removes the smallest element. O(n log n).
func (u *HashSet[E]) Take() (e E, ok bool) {
	if e, err := u.t.Keys().Next(); err == nil {
		u.t.Delete(e)
		return e, true
	}
	return
}

// Range over the elements in ascending order until f returns false. f may modify the set; Range works on a snapshot.
func (u *HashSet[E]) Range(f func(E) bool) {
	for e := range u.t.Keys().All() {
		if !f(e) {
			return
		}
	}
}

func (u *HashSet[E]) Clear() {
	u.t.Clear()
}
