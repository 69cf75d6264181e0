package HashTable

import (
	"cmp"
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/g-m-twostay/go-containers/Maps"
)

const (
	rndCap   = 512
	rndOps   = 20000
	rndRange = 1024
)

var rg = *rand.New(rand.NewSource(0))

// collide sends every key to the same bucket.
func collide[K any](K) uint {
	return 7
}

func keysOf[K any](t *testing.T, it *Maps.KeyIterator[K]) []K {
	t.Helper()
	var ks []K
	for it.HasNext() {
		k, e := it.Next()
		if e != nil {
			t.Fatalf("Next failed with HasNext true: %v", e)
		}
		ks = append(ks, k)
	}
	return ks
}

func TestHashTable_Scenario(t *testing.T) {
	M := New[string, int](4, 0)
	for i, k := range []string{"b", "a", "c"} {
		if !M.Add(k, i+1) {
			t.Errorf("failed to add %q", k)
		}
	}
	if M.Size() != 3 {
		t.Errorf("size is %d, want 3", M.Size())
	}
	if ks := keysOf(t, M.Keys()); !slices.Equal(ks, []string{"a", "b", "c"}) {
		t.Errorf("keys are %v", ks)
	}
	if !M.Add("d", 4) {
		t.Error("failed to add d")
	}
	if M.Add("e", 5) {
		t.Error("added e to a full table")
	}
	if !M.Delete("b") {
		t.Error("failed to delete b")
	}
	if M.Size() != 3 {
		t.Errorf("size is %d, want 3", M.Size())
	}
	if _, ok := M.GetValue("b"); ok {
		t.Error("b is still there")
	}
	if v, ok := M.GetValue("a"); !ok || v != 2 {
		t.Errorf("a is %d,%t, want 2,true", v, ok)
	}
	if ks := keysOf(t, M.Keys()); !slices.Equal(ks, []string{"a", "c", "d"}) {
		t.Errorf("keys are %v", ks)
	}
}

func TestHashTable_Duplicate(t *testing.T) {
	M := New[int, string](8, 1)
	if !M.Add(1, "one") {
		t.Fatal("wrong add 1")
	}
	if M.Add(1, "uno") {
		t.Error("wrong add 2")
	}
	if v, _ := M.GetValue(1); v != "one" {
		t.Errorf("value replaced by %q", v)
	}
	if M.Size() != 1 {
		t.Errorf("size is %d, want 1", M.Size())
	}
}

func TestHashTable_Capacity(t *testing.T) {
	const n = 16
	M := NewFunc[int, int](n, collide[int], cmp.Compare[int], cmp.Compare[int])
	for i := 0; i < n; i++ {
		if !M.Add(i, i) {
			t.Errorf("failed to add %d", i)
		}
	}
	if !M.IsFull() {
		t.Error("table isn't full")
	}
	if s := M.Stats(); s.Occupied != 1 || s.Longest != n || s.Lengths[0] != n-1 {
		t.Errorf("unexpected distribution %+v", s)
	}
	for i := n; i < 2*n; i++ {
		if M.Add(i, i) {
			t.Errorf("added %d to a full table", i)
		}
	}
	if M.Size() != n {
		t.Errorf("size is %d, want %d", M.Size(), n)
	}
	if !M.Delete(3) {
		t.Fatal("failed to delete 3")
	}
	if M.IsFull() {
		t.Error("table is still full")
	}
	if !M.Add(100, 100) {
		t.Error("failed to add after delete")
	}
	if M.Add(101, 101) {
		t.Error("added past capacity")
	}
}

func TestHashTable_SpreadCapacity(t *testing.T) {
	// the bound is global even when every bucket holds at most one entry.
	M := NewFunc[uint, uint](4, func(k uint) uint { return k }, cmp.Compare[uint], cmp.Compare[uint])
	for i := uint(0); i < 4; i++ {
		M.Add(i, i)
	}
	if s := M.Stats(); s.Occupied != 4 || s.Longest != 1 {
		t.Errorf("unexpected distribution %+v", s)
	}
	if M.Add(4, 4) {
		t.Error("added past capacity")
	}
}

func TestHashTable_Delete(t *testing.T) {
	M := New[int, int](8, 0)
	if M.Delete(0) {
		t.Error("deleted from empty table")
	}
	M.Add(1, 1)
	if M.Delete(2) {
		t.Error("deleted absent key")
	}
	if !M.Delete(1) {
		t.Error("wrong delete 1")
	}
	if M.Delete(1) {
		t.Error("wrong delete 2")
	}
	if M.Contains(1) {
		t.Error("1 is still contained")
	}
	if !M.IsEmpty() {
		t.Error("table isn't empty")
	}
}

func TestHashTable_ChainOrder(t *testing.T) {
	M := NewFunc[int, int](8, collide[int], cmp.Compare[int], cmp.Compare[int])
	for i := 0; i < 6; i++ {
		M.Add(i, i)
	}
	// delete from the middle, the head and the tail of the chain.
	for _, k := range []int{2, 5, 0} {
		if !M.Delete(k) {
			t.Errorf("failed to delete %d", k)
		}
	}
	for _, k := range []int{1, 3, 4} {
		if v, ok := M.GetValue(k); !ok || v != k {
			t.Errorf("lost %d", k)
		}
	}
	if ks := keysOf(t, M.Keys()); !slices.Equal(ks, []int{1, 3, 4}) {
		t.Errorf("keys are %v", ks)
	}
}

func TestHashTable_GetKey(t *testing.T) {
	M := New[string, int](16, 3)
	if _, ok := M.GetKey(0); ok {
		t.Error("found a key in an empty table")
	}
	M.Add("x", 1)
	M.Add("y", 2)
	M.Add("z", 2)
	if k, ok := M.GetKey(1); !ok || k != "x" {
		t.Errorf("key of 1 is %q,%t", k, ok)
	}
	if k, ok := M.GetKey(2); !ok || (k != "y" && k != "z") {
		t.Errorf("key of 2 is %q,%t", k, ok)
	}
	if _, ok := M.GetKey(3); ok {
		t.Error("found a key for 3")
	}

	// within one chain the newest entry wins.
	C := NewFunc[string, int](4, collide[string], cmp.Compare[string], cmp.Compare[int])
	C.Add("old", 9)
	C.Add("new", 9)
	if k, _ := C.GetKey(9); k != "new" {
		t.Errorf("key of 9 is %q, want new", k)
	}
}

func TestHashTable_Clear(t *testing.T) {
	M := New[int, int](32, 0)
	for i := 0; i < 32; i++ {
		M.Add(i, -i)
	}
	M.Clear()
	if !M.IsEmpty() || M.Size() != 0 {
		t.Errorf("size is %d after clear", M.Size())
	}
	if M.Keys().HasNext() {
		t.Error("keys left after clear")
	}
	for i := 0; i < 32; i++ {
		if M.Contains(i) {
			t.Errorf("%d left after clear", i)
		}
	}
	if s := M.Stats(); s.Occupied != 0 || s.Longest != 0 {
		t.Errorf("buckets left after clear %+v", s)
	}
	for i := 0; i < 32; i++ {
		if !M.Add(i+100, i) {
			t.Errorf("failed to refill %d", i)
		}
	}
	if !M.IsFull() {
		t.Error("table isn't full after refill")
	}
}

func TestHashTable_HashRange(t *testing.T) {
	for _, h := range []uint{0, 1, ^uint(0), ^uint(0) >> 1, 1 << 63} {
		M := NewFunc[int, int](3, func(int) uint { return h }, cmp.Compare[int], cmp.Compare[int])
		if !M.Add(1, 1) || !M.Contains(1) {
			t.Errorf("hash %x isn't routed", h)
		}
	}
}

func TestHashTable_ZeroCapacity(t *testing.T) {
	defer func() {
		var e *InvalidCapacityError
		if r := recover(); r == nil {
			t.Error("no panic")
		} else if err, ok := r.(error); !ok || !errors.As(err, &e) {
			t.Errorf("panicked with %v", r)
		}
	}()
	New[int, int](0, 0)
}

// TestHashTable_Random checks the table against a tree map under random adds and deletes.
func TestHashTable_Random(t *testing.T) {
	M := New[int, int](rndCap, 42)
	ref := treemap.NewWithIntComparator()
	for range rndOps {
		k := rg.Intn(rndRange)
		if rg.Intn(3) > 0 {
			_, in := ref.Get(k)
			want := !in && ref.Size() < rndCap
			if got := M.Add(k, k*2); got != want {
				t.Fatalf("add %d returned %t, want %t", k, got, want)
			}
			if want {
				ref.Put(k, k*2)
			}
		} else {
			_, in := ref.Get(k)
			if got := M.Delete(k); got != in {
				t.Fatalf("delete %d returned %t, want %t", k, got, in)
			}
			ref.Remove(k)
		}
		if M.Size() != uint(ref.Size()) {
			t.Fatalf("size is %d, want %d", M.Size(), ref.Size())
		}
	}
	ks := keysOf(t, M.Keys())
	want := ref.Keys()
	if len(ks) != len(want) {
		t.Fatalf("got %d keys, want %d", len(ks), len(want))
	}
	for i, k := range ks {
		if want[i].(int) != k {
			t.Errorf("key %d is %d, want %d", i, k, want[i])
		}
		if v, ok := M.GetValue(k); !ok || v != k*2 {
			t.Errorf("value of %d is %d,%t", k, v, ok)
		}
	}
	if s := M.Stats(); s.Entries != M.Size() {
		t.Errorf("stats count %d entries, want %d", s.Entries, M.Size())
	}
}
