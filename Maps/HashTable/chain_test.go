package HashTable

import (
	"cmp"
	"testing"
)

func chainKeys(c *chain[int, string], a *arena[int, string]) []int {
	var ks []int
	c.each(a, func(e *entry[int, string]) bool {
		ks = append(ks, e.k)
		return true
	})
	return ks
}

func TestChain_All(t *testing.T) {
	a := newArena[int, string](8)
	c := chain[int, string]{}
	for i := 0; i < 4; i++ {
		c.addFirst(&a, entry[int, string]{i, "v"})
	}
	if ks := chainKeys(&c, &a); len(ks) != 4 || ks[0] != 3 || ks[3] != 0 {
		t.Errorf("chain order is %v", ks)
	}
	if !c.contains(&a, 2, cmp.Compare[int]) {
		t.Error("wrong contains 1")
	}
	if c.find(&a, 9, cmp.Compare[int]) != nil {
		t.Error("found absent key")
	}
	if !c.removeFirst(&a, 2, cmp.Compare[int]) {
		t.Error("wrong remove 1")
	}
	if c.removeFirst(&a, 2, cmp.Compare[int]) {
		t.Error("wrong remove 2")
	}
	if c.contains(&a, 2, cmp.Compare[int]) {
		t.Error("wrong contains 2")
	}
	if c.size() != 3 {
		t.Errorf("size is %d, want 3", c.size())
	}
	if ks := chainKeys(&c, &a); len(ks) != 3 || ks[0] != 3 || ks[1] != 1 || ks[2] != 0 {
		t.Errorf("chain order is %v", ks)
	}
}

func TestArena_Reuse(t *testing.T) {
	a := newArena[int, string](2)
	c := chain[int, string]{}
	c.addFirst(&a, entry[int, string]{1, "a"})
	c.addFirst(&a, entry[int, string]{2, "b"})
	if a.used != 2 {
		t.Fatalf("used is %d, want 2", a.used)
	}
	c.removeFirst(&a, 1, cmp.Compare[int])
	if a.free == 0 || a.slots[a.free].v != "" {
		t.Error("released slot keeps its value")
	}
	c.addFirst(&a, entry[int, string]{3, "c"})
	if a.used != 2 || a.free != 0 {
		t.Errorf("freed slot isn't reused: used %d, free %d", a.used, a.free)
	}
	if e := c.find(&a, 3, cmp.Compare[int]); e == nil || e.v != "c" {
		t.Error("lost 3")
	}
	a.reset()
	c.reset()
	if a.used != 0 || a.free != 0 || a.slots[1].k != 0 {
		t.Error("reset left entries behind")
	}
}
