package Maps

import (
	"cmp"
	"errors"
	"testing"
)

func TestKeyIterator_All(t *testing.T) {
	it := NewKeyIterator([]string{"c", "a", "b"}, cmp.Compare[string])
	if it.Len() != 3 {
		t.Errorf("len is %d", it.Len())
	}
	for _, want := range []string{"a", "b", "c"} {
		if !it.HasNext() {
			t.Fatal("iterator ended early")
		}
		if k, e := it.Next(); e != nil || k != want {
			t.Errorf("got %q,%v, want %q", k, e, want)
		}
	}
	var ee *ExhaustedError
	if _, e := it.Next(); !errors.As(e, &ee) {
		t.Errorf("got %v, want ExhaustedError", e)
	}
}

func TestValueIterator_Lookup(t *testing.T) {
	live := map[int]string{1: "one", 3: "three"}
	it := NewValueIterator(NewKeyIterator([]int{3, 2, 1}, cmp.Compare[int]), func(k int) (string, bool) {
		v, ok := live[k]
		return v, ok
	})
	want := []struct {
		v  string
		ok bool
	}{{"one", true}, {"", false}, {"three", true}}
	for _, w := range want {
		v, ok, e := it.Next()
		if e != nil || v != w.v || ok != w.ok {
			t.Errorf("got %q,%t,%v, want %q,%t", v, ok, e, w.v, w.ok)
		}
	}
	if it.HasNext() {
		t.Error("iterator isn't exhausted")
	}
	var ee *ExhaustedError
	if _, _, e := it.Next(); !errors.As(e, &ee) {
		t.Errorf("got %v, want ExhaustedError", e)
	}
}
