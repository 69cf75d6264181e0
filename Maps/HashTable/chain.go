package HashTable

// entry is a key/value pair. It's only ever stored in a slot of the arena and copied out.
type entry[K, V any] struct {
	k K
	v V
}

// slot in the arena. next links either the next entry of the same chain or the next free slot.
type slot[K, V any] struct {
	entry[K, V]
	next uint
}

// arena holds every entry of a table. Index 0 is a sentinel that means nil; slots[1:] are handed out to chains.
// Since a table never holds more than its capacity, the arena never grows.
type arena[K, V any] struct {
	slots []slot[K, V]
	free  uint // beginning of the free list.
	used  uint // slots[1:used+1] have been handed out at least once.
}

func newArena[K, V any](n uint) arena[K, V] {
	return arena[K, V]{slots: make([]slot[K, V], n+1)}
}

// alloc a slot for e, reusing freed slots first.
func (u *arena[K, V]) alloc(e entry[K, V]) uint {
	i := u.free
	if i != 0 {
		u.free = u.slots[i].next
	} else {
		u.used++
		i = u.used
	}
	u.slots[i] = slot[K, V]{entry: e}
	return i
}

// release slot i to the free list and drop its references.
func (u *arena[K, V]) release(i uint) {
	u.slots[i] = slot[K, V]{next: u.free}
	u.free = i
}

// reset the arena to the state of newArena. O(used).
func (u *arena[K, V]) reset() {
	clear(u.slots[:u.used+1])
	u.free, u.used = 0, 0
}

// chain is a singly linked list of slots; the most recently added entry is at head.
type chain[K, V any] struct {
	head, sz uint
}

func (u *chain[K, V]) size() uint {
	return u.sz
}

// addFirst links a new entry before head.
func (u *chain[K, V]) addFirst(a *arena[K, V], e entry[K, V]) {
	i := a.alloc(e)
	a.slots[i].next = u.head
	u.head = i
	u.sz++
}

// find the first entry whose key compares 0 with k. Returns nil if there's none.
func (u *chain[K, V]) find(a *arena[K, V], k K, cmp func(K, K) int) *entry[K, V] {
	for cur := u.head; cur != 0; cur = a.slots[cur].next {
		if cmp(k, a.slots[cur].k) == 0 {
			return &a.slots[cur].entry
		}
	}
	return nil
}

func (u *chain[K, V]) contains(a *arena[K, V], k K, cmp func(K, K) int) bool {
	return u.find(a, k, cmp) != nil
}

// removeFirst entry whose key compares 0 with k. Returns true if one was removed.
func (u *chain[K, V]) removeFirst(a *arena[K, V], k K, cmp func(K, K) int) bool {
	for prev, cur := &u.head, u.head; cur != 0; prev, cur = &a.slots[cur].next, a.slots[cur].next {
		if cmp(k, a.slots[cur].k) == 0 {
			*prev = a.slots[cur].next
			a.release(cur)
			u.sz--
			return true
		}
	}
	return false
}

// each entry from head to tail until f returns false. f mustn't modify the chain.
func (u *chain[K, V]) each(a *arena[K, V], f func(*entry[K, V]) bool) {
	for cur := u.head; cur != 0; cur = a.slots[cur].next {
		if !f(&a.slots[cur].entry) {
			return
		}
	}
}

// reset to an empty chain without touching the arena.
func (u *chain[K, V]) reset() {
	u.head, u.sz = 0, 0
}
