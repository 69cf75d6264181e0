package Maps

// Dictionary is a key/value store with unique keys ordered by a total ordering.
// Both keys and values are compared through that ordering: two keys are the same key iff they compare 0.
// Implementations here aren't thread-safe; guard them with a lock when shared.
type Dictionary[K, V any] interface {
	//Contains reports whether some entry has a key equal to k.
	Contains(k K) bool
	//Add the pair k/v. Returns false if the dictionary is full or k is already present, in which case nothing changes.
	Add(k K, v V) bool
	//Delete the entry with key k. Returns true if an entry was removed.
	Delete(k K) bool
	//GetValue of key k. The bool is false if k isn't present.
	GetValue(k K) (V, bool)
	//GetKey of some entry whose value equals v. Which key is returned when several entries share v is unspecified.
	GetKey(v V) (K, bool)
	Size() uint
	IsEmpty() bool
	IsFull() bool
	//Clear all entries.
	Clear()
	//Keys in ascending order, from a snapshot taken at the time of the call.
	Keys() *KeyIterator[K]
	//Values in ascending key order; each value is looked up again when reached.
	Values() *ValueIterator[K, V]
}
