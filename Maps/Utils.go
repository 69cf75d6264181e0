package Maps

import "math"

const MaxArrayLen uint = math.MaxInt

// Mask hash to ignore the first bit, so the result fits in a non-negative int.
func Mask(hash uint) uint {
	return hash & MaxArrayLen
}

// Index of the bucket for hash in a table of n buckets. n must be positive.
func Index(hash, n uint) uint {
	return Mask(hash) % n
}
