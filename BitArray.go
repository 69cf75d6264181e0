package Go_Containers

import (
	"math/bits"
)

// NewBitArray with room for at least size bits, all cleared.
func NewBitArray(size uint) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed length set of bits. The zero value has length 0.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() uint {
	return uint(len(u.bits)) * bits.UintSize
}

func (u BitArray) Get(i uint) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Set(i uint) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Clr(i uint) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Reset clears all bits.
func (u BitArray) Reset() {
	clear(u.bits)
}

// First set bit, or -1 if there is none.
func (u BitArray) First() int {
	return u.Next(0)
}

// Next set bit at or after i, or -1 if there is none.
func (u BitArray) Next(i uint) int {
	w := i / bits.UintSize
	if w >= uint(len(u.bits)) {
		return -1
	}
	if b := u.bits[w] >> (i % bits.UintSize); b != 0 {
		return int(i) + bits.TrailingZeros(b)
	}
	for w++; w < uint(len(u.bits)); w++ {
		if u.bits[w] != 0 {
			return int(w*bits.UintSize) + bits.TrailingZeros(u.bits[w])
		}
	}
	return -1
}

// Count of set bits.
func (u BitArray) Count() uint {
	var n int
	for _, b := range u.bits {
		n += bits.OnesCount(b)
	}
	return uint(n)
}
