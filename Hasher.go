package Go_Containers

import (
	"fmt"
	"math"
	"math/bits"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

const (
	mix1 uint64 = 0xbf58476d1ce4e5b9
	mix2 uint64 = 0x94d049bb133111eb
)

// Hasher is a hash seed. Two Hashers with the same value produce the same hashes, so a zero Hasher gives reproducible bucket layouts. The receivers are pure functions and are safe to call from multiple goroutines.
type Hasher uint

// HashBytes hashes the given byte slice with xxhash.
func (u Hasher) HashBytes(b []byte) uint {
	d := xxhash.NewWithSeed(uint64(u))
	_, _ = d.Write(b)
	return uint(d.Sum64())
}

// HashString directly hashes a string, it avoids the conversion to []byte.
func (u Hasher) HashString(v string) uint {
	d := xxhash.NewWithSeed(uint64(u))
	_, _ = d.WriteString(v)
	return uint(d.Sum64())
}

// HashUint64 scrambles v with the seed using the splitmix64 finalizer.
func (u Hasher) HashUint64(v uint64) uint {
	v ^= bits.RotateLeft64(uint64(u), 29)
	v = (v ^ (v >> 30)) * mix1
	v = (v ^ (v >> 27)) * mix2
	return uint(v ^ (v >> 31))
}

// HashInt hashes v.
func (u Hasher) HashInt(v int) uint {
	return u.HashUint64(uint64(v))
}

// HashFloat hashes v so that values comparing equal under cmp.Compare hash equally: -0 and +0 collide, and so do all NaNs.
func (u Hasher) HashFloat(v float64) uint {
	if v == 0 {
		v = 0
	} else if math.IsNaN(v) {
		v = math.NaN()
	}
	return u.HashUint64(math.Float64bits(v))
}

// HashAny hashes the printed form of v. It's slow and only meant as a fallback.
func (u Hasher) HashAny(v any) uint {
	return u.HashString(fmt.Sprintf("%T:%v", v, v))
}

// HashOrdered returns a hash function for any ordered type seeded by u. Builtin types take a fast path; named types fall back to reflection on their underlying kind. Hashes agree with cmp.Compare: equal keys always hash equally.
func HashOrdered[K constraints.Ordered](u Hasher) func(K) uint {
	return func(k K) uint {
		switch x := any(k).(type) {
		case string:
			return u.HashString(x)
		case int:
			return u.HashInt(x)
		case int64:
			return u.HashUint64(uint64(x))
		case int32:
			return u.HashUint64(uint64(x))
		case int16:
			return u.HashUint64(uint64(x))
		case int8:
			return u.HashUint64(uint64(x))
		case uint:
			return u.HashUint64(uint64(x))
		case uint64:
			return u.HashUint64(x)
		case uint32:
			return u.HashUint64(uint64(x))
		case uint16:
			return u.HashUint64(uint64(x))
		case uint8:
			return u.HashUint64(uint64(x))
		case uintptr:
			return u.HashUint64(uint64(x))
		case float64:
			return u.HashFloat(x)
		case float32:
			return u.HashFloat(float64(x))
		}
		switch rv := reflect.ValueOf(k); rv.Kind() {
		case reflect.String:
			return u.HashString(rv.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return u.HashUint64(uint64(rv.Int()))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return u.HashUint64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			return u.HashFloat(rv.Float())
		default:
			return u.HashAny(k)
		}
	}
}
