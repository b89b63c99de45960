package hashmap

import (
	"bytes"
	"hash/maphash"
	"math/rand/v2"

	"github.com/zeebo/xxh3"
	"jsouthworth.net/go/maptrait"
)

// Hasher hashes and compares the borrowed views a map is indexed by.
// Views that are Equal must have the same Hash.
type Hasher[Q any] interface {
	Hash(view Q) uint64
	Equal(a, b Q) bool
}

// HasherXXH3 hashes string views with XXH3. The zero value uses
// seed 0.
type HasherXXH3 struct {
	Seed uint64
}

// Hash hashes s to a 64-bit hash value.
func (h HasherXXH3) Hash(s string) uint64 {
	return xxh3.HashStringSeed(s, h.Seed)
}

func (h HasherXXH3) Equal(a, b string) bool {
	return a == b
}

// BytesHasherXXH3 hashes byte slice views with XXH3.
type BytesHasherXXH3 struct {
	Seed uint64
}

// Hash hashes b to a 64-bit hash value.
func (h BytesHasherXXH3) Hash(b []byte) uint64 {
	return xxh3.HashSeed(b, h.Seed)
}

func (h BytesHasherXXH3) Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Hashable may be implemented by view types that hash themselves.
// Values that are Equal must return the same Hash.
type Hashable[Q any] interface {
	maptrait.Equaler[Q]
	Hash() uint64
}

// methodHasher defers to the Hash and Equal methods of a Hashable
// view.
type methodHasher[Q comparable] struct{}

func (methodHasher[Q]) Hash(view Q) uint64 {
	return any(view).(Hashable[Q]).Hash()
}

func (methodHasher[Q]) Equal(a, b Q) bool {
	return maptrait.Equal(a, b)
}

type comparableHasher[Q comparable] struct {
	seed maphash.Seed
}

func (h comparableHasher[Q]) Hash(view Q) uint64 {
	return maphash.Comparable(h.seed, view)
}

func (h comparableHasher[Q]) Equal(a, b Q) bool {
	return a == b
}

// StringHasher returns an XXH3 string hasher with a random seed.
func StringHasher() Hasher[string] {
	return HasherXXH3{Seed: rand.Uint64()}
}

// BytesHasher returns an XXH3 byte slice hasher with a random seed.
func BytesHasher() Hasher[[]byte] {
	return BytesHasherXXH3{Seed: rand.Uint64()}
}

// DefaultHasher returns the hasher used by New. Hashable types use
// their own methods, strings are hashed with XXH3 and every other
// comparable type with maphash.Comparable. Each call picks a new
// random seed.
func DefaultHasher[Q comparable]() Hasher[Q] {
	var zero Q
	switch any(zero).(type) {
	case Hashable[Q]:
		return methodHasher[Q]{}
	case string:
		return any(StringHasher()).(Hasher[Q])
	}
	return comparableHasher[Q]{seed: maphash.MakeSeed()}
}
