package hashfunc

import (
	"hash/crc32"

	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
)

// HashFunc - Maps a key to a non-negative integer. The map reduces the value modulo its capacity to
// select a bucket, so the only requirement is that the same key always produces the same value for the
// lifetime of a map. Quality of the distribution affects performance, not correctness.
type HashFunc func(key string) uint64

// HashFunction1 - Sum of the character codes of the key
func HashFunction1(key string) uint64 {
	var hash uint64
	for _, letter := range key {
		hash += uint64(letter)
	}
	return hash
}

// HashFunction2 - Sum of the character codes of the key weighted by their position (starting at 1)
func HashFunction2(key string) uint64 {
	var hash uint64
	var index uint64
	for _, letter := range key {
		hash += (index + 1) * uint64(letter)
		index++
	}
	return hash
}

// CRC32 - Hashes the key using crc32.ChecksumIEEE, this is the default used when no HashFunc is given
func CRC32(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}

// XXHash - Hashes the key using 64-bit xxHash
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// NewMapHash - Returns a HashFunc backed by the runtime map hash. The seed is random per returned function,
// hence values differ between two functions (and between processes) but are stable for each function.
func NewMapHash() HashFunc {
	hasher := maphash.NewHasher[string]()
	return hasher.Hash
}
