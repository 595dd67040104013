package Go_ChainTable

import "github.com/cespare/xxhash/v2"

const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619
)

// XX is xxHash64 folded to 32 bits.
func XX(key []byte) uint32 {
	h := xxhash.Sum64(key)
	return uint32(h) ^ uint32(h>>32)
}

// FNV1a is the 32-bit FNV-1a hash. It is cheap but mixes poorly in the low bits for short
// keys, which is what tables index by.
func FNV1a(key []byte) uint32 {
	h := fnvOffset32
	for _, b := range key {
		h ^= uint32(b)
		h *= fnvPrime32
	}
	return h
}
