package internal

import "math/bits"

//These are internal helpers shared by the table flavours.

// NearestPow2 rounds n>0 to the power of two closest to it. A tie rounds up, so 6 becomes 8
// while 5 becomes 4. The result for n>1<<31 would not fit and is capped at 1<<31.
func NearestPow2(n uint32) uint32 {
	shift := byte(bits.Len32(n) - 1) //2^shift <= n
	low := uint64(1) << shift
	if high := low << 1; high-uint64(n) <= uint64(n)-low && high <= 1<<31 {
		return uint32(high)
	}
	return uint32(low)
}

// Log2 of a power of two.
func Log2(pow2 uint32) byte {
	return byte(bits.TrailingZeros32(pow2))
}

// Mask reduces hash to a slot of a power of two sized array whose mask is len-1.
func Mask(hash, mask uint32) uint32 {
	return hash & mask
}

// High gives the highest n bits of hash. n==0 always gives 0.
func High(hash uint32, n byte) uint32 {
	return uint32(uint64(hash) >> (32 - n))
}
