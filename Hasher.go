package Go_ChainTable

import (
	_ "runtime"
	"unsafe"
)

//go:linkname rtHash runtime.memhash
//go:noescape
func rtHash(ptr unsafe.Pointer, seed uint, len uintptr) uint

//go:linkname rtHash64 runtime.memhash64
//go:noescape
func rtHash64(ptr unsafe.Pointer, seed uint) uint

//go:linkname rtHash32 runtime.memhash32
//go:noescape
func rtHash32(ptr unsafe.Pointer, seed uint) uint

// Hasher is a seed for the runtime's memory hash, the one the built-in map uses. Create it
// with Hasher(maphash.MakeSeed()) or any fixed value. Unlike Bob the output depends on the
// platform, so never persist anything derived from it.
type Hasher uint

// HashMem hashes the memory contents in the range [addr, addr+size) as bytes.
func (u Hasher) HashMem(addr unsafe.Pointer, size uintptr) uint {
	if size == 4 {
		return rtHash32(addr, uint(u))
	} else if size == 8 {
		return rtHash64(addr, uint(u))
	}
	return rtHash(addr, uint(u), size)
}

// HashBytes hashes the given byte slice. An empty slice is valid.
func (u Hasher) HashBytes(b []byte) uint {
	return u.HashMem(unsafe.Pointer(unsafe.SliceData(b)), uintptr(len(b)))
}

// Hash32 folds HashBytes to 32 bits, so a Hasher's method value can be given to a table.
func (u Hasher) Hash32(b []byte) uint32 {
	h := uint64(u.HashBytes(b))
	return uint32(h) ^ uint32(h>>32)
}
