// Package Maps holds what the table flavours in its sub packages have in common.
package Maps

// Table maps byte keys of length>0 to values of type V. A key is present at most once; Add and
// Insert never overwrite.
type Table[V any] interface {
	Add([]byte, V) bool
	Insert([]byte, V) error
	Get([]byte) (V, bool)
	Has([]byte) bool
	Remove([]byte) bool
	Delete([]byte) error
	Apply(func(V))
	Range(func([]byte, V) bool)
	Size() uint
	Destroy()
}
