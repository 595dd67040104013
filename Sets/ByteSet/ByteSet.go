// Package ByteSet is a set of byte strings on top of a table from Maps.
package ByteSet

import (
	"github.com/g-m-twostay/go-chaintable/Maps"
	"github.com/g-m-twostay/go-chaintable/Maps/ChainTable"
)

type ByteSet struct {
	t Maps.Table[struct{}]
}

// New makes a set backed by a ChainTable.Table of requested buckets.
func New(requested uint32, hashF ChainTable.HashFunc) (*ByteSet, error) {
	t, err := ChainTable.New[struct{}](requested, hashF, nil)
	if err != nil {
		return nil, err
	}
	return &ByteSet{t}, nil
}

// From makes a set on an existing table, for example a ChainTable.Sharded one for concurrent
// use. The table's values are ignored.
func From(t Maps.Table[struct{}]) *ByteSet {
	return &ByteSet{t}
}

// Put adds e and tells whether it wasn't there yet. Empty elements are never added.
func (u *ByteSet) Put(e []byte) bool {
	return u.t.Add(e, struct{}{})
}

func (u *ByteSet) Has(e []byte) bool {
	return u.t.Has(e)
}

func (u *ByteSet) Remove(e []byte) bool {
	return u.t.Remove(e)
}

func (u *ByteSet) Size() uint {
	return u.t.Size()
}

// Take gives a copy of the first element in the table's order, nil if the set is empty.
func (u *ByteSet) Take() (e []byte) {
	u.t.Range(func(k []byte, _ struct{}) bool {
		e = append([]byte(nil), k...)
		return false
	})
	return
}

// Range calls f on every element until it returns false. f must not change the set or keep
// the slice.
func (u *ByteSet) Range(f func([]byte) bool) {
	u.t.Range(func(k []byte, _ struct{}) bool {
		return f(k)
	})
}
