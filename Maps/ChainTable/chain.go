package ChainTable

import (
	"bytes"
	"slices"
)

// entry owns a copy of its key.
type entry[V any] struct {
	key []byte
	val V
}

// chain holds the entries of one bucket, oldest first.
type chain[V any] []entry[V]

// search gives the position of key in the chain or -1. Keys of different lengths never match.
func (c chain[V]) search(key []byte) int {
	for i := range c {
		if bytes.Equal(c[i].key, key) {
			return i
		}
	}
	return -1
}

// unlink removes the i-th entry and keeps the order of the rest.
func (c *chain[V]) unlink(i int) entry[V] {
	e := (*c)[i]
	if len(*c) == 1 {
		*c = nil //let the backing array go with the last entry.
	} else {
		*c = slices.Delete(*c, i, i+1)
	}
	return e
}
