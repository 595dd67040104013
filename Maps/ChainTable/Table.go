/*
Package ChainTable implements a fixed capacity hash table with separate chaining, keyed by byte
slices of any content and length>0.

The bucket count is chosen once, rounded to the nearest power of two, and never changes: the
table doesn't resize, so chains grow linearly once the number of entries passes the bucket
count. Pick the capacity for the expected size.

Table itself isn't safe for concurrent use. Locked guards one Table with a lock, Sharded spreads
keys over independently locked Tables.
*/
package ChainTable

import (
	"bytes"

	"github.com/g-m-twostay/go-chaintable/Maps/internal"
)

// MaxBuckets is the largest capacity a table accepts.
const MaxBuckets uint32 = 1 << 28

// HashFunc maps a key to 32 bits. It must be deterministic and accept any key.
type HashFunc func(key []byte) uint32

type Table[V any] struct {
	buckets []chain[V] //nil once destroyed.
	mask    uint32
	size    uint
	hashF   HashFunc
	policy  Policy[V]
}

// New makes an empty table of requested buckets rounded to the nearest power of two, ties
// rounding up. policy may be nil, in which case values are stored and returned as they are.
func New[V any](requested uint32, hashF HashFunc, policy Policy[V]) (*Table[V], error) {
	if requested < 1 || requested > MaxBuckets {
		return nil, capacityError(requested)
	}
	if hashF == nil {
		return nil, ErrNoHash
	}
	n := internal.NearestPow2(requested)
	return &Table[V]{buckets: make([]chain[V], n), mask: n - 1, hashF: hashF, policy: policy}, nil
}

func (u *Table[V]) valid() bool {
	return u != nil && u.buckets != nil
}

func (u *Table[V]) bucket(hash uint32) *chain[V] {
	return &u.buckets[internal.Mask(hash, u.mask)]
}

func (u *Table[V]) check(key []byte) error {
	if !u.valid() {
		return ErrInvalid
	}
	if len(key) == 0 {
		return ErrEmptyKey
	}
	return nil
}

// Insert adds key with v. It fails with ErrDuplicate if key is already present, leaving the
// table untouched and v with the caller. The key is copied.
func (u *Table[V]) Insert(key []byte, v V) error {
	if err := u.check(key); err != nil {
		return err
	}
	return u.insert(key, u.hashF(key), v)
}

func (u *Table[V]) insert(key []byte, hash uint32, v V) error {
	c := u.bucket(hash)
	if c.search(key) >= 0 {
		return ErrDuplicate
	}
	if u.policy != nil {
		v = u.policy.Clone(v)
	}
	*c = append(*c, entry[V]{bytes.Clone(key), v})
	u.size++
	return nil
}

// Add is Insert reporting only whether it succeeded.
func (u *Table[V]) Add(key []byte, v V) bool {
	return u.Insert(key, v) == nil
}

// Get returns the stored value, which is the table's own copy when a Policy is set.
func (u *Table[V]) Get(key []byte) (v V, ok bool) {
	if u.check(key) != nil {
		return
	}
	return u.lookup(key, u.hashF(key))
}

func (u *Table[V]) lookup(key []byte, hash uint32) (v V, ok bool) {
	c := *u.bucket(hash)
	if i := c.search(key); i >= 0 {
		v, ok = c[i].val, true
	}
	return
}

func (u *Table[V]) Has(key []byte) bool {
	_, ok := u.Get(key)
	return ok
}

// Delete removes key and releases its value. It fails with ErrNotFound if key isn't present.
func (u *Table[V]) Delete(key []byte) error {
	if err := u.check(key); err != nil {
		return err
	}
	return u.delete(key, u.hashF(key))
}

func (u *Table[V]) delete(key []byte, hash uint32) error {
	c := u.bucket(hash)
	i := c.search(key)
	if i < 0 {
		return ErrNotFound
	}
	e := c.unlink(i)
	u.size--
	if u.policy != nil {
		u.policy.Release(e.val)
	}
	return nil
}

// Remove is Delete reporting only whether it succeeded.
func (u *Table[V]) Remove(key []byte) bool {
	return u.Delete(key) == nil
}

// Apply calls f on every stored value, bucket by bucket and oldest first inside a bucket. f
// must not modify the table.
func (u *Table[V]) Apply(f func(V)) {
	if !u.valid() || f == nil {
		return
	}
	for _, c := range u.buckets {
		for i := range c {
			f(c[i].val)
		}
	}
}

// Range is Apply with keys that stops once yield returns false. The key passed to yield is
// the table's copy; don't modify or retain it.
func (u *Table[V]) Range(yield func(key []byte, v V) bool) {
	if !u.valid() || yield == nil {
		return
	}
	for _, c := range u.buckets {
		for i := range c {
			if !yield(c[i].key, c[i].val) {
				return
			}
		}
	}
}

// Size is the number of entries.
func (u *Table[V]) Size() uint {
	if !u.valid() {
		return 0
	}
	return u.size
}

// Buckets is the effective bucket count, 0 for a destroyed table.
func (u *Table[V]) Buckets() uint32 {
	if !u.valid() {
		return 0
	}
	return u.mask + 1
}

// Owned tells whether values are cloned and released by a Policy.
func (u *Table[V]) Owned() bool {
	return u != nil && u.policy != nil
}

// Destroy releases every value, oldest first in each bucket, and empties the table for good.
// Every later call on it behaves as on a nil table.
func (u *Table[V]) Destroy() {
	if !u.valid() {
		return
	}
	buckets := u.buckets
	u.buckets, u.size = nil, 0
	if u.policy != nil {
		for _, c := range buckets {
			for i := range c {
				u.policy.Release(c[i].val)
			}
		}
	}
}

// Stats describes how entries spread over the buckets.
type Stats struct {
	Buckets, Used, Entries, Longest uint
}

// LoadFactor is the average chain length.
func (s Stats) LoadFactor() float64 {
	if s.Buckets == 0 {
		return 0
	}
	return float64(s.Entries) / float64(s.Buckets)
}

func (s *Stats) add(o Stats) {
	s.Buckets += o.Buckets
	s.Used += o.Used
	s.Entries += o.Entries
	s.Longest = max(s.Longest, o.Longest)
}

func (u *Table[V]) Stats() (s Stats) {
	if !u.valid() {
		return
	}
	s.Buckets, s.Entries = uint(len(u.buckets)), u.size
	for _, c := range u.buckets {
		if l := uint(len(c)); l > 0 {
			s.Used++
			s.Longest = max(s.Longest, l)
		}
	}
	return
}
