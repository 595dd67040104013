package ChainTable

import (
	"sync"

	"github.com/g-m-twostay/go-chaintable/Maps/internal"
	"github.com/pkg/errors"
)

// MaxShards is the largest shard count NewSharded accepts.
const MaxShards uint32 = 1 << 16

type shard[V any] struct {
	sync.RWMutex
	t *Table[V]
}

// Sharded spreads keys over independent Tables, each with its own lock, so operations on
// different shards don't wait for each other. A key is hashed once: its highest bits pick the
// shard and its lowest bits the bucket inside that shard.
type Sharded[V any] struct {
	shards []shard[V]
	bits   byte //len(shards)==1<<bits
	hashF  HashFunc
}

// NewSharded makes shards tables (rounded like New rounds buckets) of perShard buckets each.
func NewSharded[V any](shards, perShard uint32, hashF HashFunc, policy Policy[V]) (*Sharded[V], error) {
	if shards < 1 || shards > MaxShards {
		return nil, errors.Wrapf(ErrCapacity, "%d shards, allowed [1, %d]", shards, MaxShards)
	}
	n := internal.NearestPow2(shards)
	s := &Sharded[V]{shards: make([]shard[V], n), bits: internal.Log2(n), hashF: hashF}
	for i := range s.shards {
		t, err := New[V](perShard, hashF, policy)
		if err != nil {
			return nil, err
		}
		s.shards[i].t = t
	}
	return s, nil
}

// Shards is the effective shard count.
func (u *Sharded[V]) Shards() uint32 {
	return uint32(len(u.shards))
}

func (u *Sharded[V]) route(key []byte) (*shard[V], uint32, error) {
	if len(key) == 0 {
		return nil, 0, ErrEmptyKey
	}
	hash := u.hashF(key)
	return &u.shards[internal.High(hash, u.bits)], hash, nil
}

func (u *Sharded[V]) Insert(key []byte, v V) error {
	s, hash, err := u.route(key)
	if err != nil {
		return err
	}
	s.Lock()
	defer s.Unlock()
	if !s.t.valid() {
		return ErrInvalid
	}
	return s.t.insert(key, hash, v)
}

func (u *Sharded[V]) Add(key []byte, v V) bool {
	return u.Insert(key, v) == nil
}

func (u *Sharded[V]) Get(key []byte) (v V, ok bool) {
	s, hash, err := u.route(key)
	if err != nil {
		return
	}
	s.RLock()
	defer s.RUnlock()
	if !s.t.valid() {
		return
	}
	return s.t.lookup(key, hash)
}

func (u *Sharded[V]) Has(key []byte) bool {
	_, ok := u.Get(key)
	return ok
}

func (u *Sharded[V]) Delete(key []byte) error {
	s, hash, err := u.route(key)
	if err != nil {
		return err
	}
	s.Lock()
	defer s.Unlock()
	if !s.t.valid() {
		return ErrInvalid
	}
	return s.t.delete(key, hash)
}

func (u *Sharded[V]) Remove(key []byte) bool {
	return u.Delete(key) == nil
}

// Apply visits the shards in order, holding one shard's read lock at a time, so it isn't a
// snapshot of the whole table when other goroutines write meanwhile.
func (u *Sharded[V]) Apply(f func(V)) {
	for i := range u.shards {
		s := &u.shards[i]
		s.RLock()
		s.t.Apply(f)
		s.RUnlock()
	}
}

// Range is Apply with keys and early stop.
func (u *Sharded[V]) Range(yield func([]byte, V) bool) {
	if yield == nil {
		return
	}
	for i := range u.shards {
		s, more := &u.shards[i], true
		s.RLock()
		s.t.Range(func(k []byte, v V) bool {
			more = yield(k, v)
			return more
		})
		s.RUnlock()
		if !more {
			return
		}
	}
}

func (u *Sharded[V]) Size() (n uint) {
	for i := range u.shards {
		s := &u.shards[i]
		s.RLock()
		n += s.t.Size()
		s.RUnlock()
	}
	return
}

// Stats sums the shards; Longest is the longest chain of any shard.
func (u *Sharded[V]) Stats() (st Stats) {
	for i := range u.shards {
		s := &u.shards[i]
		s.RLock()
		st.add(s.t.Stats())
		s.RUnlock()
	}
	return
}

func (u *Sharded[V]) Destroy() {
	for i := range u.shards {
		s := &u.shards[i]
		s.Lock()
		s.t.Destroy()
		s.Unlock()
	}
}
