package ChainTable

import "sync"

// Locked is a Table behind one RWMutex. Lookups share the lock, changes take it exclusively.
// Callbacks given to Apply and Range run under the read lock and must not change the table.
type Locked[V any] struct {
	mu sync.RWMutex
	t  *Table[V]
}

func NewLocked[V any](requested uint32, hashF HashFunc, policy Policy[V]) (*Locked[V], error) {
	t, err := New[V](requested, hashF, policy)
	if err != nil {
		return nil, err
	}
	return &Locked[V]{t: t}, nil
}

func (u *Locked[V]) Insert(key []byte, v V) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Insert(key, v)
}

func (u *Locked[V]) Add(key []byte, v V) bool {
	return u.Insert(key, v) == nil
}

func (u *Locked[V]) Get(key []byte) (V, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Get(key)
}

func (u *Locked[V]) Has(key []byte) bool {
	_, ok := u.Get(key)
	return ok
}

func (u *Locked[V]) Delete(key []byte) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Delete(key)
}

func (u *Locked[V]) Remove(key []byte) bool {
	return u.Delete(key) == nil
}

func (u *Locked[V]) Apply(f func(V)) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	u.t.Apply(f)
}

func (u *Locked[V]) Range(yield func([]byte, V) bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	u.t.Range(yield)
}

func (u *Locked[V]) Size() uint {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Size()
}

func (u *Locked[V]) Stats() Stats {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Stats()
}

func (u *Locked[V]) Destroy() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.t.Destroy()
}
