package pools

import "sync"

// Uint64SetPool pools map[uint64]struct{} used as dedup sets in
// TimeIndex/TAdjSet window scans and BOTH-direction degree counting.
type Uint64SetPool struct {
	pool sync.Pool
}

// NewUint64SetPool builds an empty Uint64SetPool.
func NewUint64SetPool() *Uint64SetPool {
	return &Uint64SetPool{
		pool: sync.Pool{New: func() any { return make(map[uint64]struct{}, 8) }},
	}
}

// Get returns a cleared set from the pool.
func (p *Uint64SetPool) Get() map[uint64]struct{} {
	m, ok := p.pool.Get().(map[uint64]struct{})
	if !ok {
		return make(map[uint64]struct{}, 8)
	}
	clear(m)
	return m
}

// Put returns m to the pool; very large sets are dropped rather than pooled.
func (p *Uint64SetPool) Put(m map[uint64]struct{}) {
	if m == nil || len(m) > 1000 {
		return
	}
	p.pool.Put(m)
}

var defaultUint64SetPool = NewUint64SetPool()

// GetUint64Set returns a dedup set from the package default pool.
func GetUint64Set() map[uint64]struct{} { return defaultUint64SetPool.Get() }

// PutUint64Set returns a dedup set to the package default pool.
func PutUint64Set(m map[uint64]struct{}) { defaultUint64SetPool.Put(m) }
