package storage

import "sort"

// cellState is the tagged progression a TCell moves through as entries
// accumulate: Empty -> One -> Many. The One stage matters because most
// static-like attributes are written exactly once.
type cellState uint8

const (
	cellEmpty cellState = iota
	cellOne
	cellMany
)

// timedValue pairs a timestamp with a value inside the Many representation.
type timedValue[V any] struct {
	t int64
	v V
}

// TCell is a time-ordered, deduplicated-by-timestamp history of a single
// scalar value: component C1. Duplicate writes at the same t coalesce,
// last write wins. There is no out-of-order restriction on t.
type TCell[V any] struct {
	state cellState
	t0    int64
	v0    V
	many  []timedValue[V] // sorted ascending by t, unique t; valid iff state==cellMany
}

// Set inserts or overwrites the value at time t.
func (c *TCell[V]) Set(t int64, v V) {
	switch c.state {
	case cellEmpty:
		c.state = cellOne
		c.t0, c.v0 = t, v
	case cellOne:
		if t == c.t0 {
			c.v0 = v
			return
		}
		c.many = make([]timedValue[V], 2)
		if t < c.t0 {
			c.many[0] = timedValue[V]{t, v}
			c.many[1] = timedValue[V]{c.t0, c.v0}
		} else {
			c.many[0] = timedValue[V]{c.t0, c.v0}
			c.many[1] = timedValue[V]{t, v}
		}
		c.state = cellMany
	case cellMany:
		i := sort.Search(len(c.many), func(i int) bool { return c.many[i].t >= t })
		if i < len(c.many) && c.many[i].t == t {
			c.many[i].v = v
			return
		}
		c.many = append(c.many, timedValue[V]{})
		copy(c.many[i+1:], c.many[i:])
		c.many[i] = timedValue[V]{t, v}
	}
}

// Len reports the number of distinct timestamps recorded.
func (c *TCell[V]) Len() int {
	switch c.state {
	case cellEmpty:
		return 0
	case cellOne:
		return 1
	default:
		return len(c.many)
	}
}

// LenWindow reports the number of distinct timestamps within w.
func (c *TCell[V]) LenWindow(w Window) int {
	n := 0
	c.IterWindow(w)(func(int64, V) bool { n++; return true })
	return n
}

// Latest returns the value at the greatest recorded timestamp.
func (c *TCell[V]) Latest() (V, bool) {
	switch c.state {
	case cellEmpty:
		var zero V
		return zero, false
	case cellOne:
		return c.v0, true
	default:
		return c.many[len(c.many)-1].v, true
	}
}

// Iter yields all (t, v) pairs in ascending t order.
func (c *TCell[V]) Iter() func(yield func(int64, V) bool) {
	return func(yield func(int64, V) bool) {
		switch c.state {
		case cellEmpty:
			return
		case cellOne:
			yield(c.t0, c.v0)
		default:
			for _, tv := range c.many {
				if !yield(tv.t, tv.v) {
					return
				}
			}
		}
	}
}

// IterWindow yields all (t, v) pairs with t in [w.Start, w.End), ascending.
// Complexity is O(log n + k) for the Many representation.
func (c *TCell[V]) IterWindow(w Window) func(yield func(int64, V) bool) {
	return func(yield func(int64, V) bool) {
		switch c.state {
		case cellEmpty:
			return
		case cellOne:
			if w.Contains(c.t0) {
				yield(c.t0, c.v0)
			}
		default:
			start := sort.Search(len(c.many), func(i int) bool { return c.many[i].t >= w.Start })
			for i := start; i < len(c.many) && c.many[i].t < w.End; i++ {
				if !yield(c.many[i].t, c.many[i].v) {
					return
				}
			}
		}
	}
}
