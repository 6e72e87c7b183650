package storage

import "github.com/dd0wney/tgraph/pkg/pools"

// AddVertex interns gid if unseen, records activity at t and upserts the
// supplied temporal properties. Idempotent: calling it again for the same
// gid just adds another activity event and property writes. Returns the
// vertex's physical id.
func (g *TemporalGraph) AddVertex(t int64, gid uint64, props []NamedProp) uint64 {
	pid := g.intern(gid)
	g.recordActivity(t, pid)
	if len(props) > 0 {
		g.vertexProps[pid].UpsertTemporal(g.names, t, props)
	}
	return pid
}

// AddVertexProperties writes static (write-once) properties for gid,
// interning it (with no activity event) if unseen.
func (g *TemporalGraph) AddVertexProperties(gid uint64, props []NamedProp) error {
	pid := g.intern(gid)
	return g.vertexProps[pid].UpsertStatic(g.names, props)
}

// HasVertex reports whether gid has ever been interned.
func (g *TemporalGraph) HasVertex(gid uint64) bool {
	_, ok := g.lookup(gid)
	return ok
}

// HasVertexWindow reports whether gid has any recorded activity in w.
func (g *TemporalGraph) HasVertexWindow(gid uint64, w Window) bool {
	pid, ok := g.lookup(gid)
	if !ok {
		return false
	}
	found := false
	g.activity[pid].IterWindow(w)(func(int64, bool) bool { found = true; return false })
	return found
}

// VertexIDs yields every interned gid, in physical-id order.
func (g *TemporalGraph) VertexIDs() func(yield func(uint64) bool) {
	return func(yield func(uint64) bool) {
		for _, gid := range g.physicalToLogical {
			if !yield(gid) {
				return
			}
		}
	}
}

// VertexIDsWindow yields the gids with activity in w, deduplicated, in
// ascending-first-touch order.
func (g *TemporalGraph) VertexIDsWindow(w Window) func(yield func(uint64) bool) {
	return func(yield func(uint64) bool) {
		g.timeIndex.IterWindow(w)(func(pid uint64) bool {
			return yield(g.gidOf(pid))
		})
	}
}

// Degree sums the relevant adjacency lengths for pid in direction dir;
// BOTH deduplicates by neighbour gid (documented asymmetry with Edges,
// which does not dedup for BOTH).
func (g *TemporalGraph) Degree(pid uint64, dir Direction) int {
	switch dir {
	case Out:
		return g.adjOutLocal[pid].Len() + g.adjOutRemote[pid].Len()
	case In:
		return g.adjInLocal[pid].Len() + g.adjInRemote[pid].Len()
	default:
		seen := pools.GetUint64Set()
		defer pools.PutUint64Set(seen)
		g.adjOutLocal[pid].Iter()(func(n uint64, _ EdgeRef) bool { seen[g.gidOf(n)] = struct{}{}; return true })
		g.adjInLocal[pid].Iter()(func(n uint64, _ EdgeRef) bool { seen[g.gidOf(n)] = struct{}{}; return true })
		g.adjOutRemote[pid].Iter()(func(n uint64, _ EdgeRef) bool { seen[n] = struct{}{}; return true })
		g.adjInRemote[pid].Iter()(func(n uint64, _ EdgeRef) bool { seen[n] = struct{}{}; return true })
		return len(seen)
	}
}

// DegreeWindow is the windowed counterpart of Degree.
func (g *TemporalGraph) DegreeWindow(pid uint64, dir Direction, w Window) int {
	switch dir {
	case Out:
		return g.adjOutLocal[pid].LenWindow(w) + g.adjOutRemote[pid].LenWindow(w)
	case In:
		return g.adjInLocal[pid].LenWindow(w) + g.adjInRemote[pid].LenWindow(w)
	default:
		seen := pools.GetUint64Set()
		defer pools.PutUint64Set(seen)
		g.adjOutLocal[pid].IterWindow(w)(func(n uint64, _ EdgeRef) bool { seen[g.gidOf(n)] = struct{}{}; return true })
		g.adjInLocal[pid].IterWindow(w)(func(n uint64, _ EdgeRef) bool { seen[g.gidOf(n)] = struct{}{}; return true })
		g.adjOutRemote[pid].IterWindow(w)(func(n uint64, _ EdgeRef) bool { seen[n] = struct{}{}; return true })
		g.adjInRemote[pid].IterWindow(w)(func(n uint64, _ EdgeRef) bool { seen[n] = struct{}{}; return true })
		return len(seen)
	}
}

// Neighbours yields the gids adjacent to pid in direction dir. BOTH
// yields IN then OUT with no deduplication, per the documented asymmetry
// with Degree.
func (g *TemporalGraph) Neighbours(pid uint64, dir Direction) func(yield func(uint64) bool) {
	return func(yield func(uint64) bool) {
		emit := func(adj *TAdjSet, local bool) bool {
			cont := true
			adj.Iter()(func(n uint64, _ EdgeRef) bool {
				gid := n
				if local {
					gid = g.gidOf(n)
				}
				cont = yield(gid)
				return cont
			})
			return cont
		}
		switch dir {
		case Out:
			if !emit(&g.adjOutLocal[pid], true) {
				return
			}
			emit(&g.adjOutRemote[pid], false)
		case In:
			if !emit(&g.adjInLocal[pid], true) {
				return
			}
			emit(&g.adjInRemote[pid], false)
		default:
			if !emit(&g.adjInLocal[pid], true) {
				return
			}
			if !emit(&g.adjInRemote[pid], false) {
				return
			}
			if !emit(&g.adjOutLocal[pid], true) {
				return
			}
			emit(&g.adjOutRemote[pid], false)
		}
	}
}

// NeighboursWindow is the windowed counterpart of Neighbours.
func (g *TemporalGraph) NeighboursWindow(pid uint64, dir Direction, w Window) func(yield func(uint64) bool) {
	return func(yield func(uint64) bool) {
		emit := func(adj *TAdjSet, local bool) bool {
			cont := true
			adj.IterWindow(w)(func(n uint64, _ EdgeRef) bool {
				gid := n
				if local {
					gid = g.gidOf(n)
				}
				cont = yield(gid)
				return cont
			})
			return cont
		}
		switch dir {
		case Out:
			if !emit(&g.adjOutLocal[pid], true) {
				return
			}
			emit(&g.adjOutRemote[pid], false)
		case In:
			if !emit(&g.adjInLocal[pid], true) {
				return
			}
			emit(&g.adjInRemote[pid], false)
		default:
			if !emit(&g.adjInLocal[pid], true) {
				return
			}
			if !emit(&g.adjInRemote[pid], false) {
				return
			}
			if !emit(&g.adjOutLocal[pid], true) {
				return
			}
			emit(&g.adjOutRemote[pid], false)
		}
	}
}

// VertexProp returns the temporal history for one of pid's properties.
func (g *TemporalGraph) VertexProp(pid uint64, name string) (*TProp, bool) {
	return g.vertexProps[pid].TemporalProp(g.names, name)
}

// VertexProps returns the names of every temporal property ever set on pid.
func (g *TemporalGraph) VertexProps(pid uint64) []string {
	return g.vertexProps[pid].TemporalNames(g.names)
}

// StaticVertexProp returns the static value of one of pid's properties.
func (g *TemporalGraph) StaticVertexProp(pid uint64, name string) (Prop, bool) {
	return g.vertexProps[pid].StaticProp(g.names, name)
}

// StaticVertexProps returns the names of every static property ever set on pid.
func (g *TemporalGraph) StaticVertexProps(pid uint64) []string {
	return g.vertexProps[pid].StaticNames(g.names)
}

// VertexActivity returns every distinct timestamp at which pid was
// touched, ascending. Used by pkg/persistence to snapshot a shard
// without exposing its internal TCell representation.
func (g *TemporalGraph) VertexActivity(pid uint64) []int64 {
	var times []int64
	g.activity[pid].Iter()(func(t int64, _ bool) bool {
		times = append(times, t)
		return true
	})
	return times
}
