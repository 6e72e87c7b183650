package sharded

import "github.com/dd0wney/tgraph/pkg/storage"

// HasVertex reports whether gid has ever been interned, in gid's shard.
func (g *ShardedGraph) HasVertex(gid uint64) bool {
	idx := g.shardOf(gid)
	found := false
	g.withRLock(idx, func(tg *storage.TemporalGraph) {
		found = tg.HasVertex(gid)
	})
	return found
}

// HasVertexWindow reports whether gid has activity within w.
func (g *ShardedGraph) HasVertexWindow(gid uint64, w storage.Window) bool {
	idx := g.shardOf(gid)
	found := false
	g.withRLock(idx, func(tg *storage.TemporalGraph) {
		found = tg.HasVertexWindow(gid, w)
	})
	return found
}

// HasEdge reports whether a src->dst edge has ever been linked, checking
// the local adjacency of src's shard, or (if src and dst route to
// different shards) the remote-out adjacency of src's shard.
func (g *ShardedGraph) HasEdge(src, dst uint64) bool {
	srcIdx, dstIdx := g.shardOf(src), g.shardOf(dst)
	found := false
	if srcIdx == dstIdx {
		g.withRLock(srcIdx, func(tg *storage.TemporalGraph) {
			found = tg.HasEdge(src, dst)
		})
		return found
	}
	g.withRLock(srcIdx, func(tg *storage.TemporalGraph) {
		_, found = tg.FindOutboundRemote(src, dst)
	})
	return found
}

// HasEdgeWindow is the windowed counterpart of HasEdge: it looks for a
// linking event within w in the local adjacency of src's shard, or (if
// src and dst route to different shards) in its remote-out adjacency.
func (g *ShardedGraph) HasEdgeWindow(src, dst uint64, w storage.Window) bool {
	srcIdx, dstIdx := g.shardOf(src), g.shardOf(dst)
	found := false
	if srcIdx != dstIdx {
		g.withRLock(srcIdx, func(tg *storage.TemporalGraph) {
			pid, ok := tg.PhysicalID(src)
			if !ok {
				return
			}
			tg.EdgesWindow(pid, storage.Out, w)(func(ref storage.EdgeRef) bool {
				found = ref.IsRemote && ref.DstGID == dst
				return !found
			})
		})
		return found
	}
	g.withRLock(srcIdx, func(tg *storage.TemporalGraph) {
		found = tg.HasEdgeWindow(src, dst, w)
	})
	return found
}

// NumVertices sums vertex counts across every shard.
func (g *ShardedGraph) NumVertices() int {
	total := 0
	for i := range g.shards {
		g.withRLock(i, func(tg *storage.TemporalGraph) {
			total += tg.NumVertices()
		})
	}
	return total
}

// NumEdges sums minted edge-id counts across every shard. Cross-shard
// edges contribute one id on each side, so this counts edge halves, not
// distinct logical edges - consistent with each shard owning its own
// edge-id space.
func (g *ShardedGraph) NumEdges() int {
	total := 0
	for i := range g.shards {
		g.withRLock(i, func(tg *storage.TemporalGraph) {
			total += tg.NumEdges()
		})
	}
	return total
}

// NumVerticesWindow is the windowed counterpart of NumVertices: the
// distinct vertices with activity in w, summed per shard.
func (g *ShardedGraph) NumVerticesWindow(w storage.Window) int {
	total := 0
	for i := range g.shards {
		g.withRLock(i, func(tg *storage.TemporalGraph) {
			total += tg.NumVerticesWindow(w)
		})
	}
	return total
}

// NumEdgesWindow is the windowed counterpart of NumEdges: the distinct
// edge ids with any linking event in w, summed per shard (consistent with
// NumEdges, this counts edge halves on cross-shard edges, not distinct
// logical edges).
func (g *ShardedGraph) NumEdgesWindow(w storage.Window) int {
	total := 0
	for i := range g.shards {
		g.withRLock(i, func(tg *storage.TemporalGraph) {
			total += tg.NumEdgesWindow(w)
		})
	}
	return total
}

// EarliestTime returns the smallest timestamp recorded across all shards.
func (g *ShardedGraph) EarliestTime() (int64, bool) {
	var earliest int64
	have := false
	for i := range g.shards {
		g.withRLock(i, func(tg *storage.TemporalGraph) {
			t, ok := tg.EarliestTime()
			if !ok {
				return
			}
			if !have || t < earliest {
				earliest = t
			}
			have = true
		})
	}
	return earliest, have
}

// LatestTime returns the largest timestamp recorded across all shards.
func (g *ShardedGraph) LatestTime() (int64, bool) {
	var latest int64
	have := false
	for i := range g.shards {
		g.withRLock(i, func(tg *storage.TemporalGraph) {
			t, ok := tg.LatestTime()
			if !ok {
				return
			}
			if !have || t > latest {
				latest = t
			}
			have = true
		})
	}
	return latest, have
}

// EarliestTimeWindow is the windowed counterpart of EarliestTime.
func (g *ShardedGraph) EarliestTimeWindow(w storage.Window) (int64, bool) {
	var earliest int64
	have := false
	for i := range g.shards {
		g.withRLock(i, func(tg *storage.TemporalGraph) {
			t, ok := tg.EarliestTimeWindow(w)
			if !ok {
				return
			}
			if !have || t < earliest {
				earliest = t
			}
			have = true
		})
	}
	return earliest, have
}

// LatestTimeWindow is the windowed counterpart of LatestTime.
func (g *ShardedGraph) LatestTimeWindow(w storage.Window) (int64, bool) {
	var latest int64
	have := false
	for i := range g.shards {
		g.withRLock(i, func(tg *storage.TemporalGraph) {
			t, ok := tg.LatestTimeWindow(w)
			if !ok {
				return
			}
			if !have || t > latest {
				latest = t
			}
			have = true
		})
	}
	return latest, have
}

// VertexIDs yields every interned gid across all shards, shard by shard
// in ascending shard-index order.
func (g *ShardedGraph) VertexIDs() func(yield func(uint64) bool) {
	return func(yield func(uint64) bool) {
		for i := range g.shards {
			cont := true
			g.withRLock(i, func(tg *storage.TemporalGraph) {
				tg.VertexIDs()(func(gid uint64) bool {
					cont = yield(gid)
					return cont
				})
			})
			if !cont {
				return
			}
		}
	}
}

// VertexIDsWindow is the windowed counterpart of VertexIDs.
func (g *ShardedGraph) VertexIDsWindow(w storage.Window) func(yield func(uint64) bool) {
	return func(yield func(uint64) bool) {
		for i := range g.shards {
			cont := true
			g.withRLock(i, func(tg *storage.TemporalGraph) {
				tg.VertexIDsWindow(w)(func(gid uint64) bool {
					cont = yield(gid)
					return cont
				})
			})
			if !cont {
				return
			}
		}
	}
}

// Degree reports gid's degree in direction dir, within its own shard
// only: OUT/IN adjacency never crosses shards for the local half, and
// remote adjacency is keyed by raw gid so it is included automatically.
func (g *ShardedGraph) Degree(gid uint64, dir storage.Direction) int {
	idx := g.shardOf(gid)
	var n int
	g.withRLock(idx, func(tg *storage.TemporalGraph) {
		pid, ok := tg.PhysicalID(gid)
		if !ok {
			return
		}
		n = tg.Degree(pid, dir)
	})
	return n
}

// DegreeWindow is the windowed counterpart of Degree.
func (g *ShardedGraph) DegreeWindow(gid uint64, dir storage.Direction, w storage.Window) int {
	idx := g.shardOf(gid)
	var n int
	g.withRLock(idx, func(tg *storage.TemporalGraph) {
		if !tg.HasVertex(gid) {
			return
		}
		n = tg.DegreeWindow(mustPID(tg, gid), dir, w)
	})
	return n
}

// Neighbours yields gid's neighbours in direction dir. The result is
// materialised under gid's shard lock and yielded after the lock is
// released, so callers may safely mutate the graph while iterating.
func (g *ShardedGraph) Neighbours(gid uint64, dir storage.Direction) func(yield func(uint64) bool) {
	idx := g.shardOf(gid)
	var out []uint64
	g.withRLock(idx, func(tg *storage.TemporalGraph) {
		if !tg.HasVertex(gid) {
			return
		}
		tg.Neighbours(mustPID(tg, gid), dir)(func(n uint64) bool {
			out = append(out, n)
			return true
		})
	})
	return func(yield func(uint64) bool) {
		for _, n := range out {
			if !yield(n) {
				return
			}
		}
	}
}

// NeighboursWindow is the windowed counterpart of Neighbours.
func (g *ShardedGraph) NeighboursWindow(gid uint64, dir storage.Direction, w storage.Window) func(yield func(uint64) bool) {
	idx := g.shardOf(gid)
	var out []uint64
	g.withRLock(idx, func(tg *storage.TemporalGraph) {
		if !tg.HasVertex(gid) {
			return
		}
		tg.NeighboursWindow(mustPID(tg, gid), dir, w)(func(n uint64) bool {
			out = append(out, n)
			return true
		})
	})
	return func(yield func(uint64) bool) {
		for _, n := range out {
			if !yield(n) {
				return
			}
		}
	}
}

// EdgesOf yields EdgeRef records for gid in direction dir, materialised
// under gid's shard lock.
func (g *ShardedGraph) EdgesOf(gid uint64, dir storage.Direction) func(yield func(storage.EdgeRef) bool) {
	idx := g.shardOf(gid)
	var out []storage.EdgeRef
	g.withRLock(idx, func(tg *storage.TemporalGraph) {
		if !tg.HasVertex(gid) {
			return
		}
		tg.Edges(mustPID(tg, gid), dir)(func(ref storage.EdgeRef) bool {
			out = append(out, ref)
			return true
		})
	})
	return func(yield func(storage.EdgeRef) bool) {
		for _, ref := range out {
			if !yield(ref) {
				return
			}
		}
	}
}

// EdgesOfWindow is the windowed, deduplicated counterpart of EdgesOf.
func (g *ShardedGraph) EdgesOfWindow(gid uint64, dir storage.Direction, w storage.Window) func(yield func(storage.EdgeRef) bool) {
	idx := g.shardOf(gid)
	var out []storage.EdgeRef
	g.withRLock(idx, func(tg *storage.TemporalGraph) {
		if !tg.HasVertex(gid) {
			return
		}
		tg.EdgesWindow(mustPID(tg, gid), dir, w)(func(ref storage.EdgeRef) bool {
			out = append(out, ref)
			return true
		})
	})
	return func(yield func(storage.EdgeRef) bool) {
		for _, ref := range out {
			if !yield(ref) {
				return
			}
		}
	}
}

// EdgesOfWindowT yields one EdgeRef per linking event within w.
func (g *ShardedGraph) EdgesOfWindowT(gid uint64, dir storage.Direction, w storage.Window) func(yield func(storage.EdgeRef) bool) {
	idx := g.shardOf(gid)
	var out []storage.EdgeRef
	g.withRLock(idx, func(tg *storage.TemporalGraph) {
		if !tg.HasVertex(gid) {
			return
		}
		tg.EdgesWindowT(mustPID(tg, gid), dir, w)(func(ref storage.EdgeRef) bool {
			out = append(out, ref)
			return true
		})
	})
	return func(yield func(storage.EdgeRef) bool) {
		for _, ref := range out {
			if !yield(ref) {
				return
			}
		}
	}
}

// VertexProp returns the temporal history for one of gid's properties.
func (g *ShardedGraph) VertexProp(gid uint64, name string) (*storage.TProp, bool) {
	idx := g.shardOf(gid)
	var prop *storage.TProp
	var ok bool
	g.withRLock(idx, func(tg *storage.TemporalGraph) {
		if !tg.HasVertex(gid) {
			return
		}
		prop, ok = tg.VertexProp(mustPID(tg, gid), name)
	})
	return prop, ok
}

// VertexProps returns the names of every temporal property ever set on gid.
func (g *ShardedGraph) VertexProps(gid uint64) []string {
	idx := g.shardOf(gid)
	var names []string
	g.withRLock(idx, func(tg *storage.TemporalGraph) {
		if !tg.HasVertex(gid) {
			return
		}
		names = tg.VertexProps(mustPID(tg, gid))
	})
	return names
}

// StaticVertexProp returns the static value of one of gid's properties.
func (g *ShardedGraph) StaticVertexProp(gid uint64, name string) (storage.Prop, bool) {
	idx := g.shardOf(gid)
	var prop storage.Prop
	var ok bool
	g.withRLock(idx, func(tg *storage.TemporalGraph) {
		if !tg.HasVertex(gid) {
			return
		}
		prop, ok = tg.StaticVertexProp(mustPID(tg, gid), name)
	})
	return prop, ok
}

// EdgeProp returns the temporal history for one of an edge's properties,
// resolved by (src, dst) rather than edge id: the id is shard-local and
// not meaningful to callers outside pkg/storage.
func (g *ShardedGraph) EdgeProp(src, dst uint64, name string) (*storage.TProp, bool) {
	return withEdge(g, src, dst, func(tg *storage.TemporalGraph, edgeID uint64) (*storage.TProp, bool) {
		return tg.EdgeProp(edgeID, name)
	})
}

// EdgeProps returns the names of every temporal property on the src->dst
// edge.
func (g *ShardedGraph) EdgeProps(src, dst uint64) []string {
	names, _ := withEdge(g, src, dst, func(tg *storage.TemporalGraph, edgeID uint64) ([]string, bool) {
		return tg.EdgeProps(edgeID), true
	})
	return names
}

// StaticEdgeProp returns the static value of one of the src->dst edge's
// properties.
func (g *ShardedGraph) StaticEdgeProp(src, dst uint64, name string) (storage.Prop, bool) {
	return withEdge(g, src, dst, func(tg *storage.TemporalGraph, edgeID uint64) (storage.Prop, bool) {
		return tg.StaticEdgeProp(edgeID, name)
	})
}

// withEdge resolves (src, dst) to the shard and edge id that own it -
// src's shard, local or remote-out - and runs fn against it under a
// single read lock. It is a free function rather than a method because
// Go methods cannot carry their own type parameters.
func withEdge[T any](g *ShardedGraph, src, dst uint64, fn func(tg *storage.TemporalGraph, edgeID uint64) (T, bool)) (T, bool) {
	srcIdx, dstIdx := g.shardOf(src), g.shardOf(dst)
	var zero T
	var result T
	var found bool
	g.withRLock(srcIdx, func(tg *storage.TemporalGraph) {
		var ref storage.EdgeRef
		var ok bool
		if srcIdx == dstIdx {
			ref, ok = tg.FindLocalOutbound(src, dst)
		} else {
			ref, ok = tg.FindOutboundRemote(src, dst)
		}
		if !ok {
			return
		}
		result, found = fn(tg, ref.EdgeID)
	})
	if !found {
		return zero, false
	}
	return result, true
}

func mustPID(tg *storage.TemporalGraph, gid uint64) uint64 {
	pid, _ := tg.PhysicalID(gid)
	return pid
}
