package storage

import "github.com/dd0wney/tgraph/pkg/pools"

// TemporalGraph is a single shard of the temporal property graph:
// component C6, grounded on docbrown/core/src/graph.rs's TemporalGraph.
// Callers outside pkg/sharded never construct or lock this directly; the
// sharded container owns one per shard behind its own reader-writer lock.
type TemporalGraph struct {
	names *NameTable

	logicalToPhysical map[uint64]uint64
	physicalToLogical []uint64

	vertexProps []PropertyStore
	activity    []TCell[bool] // per-pid presence history, for has_vertex_window

	adjOutLocal  []TAdjSet
	adjInLocal   []TAdjSet
	adjOutRemote []TAdjSet
	adjInRemote  []TAdjSet

	timeIndex TimeIndex

	edgeProps  []PropertyStore
	nextEdgeID uint64

	earliest int64
	latest   int64
	hasEvent bool
}

// NewTemporalGraph returns an empty shard.
func NewTemporalGraph() *TemporalGraph {
	return &TemporalGraph{
		names:             NewNameTable(),
		logicalToPhysical: make(map[uint64]uint64),
	}
}

func (g *TemporalGraph) lookup(gid uint64) (uint64, bool) {
	pid, ok := g.logicalToPhysical[gid]
	return pid, ok
}

// PhysicalID returns gid's physical id within this shard, if interned.
func (g *TemporalGraph) PhysicalID(gid uint64) (uint64, bool) { return g.lookup(gid) }

// intern returns the physical id for gid, assigning a fresh one (and
// growing every per-vertex slice) if gid has never been seen.
func (g *TemporalGraph) intern(gid uint64) uint64 {
	if pid, ok := g.logicalToPhysical[gid]; ok {
		return pid
	}
	pid := uint64(len(g.physicalToLogical))
	g.logicalToPhysical[gid] = pid
	g.physicalToLogical = append(g.physicalToLogical, gid)
	g.vertexProps = append(g.vertexProps, PropertyStore{})
	g.activity = append(g.activity, TCell[bool]{})
	g.adjOutLocal = append(g.adjOutLocal, TAdjSet{})
	g.adjInLocal = append(g.adjInLocal, TAdjSet{})
	g.adjOutRemote = append(g.adjOutRemote, TAdjSet{})
	g.adjInRemote = append(g.adjInRemote, TAdjSet{})
	return pid
}

// recordActivity marks pid as touched at time t and tracks the shard's
// earliest/latest observed timestamps.
func (g *TemporalGraph) recordActivity(t int64, pid uint64) {
	g.timeIndex.Insert(t, pid)
	g.activity[pid].Set(t, true)
	if !g.hasEvent {
		g.earliest, g.latest, g.hasEvent = t, t, true
		return
	}
	if t < g.earliest {
		g.earliest = t
	}
	if t > g.latest {
		g.latest = t
	}
}

func (g *TemporalGraph) growEdgeProps(id uint64) {
	for uint64(len(g.edgeProps)) <= id {
		g.edgeProps = append(g.edgeProps, PropertyStore{})
	}
}

// link pushes a (neighbour, tag) adjacency event into adj, reusing
// neighbour's already-assigned edge id if one exists; otherwise the
// provided candidate id is adopted. Returns the id actually in effect.
func link(adj *TAdjSet, t int64, neighbour uint64, candidate uint64, remote bool) uint64 {
	adj.Push(t, neighbour, newEdgeTag(candidate, remote))
	ref, _ := adj.Find(neighbour)
	return ref.EdgeID
}

// EarliestTime returns the smallest timestamp recorded in this shard.
func (g *TemporalGraph) EarliestTime() (int64, bool) { return g.earliest, g.hasEvent }

// LatestTime returns the largest timestamp recorded in this shard.
func (g *TemporalGraph) LatestTime() (int64, bool) { return g.latest, g.hasEvent }

// NumVertices returns the number of distinct vertices interned.
func (g *TemporalGraph) NumVertices() int { return len(g.physicalToLogical) }

// NumEdges returns the number of distinct edge ids minted in this shard's
// id space (local and remote edges share one counter per shard).
func (g *TemporalGraph) NumEdges() int { return int(g.nextEdgeID) }

// EarliestTimeWindow returns the smallest timestamp recorded in w.
func (g *TemporalGraph) EarliestTimeWindow(w Window) (int64, bool) {
	earliest, _, ok := g.timeIndex.BoundsWindow(w)
	return earliest, ok
}

// LatestTimeWindow returns the largest timestamp recorded in w.
func (g *TemporalGraph) LatestTimeWindow(w Window) (int64, bool) {
	_, latest, ok := g.timeIndex.BoundsWindow(w)
	return latest, ok
}

// NumVerticesWindow counts the distinct vertices with activity in w.
func (g *TemporalGraph) NumVerticesWindow(w Window) int {
	n := 0
	g.timeIndex.IterWindow(w)(func(uint64) bool { n++; return true })
	return n
}

// NumEdgesWindow counts the distinct edge ids with any linking event in w.
// A local edge is only counted from its outbound half (adjOutLocal); a
// cross-shard edge's two halves mint independent ids (see DESIGN.md) and
// are both counted, via adjOutRemote and adjInRemote respectively.
func (g *TemporalGraph) NumEdgesWindow(w Window) int {
	seen := pools.GetUint64Set()
	defer pools.PutUint64Set(seen)
	collect := func(adj *TAdjSet) {
		adj.IterWindow(w)(func(_ uint64, ref EdgeRef) bool {
			seen[ref.EdgeID] = struct{}{}
			return true
		})
	}
	for pid := range g.adjOutLocal {
		collect(&g.adjOutLocal[pid])
		collect(&g.adjOutRemote[pid])
		collect(&g.adjInRemote[pid])
	}
	return len(seen)
}

func (g *TemporalGraph) gidOf(pid uint64) uint64 { return g.physicalToLogical[pid] }
