package persistence

import "github.com/dd0wney/tgraph/pkg/storage"

// snapshotShard walks tg's public read API and builds a fully
// self-contained wire representation of its state: every vertex's
// activity/property history, and every edge this shard owns either
// wholly (local) or half of (remote-out, remote-into).
func snapshotShard(tg *storage.TemporalGraph) shardWire {
	var w shardWire

	tg.VertexIDs()(func(gid uint64) bool {
		pid, ok := tg.PhysicalID(gid)
		if !ok {
			return true
		}
		w.Vertices = append(w.Vertices, snapshotVertex(tg, gid, pid))
		w.Edges = append(w.Edges, snapshotOutEdges(tg, pid)...)
		w.Edges = append(w.Edges, snapshotRemoteInEdges(tg, pid)...)
		return true
	})

	return w
}

func snapshotVertex(tg *storage.TemporalGraph, gid, pid uint64) vertexWire {
	vw := vertexWire{
		GID:      gid,
		Activity: tg.VertexActivity(pid),
		Temporal: map[string][]timedPropWire{},
		Static:   map[string]propWire{},
	}
	for _, name := range tg.VertexProps(pid) {
		prop, ok := tg.VertexProp(pid, name)
		if !ok {
			continue
		}
		vw.Temporal[name] = encodeHistory(prop.Iter())
	}
	for _, name := range tg.StaticVertexProps(pid) {
		if v, ok := tg.StaticVertexProp(pid, name); ok {
			vw.Static[name] = encodeProp(v)
		}
	}
	return vw
}

// snapshotOutEdges captures every edge outbound from pid, local or
// remote, keyed by the edge id this shard assigned it.
func snapshotOutEdges(tg *storage.TemporalGraph, pid uint64) []edgeWire {
	type acc struct {
		ref   storage.EdgeRef
		times []int64
	}
	byID := map[uint64]*acc{}
	var order []uint64

	tg.Edges(pid, storage.Out)(func(ref storage.EdgeRef) bool {
		byID[ref.EdgeID] = &acc{ref: ref}
		order = append(order, ref.EdgeID)
		return true
	})
	tg.EdgesWindowT(pid, storage.Out, storage.AllTime())(func(ref storage.EdgeRef) bool {
		if a, ok := byID[ref.EdgeID]; ok && ref.TimeSet {
			a.times = append(a.times, ref.Time)
		}
		return true
	})

	out := make([]edgeWire, 0, len(order))
	for _, id := range order {
		a := byID[id]
		out = append(out, buildEdgeWire(tg, id, a.ref.SrcGID, a.ref.DstGID, a.ref.IsRemote, "out", a.times))
	}
	return out
}

// snapshotRemoteInEdges captures the inbound-remote-only edges pid
// holds: cross-shard edges whose source lives on another shard, which
// this shard can only see from the inbound side.
func snapshotRemoteInEdges(tg *storage.TemporalGraph, pid uint64) []edgeWire {
	type acc struct {
		ref   storage.EdgeRef
		times []int64
	}
	byID := map[uint64]*acc{}
	var order []uint64

	tg.Edges(pid, storage.In)(func(ref storage.EdgeRef) bool {
		if ref.IsRemote {
			byID[ref.EdgeID] = &acc{ref: ref}
			order = append(order, ref.EdgeID)
		}
		return true
	})
	tg.EdgesWindowT(pid, storage.In, storage.AllTime())(func(ref storage.EdgeRef) bool {
		if a, ok := byID[ref.EdgeID]; ok && ref.IsRemote && ref.TimeSet {
			a.times = append(a.times, ref.Time)
		}
		return true
	})

	out := make([]edgeWire, 0, len(order))
	for _, id := range order {
		a := byID[id]
		out = append(out, buildEdgeWire(tg, id, a.ref.SrcGID, a.ref.DstGID, true, "in", a.times))
	}
	return out
}

func buildEdgeWire(tg *storage.TemporalGraph, edgeID, srcGID, dstGID uint64, remote bool, direction string, times []int64) edgeWire {
	ew := edgeWire{
		SrcGID:    srcGID,
		DstGID:    dstGID,
		Remote:    remote,
		Direction: direction,
		Events:    times,
		Temporal:  map[string][]timedPropWire{},
		Static:    map[string]propWire{},
	}
	for _, name := range tg.EdgeProps(edgeID) {
		prop, ok := tg.EdgeProp(edgeID, name)
		if !ok {
			continue
		}
		ew.Temporal[name] = encodeHistory(prop.Iter())
	}
	for _, name := range tg.StaticEdgeProps(edgeID) {
		if v, ok := tg.StaticEdgeProp(edgeID, name); ok {
			ew.Static[name] = encodeProp(v)
		}
	}
	return ew
}
