package storage

// AddEdge links src -> dst at time t within this shard, adding both
// endpoints as vertices at t, and asserts that the outbound-assigned edge
// id equals the inbound-assigned edge id (the shard is single-writer, so
// this can only fail from a programming error in the linking logic
// itself, never from concurrent access). layer, if non-empty, is recorded
// as a static "__layer" property on the edge: TAdjSet (§4.4) has no
// layer-keyed lookup, so a given (src, dst) pair names exactly one edge
// regardless of layer, with layer carried as metadata rather than a
// separate adjacency dimension.
func (g *TemporalGraph) AddEdge(t int64, srcGID, dstGID uint64, props []NamedProp, layer string) error {
	srcPID := g.AddVertex(t, srcGID, nil)
	dstPID := g.AddVertex(t, dstGID, nil)

	candidate := g.nextEdgeID
	outID := link(&g.adjOutLocal[srcPID], t, dstPID, candidate, false)
	inID := link(&g.adjInLocal[dstPID], t, srcPID, candidate, false)
	if outID != inID {
		return NewError("AddEdge").Edge(outID).Cause(ErrIdAssignmentConflict).Err()
	}
	if outID == candidate {
		g.nextEdgeID++
	}
	g.growEdgeProps(outID)

	if len(props) > 0 {
		g.edgeProps[outID].UpsertTemporal(g.names, t, props)
	}
	if layer != "" {
		if err := g.edgeProps[outID].UpsertStatic(g.names, []NamedProp{{Name: "__layer", Value: Str(layer)}}); err != nil {
			return err
		}
	}
	return nil
}

// AddEdgeRemoteOut links the outbound half of a cross-shard edge whose
// destination lives on another shard: used only by the sharded container.
func (g *TemporalGraph) AddEdgeRemoteOut(t int64, srcGID, dstGID uint64, props []NamedProp) error {
	srcPID := g.AddVertex(t, srcGID, nil)
	candidate := g.nextEdgeID
	edgeID := link(&g.adjOutRemote[srcPID], t, dstGID, candidate, true)
	if edgeID == candidate {
		g.nextEdgeID++
	}
	g.growEdgeProps(edgeID)
	if len(props) > 0 {
		g.edgeProps[edgeID].UpsertTemporal(g.names, t, props)
	}
	return nil
}

// AddEdgeRemoteInto links the inbound half of a cross-shard edge whose
// source lives on another shard: used only by the sharded container.
func (g *TemporalGraph) AddEdgeRemoteInto(t int64, srcGID, dstGID uint64, props []NamedProp) error {
	dstPID := g.AddVertex(t, dstGID, nil)
	candidate := g.nextEdgeID
	edgeID := link(&g.adjInRemote[dstPID], t, srcGID, candidate, true)
	if edgeID == candidate {
		g.nextEdgeID++
	}
	g.growEdgeProps(edgeID)
	if len(props) > 0 {
		g.edgeProps[edgeID].UpsertTemporal(g.names, t, props)
	}
	return nil
}

// HasEdge reports whether a local src->dst edge has ever been linked.
func (g *TemporalGraph) HasEdge(srcGID, dstGID uint64) bool {
	srcPID, ok := g.lookup(srcGID)
	if !ok {
		return false
	}
	dstPID, ok := g.lookup(dstGID)
	if !ok {
		return false
	}
	_, found := g.adjOutLocal[srcPID].Find(dstPID)
	return found
}

// HasEdgeWindow reports whether src->dst has any linking event within w.
func (g *TemporalGraph) HasEdgeWindow(srcGID, dstGID uint64, w Window) bool {
	srcPID, ok := g.lookup(srcGID)
	if !ok {
		return false
	}
	dstPID, ok := g.lookup(dstGID)
	if !ok {
		return false
	}
	_, found := g.adjOutLocal[srcPID].FindWindow(dstPID, w)
	return found
}

// buildEdgeRef fills in the src/dst gid/pid fields of an adjacency-level
// EdgeRef (whose DstGID/DstPID carry the raw neighbour key) according to
// which of the four adjacency lists it came from.
func (g *TemporalGraph) buildEdgeRef(localPID uint64, outbound, local bool, ref EdgeRef) EdgeRef {
	neighbour := ref.DstGID
	out := EdgeRef{EdgeID: ref.EdgeID, IsRemote: ref.IsRemote, Time: ref.Time, TimeSet: ref.TimeSet}
	localGID := g.gidOf(localPID)
	if outbound {
		out.SrcGID, out.SrcPID = localGID, localPID
		if local {
			out.DstGID, out.DstPID = g.gidOf(neighbour), neighbour
		} else {
			out.DstGID = neighbour
		}
	} else {
		out.DstGID, out.DstPID = localGID, localPID
		if local {
			out.SrcGID, out.SrcPID = g.gidOf(neighbour), neighbour
		} else {
			out.SrcGID = neighbour
		}
	}
	return out
}

// Edges yields EdgeRef records for pid in direction dir, deduplicated by
// neighbour. BOTH yields IN then OUT, matching Neighbours.
func (g *TemporalGraph) Edges(pid uint64, dir Direction) func(yield func(EdgeRef) bool) {
	return func(yield func(EdgeRef) bool) {
		emit := func(adj *TAdjSet, outbound, local bool) bool {
			cont := true
			adj.Iter()(func(_ uint64, ref EdgeRef) bool {
				cont = yield(g.buildEdgeRef(pid, outbound, local, ref))
				return cont
			})
			return cont
		}
		g.walkDirection(pid, dir, emit)
	}
}

// EdgesWindow is the windowed, deduplicated counterpart of Edges.
func (g *TemporalGraph) EdgesWindow(pid uint64, dir Direction, w Window) func(yield func(EdgeRef) bool) {
	return func(yield func(EdgeRef) bool) {
		emit := func(adj *TAdjSet, outbound, local bool) bool {
			cont := true
			adj.IterWindow(w)(func(_ uint64, ref EdgeRef) bool {
				cont = yield(g.buildEdgeRef(pid, outbound, local, ref))
				return cont
			})
			return cont
		}
		g.walkDirection(pid, dir, emit)
	}
}

// EdgesWindowT yields one EdgeRef per linking event within w (rather than
// one per distinct neighbour), each carrying its event Time.
func (g *TemporalGraph) EdgesWindowT(pid uint64, dir Direction, w Window) func(yield func(EdgeRef) bool) {
	return func(yield func(EdgeRef) bool) {
		emit := func(adj *TAdjSet, outbound, local bool) bool {
			cont := true
			adj.IterWindowT(w)(func(_ uint64, _ int64, ref EdgeRef) bool {
				cont = yield(g.buildEdgeRef(pid, outbound, local, ref))
				return cont
			})
			return cont
		}
		g.walkDirection(pid, dir, emit)
	}
}

// walkDirection calls emit once per adjacency list relevant to dir, in
// IN-then-OUT order for BOTH, stopping early if emit returns false.
func (g *TemporalGraph) walkDirection(pid uint64, dir Direction, emit func(adj *TAdjSet, outbound, local bool) bool) {
	switch dir {
	case Out:
		if !emit(&g.adjOutLocal[pid], true, true) {
			return
		}
		emit(&g.adjOutRemote[pid], true, false)
	case In:
		if !emit(&g.adjInLocal[pid], false, true) {
			return
		}
		emit(&g.adjInRemote[pid], false, false)
	default:
		if !emit(&g.adjInLocal[pid], false, true) {
			return
		}
		if !emit(&g.adjInRemote[pid], false, false) {
			return
		}
		if !emit(&g.adjOutLocal[pid], true, true) {
			return
		}
		emit(&g.adjOutRemote[pid], true, false)
	}
}

// EdgeProp returns the temporal history for one of an edge's properties.
func (g *TemporalGraph) EdgeProp(edgeID uint64, name string) (*TProp, bool) {
	if edgeID >= uint64(len(g.edgeProps)) {
		return nil, false
	}
	return g.edgeProps[edgeID].TemporalProp(g.names, name)
}

// EdgeProps returns the names of every temporal property ever set on edgeID.
func (g *TemporalGraph) EdgeProps(edgeID uint64) []string {
	if edgeID >= uint64(len(g.edgeProps)) {
		return nil
	}
	return g.edgeProps[edgeID].TemporalNames(g.names)
}

// StaticEdgeProp returns the static value of one of an edge's properties.
func (g *TemporalGraph) StaticEdgeProp(edgeID uint64, name string) (Prop, bool) {
	if edgeID >= uint64(len(g.edgeProps)) {
		return Prop{}, false
	}
	return g.edgeProps[edgeID].StaticProp(g.names, name)
}

// FindInboundRemote returns the EdgeRef for this shard's inbound-remote
// half of a cross-shard src->dst edge, used when replaying a persisted
// snapshot's remote-into entries to resolve the replayed edge id.
func (g *TemporalGraph) FindInboundRemote(srcGID, dstGID uint64) (EdgeRef, bool) {
	dstPID, ok := g.lookup(dstGID)
	if !ok {
		return EdgeRef{}, false
	}
	ref, found := g.adjInRemote[dstPID].Find(srcGID)
	if !found {
		return EdgeRef{}, false
	}
	return g.buildEdgeRef(dstPID, false, false, ref), true
}

// StaticEdgeProps returns the names of every static property ever set on edgeID.
func (g *TemporalGraph) StaticEdgeProps(edgeID uint64) []string {
	if edgeID >= uint64(len(g.edgeProps)) {
		return nil
	}
	return g.edgeProps[edgeID].StaticNames(g.names)
}

// UpsertEdgeStatic writes static properties directly on an already-minted
// edge id, used by the sharded container's add_edge_properties.
func (g *TemporalGraph) UpsertEdgeStatic(edgeID uint64, props []NamedProp) error {
	if edgeID >= uint64(len(g.edgeProps)) {
		return NewError("UpsertEdgeStatic").Edge(edgeID).Cause(ErrEdgeNotFound).Err()
	}
	return g.edgeProps[edgeID].UpsertStatic(g.names, props)
}

// FindLocalOutbound returns the EdgeRef for a same-shard src->dst edge.
func (g *TemporalGraph) FindLocalOutbound(srcGID, dstGID uint64) (EdgeRef, bool) {
	srcPID, ok := g.lookup(srcGID)
	if !ok {
		return EdgeRef{}, false
	}
	dstPID, ok := g.lookup(dstGID)
	if !ok {
		return EdgeRef{}, false
	}
	ref, found := g.adjOutLocal[srcPID].Find(dstPID)
	if !found {
		return EdgeRef{}, false
	}
	return g.buildEdgeRef(srcPID, true, true, ref), true
}

// FindOutboundRemote returns the EdgeRef for this shard's outbound-remote
// half of a cross-shard src->dst edge.
func (g *TemporalGraph) FindOutboundRemote(srcGID, dstGID uint64) (EdgeRef, bool) {
	srcPID, ok := g.lookup(srcGID)
	if !ok {
		return EdgeRef{}, false
	}
	ref, found := g.adjOutRemote[srcPID].Find(dstGID)
	if !found {
		return EdgeRef{}, false
	}
	return g.buildEdgeRef(srcPID, true, false, ref), true
}
