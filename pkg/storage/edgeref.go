package storage

// EdgeRef identifies an edge from the perspective of one endpoint. Time is
// populated only by per-event iteration (the "_t" read operations); other
// operations leave it at 0 with TimeSet false.
type EdgeRef struct {
	EdgeID   uint64
	SrcGID   uint64
	DstGID   uint64
	SrcPID   uint64
	DstPID   uint64
	Time     int64
	TimeSet  bool
	IsRemote bool
}

// edgeTag packs an edge id and its locality into a single int64: the
// magnitude is the edge id, the sign bit records locality. Zero is
// reserved (never a valid tag) so the sign can encode locality without
// colliding with "no tag", per spec.md §4.4.
type edgeTag int64

func newEdgeTag(edgeID uint64, isRemote bool) edgeTag {
	t := int64(edgeID + 1)
	if isRemote {
		t = -t
	}
	return edgeTag(t)
}

func (tag edgeTag) edgeID() uint64 {
	m := int64(tag)
	if m < 0 {
		m = -m
	}
	return uint64(m - 1)
}

func (tag edgeTag) isRemote() bool { return int64(tag) < 0 }
