package storage

import (
	"sort"

	"github.com/dd0wney/tgraph/pkg/pools"
)

type adjEntry struct {
	neighbour uint64
	tag       edgeTag
}

type adjEvent struct {
	t         int64
	neighbour uint64
}

// TAdjSet is a neighbour-major temporal adjacency list maintaining two
// simultaneous index orders: by neighbour (for point lookup) and by time
// (for window scans), staged Empty -> One -> Many: component C4, grounded
// on docbrown/core/src/adj.rs's AdjSet/TAdjSet.
type TAdjSet struct {
	state   vecState
	one     adjEntry
	entries []adjEntry  // sorted ascending by neighbour, unique neighbour; valid iff state==vecMany
	events  []adjEvent  // sorted ascending by t; one entry per push call, duplicates allowed
}

// Push appends an adjacency event for neighbour at time t carrying tag.
// Idempotent on the (neighbour, tag) adjacency entry: if neighbour was
// already linked, its recorded tag is left untouched (the edge id does
// not change across re-links), but the time event is always appended.
func (a *TAdjSet) Push(t int64, neighbour uint64, tag edgeTag) {
	switch a.state {
	case vecEmpty:
		a.state = vecOne
		a.one = adjEntry{neighbour, tag}
	case vecOne:
		if a.one.neighbour != neighbour {
			entries := []adjEntry{a.one, {neighbour, tag}}
			sort.Slice(entries, func(i, j int) bool { return entries[i].neighbour < entries[j].neighbour })
			a.entries = entries
			a.state = vecMany
		}
	case vecMany:
		i := sort.Search(len(a.entries), func(i int) bool { return a.entries[i].neighbour >= neighbour })
		if i >= len(a.entries) || a.entries[i].neighbour != neighbour {
			a.entries = append(a.entries, adjEntry{})
			copy(a.entries[i+1:], a.entries[i:])
			a.entries[i] = adjEntry{neighbour, tag}
		}
	}
	j := sort.Search(len(a.events), func(j int) bool { return a.events[j].t >= t })
	a.events = append(a.events, adjEvent{})
	copy(a.events[j+1:], a.events[j:])
	a.events[j] = adjEvent{t, neighbour}
}

func (a *TAdjSet) lookup(neighbour uint64) (edgeTag, bool) {
	switch a.state {
	case vecEmpty:
		return 0, false
	case vecOne:
		if a.one.neighbour == neighbour {
			return a.one.tag, true
		}
		return 0, false
	default:
		i := sort.Search(len(a.entries), func(i int) bool { return a.entries[i].neighbour >= neighbour })
		if i < len(a.entries) && a.entries[i].neighbour == neighbour {
			return a.entries[i].tag, true
		}
		return 0, false
	}
}

func toEdgeRef(neighbour uint64, tag edgeTag) EdgeRef {
	return EdgeRef{
		EdgeID:   tag.edgeID(),
		DstGID:   neighbour,
		DstPID:   neighbour,
		IsRemote: tag.isRemote(),
	}
}

// Find returns the latest-known edge-tag entry for neighbour, ignoring
// time entirely.
func (a *TAdjSet) Find(neighbour uint64) (EdgeRef, bool) {
	tag, ok := a.lookup(neighbour)
	if !ok {
		return EdgeRef{}, false
	}
	return toEdgeRef(neighbour, tag), true
}

// FindWindow reports whether any event for neighbour falls within w, and
// if so returns its EdgeRef (tag is time-independent).
func (a *TAdjSet) FindWindow(neighbour uint64, w Window) (EdgeRef, bool) {
	tag, ok := a.lookup(neighbour)
	if !ok {
		return EdgeRef{}, false
	}
	for _, ev := range a.events {
		if ev.neighbour == neighbour && w.Contains(ev.t) {
			return toEdgeRef(neighbour, tag), true
		}
	}
	return EdgeRef{}, false
}

// Len reports the number of distinct neighbours linked.
func (a *TAdjSet) Len() int {
	switch a.state {
	case vecEmpty:
		return 0
	case vecOne:
		return 1
	default:
		return len(a.entries)
	}
}

// LenWindow reports the number of distinct neighbours with at least one
// event in w.
func (a *TAdjSet) LenWindow(w Window) int {
	n := 0
	a.IterWindow(w)(func(uint64, EdgeRef) bool { n++; return true })
	return n
}

// Iter yields (neighbour, EdgeRef) pairs, deduplicated by neighbour,
// ascending by neighbour.
func (a *TAdjSet) Iter() func(yield func(uint64, EdgeRef) bool) {
	return func(yield func(uint64, EdgeRef) bool) {
		switch a.state {
		case vecEmpty:
			return
		case vecOne:
			yield(a.one.neighbour, toEdgeRef(a.one.neighbour, a.one.tag))
		default:
			for _, e := range a.entries {
				if !yield(e.neighbour, toEdgeRef(e.neighbour, e.tag)) {
					return
				}
			}
		}
	}
}

// IterWindow yields (neighbour, EdgeRef) pairs for neighbours touched
// within w, deduplicated by neighbour, ascending by neighbour.
func (a *TAdjSet) IterWindow(w Window) func(yield func(uint64, EdgeRef) bool) {
	return func(yield func(uint64, EdgeRef) bool) {
		touched := pools.GetUint64Set()
		defer pools.PutUint64Set(touched)
		start := sort.Search(len(a.events), func(i int) bool { return a.events[i].t >= w.Start })
		for i := start; i < len(a.events) && a.events[i].t < w.End; i++ {
			touched[a.events[i].neighbour] = struct{}{}
		}
		a.Iter()(func(neighbour uint64, ref EdgeRef) bool {
			if _, ok := touched[neighbour]; !ok {
				return true
			}
			return yield(neighbour, ref)
		})
	}
}

// IterWindowT yields one (neighbour, t, EdgeRef) item per event within w,
// ascending by t.
func (a *TAdjSet) IterWindowT(w Window) func(yield func(uint64, int64, EdgeRef) bool) {
	return func(yield func(uint64, int64, EdgeRef) bool) {
		start := sort.Search(len(a.events), func(i int) bool { return a.events[i].t >= w.Start })
		for i := start; i < len(a.events) && a.events[i].t < w.End; i++ {
			tag, ok := a.lookup(a.events[i].neighbour)
			if !ok {
				continue
			}
			ref := toEdgeRef(a.events[i].neighbour, tag)
			ref.Time = a.events[i].t
			ref.TimeSet = true
			if !yield(a.events[i].neighbour, a.events[i].t, ref) {
				return
			}
		}
	}
}
