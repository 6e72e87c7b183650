// Package views implements component C8: WindowedGraph/WindowedVertex/
// WindowedEdge façades over a pkg/sharded.ShardedGraph, plus the
// Perspective/PerspectiveSet generators for walking a graph's timeline.
// Grounded on docbrown/db/src/perspective.rs's PerspectiveIterator.
package views

// Perspective is a half-open time range with either side optionally
// unbounded: nil means no bound on that side.
type Perspective struct {
	Start *int64
	End   *int64
}

func ptr(v int64) *int64 { return &v }

// PerspectiveSet is a lazy, possibly-infinite sequence of Perspectives
// in strictly increasing end order.
type PerspectiveSet struct {
	start, end *int64
	increment  int64
	window     *int64
}

// Rolling builds end-aligned windows of fixed size, stepping the end
// bound by step. start/end pin the sequence's own bounds; nil leaves
// them derived from the timeline passed to Iter.
func Rolling(window, step int64, start, end *int64) PerspectiveSet {
	return PerspectiveSet{start: start, end: end, increment: step, window: ptr(window)}
}

// Expanding builds windows with an unbounded start and an end advancing
// by step.
func Expanding(step int64, start, end *int64) PerspectiveSet {
	return PerspectiveSet{start: start, end: end, increment: step, window: nil}
}

// Iter yields Perspectives for ps over [timelineStart, timelineEnd),
// used only to fill in unset start/end bounds on the set itself. The
// first cursor position is timelineStart+increment when the set has no
// explicit start, following docbrown's PerspectiveIterator.build_iter.
func (ps PerspectiveSet) Iter(timelineStart, timelineEnd int64) func(yield func(Perspective) bool) {
	start := timelineStart + ps.increment
	if ps.start != nil {
		start = *ps.start
	}
	end := timelineEnd
	if ps.end != nil {
		end = *ps.end
	}
	return func(yield func(Perspective) bool) {
		cursor := start
		for {
			limit := cursor - ps.increment
			if ps.window != nil {
				limit = cursor - *ps.window
			}
			if end <= limit {
				return
			}
			current := cursor
			cursor += ps.increment
			p := Perspective{End: ptr(current)}
			if ps.window != nil {
				p.Start = ptr(current - *ps.window)
			}
			if !yield(p) {
				return
			}
		}
	}
}
