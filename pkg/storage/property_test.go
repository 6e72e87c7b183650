package storage

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestTemporalGraphInvariants checks the properties that must hold for any
// valid history of writes against a single shard.
func TestTemporalGraphInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Property 1: id stability - a gid always resolves to the same pid.
	properties.Property("vertex id is stable across repeated adds", prop.ForAll(
		func(gid uint64, times []int64) bool {
			if len(times) == 0 {
				return true
			}
			g := NewTemporalGraph()
			first := g.AddVertex(times[0], gid, nil)
			for _, tm := range times[1:] {
				if g.AddVertex(tm, gid, nil) != first {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
		gen.SliceOf(gen.Int64Range(0, 1000)),
	))

	// Property 2: bidirectional edge consistency for local edges.
	properties.Property("local edge id matches on both endpoints", prop.ForAll(
		func(t int64, src, dst uint64) bool {
			if src == dst {
				return true
			}
			g := NewTemporalGraph()
			if err := g.AddEdge(t, src, dst, nil, ""); err != nil {
				return false
			}
			out, ok := g.FindLocalOutbound(src, dst)
			if !ok {
				return false
			}
			dstPID, _ := g.lookup(dst)
			found := false
			match := false
			g.Edges(dstPID, In)(func(ref EdgeRef) bool {
				if ref.SrcGID == src {
					found = true
					match = ref.EdgeID == out.EdgeID
					return false
				}
				return true
			})
			return found && match
		},
		gen.Int64Range(0, 1000),
		gen.UInt64Range(0, 1000),
		gen.UInt64Range(0, 1000),
	))

	// Property 3: window monotonicity - a narrower window's vertex set is a
	// subset of a wider window's vertex set.
	properties.Property("vertex_ids_window is monotone in window width", prop.ForAll(
		func(events []int64) bool {
			g := NewTemporalGraph()
			for i, tm := range events {
				g.AddVertex(tm, uint64(i), nil)
			}
			narrow := map[uint64]bool{}
			g.VertexIDsWindow(Window{Start: 0, End: 50})(func(gid uint64) bool {
				narrow[gid] = true
				return true
			})
			wide := map[uint64]bool{}
			g.VertexIDsWindow(Window{Start: 0, End: 100})(func(gid uint64) bool {
				wide[gid] = true
				return true
			})
			for gid := range narrow {
				if !wide[gid] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int64Range(0, 99)),
	))

	// Property 4: degree equals the count of distinct neighbours, for every
	// direction.
	properties.Property("degree equals distinct neighbour count", prop.ForAll(
		func(edges []uint64) bool {
			if len(edges) == 0 {
				return true
			}
			g := NewTemporalGraph()
			for i, dst := range edges {
				g.AddEdge(int64(i), 0, dst%17, nil, "")
			}
			pid, _ := g.lookup(0)
			for _, dir := range []Direction{Out, In, Both} {
				seen := map[uint64]bool{}
				g.Neighbours(pid, dir)(func(n uint64) bool {
					seen[n] = true
					return true
				})
				if g.Degree(pid, dir) != len(seen) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt64Range(0, 100)),
	))

	// Property 5: time-index completeness - every vertex added at time t
	// appears in the window [t, t+1).
	properties.Property("vertex_ids_window([t,t+1)) contains vertices added at t", prop.ForAll(
		func(gids []uint64, t int64) bool {
			g := NewTemporalGraph()
			for _, gid := range gids {
				g.AddVertex(t, gid, nil)
			}
			found := map[uint64]bool{}
			g.VertexIDsWindow(Window{Start: t, End: t + 1})(func(gid uint64) bool {
				found[gid] = true
				return true
			})
			for _, gid := range gids {
				if !found[gid] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt64Range(0, 50)),
		gen.Int64Range(-1000, 1000),
	))

	// Property 7: re-adding a vertex at the same time is equivalent to a
	// single call - no duplicate activity event, property state unchanged.
	properties.Property("re-add at the same time is idempotent", prop.ForAll(
		func(gid uint64, t int64) bool {
			g := NewTemporalGraph()
			g.AddVertex(t, gid, nil)
			pid, _ := g.lookup(gid)
			before := g.activity[pid].Len()
			g.AddVertex(t, gid, nil)
			after := g.activity[pid].Len()
			return before == after && before == 1
		},
		gen.UInt64(),
		gen.Int64Range(-1000, 1000),
	))

	// Property 8: window clamp narrows to the intersection, regardless of
	// clamp order.
	properties.Property("window clamp computes the intersection", prop.ForAll(
		func(a, b, c, d int64) bool {
			w1 := Window{Start: a, End: b}
			w2 := Window{Start: c, End: d}
			got := w1.Clamp(w2)
			wantStart := a
			if c > wantStart {
				wantStart = c
			}
			wantEnd := b
			if d < wantEnd {
				wantEnd = d
			}
			return got.Start == wantStart && got.End == wantEnd
		},
		gen.Int64Range(-100, 100),
		gen.Int64Range(-100, 100),
		gen.Int64Range(-100, 100),
		gen.Int64Range(-100, 100),
	))

	properties.TestingRun(t)
}
