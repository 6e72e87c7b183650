package views

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dd0wney/tgraph/pkg/sharded"
	"github.com/dd0wney/tgraph/pkg/storage"
)

// buildTestGraph wires a local (same-shard) edge 10->12 carrying a
// windowed property history, plus a cross-shard edge 22->33, under a
// 2-shard container (gid%2 routing).
func buildTestGraph() *sharded.ShardedGraph {
	g := sharded.New(2)
	g.AddEdge(4, 10, 12, []storage.NamedProp{{Name: "w", Value: storage.U32(12)}}, "")
	g.AddEdge(7, 10, 12, []storage.NamedProp{{Name: "w", Value: storage.U32(24)}}, "")
	g.AddEdge(5, 22, 33, nil, "")
	return g
}

func TestWindowedGraphVertexIDsRespectsWindow(t *testing.T) {
	g := buildTestGraph()
	view := New(g).Window(1, 5) // [1,5): the t=4 events only

	var gids []uint64
	view.VertexIDs()(func(gid uint64) bool { gids = append(gids, gid); return true })
	require.ElementsMatch(t, []uint64{10, 12}, gids)
}

func TestWindowedGraphWindowClampsNotWidens(t *testing.T) {
	g := buildTestGraph()
	base := New(g).Window(0, 100)
	narrowed := base.Window(4, 5) // [4,5): excludes vertex 33's only event at t=5

	require.True(t, narrowed.HasVertex(10))
	require.False(t, narrowed.HasVertex(33))

	widenAttempt := narrowed.Window(0, 1000)
	// widenAttempt must stay clamped to narrowed's bounds, not the wider request.
	require.False(t, widenAttempt.HasVertex(33))
}

func TestWindowedEdgePropHistory(t *testing.T) {
	g := buildTestGraph()
	view := New(g).Window(4, 8)

	edge := view.Edge(10, 12, "")
	require.True(t, edge.Exists())

	iter, ok := edge.Prop("w")
	require.True(t, ok)

	type tv struct {
		t int64
		v uint32
	}
	var got []tv
	iter(func(t int64, p storage.Prop) bool {
		v, _ := p.AsU32()
		got = append(got, tv{t, v})
		return true
	})
	require.Equal(t, []tv{{4, 12}, {7, 24}}, got)
}

func TestWindowedVertexDegreeAndNeighbours(t *testing.T) {
	g := buildTestGraph()
	view := New(g)

	v := view.Vertex(22)
	require.True(t, v.Exists())
	require.Equal(t, 1, v.Degree(storage.Both)) // sole neighbour 33 (out, cross-shard)

	var neighbours []uint64
	v.Neighbours(storage.Both)(func(n uint64) bool { neighbours = append(neighbours, n); return true })
	require.ElementsMatch(t, []uint64{33}, neighbours)
}

func TestWindowedGraphEdgesYieldsEachOnce(t *testing.T) {
	g := buildTestGraph()
	view := New(g)

	var pairs [][2]uint64
	view.Edges()(func(e WindowedEdge) bool {
		pairs = append(pairs, [2]uint64{e.Src(), e.Dst()})
		return true
	})
	require.ElementsMatch(t, [][2]uint64{{10, 12}, {22, 33}}, pairs)
}

func TestWindowedGraphNumVerticesNumEdgesAndTimeBounds(t *testing.T) {
	g := buildTestGraph()

	full := New(g)
	require.Equal(t, 4, full.NumVertices()) // 10, 12, 22, 33
	require.Equal(t, 3, full.NumEdges())     // local 10->12, remote-out 22->33, remote-in 22->33
	earliest, ok := full.EarliestTime()
	require.True(t, ok)
	require.Equal(t, int64(4), earliest)
	latest, ok := full.LatestTime()
	require.True(t, ok)
	require.Equal(t, int64(5), latest)

	narrow := full.Window(1, 5) // [1,5): the t=4 local edge only
	require.Equal(t, 2, narrow.NumVertices())
	require.Equal(t, 1, narrow.NumEdges())
	earliest, ok = narrow.EarliestTime()
	require.True(t, ok)
	require.Equal(t, int64(4), earliest)
	latest, ok = narrow.LatestTime()
	require.True(t, ok)
	require.Equal(t, int64(4), latest)

	empty := full.Window(100, 200)
	require.Equal(t, 0, empty.NumVertices())
	require.Equal(t, 0, empty.NumEdges())
	_, ok = empty.EarliestTime()
	require.False(t, ok)
	_, ok = empty.LatestTime()
	require.False(t, ok)
}

func TestPerspectiveRollingFixedWindows(t *testing.T) {
	ps := Rolling(10, 10, nil, nil)
	var got []Perspective
	ps.Iter(0, 30)(func(p Perspective) bool { got = append(got, p); return true })

	require.Len(t, got, 3)
	for i, p := range got {
		wantEnd := int64(10 * (i + 1))
		require.NotNil(t, p.End)
		require.Equal(t, wantEnd, *p.End)
		require.NotNil(t, p.Start)
		require.Equal(t, wantEnd-10, *p.Start)
	}
}

func TestPerspectiveExpandingUnboundedStart(t *testing.T) {
	ps := Expanding(10, nil, nil)
	var got []Perspective
	ps.Iter(0, 25)(func(p Perspective) bool { got = append(got, p); return true })

	for _, p := range got {
		require.Nil(t, p.Start)
	}
	// the cursor stops once end <= cursor-increment, so the last emitted
	// perspective's End may run one increment past timelineEnd.
	require.Len(t, got, 3)
	require.Equal(t, []int64{10, 20, 30}, []int64{*got[0].End, *got[1].End, *got[2].End})
}

func TestPerspectiveIterStopsEarly(t *testing.T) {
	ps := Rolling(5, 5, nil, nil)
	count := 0
	ps.Iter(0, 100)(func(Perspective) bool {
		count++
		return count < 3
	})
	require.Equal(t, 3, count)
}
