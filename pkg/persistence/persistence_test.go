package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dd0wney/tgraph/pkg/sharded"
	"github.com/dd0wney/tgraph/pkg/storage"
)

func buildRoundTripGraph() *sharded.ShardedGraph {
	g := sharded.New(3)
	// local edges (various shards)
	g.AddEdge(1, 3, 6, []storage.NamedProp{{Name: "w", Value: storage.I64(1)}}, "")
	g.AddEdge(4, 3, 6, []storage.NamedProp{{Name: "w", Value: storage.I64(2)}}, "")
	// cross-shard edges
	g.AddEdge(2, 1, 2, nil, "follows")
	g.AddEdge(5, 2, 4, []storage.NamedProp{{Name: "since", Value: storage.I64(5)}}, "")
	g.AddVertexProperties(1, []storage.NamedProp{{Name: "kind", Value: storage.Str("person")}})
	g.AddEdgeProperties(1, 2, []storage.NamedProp{{Name: "weight", Value: storage.F64(0.5)}}, "")
	return g
}

// TestScenarioPersistenceRoundTrip is S6: saving and loading a multi-shard
// graph with mixed local/remote edges reproduces the same graph under
// every public reader.
func TestScenarioPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	g := buildRoundTripGraph()

	require.NoError(t, Save(g, dir))
	loaded, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, g.ShardCount(), loaded.ShardCount())
	require.Equal(t, g.NumVertices(), loaded.NumVertices())

	var wantIDs, gotIDs []uint64
	g.VertexIDs()(func(gid uint64) bool { wantIDs = append(wantIDs, gid); return true })
	loaded.VertexIDs()(func(gid uint64) bool { gotIDs = append(gotIDs, gid); return true })
	require.ElementsMatch(t, wantIDs, gotIDs)

	for _, gid := range wantIDs {
		require.Equal(t, g.HasVertex(gid), loaded.HasVertex(gid))
	}

	require.True(t, loaded.HasEdge(3, 6))
	require.True(t, loaded.HasEdge(1, 2))
	require.True(t, loaded.HasEdge(2, 4))

	wantKind, ok := g.StaticVertexProp(1, "kind")
	require.True(t, ok)
	gotKind, ok := loaded.StaticVertexProp(1, "kind")
	require.True(t, ok)
	require.Equal(t, wantKind, gotKind)

	wantWeight, ok := g.StaticEdgeProp(1, 2, "weight")
	require.True(t, ok)
	gotWeight, ok := loaded.StaticEdgeProp(1, 2, "weight")
	require.True(t, ok)
	require.Equal(t, wantWeight, gotWeight)

	wantProp, ok := g.EdgeProp(3, 6, "w")
	require.True(t, ok)
	gotProp, ok := loaded.EdgeProp(3, 6, "w")
	require.True(t, ok)

	var wantHistory, gotHistory []int64
	wantProp.Iter()(func(t int64, _ storage.Prop) bool { wantHistory = append(wantHistory, t); return true })
	gotProp.Iter()(func(t int64, _ storage.Prop) bool { gotHistory = append(gotHistory, t); return true })
	require.Equal(t, wantHistory, gotHistory)

	earliestWant, okW := g.EarliestTime()
	earliestGot, okG := loaded.EarliestTime()
	require.Equal(t, okW, okG)
	require.Equal(t, earliestWant, earliestGot)
}

func TestSaveCreatesManifestAndShardFiles(t *testing.T) {
	dir := t.TempDir()
	g := sharded.New(2)
	g.AddVertex(1, 1, nil)

	require.NoError(t, Save(g, dir))

	entries, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 2, entries.ShardCount())
}
