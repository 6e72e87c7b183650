package views

import (
	"github.com/dd0wney/tgraph/pkg/sharded"
	"github.com/dd0wney/tgraph/pkg/storage"
)

// WindowedGraph is an immutable (underlying, window) pair. Every read
// delegates to the corresponding windowed operation on the underlying
// ShardedGraph with this view's bounds. Window restricts further via
// storage.Window.Clamp, never widens.
type WindowedGraph struct {
	g *sharded.ShardedGraph
	w storage.Window
}

// New wraps g with the unrestricted [MinTime, MaxTime) window.
func New(g *sharded.ShardedGraph) WindowedGraph {
	return WindowedGraph{g: g, w: storage.AllTime()}
}

// Window restricts v to [start, end), clamped against v's existing
// bounds: window(a,b).window(c,d) == window(max(a,c), min(b,d)).
func (v WindowedGraph) Window(start, end int64) WindowedGraph {
	return WindowedGraph{g: v.g, w: v.w.Clamp(storage.Window{Start: start, End: end})}
}

// At restricts v to the instant [t, t+1).
func (v WindowedGraph) At(t int64) WindowedGraph {
	return v.Window(t, t+1)
}

func (v WindowedGraph) HasVertex(gid uint64) bool    { return v.g.HasVertexWindow(gid, v.w) }
func (v WindowedGraph) HasEdge(src, dst uint64) bool { return v.g.HasEdgeWindow(src, dst, v.w) }
func (v WindowedGraph) NumVertices() int             { return v.g.NumVerticesWindow(v.w) }
func (v WindowedGraph) NumEdges() int                { return v.g.NumEdgesWindow(v.w) }
func (v WindowedGraph) EarliestTime() (int64, bool)  { return v.g.EarliestTimeWindow(v.w) }
func (v WindowedGraph) LatestTime() (int64, bool)    { return v.g.LatestTimeWindow(v.w) }

// VertexIDs yields the gids with activity within this view's window.
func (v WindowedGraph) VertexIDs() func(yield func(uint64) bool) {
	return v.g.VertexIDsWindow(v.w)
}

// Vertex returns an ergonomic handle for gid under this view, regardless
// of whether gid has activity in the window (callers check HasVertex or
// rely on windowed readers returning empty results).
func (v WindowedGraph) Vertex(gid uint64) WindowedVertex {
	return WindowedVertex{view: v, gid: gid}
}

// Vertices yields a WindowedVertex handle for every vertex active in
// this view's window.
func (v WindowedGraph) Vertices() func(yield func(WindowedVertex) bool) {
	return func(yield func(WindowedVertex) bool) {
		v.VertexIDs()(func(gid uint64) bool {
			return yield(v.Vertex(gid))
		})
	}
}

// Edge returns an ergonomic handle for the src->dst edge under this
// view. layer is accepted for API symmetry with add_edge/add_edge_properties;
// the underlying store holds layer as edge metadata rather than a
// separate lookup axis (see pkg/storage's AddEdge).
func (v WindowedGraph) Edge(src, dst uint64, layer string) WindowedEdge {
	return WindowedEdge{view: v, src: src, dst: dst, layer: layer}
}

// Edges yields a WindowedEdge handle for every OUT edge of every vertex
// active in this view's window, so each logical edge appears once (from
// its source's perspective).
func (v WindowedGraph) Edges() func(yield func(WindowedEdge) bool) {
	return func(yield func(WindowedEdge) bool) {
		cont := true
		v.VertexIDs()(func(gid uint64) bool {
			v.g.EdgesOfWindow(gid, storage.Out, v.w)(func(ref storage.EdgeRef) bool {
				cont = yield(WindowedEdge{view: v, src: ref.SrcGID, dst: ref.DstGID})
				return cont
			})
			return cont
		})
	}
}
