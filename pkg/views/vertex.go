package views

import "github.com/dd0wney/tgraph/pkg/storage"

// WindowedVertex is an ergonomic handle on one vertex under a
// WindowedGraph's bounds.
type WindowedVertex struct {
	view WindowedGraph
	gid  uint64
}

// ID returns the vertex's global id.
func (v WindowedVertex) ID() uint64 { return v.gid }

// Exists reports whether this vertex has activity within the view's window.
func (v WindowedVertex) Exists() bool { return v.view.g.HasVertexWindow(v.gid, v.view.w) }

// Degree reports the vertex's degree in direction dir within the window.
func (v WindowedVertex) Degree(dir storage.Direction) int {
	return v.view.g.DegreeWindow(v.gid, dir, v.view.w)
}

// Neighbours yields this vertex's neighbours in direction dir within the window.
func (v WindowedVertex) Neighbours(dir storage.Direction) func(yield func(uint64) bool) {
	return v.view.g.NeighboursWindow(v.gid, dir, v.view.w)
}

// EdgesOf yields this vertex's edges in direction dir, deduplicated by
// neighbour, within the window.
func (v WindowedVertex) EdgesOf(dir storage.Direction) func(yield func(WindowedEdge) bool) {
	return func(yield func(WindowedEdge) bool) {
		cont := true
		v.view.g.EdgesOfWindow(v.gid, dir, v.view.w)(func(ref storage.EdgeRef) bool {
			cont = yield(WindowedEdge{view: v.view, src: ref.SrcGID, dst: ref.DstGID})
			return cont
		})
	}
}

// EdgesOfT yields one WindowedEdge per linking event in direction dir
// within the window, rather than one per distinct neighbour.
func (v WindowedVertex) EdgesOfT(dir storage.Direction) func(yield func(WindowedEdge) bool) {
	return func(yield func(WindowedEdge) bool) {
		cont := true
		v.view.g.EdgesOfWindowT(v.gid, dir, v.view.w)(func(ref storage.EdgeRef) bool {
			cont = yield(WindowedEdge{view: v.view, src: ref.SrcGID, dst: ref.DstGID})
			return cont
		})
	}
}

// Prop returns the value history of one of this vertex's temporal
// properties, restricted to the view's window.
func (v WindowedVertex) Prop(name string) (func(yield func(int64, storage.Prop) bool), bool) {
	prop, ok := v.view.g.VertexProp(v.gid, name)
	if !ok {
		return nil, false
	}
	return prop.IterWindow(v.view.w), true
}

// Props returns the names of every temporal property ever set on this vertex.
func (v WindowedVertex) Props() []string {
	return v.view.g.VertexProps(v.gid)
}

// StaticProp returns the static value of one of this vertex's properties.
func (v WindowedVertex) StaticProp(name string) (storage.Prop, bool) {
	return v.view.g.StaticVertexProp(v.gid, name)
}
