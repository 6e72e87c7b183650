package views

import "github.com/dd0wney/tgraph/pkg/storage"

// WindowedEdge is an ergonomic handle on one src->dst edge under a
// WindowedGraph's bounds. layer mirrors the value passed to Edge and is
// not itself used to disambiguate storage (see AddEdge's doc comment).
type WindowedEdge struct {
	view  WindowedGraph
	src   uint64
	dst   uint64
	layer string
}

// Src returns the edge's source vertex gid.
func (e WindowedEdge) Src() uint64 { return e.src }

// Dst returns the edge's destination vertex gid.
func (e WindowedEdge) Dst() uint64 { return e.dst }

// Exists reports whether this edge has a linking event within the view's window.
func (e WindowedEdge) Exists() bool {
	return e.view.g.HasEdgeWindow(e.src, e.dst, e.view.w)
}

// Prop returns the value history of one of this edge's temporal
// properties, restricted to the view's window.
func (e WindowedEdge) Prop(name string) (func(yield func(int64, storage.Prop) bool), bool) {
	prop, ok := e.view.g.EdgeProp(e.src, e.dst, name)
	if !ok {
		return nil, false
	}
	return prop.IterWindow(e.view.w), true
}

// Props returns the names of every temporal property ever set on this edge.
func (e WindowedEdge) Props() []string {
	return e.view.g.EdgeProps(e.src, e.dst)
}

// StaticProp returns the static value of one of this edge's properties.
func (e WindowedEdge) StaticProp(name string) (storage.Prop, bool) {
	return e.view.g.StaticEdgeProp(e.src, e.dst, name)
}
