package persistence

import "github.com/dd0wney/tgraph/pkg/storage"

// restoreShard replays w into tg, which must be empty. Replay proceeds
// vertex-by-vertex (activity, then temporal property values at their
// original times, then static properties) and edge-by-edge (each
// recorded event replayed through the write call matching the edge's
// locality, then static properties applied once the edge id is resolved).
func restoreShard(tg *storage.TemporalGraph, w shardWire) {
	for _, vw := range w.Vertices {
		restoreVertex(tg, vw)
	}
	for _, ew := range w.Edges {
		restoreEdge(tg, ew)
	}
}

func restoreVertex(tg *storage.TemporalGraph, vw vertexWire) {
	for _, t := range vw.Activity {
		tg.AddVertex(t, vw.GID, nil)
	}
	for name, history := range vw.Temporal {
		for _, tp := range history {
			tg.AddVertex(tp.Time, vw.GID, []storage.NamedProp{{Name: name, Value: decodeProp(tp.Value)}})
		}
	}
	if len(vw.Static) > 0 {
		props := make([]storage.NamedProp, 0, len(vw.Static))
		for name, v := range vw.Static {
			props = append(props, storage.NamedProp{Name: name, Value: decodeProp(v)})
		}
		tg.AddVertexProperties(vw.GID, props)
	}
}

func restoreEdge(tg *storage.TemporalGraph, ew edgeWire) {
	for _, t := range ew.Events {
		props := propsAtTime(ew.Temporal, t)
		switch {
		case ew.Direction == "in":
			tg.AddEdgeRemoteInto(t, ew.SrcGID, ew.DstGID, props)
		case ew.Remote:
			tg.AddEdgeRemoteOut(t, ew.SrcGID, ew.DstGID, props)
		default:
			tg.AddEdge(t, ew.SrcGID, ew.DstGID, props, "")
		}
	}
	if len(ew.Static) == 0 {
		return
	}
	var ref storage.EdgeRef
	var ok bool
	switch {
	case ew.Direction == "in":
		ref, ok = tg.FindInboundRemote(ew.SrcGID, ew.DstGID)
	case ew.Remote:
		ref, ok = tg.FindOutboundRemote(ew.SrcGID, ew.DstGID)
	default:
		ref, ok = tg.FindLocalOutbound(ew.SrcGID, ew.DstGID)
	}
	if !ok {
		return
	}
	props := make([]storage.NamedProp, 0, len(ew.Static))
	for name, v := range ew.Static {
		props = append(props, storage.NamedProp{Name: name, Value: decodeProp(v)})
	}
	tg.UpsertEdgeStatic(ref.EdgeID, props)
}

func propsAtTime(temporal map[string][]timedPropWire, t int64) []storage.NamedProp {
	var props []storage.NamedProp
	for name, history := range temporal {
		for _, tp := range history {
			if tp.Time == t {
				props = append(props, storage.NamedProp{Name: name, Value: decodeProp(tp.Value)})
			}
		}
	}
	return props
}
