// Package persistence implements component C9: saving a ShardedGraph to
// a directory of per-shard snapshot files and loading it back, grounded
// on the teacher's pkg/wal compressed-WAL framing (length-prefixed,
// snappy-compressed, crc32-checked records) and encoding/gob for the
// payload itself.
package persistence

import "github.com/dd0wney/tgraph/pkg/storage"

// propWire is the gob-friendly mirror of storage.Prop, built through its
// public Kind()/As* accessors since Prop's fields are unexported by design.
type propWire struct {
	Kind storage.PropKind
	Str  string
	I64  int64
	U64  uint64
	F32  float32
	F64  float64
	Bool bool
}

func encodeProp(p storage.Prop) propWire {
	w := propWire{Kind: p.Kind()}
	switch w.Kind {
	case storage.KindStr:
		w.Str, _ = p.AsStr()
	case storage.KindI32:
		v, _ := p.AsI32()
		w.I64 = int64(v)
	case storage.KindI64:
		w.I64, _ = p.AsI64()
	case storage.KindU32:
		v, _ := p.AsU32()
		w.U64 = uint64(v)
	case storage.KindU64:
		w.U64, _ = p.AsU64()
	case storage.KindF32:
		w.F32, _ = p.AsF32()
	case storage.KindF64:
		w.F64, _ = p.AsF64()
	case storage.KindBool:
		w.Bool, _ = p.AsBool()
	}
	return w
}

func decodeProp(w propWire) storage.Prop {
	switch w.Kind {
	case storage.KindStr:
		return storage.Str(w.Str)
	case storage.KindI32:
		return storage.I32(int32(w.I64))
	case storage.KindI64:
		return storage.I64(w.I64)
	case storage.KindU32:
		return storage.U32(uint32(w.U64))
	case storage.KindU64:
		return storage.U64(w.U64)
	case storage.KindF32:
		return storage.F32(w.F32)
	case storage.KindF64:
		return storage.F64(w.F64)
	case storage.KindBool:
		return storage.Bool(w.Bool)
	default:
		return storage.Prop{}
	}
}

type timedPropWire struct {
	Time  int64
	Value propWire
}

func encodeHistory(iter func(yield func(int64, storage.Prop) bool)) []timedPropWire {
	var out []timedPropWire
	iter(func(t int64, v storage.Prop) bool {
		out = append(out, timedPropWire{Time: t, Value: encodeProp(v)})
		return true
	})
	return out
}

// vertexWire captures everything pkg/storage's public API exposes about
// one vertex: its activity history, its temporal property histories,
// and its static properties.
type vertexWire struct {
	GID      uint64
	Activity []int64
	Temporal map[string][]timedPropWire
	Static   map[string]propWire
}

// edgeWire captures one edge as observed from a single shard's point of
// view. Direction distinguishes a normal/outbound-owned entry (local or
// remote-out, replayed via AddEdge/AddEdgeRemoteOut) from an
// inbound-remote-only entry this shard holds because it is the
// destination of a cross-shard edge whose source lives elsewhere
// (replayed via AddEdgeRemoteInto).
type edgeWire struct {
	SrcGID, DstGID uint64
	Remote         bool
	Direction      string // "out" or "in"
	Events         []int64
	Temporal       map[string][]timedPropWire
	Static         map[string]propWire
}

// shardWire is the full serialisable state of one TemporalGraph shard.
type shardWire struct {
	Vertices []vertexWire
	Edges    []edgeWire
}
