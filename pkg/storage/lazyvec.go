package storage

// lazyTPropVec is a sparse, indexed vector of TProp keyed by interned
// property-name id, staged Empty -> One -> Many, grounded on the original
// Rust source's LazyVec/TPropVec (docbrown/core/src/lazy_vec.rs,
// docbrown/core/src/props.rs). Most entities carry 0-1 temporal property
// in practice, so the One stage avoids allocating a full vector.
type lazyTPropVec struct {
	state vecState
	id0   uint32
	one   TProp
	many  []TProp // indexed by prop id; holes are IsEmpty() TProp zero values
}

type vecState uint8

const (
	vecEmpty vecState = iota
	vecOne
	vecMany
)

// getOrCreate returns a pointer to the TProp slot for id, growing the
// vector's representation as needed.
func (v *lazyTPropVec) getOrCreate(id uint32) *TProp {
	switch v.state {
	case vecEmpty:
		v.state = vecOne
		v.id0 = id
		return &v.one
	case vecOne:
		if v.id0 == id {
			return &v.one
		}
		maxID := id
		if v.id0 > maxID {
			maxID = v.id0
		}
		many := make([]TProp, maxID+1)
		many[v.id0] = v.one
		v.many = many
		v.state = vecMany
		return &v.many[id]
	default:
		if uint32(len(v.many)) <= id {
			grown := make([]TProp, id+1)
			copy(grown, v.many)
			v.many = grown
		}
		return &v.many[id]
	}
}

// get returns the TProp slot for id without creating it.
func (v *lazyTPropVec) get(id uint32) (*TProp, bool) {
	switch v.state {
	case vecEmpty:
		return nil, false
	case vecOne:
		if v.id0 == id {
			return &v.one, true
		}
		return nil, false
	default:
		if id < uint32(len(v.many)) {
			return &v.many[id], true
		}
		return nil, false
	}
}

// staticVec is a sparse, write-once vector of Prop keyed by interned
// property-name id. Re-assigning an already-set id with a different value
// is a StaticPropertyOverwrite fault, grounded on static_props.rs's
// StaticPropVec (which panics on "illegal change"; here it returns an
// error instead, matching spec.md §7's "Surface; no state mutated").
type staticVec struct {
	state vecState
	id0   uint32
	one   Prop
	many  []Prop // holes are the Prop zero value (KindEmpty)
}

func (v *staticVec) get(id uint32) (Prop, bool) {
	switch v.state {
	case vecEmpty:
		return Prop{}, false
	case vecOne:
		if v.id0 == id {
			return v.one, true
		}
		return Prop{}, false
	default:
		if id < uint32(len(v.many)) && !v.many[id].IsEmpty() {
			return v.many[id], true
		}
		return Prop{}, false
	}
}

// set assigns value to id, failing if id already holds a different value.
func (v *staticVec) set(id uint32, value Prop) error {
	switch v.state {
	case vecEmpty:
		v.state = vecOne
		v.id0 = id
		v.one = value
		return nil
	case vecOne:
		if v.id0 == id {
			if v.one == value {
				return nil
			}
			return ErrStaticPropertyOverwrite
		}
		maxID := id
		if v.id0 > maxID {
			maxID = v.id0
		}
		many := make([]Prop, maxID+1)
		many[v.id0] = v.one
		many[id] = value
		v.many = many
		v.state = vecMany
		return nil
	default:
		if uint32(len(v.many)) <= id {
			grown := make([]Prop, id+1)
			copy(grown, v.many)
			v.many = grown
		}
		if v.many[id].IsEmpty() {
			v.many[id] = value
			return nil
		}
		if v.many[id] == value {
			return nil
		}
		return ErrStaticPropertyOverwrite
	}
}

// filledIDs returns the ids that currently hold a value, for iteration.
func (v *staticVec) filledIDs() []uint32 {
	switch v.state {
	case vecEmpty:
		return nil
	case vecOne:
		return []uint32{v.id0}
	default:
		ids := make([]uint32, 0, len(v.many))
		for id, p := range v.many {
			if !p.IsEmpty() {
				ids = append(ids, uint32(id))
			}
		}
		return ids
	}
}

func (v *lazyTPropVec) filledIDs() []uint32 {
	switch v.state {
	case vecEmpty:
		return nil
	case vecOne:
		return []uint32{v.id0}
	default:
		ids := make([]uint32, 0, len(v.many))
		for id, p := range v.many {
			if !p.IsEmpty() {
				ids = append(ids, uint32(id))
			}
		}
		return ids
	}
}
