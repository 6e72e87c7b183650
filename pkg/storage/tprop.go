package storage

// TProp is a typed wrapper over TCell, dispatching to the right scalar
// cell by the PropKind established on first write: component C2. A
// cross-type Set after the first write is a fault (ErrTypeMismatch);
// Empty is a distinct state from any populated cell.
type TProp struct {
	kind PropKind
	str  TCell[string]
	i32  TCell[int32]
	i64  TCell[int64]
	u32  TCell[uint32]
	u64  TCell[uint64]
	f32  TCell[float32]
	f64  TCell[float64]
	b    TCell[bool]
}

// IsEmpty reports whether no value has ever been set on this TProp.
func (p *TProp) IsEmpty() bool { return p.kind == KindEmpty }

// Set writes v at time t. The first call establishes p's kind; subsequent
// calls with a Prop of a different kind return ErrTypeMismatch and mutate
// nothing.
func (p *TProp) Set(t int64, v Prop) error {
	if p.kind == KindEmpty {
		p.kind = v.Kind()
	} else if p.kind != v.Kind() {
		return ErrTypeMismatch
	}
	switch p.kind {
	case KindStr:
		s, _ := v.AsStr()
		p.str.Set(t, s)
	case KindI32:
		n, _ := v.AsI32()
		p.i32.Set(t, n)
	case KindI64:
		n, _ := v.AsI64()
		p.i64.Set(t, n)
	case KindU32:
		n, _ := v.AsU32()
		p.u32.Set(t, n)
	case KindU64:
		n, _ := v.AsU64()
		p.u64.Set(t, n)
	case KindF32:
		n, _ := v.AsF32()
		p.f32.Set(t, n)
	case KindF64:
		n, _ := v.AsF64()
		p.f64.Set(t, n)
	case KindBool:
		b, _ := v.AsBool()
		p.b.Set(t, b)
	}
	return nil
}

// Latest returns the most recently written Prop, cloned out.
func (p *TProp) Latest() (Prop, bool) {
	switch p.kind {
	case KindStr:
		if v, ok := p.str.Latest(); ok {
			return Str(v), true
		}
	case KindI32:
		if v, ok := p.i32.Latest(); ok {
			return I32(v), true
		}
	case KindI64:
		if v, ok := p.i64.Latest(); ok {
			return I64(v), true
		}
	case KindU32:
		if v, ok := p.u32.Latest(); ok {
			return U32(v), true
		}
	case KindU64:
		if v, ok := p.u64.Latest(); ok {
			return U64(v), true
		}
	case KindF32:
		if v, ok := p.f32.Latest(); ok {
			return F32(v), true
		}
	case KindF64:
		if v, ok := p.f64.Latest(); ok {
			return F64(v), true
		}
	case KindBool:
		if v, ok := p.b.Latest(); ok {
			return Bool(v), true
		}
	}
	return Prop{}, false
}

// Iter yields (t, Prop) pairs across the whole history, ascending t.
func (p *TProp) Iter() func(yield func(int64, Prop) bool) {
	return func(yield func(int64, Prop) bool) {
		switch p.kind {
		case KindStr:
			p.str.Iter()(func(t int64, v string) bool { return yield(t, Str(v)) })
		case KindI32:
			p.i32.Iter()(func(t int64, v int32) bool { return yield(t, I32(v)) })
		case KindI64:
			p.i64.Iter()(func(t int64, v int64) bool { return yield(t, I64(v)) })
		case KindU32:
			p.u32.Iter()(func(t int64, v uint32) bool { return yield(t, U32(v)) })
		case KindU64:
			p.u64.Iter()(func(t int64, v uint64) bool { return yield(t, U64(v)) })
		case KindF32:
			p.f32.Iter()(func(t int64, v float32) bool { return yield(t, F32(v)) })
		case KindF64:
			p.f64.Iter()(func(t int64, v float64) bool { return yield(t, F64(v)) })
		case KindBool:
			p.b.Iter()(func(t int64, v bool) bool { return yield(t, Bool(v)) })
		}
	}
}

// IterWindow yields (t, Prop) pairs with t in w, ascending t.
func (p *TProp) IterWindow(w Window) func(yield func(int64, Prop) bool) {
	return func(yield func(int64, Prop) bool) {
		switch p.kind {
		case KindStr:
			p.str.IterWindow(w)(func(t int64, v string) bool { return yield(t, Str(v)) })
		case KindI32:
			p.i32.IterWindow(w)(func(t int64, v int32) bool { return yield(t, I32(v)) })
		case KindI64:
			p.i64.IterWindow(w)(func(t int64, v int64) bool { return yield(t, I64(v)) })
		case KindU32:
			p.u32.IterWindow(w)(func(t int64, v uint32) bool { return yield(t, U32(v)) })
		case KindU64:
			p.u64.IterWindow(w)(func(t int64, v uint64) bool { return yield(t, U64(v)) })
		case KindF32:
			p.f32.IterWindow(w)(func(t int64, v float32) bool { return yield(t, F32(v)) })
		case KindF64:
			p.f64.IterWindow(w)(func(t int64, v float64) bool { return yield(t, F64(v)) })
		case KindBool:
			p.b.IterWindow(w)(func(t int64, v bool) bool { return yield(t, Bool(v)) })
		}
	}
}
