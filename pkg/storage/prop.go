// Package storage implements the temporal adjacency index, the temporal
// property store, and the single-shard temporal graph engine (components
// C1-C6 of the design). Sharding, views, and persistence live in sibling
// packages that compose this one.
package storage

import "fmt"

// PropKind tags the variant held by a Prop. The set is fixed and enumerated
// rather than open, matching spec.md's "no duck typing" decision.
type PropKind uint8

const (
	KindEmpty PropKind = iota
	KindStr
	KindI32
	KindI64
	KindU32
	KindU64
	KindF32
	KindF64
	KindBool
)

func (k PropKind) String() string {
	switch k {
	case KindStr:
		return "string"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindBool:
		return "bool"
	default:
		return "empty"
	}
}

// Prop is a tagged union over the scalar property types the store admits:
// string, i32, i64, u32, u64, f32, f64, bool. There is no null; absence of
// a value is modelled by the absence of an entry in a PropertyStore, never
// by a Prop in the zero/Empty kind living in one.
type Prop struct {
	kind PropKind
	str  string
	i64  int64  // backs I32 and I64
	u64  uint64 // backs U32 and U64
	f64  float64
	f32  float32
	b    bool
}

// Str builds a string Prop.
func Str(v string) Prop { return Prop{kind: KindStr, str: v} }

// I32 builds an i32 Prop.
func I32(v int32) Prop { return Prop{kind: KindI32, i64: int64(v)} }

// I64 builds an i64 Prop.
func I64(v int64) Prop { return Prop{kind: KindI64, i64: v} }

// U32 builds a u32 Prop.
func U32(v uint32) Prop { return Prop{kind: KindU32, u64: uint64(v)} }

// U64 builds a u64 Prop.
func U64(v uint64) Prop { return Prop{kind: KindU64, u64: v} }

// F32 builds an f32 Prop.
func F32(v float32) Prop { return Prop{kind: KindF32, f32: v} }

// F64 builds an f64 Prop.
func F64(v float64) Prop { return Prop{kind: KindF64, f64: v} }

// Bool builds a bool Prop.
func Bool(v bool) Prop { return Prop{kind: KindBool, b: v} }

// Kind reports the variant held by p.
func (p Prop) Kind() PropKind { return p.kind }

// IsEmpty reports whether p is the zero value, i.e. no variant set.
func (p Prop) IsEmpty() bool { return p.kind == KindEmpty }

// AsStr returns the string value and true iff p holds a string.
func (p Prop) AsStr() (string, bool) {
	if p.kind != KindStr {
		return "", false
	}
	return p.str, true
}

// AsI32 returns the i32 value and true iff p holds an i32.
func (p Prop) AsI32() (int32, bool) {
	if p.kind != KindI32 {
		return 0, false
	}
	return int32(p.i64), true
}

// AsI64 returns the i64 value and true iff p holds an i64.
func (p Prop) AsI64() (int64, bool) {
	if p.kind != KindI64 {
		return 0, false
	}
	return p.i64, true
}

// AsU32 returns the u32 value and true iff p holds a u32.
func (p Prop) AsU32() (uint32, bool) {
	if p.kind != KindU32 {
		return 0, false
	}
	return uint32(p.u64), true
}

// AsU64 returns the u64 value and true iff p holds a u64.
func (p Prop) AsU64() (uint64, bool) {
	if p.kind != KindU64 {
		return 0, false
	}
	return p.u64, true
}

// AsF32 returns the f32 value and true iff p holds an f32.
func (p Prop) AsF32() (float32, bool) {
	if p.kind != KindF32 {
		return 0, false
	}
	return p.f32, true
}

// AsF64 returns the f64 value and true iff p holds an f64.
func (p Prop) AsF64() (float64, bool) {
	if p.kind != KindF64 {
		return 0, false
	}
	return p.f64, true
}

// AsBool returns the bool value and true iff p holds a bool.
func (p Prop) AsBool() (bool, bool) {
	if p.kind != KindBool {
		return false, false
	}
	return p.b, true
}

// String renders p for debugging/logging; it is not a serialisation format.
func (p Prop) String() string {
	switch p.kind {
	case KindStr:
		return p.str
	case KindI32:
		return fmt.Sprintf("%d", int32(p.i64))
	case KindI64:
		return fmt.Sprintf("%d", p.i64)
	case KindU32:
		return fmt.Sprintf("%d", uint32(p.u64))
	case KindU64:
		return fmt.Sprintf("%d", p.u64)
	case KindF32:
		return fmt.Sprintf("%g", p.f32)
	case KindF64:
		return fmt.Sprintf("%g", p.f64)
	case KindBool:
		return fmt.Sprintf("%t", p.b)
	default:
		return "<empty>"
	}
}

// NamedProp pairs a property name with its value for the write API.
type NamedProp struct {
	Name string
	Value Prop
}
