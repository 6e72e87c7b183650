package storage

import "testing"

func TestPropertyStoreTemporalWriteRead(t *testing.T) {
	names := NewNameTable()
	var ps PropertyStore

	if err := ps.UpsertTemporal(names, 10, []NamedProp{{Name: "weight", Value: F64(1.5)}}); err != nil {
		t.Fatalf("UpsertTemporal: %v", err)
	}
	if err := ps.UpsertTemporal(names, 20, []NamedProp{{Name: "weight", Value: F64(2.5)}}); err != nil {
		t.Fatalf("UpsertTemporal: %v", err)
	}

	prop, ok := ps.TemporalProp(names, "weight")
	if !ok {
		t.Fatal("TemporalProp(weight) not found")
	}
	latest, ok := prop.Latest()
	if !ok {
		t.Fatal("Latest() missing")
	}
	if v, _ := latest.AsF64(); v != 2.5 {
		t.Fatalf("Latest() = %v, want 2.5", v)
	}

	if _, ok := ps.TemporalProp(names, "missing"); ok {
		t.Fatal("TemporalProp found a name that was never set")
	}
}

func TestPropertyStoreStaticOverwriteRejected(t *testing.T) {
	names := NewNameTable()
	var ps PropertyStore

	if err := ps.UpsertStatic(names, []NamedProp{{Name: "kind", Value: Str("person")}}); err != nil {
		t.Fatalf("first UpsertStatic: %v", err)
	}
	if err := ps.UpsertStatic(names, []NamedProp{{Name: "kind", Value: Str("organisation")}}); err == nil {
		t.Fatal("overwriting a static property with a different value should fail")
	}
	// Re-setting to the same value is not an overwrite.
	if err := ps.UpsertStatic(names, []NamedProp{{Name: "kind", Value: Str("person")}}); err != nil {
		t.Fatalf("re-set with identical value should succeed, got: %v", err)
	}

	v, ok := ps.StaticProp(names, "kind")
	if !ok {
		t.Fatal("StaticProp(kind) not found")
	}
	if s, _ := v.AsStr(); s != "person" {
		t.Fatalf("StaticProp(kind) = %q, want \"person\"", s)
	}
}

func TestPropertyStoreStaticBatchRejectsWithoutPartialWrite(t *testing.T) {
	names := NewNameTable()
	var ps PropertyStore

	if err := ps.UpsertStatic(names, []NamedProp{{Name: "kind", Value: Str("person")}}); err != nil {
		t.Fatalf("first UpsertStatic: %v", err)
	}

	// "age" is new and would be written first; "kind" conflicts and would
	// be written second. Neither should end up applied.
	batch := []NamedProp{
		{Name: "age", Value: I64(30)},
		{Name: "kind", Value: Str("organisation")},
	}
	if err := ps.UpsertStatic(names, batch); err == nil {
		t.Fatal("batch containing a conflicting overwrite should fail")
	}
	if _, ok := ps.StaticProp(names, "age"); ok {
		t.Fatal("age should not have been written: the batch must be all-or-nothing")
	}
	v, ok := ps.StaticProp(names, "kind")
	if !ok {
		t.Fatal("kind should still hold its original value")
	}
	if s, _ := v.AsStr(); s != "person" {
		t.Fatalf("kind = %q, want \"person\" (unchanged)", s)
	}
}

func TestPropertyStoreStaticBatchRejectsInternalContradiction(t *testing.T) {
	names := NewNameTable()
	var ps PropertyStore

	batch := []NamedProp{
		{Name: "kind", Value: Str("person")},
		{Name: "kind", Value: Str("organisation")},
	}
	if err := ps.UpsertStatic(names, batch); err == nil {
		t.Fatal("a batch that contradicts itself for the same name should fail")
	}
	if _, ok := ps.StaticProp(names, "kind"); ok {
		t.Fatal("kind should not have been written at all")
	}
}

func TestPropertyStoreNamesEnumerateWhatWasSet(t *testing.T) {
	names := NewNameTable()
	var ps PropertyStore
	ps.UpsertTemporal(names, 1, []NamedProp{{Name: "a", Value: I64(1)}, {Name: "b", Value: I64(2)}})
	ps.UpsertStatic(names, []NamedProp{{Name: "c", Value: Bool(true)}})

	temporal := ps.TemporalNames(names)
	if len(temporal) != 2 {
		t.Fatalf("TemporalNames = %v, want 2 entries", temporal)
	}
	static := ps.StaticNames(names)
	if len(static) != 1 || static[0] != "c" {
		t.Fatalf("StaticNames = %v, want [c]", static)
	}
}

func TestNameTableInternIsStable(t *testing.T) {
	n := NewNameTable()
	id1 := n.Intern("x")
	id2 := n.Intern("x")
	if id1 != id2 {
		t.Fatalf("Intern(x) returned different ids: %d, %d", id1, id2)
	}
	if _, ok := n.Lookup("never-interned"); ok {
		t.Fatal("Lookup found a name never interned")
	}
	if n.Name(id1) != "x" {
		t.Fatalf("Name(%d) = %q, want \"x\"", id1, n.Name(id1))
	}
}
