package storage

// NameTable interns property names into dense, process-scoped (here:
// per-shard) uint32 ids, grounded on TemporalGraph.prop_ids in graph.rs.
// Interning keeps the PropertyStore hot path index-based while admitting
// attribute names unknown at compile time.
type NameTable struct {
	ids   map[string]uint32
	names []string
}

// NewNameTable builds an empty interning table.
func NewNameTable() *NameTable {
	return &NameTable{ids: make(map[string]uint32)}
}

// Intern returns the id for name, assigning a fresh one on first sight.
func (n *NameTable) Intern(name string) uint32 {
	if id, ok := n.ids[name]; ok {
		return id
	}
	id := uint32(len(n.names))
	n.ids[name] = id
	n.names = append(n.names, name)
	return id
}

// Lookup returns the id for name without assigning one.
func (n *NameTable) Lookup(name string) (uint32, bool) {
	id, ok := n.ids[name]
	return id, ok
}

// Name returns the name interned for id.
func (n *NameTable) Name(id uint32) string {
	if int(id) < len(n.names) {
		return n.names[id]
	}
	return ""
}

// PropertyStore holds, per entity (vertex or edge), a sparse vector of
// temporal properties and a sparse write-once vector of static properties:
// component C3.
type PropertyStore struct {
	temporal lazyTPropVec
	static   staticVec
}

// UpsertTemporal applies a batch of (name, value) writes at time t,
// interning any unseen names against table. O(|props| * log history).
func (ps *PropertyStore) UpsertTemporal(table *NameTable, t int64, props []NamedProp) error {
	for _, np := range props {
		id := table.Intern(np.Name)
		slot := ps.temporal.getOrCreate(id)
		if err := slot.Set(t, np.Value); err != nil {
			return typeMismatch("UpsertTemporal", np.Name)
		}
	}
	return nil
}

// UpsertStatic writes a batch of write-once (name, value) properties.
// Re-setting an already-set name to a different value is a fault, and per
// spec.md §7 the fault cannot be a partial write: the whole batch is
// checked against both the store's current state and itself (a batch may
// not contradict its own earlier entry for the same name) before any
// value is committed, so a rejected call leaves every property untouched.
func (ps *PropertyStore) UpsertStatic(table *NameTable, props []NamedProp) error {
	ids := make([]uint32, len(props))
	pending := make(map[uint32]Prop, len(props))
	for i, np := range props {
		id := table.Intern(np.Name)
		ids[i] = id
		if existing, ok := pending[id]; ok {
			if existing != np.Value {
				return staticOverwrite("UpsertStatic", np.Name, 0)
			}
			continue
		}
		if existing, ok := ps.static.get(id); ok && existing != np.Value {
			return staticOverwrite("UpsertStatic", np.Name, 0)
		}
		pending[id] = np.Value
	}
	for i, np := range props {
		if err := ps.static.set(ids[i], np.Value); err != nil {
			return staticOverwrite("UpsertStatic", np.Name, 0)
		}
	}
	return nil
}

// TemporalProp returns the temporal history for a property name, if any.
func (ps *PropertyStore) TemporalProp(table *NameTable, name string) (*TProp, bool) {
	id, ok := table.Lookup(name)
	if !ok {
		return nil, false
	}
	return ps.temporal.get(id)
}

// StaticProp returns the static value for a property name, if any.
func (ps *PropertyStore) StaticProp(table *NameTable, name string) (Prop, bool) {
	id, ok := table.Lookup(name)
	if !ok {
		return Prop{}, false
	}
	return ps.static.get(id)
}

// TemporalNames returns the names of all temporal properties ever set.
func (ps *PropertyStore) TemporalNames(table *NameTable) []string {
	ids := ps.temporal.filledIDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = table.Name(id)
	}
	return names
}

// StaticNames returns the names of all static properties ever set.
func (ps *PropertyStore) StaticNames(table *NameTable) []string {
	ids := ps.static.filledIDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = table.Name(id)
	}
	return names
}
