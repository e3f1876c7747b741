package eventregistry

// orderedMap is a string-keyed map that remembers first-insertion order.
// Overwriting an existing key keeps its original position.
type orderedMap[V any] struct {
	keys   []string
	values map[string]V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{values: make(map[string]V)}
}

// set inserts or overwrites key. Returns true if the key was new.
func (m *orderedMap[V]) set(key string, value V) bool {
	_, exists := m.values[key]
	if !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return !exists
}

func (m *orderedMap[V]) get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *orderedMap[V]) len() int {
	return len(m.keys)
}

// orderedKeys returns a copy of the keys in insertion order.
func (m *orderedMap[V]) orderedKeys() []string {
	return append([]string(nil), m.keys...)
}

// orderedValues returns the values in key insertion order.
func (m *orderedMap[V]) orderedValues() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}
