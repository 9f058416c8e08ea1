// Package vecmap provides an insertion-ordered map backed by a slice.
package vecmap

// Pair is a key-value pair as stored in a Map.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map is an insertion-ordered map with linear-scan lookup.
//
// The zero value is not usable; create maps with New or NewFunc.
type Map[K, V any] struct {
	pairs []Pair[K, V]
	equal func(a, b K) bool
	// gen counts structural changes (appends, removals, clears) so that
	// entry handles can detect that the map moved under them.
	gen uint64
}

// New creates an empty map with room for capacity pairs.
// Keys are compared with ==.
func New[K comparable, V any](capacity int) *Map[K, V] {
	return NewFunc[K, V](capacity, func(a, b K) bool { return a == b })
}

// NewFunc creates an empty map with room for capacity pairs that compares
// keys with equal. equal must be reflexive, symmetric and transitive.
func NewFunc[K, V any](capacity int, equal func(a, b K) bool) *Map[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	if equal == nil {
		panic("vecmap: nil equal func")
	}
	return &Map[K, V]{
		pairs: make([]Pair[K, V], 0, capacity),
		equal: equal,
	}
}

// find returns the position of the first pair whose key satisfies match,
// or -1. Every lookup goes through here.
func (m *Map[K, V]) find(match func(K) bool) int {
	for i := range m.pairs {
		if match(m.pairs[i].Key) {
			return i
		}
	}
	return -1
}

func (m *Map[K, V]) findKey(key K) int {
	return m.find(func(k K) bool { return m.equal(key, k) })
}

// Insert stores value under key. An existing pair with an equal key is
// overwritten in place, including the stored key; otherwise the pair is
// appended.
func (m *Map[K, V]) Insert(key K, value V) {
	if pos := m.findKey(key); pos >= 0 {
		m.pairs[pos] = Pair[K, V]{Key: key, Value: value}
		return
	}
	m.push(key, value)
}

func (m *Map[K, V]) push(key K, value V) int {
	m.pairs = append(m.pairs, Pair[K, V]{Key: key, Value: value})
	m.gen++
	return len(m.pairs) - 1
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if pos := m.findKey(key); pos >= 0 {
		return m.pairs[pos].Value, true
	}
	var zero V
	return zero, false
}

// GetFunc returns the value of the first pair whose key satisfies match.
func (m *Map[K, V]) GetFunc(match func(K) bool) (V, bool) {
	if pos := m.find(match); pos >= 0 {
		return m.pairs[pos].Value, true
	}
	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored under key. The pointer is
// valid until the map is next appended to, removed from or cleared.
func (m *Map[K, V]) GetMut(key K) (*V, bool) {
	if pos := m.findKey(key); pos >= 0 {
		return &m.pairs[pos].Value, true
	}
	return nil, false
}

// GetMutFunc is GetMut with a caller-supplied match.
func (m *Map[K, V]) GetMutFunc(match func(K) bool) (*V, bool) {
	if pos := m.find(match); pos >= 0 {
		return &m.pairs[pos].Value, true
	}
	return nil, false
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.findKey(key) >= 0
}

// ContainsFunc reports whether any key satisfies match.
func (m *Map[K, V]) ContainsFunc(match func(K) bool) bool {
	return m.find(match) >= 0
}

// Remove deletes key and returns its value. The remaining pairs keep their
// relative order.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	return m.removeAt(m.findKey(key))
}

// RemoveFunc deletes the first pair whose key satisfies match.
func (m *Map[K, V]) RemoveFunc(match func(K) bool) (V, bool) {
	return m.removeAt(m.find(match))
}

func (m *Map[K, V]) removeAt(pos int) (V, bool) {
	if pos < 0 {
		var zero V
		return zero, false
	}
	value := m.pairs[pos].Value
	last := len(m.pairs) - 1
	copy(m.pairs[pos:], m.pairs[pos+1:])
	// Drop references held by the vacated slot.
	m.pairs[last] = Pair[K, V]{}
	m.pairs = m.pairs[:last]
	m.gen++
	return value, true
}

// Clear removes all pairs. Capacity is retained.
func (m *Map[K, V]) Clear() {
	if len(m.pairs) == 0 {
		return
	}
	clear(m.pairs)
	m.pairs = m.pairs[:0]
	m.gen++
}

// Len returns the number of pairs.
func (m *Map[K, V]) Len() int {
	return len(m.pairs)
}

// Cap returns the number of pairs the map can hold without growing.
func (m *Map[K, V]) Cap() int {
	return cap(m.pairs)
}

// Clone returns a shallow copy of the map with the same equality.
func (m *Map[K, V]) Clone() *Map[K, V] {
	pairs := make([]Pair[K, V], len(m.pairs), cap(m.pairs))
	copy(pairs, m.pairs)
	return &Map[K, V]{pairs: pairs, equal: m.equal}
}

// Lookup finds the value whose stored key equals the probe q under eq.
// It lets callers search with a different type than the one stored, e.g.
// a string probe against a []byte key.
func Lookup[Q, K, V any](m *Map[K, V], q Q, eq func(Q, K) bool) (V, bool) {
	return m.GetFunc(func(k K) bool { return eq(q, k) })
}

// LookupMut is the pointer-returning form of Lookup.
func LookupMut[Q, K, V any](m *Map[K, V], q Q, eq func(Q, K) bool) (*V, bool) {
	return m.GetMutFunc(func(k K) bool { return eq(q, k) })
}

// Contains reports whether the probe q matches a stored key under eq.
func Contains[Q, K, V any](m *Map[K, V], q Q, eq func(Q, K) bool) bool {
	return m.ContainsFunc(func(k K) bool { return eq(q, k) })
}

// Delete removes the pair whose key matches the probe q under eq.
func Delete[Q, K, V any](m *Map[K, V], q Q, eq func(Q, K) bool) (V, bool) {
	return m.RemoveFunc(func(k K) bool { return eq(q, k) })
}
