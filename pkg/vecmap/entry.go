package vecmap

import "errors"

// ErrStaleEntry is the panic value raised when an entry handle is used
// after the map it came from was structurally changed.
var ErrStaleEntry = errors.New("vecmap: entry used after map was modified")

// Entry is the result of Map.Entry: either *VacantEntry or *OccupiedEntry.
//
// A handle borrows the map. Consume it before touching the map through any
// other path; a handle that outlives an append, removal or Clear panics.
type Entry[K, V any] interface {
	// Key returns the key the entry was looked up with (vacant) or the
	// stored key (occupied).
	Key() K
	// OrInsert returns a pointer to the existing value, inserting value
	// first if the entry is vacant.
	OrInsert(value V) *V
	// OrInsertWith is OrInsert with a lazily computed value.
	OrInsertWith(fn func() V) *V

	entry()
}

// Entry scans for key once and returns a handle for inserting or updating
// its value without scanning again.
func (m *Map[K, V]) Entry(key K) Entry[K, V] {
	if pos := m.findKey(key); pos >= 0 {
		return &OccupiedEntry[K, V]{m: m, pos: pos, gen: m.gen}
	}
	return &VacantEntry[K, V]{m: m, key: key, gen: m.gen}
}

// VacantEntry is an Entry whose key is not in the map.
type VacantEntry[K, V any] struct {
	m   *Map[K, V]
	key K
	gen uint64
}

func (*VacantEntry[K, V]) entry() {}

// Key returns the key that will be inserted.
func (e *VacantEntry[K, V]) Key() K {
	return e.key
}

// Insert appends the pending key with value and returns a pointer to the
// stored value. A vacant entry can be inserted once.
func (e *VacantEntry[K, V]) Insert(value V) *V {
	e.check()
	pos := e.m.push(e.key, value)
	return &e.m.pairs[pos].Value
}

// OrInsert inserts value.
func (e *VacantEntry[K, V]) OrInsert(value V) *V {
	return e.Insert(value)
}

// OrInsertWith inserts the result of fn.
func (e *VacantEntry[K, V]) OrInsertWith(fn func() V) *V {
	e.check()
	return e.Insert(fn())
}

func (e *VacantEntry[K, V]) check() {
	if e.gen != e.m.gen {
		panic(ErrStaleEntry)
	}
}

// OccupiedEntry is an Entry whose key was found in the map.
type OccupiedEntry[K, V any] struct {
	m   *Map[K, V]
	pos int
	gen uint64
}

func (*OccupiedEntry[K, V]) entry() {}

// Key returns the stored key.
func (e *OccupiedEntry[K, V]) Key() K {
	e.check()
	return e.m.pairs[e.pos].Key
}

// Get returns the stored value.
func (e *OccupiedEntry[K, V]) Get() V {
	e.check()
	return e.m.pairs[e.pos].Value
}

// IntoMut returns a pointer to the stored value.
func (e *OccupiedEntry[K, V]) IntoMut() *V {
	e.check()
	return &e.m.pairs[e.pos].Value
}

// Insert replaces the stored value and returns the previous one.
// The pair keeps its position.
func (e *OccupiedEntry[K, V]) Insert(value V) V {
	p := e.IntoMut()
	old := *p
	*p = value
	return old
}

// Remove deletes the pair and returns its value. The handle is spent.
func (e *OccupiedEntry[K, V]) Remove() V {
	e.check()
	value, _ := e.m.removeAt(e.pos)
	return value
}

// OrInsert returns the existing value; value is discarded.
func (e *OccupiedEntry[K, V]) OrInsert(V) *V {
	return e.IntoMut()
}

// OrInsertWith returns the existing value without calling fn.
func (e *OccupiedEntry[K, V]) OrInsertWith(func() V) *V {
	return e.IntoMut()
}

func (e *OccupiedEntry[K, V]) check() {
	if e.gen != e.m.gen {
		panic(ErrStaleEntry)
	}
}
