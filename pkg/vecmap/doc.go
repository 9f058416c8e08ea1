// Package vecmap provides a small associative container backed by a slice.
//
// A Map stores key-value pairs contiguously and finds keys with a forward
// linear scan. For the handful of entries typical of HTTP header sets this
// beats hashing: there is nothing to hash, and the whole map usually fits in
// a cache line or two.
//
//   - Ordering: pairs are kept in insertion order. Updating a key keeps its
//     position and removing a key shifts the tail instead of swapping.
//   - Uniqueness: a key appears at most once.
//   - Entry API: Entry scans once and lets the caller decide between insert
//     and update without a second scan.
//   - Heterogeneous lookup: the *Func methods and Lookup accept any probe
//     type with an equality against the stored key type.
//
// Usage:
//
//	m := vecmap.New[string, int](8)
//	m.Insert("a", 1)
//	switch e := m.Entry("b").(type) {
//	case *vecmap.VacantEntry[string, int]:
//		*e.Insert(0) += 2
//	case *vecmap.OccupiedEntry[string, int]:
//		*e.IntoMut() += 2
//	}
//
// Thread Safety:
//
// A Map is not safe for concurrent use. Readers may run in parallel only
// while nobody writes; wrap the whole map in a sync.RWMutex to share it.
//
// Entry handles and value pointers (GetMut, VacantEntry.Insert,
// OccupiedEntry.IntoMut) borrow the map. They stay valid until the next
// structural change: an append, a removal or a Clear. Entry handles check
// this and panic with ErrStaleEntry when used late.
package vecmap
