package vecmap

import "iter"

// All returns an iterator over the pairs in storage order, which is
// insertion order minus removed pairs. Each call starts from the first pair.
//
// The map must not be structurally changed while iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.pairs {
			if !yield(m.pairs[i].Key, m.pairs[i].Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in storage order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range m.pairs {
			if !yield(m.pairs[i].Key) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in storage order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range m.pairs {
			if !yield(m.pairs[i].Value) {
				return
			}
		}
	}
}

// Range calls fn for each pair in storage order until fn returns false.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for i := range m.pairs {
		if !fn(m.pairs[i].Key, m.pairs[i].Value) {
			return
		}
	}
}

// Pairs returns a copy of the stored pairs in storage order.
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], len(m.pairs))
	copy(pairs, m.pairs)
	return pairs
}
