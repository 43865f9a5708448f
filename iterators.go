package orderedmap

import "iter"

// The iterators below read the map's live storage: each one starts afresh
// from its end of the map every time it is ranged over. Changing the map
// while an iteration is in progress has unspecified results.

// KeysFromOldest returns an iterator over the keys in insertion order.
// This is what ranging over a Python dict yields.
func (om *OrderedMap[K, V]) KeysFromOldest() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := 0; i < om.Len(); i++ {
			if !yield(om.keys[i]) {
				return
			}
		}
	}
}

// KeysFromNewest returns an iterator over the keys from newest to oldest.
func (om *OrderedMap[K, V]) KeysFromNewest() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := om.Len() - 1; i >= 0; i-- {
			if i >= om.Len() {
				continue
			}
			if !yield(om.keys[i]) {
				return
			}
		}
	}
}

// ValuesFromOldest returns an iterator over the values in insertion order.
func (om *OrderedMap[K, V]) ValuesFromOldest() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < om.Len(); i++ {
			if !yield(om.values[i]) {
				return
			}
		}
	}
}

// ValuesFromNewest returns an iterator over the values from newest to oldest.
func (om *OrderedMap[K, V]) ValuesFromNewest() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := om.Len() - 1; i >= 0; i-- {
			if i >= om.Len() {
				continue
			}
			if !yield(om.values[i]) {
				return
			}
		}
	}
}

// FromOldest returns an iterator over all the key-value pairs in the map, from oldest to newest.
func (om *OrderedMap[K, V]) FromOldest() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < om.Len(); i++ {
			if !yield(om.keys[i], om.values[i]) {
				return
			}
		}
	}
}

// FromNewest returns an iterator over all the key-value pairs in the map, from newest to oldest.
func (om *OrderedMap[K, V]) FromNewest() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := om.Len() - 1; i >= 0; i-- {
			if i >= om.Len() {
				continue
			}
			if !yield(om.keys[i], om.values[i]) {
				return
			}
		}
	}
}

// From creates a new OrderedMap from an iterator over key-value pairs.
func From[K comparable, V any](i iter.Seq2[K, V]) *OrderedMap[K, V] {
	om := New[K, V]()

	for k, v := range i {
		om.Set(k, v)
	}

	return om
}
