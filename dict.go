package orderedmap

// Free functions mirroring Python's builtins: dict(...), len(d), list(d) and dict.fromkeys.

// Dict builds a map from items, like FromItems.
func Dict[K comparable, V any](items ...Item[K, V]) *OrderedMap[K, V] {
	return FromItems(items)
}

// Len returns the number of entries in m. A nil map has none.
func Len[K comparable, V any](m *OrderedMap[K, V]) int {
	return m.Len()
}

// List returns m's keys in insertion order.
func List[K comparable, V any](m *OrderedMap[K, V]) []K {
	return m.Keys()
}

// FromKeys builds a map whose keys are keys, deduplicated in first-seen order,
// each mapped to the optional default or to V's zero value.
func FromKeys[K comparable, V any](keys []K, def ...V) *OrderedMap[K, V] {
	value, _ := optionalDefault(def)
	om := New[K, V](len(keys))
	for _, key := range keys {
		om.Set(key, value)
	}
	return om
}

// Equal reports whether a and b hold the same keys mapped to equal values.
// Like Python dict equality, order is ignored.
func Equal[K, V comparable](a, b *OrderedMap[K, V]) bool {
	return EqualFunc(a, b, func(v1, v2 V) bool { return v1 == v2 })
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[K comparable, V1, V2 any](a *OrderedMap[K, V1], b *OrderedMap[K, V2], eq func(V1, V2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		v2, ok := b.Get(a.keys[i])
		if !ok || !eq(a.values[i], v2) {
			return false
		}
	}
	return true
}
