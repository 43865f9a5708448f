// Package orderedmap implements an insertion-ordered dictionary with the
// semantics of Python's built-in dict: keys iterate in the order they were
// first inserted, updating a key's value keeps its position, and merges,
// defaults and pops behave the way Python programmers expect.
//
// Entries live in two parallel slices, one for keys and one for values, so
// position i of one always belongs to position i of the other. A map from
// key to position keeps lookups fast; it never affects observable order.
//
// An OrderedMap is not safe for concurrent use.
package orderedmap

import (
	"fmt"
	"strings"
)

// Item is a single key-value entry of an OrderedMap.
type Item[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap is an insertion-ordered dictionary.
// The zero value is not usable; build one with New, FromItems or Dict.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values []V
	// position of each key in keys and values
	index map[K]int
}

type initConfig[K comparable, V any] struct {
	capacity    int
	initialData []Item[K, V]
}

// InitOption configures New.
type InitOption[K comparable, V any] func(config *initConfig[K, V])

// WithCapacity allows giving a capacity hint for the map, akin to the standard make(map[K]V, capacity).
func WithCapacity[K comparable, V any](capacity int) InitOption[K, V] {
	return func(c *initConfig[K, V]) {
		c.capacity = capacity
	}
}

// WithInitialData allows passing in initial data for the map.
// Later duplicates of a key overwrite the value but keep the first position.
func WithInitialData[K comparable, V any](initialData ...Item[K, V]) InitOption[K, V] {
	return func(c *initConfig[K, V]) {
		c.initialData = initialData
		if c.capacity < len(initialData) {
			c.capacity = len(initialData)
		}
	}
}

// New creates a new OrderedMap.
// options can either be one or several InitOption[K, V], or a single integer,
// which is then interpreted as a capacity hint, à la make(map[K]V, capacity).
func New[K comparable, V any](options ...any) *OrderedMap[K, V] {
	var config initConfig[K, V]
	for _, untypedOption := range options {
		switch option := untypedOption.(type) {
		case int:
			if len(options) != 1 {
				invalidOption()
			}
			config.capacity = option

		case InitOption[K, V]:
			option(&config)

		default:
			invalidOption()
		}
	}

	om := &OrderedMap[K, V]{}
	om.initialize(config.capacity)
	om.UpdateItems(config.initialData...)

	return om
}

const invalidOptionMessage = `when using orderedmap.New[K,V]() with options, either provide one or several InitOption[K, V]; or a single integer which is then interpreted as a capacity`

func invalidOption() { panic(invalidOptionMessage) }

const tooManyDefaultsMessage = `at most one default value can be given`

// optionalDefault unpacks a variadic default argument.
func optionalDefault[V any](def []V) (value V, given bool) {
	switch len(def) {
	case 0:
		return value, false
	case 1:
		return def[0], true
	default:
		panic(tooManyDefaultsMessage)
	}
}

func (om *OrderedMap[K, V]) initialize(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	om.keys = make([]K, 0, capacity)
	om.values = make([]V, 0, capacity)
	om.index = make(map[K]int, capacity)
}

// FromItems builds a map from items, in order.
// A key seen more than once keeps the position of its first occurrence and
// the value of its last one.
func FromItems[K comparable, V any](items []Item[K, V]) *OrderedMap[K, V] {
	om := New[K, V](len(items))
	om.UpdateItems(items...)
	return om
}

// Len returns the number of entries in the map.
func (om *OrderedMap[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.keys)
}

// IsEmpty reports whether the map has no entries.
func (om *OrderedMap[K, V]) IsEmpty() bool {
	return om.Len() == 0
}

func (om *OrderedMap[K, V]) position(key K) (int, bool) {
	if om == nil {
		return 0, false
	}
	i, present := om.index[key]
	return i, present
}

// Contains reports whether key is present.
func (om *OrderedMap[K, V]) Contains(key K) bool {
	_, present := om.position(key)
	return present
}

// Get looks for the given key, and returns the value associated with it,
// or V's nil value if not found. The boolean it returns says whether the key is present in the map.
func (om *OrderedMap[K, V]) Get(key K) (val V, present bool) {
	if i, ok := om.position(key); ok {
		return om.values[i], true
	}
	return
}

// Value returns the value associated with the given key or the zero value.
func (om *OrderedMap[K, V]) Value(key K) (val V) {
	val, _ = om.Get(key)
	return
}

// At returns the value for key, or a *KeyNotFoundError if key is absent.
func (om *OrderedMap[K, V]) At(key K) (V, error) {
	if i, ok := om.position(key); ok {
		return om.values[i], nil
	}
	var zero V
	return zero, &KeyNotFoundError[K]{MissingKey: key}
}

// GetOr returns the value for key, or def if key is absent. The map is not modified.
func (om *OrderedMap[K, V]) GetOr(key K, def V) V {
	if i, ok := om.position(key); ok {
		return om.values[i]
	}
	return def
}

// Lookup is Python's dict.get: it returns the value for key, falling back to
// the optional default. With no default and an absent key it fails with a
// *KeyNotFoundError whose NoDefault field is set.
func (om *OrderedMap[K, V]) Lookup(key K, def ...V) (V, error) {
	fallback, given := optionalDefault(def)
	if i, ok := om.position(key); ok {
		return om.values[i], nil
	}
	if given {
		return fallback, nil
	}
	return fallback, &KeyNotFoundError[K]{MissingKey: key, NoDefault: true}
}

func (om *OrderedMap[K, V]) appendEntry(key K, value V) int {
	om.index[key] = len(om.keys)
	om.keys = append(om.keys, key)
	om.values = append(om.values, value)
	return len(om.keys) - 1
}

// Entry returns a pointer to the value stored for key, first inserting key
// with V's zero value at the end of the map if it is absent.
//
// The pointer stays valid until the next call that inserts or removes a key.
func (om *OrderedMap[K, V]) Entry(key K) *V {
	i, ok := om.position(key)
	if !ok {
		var zero V
		i = om.appendEntry(key, zero)
	}
	return &om.values[i]
}

// Set sets the key-value pair, and returns what `Get` would have returned
// on that key prior to the call to `Set`.
// An existing key keeps its position; a new one is appended.
func (om *OrderedMap[K, V]) Set(key K, value V) (val V, present bool) {
	if i, ok := om.position(key); ok {
		oldValue := om.values[i]
		om.values[i] = value
		return oldValue, true
	}

	om.appendEntry(key, value)
	return
}

// removeAt drops position i from both slices and renumbers the entries after it.
func (om *OrderedMap[K, V]) removeAt(i int) Item[K, V] {
	removed := Item[K, V]{Key: om.keys[i], Value: om.values[i]}

	copy(om.keys[i:], om.keys[i+1:])
	copy(om.values[i:], om.values[i+1:])

	last := len(om.keys) - 1
	// release references held by the vacated tail slot
	var zeroK K
	var zeroV V
	om.keys[last] = zeroK
	om.values[last] = zeroV
	om.keys = om.keys[:last]
	om.values = om.values[:last]

	delete(om.index, removed.Key)
	for j := i; j < len(om.keys); j++ {
		om.index[om.keys[j]] = j
	}

	return removed
}

// Delete removes key from the map, shifting later entries down by one.
// It returns a *KeyNotFoundError and leaves the map untouched if key is absent.
func (om *OrderedMap[K, V]) Delete(key K) error {
	i, ok := om.position(key)
	if !ok {
		return &KeyNotFoundError[K]{MissingKey: key}
	}
	om.removeAt(i)
	return nil
}

// Pop removes key and returns its value. If key is absent the optional
// default is returned instead; without one Pop fails with a *KeyNotFoundError.
func (om *OrderedMap[K, V]) Pop(key K, def ...V) (V, error) {
	fallback, given := optionalDefault(def)
	if i, ok := om.position(key); ok {
		return om.removeAt(i).Value, nil
	}
	if given {
		return fallback, nil
	}
	return fallback, &KeyNotFoundError[K]{MissingKey: key, NoDefault: true}
}

// PopItem removes and returns the most recently inserted entry, or ErrEmpty.
func (om *OrderedMap[K, V]) PopItem() (Item[K, V], error) {
	if om.IsEmpty() {
		return Item[K, V]{}, ErrEmpty
	}
	return om.removeAt(len(om.keys) - 1), nil
}

// Clear removes every entry, keeping the allocated storage.
func (om *OrderedMap[K, V]) Clear() {
	if om == nil {
		return
	}
	clear(om.keys)
	clear(om.values)
	om.keys = om.keys[:0]
	om.values = om.values[:0]
	clear(om.index)
}

// SetDefault returns the value for key if present, without modifying the map.
// Otherwise it appends key with the optional default (V's zero value if none
// is given) and returns that.
func (om *OrderedMap[K, V]) SetDefault(key K, def ...V) V {
	value, _ := optionalDefault(def)
	if i, ok := om.position(key); ok {
		return om.values[i]
	}
	om.appendEntry(key, value)
	return value
}

// UpdateItems sets every item in order, as Set would.
func (om *OrderedMap[K, V]) UpdateItems(items ...Item[K, V]) {
	for _, item := range items {
		om.Set(item.Key, item.Value)
	}
}

// Update copies every entry of other into om, in other's order.
// Keys om already holds keep their position and take other's value; new keys
// are appended. A nil other is treated as empty.
func (om *OrderedMap[K, V]) Update(other *OrderedMap[K, V]) {
	if other == nil || other == om {
		return
	}
	for i, key := range other.keys {
		om.Set(key, other.values[i])
	}
}

// MergeInPlace is the |= operator: the same as Update.
func (om *OrderedMap[K, V]) MergeInPlace(other *OrderedMap[K, V]) {
	om.Update(other)
}

// Merged is the | operator: a new map holding om's entries updated with
// other's. Neither operand is modified.
func (om *OrderedMap[K, V]) Merged(other *OrderedMap[K, V]) *OrderedMap[K, V] {
	merged := New[K, V](om.Len() + other.Len())
	merged.Update(om)
	merged.Update(other)
	return merged
}

// Copy returns an independent copy of the map. Values are copied by
// assignment, so pointers inside them still share their targets.
func (om *OrderedMap[K, V]) Copy() *OrderedMap[K, V] {
	c := New[K, V](om.Len())
	c.Update(om)
	return c
}

// Keys returns a copy of the keys, in insertion order.
func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, om.Len())
	if om != nil {
		copy(keys, om.keys)
	}
	return keys
}

// Values returns a copy of the values; Values()[i] belongs to Keys()[i].
func (om *OrderedMap[K, V]) Values() []V {
	values := make([]V, om.Len())
	if om != nil {
		copy(values, om.values)
	}
	return values
}

// Items returns a copy of the entries, in insertion order.
func (om *OrderedMap[K, V]) Items() []Item[K, V] {
	items := make([]Item[K, V], om.Len())
	for i := range items {
		items[i] = Item[K, V]{Key: om.keys[i], Value: om.values[i]}
	}
	return items
}

// Filter keeps only the entries for which keep returns true, preserving their order.
func (om *OrderedMap[K, V]) Filter(keep func(K, V) bool) {
	if om == nil {
		return
	}
	n := 0
	for i, key := range om.keys {
		value := om.values[i]
		if !keep(key, value) {
			delete(om.index, key)
			continue
		}
		om.keys[n] = key
		om.values[n] = value
		om.index[key] = n
		n++
	}
	clear(om.keys[n:])
	clear(om.values[n:])
	om.keys = om.keys[:n]
	om.values = om.values[:n]
}

// String formats the map the way Python prints a dict: {k1: v1, k2: v2}.
func (om *OrderedMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := 0; i < om.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", om.keys[i], om.values[i])
	}
	sb.WriteByte('}')
	return sb.String()
}
