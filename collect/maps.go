package collect

import (
	"iter"
	"slices"

	"github.com/kbukum/streamkit/errors"
)

// ToMapMerge collects elements into a map. When two elements produce the
// same key the values are combined with merge(existing, incoming).
//
// The strict variant that rejects duplicate keys is pipeline.ToMap, which
// can report the collision as an error.
func ToMapMerge[T any, K comparable, V any](key func(T) K, value func(T) V, merge func(existing, incoming V) V) Collector[T, map[K]V] {
	if err := firstErr(nilErr("key", key == nil), nilErr("value", value == nil), nilErr("merge", merge == nil)); err != nil {
		return failed[T, map[K]V](err)
	}
	put := func(acc map[K]V, k K, v V) {
		if cur, ok := acc[k]; ok {
			acc[k] = merge(cur, v)
			return
		}
		acc[k] = v
	}
	return OfIdentity(
		func() map[K]V { return make(map[K]V) },
		func(acc map[K]V, v T) map[K]V {
			put(acc, key(v), value(v))
			return acc
		},
		func(left, right map[K]V) map[K]V {
			for k, v := range right {
				put(left, k, v)
			}
			return left
		},
	)
}

// OrderedMap is a map that remembers the order in which keys were first
// inserted.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: make(map[K]V)}
}

// Get returns the value stored under k.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Put stores v under k. A new key goes to the end; an existing key keeps its position.
func (m *OrderedMap[K, V]) Put(k K, v V) {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

// Len returns the number of keys.
func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K { return slices.Clone(m.keys) }

// Values returns the values in key insertion order.
func (m *OrderedMap[K, V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// All iterates key/value pairs in insertion order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// ToOrderedMap is ToMapMerge keeping keys in encounter order.
func ToOrderedMap[T any, K comparable, V any](key func(T) K, value func(T) V, merge func(existing, incoming V) V) Collector[T, *OrderedMap[K, V]] {
	if err := firstErr(nilErr("key", key == nil), nilErr("value", value == nil), nilErr("merge", merge == nil)); err != nil {
		return failed[T, *OrderedMap[K, V]](err)
	}
	put := func(acc *OrderedMap[K, V], k K, v V) {
		if cur, ok := acc.Get(k); ok {
			acc.Put(k, merge(cur, v))
			return
		}
		acc.Put(k, v)
	}
	return OfIdentity(
		NewOrderedMap[K, V],
		func(acc *OrderedMap[K, V], v T) *OrderedMap[K, V] {
			put(acc, key(v), value(v))
			return acc
		},
		func(left, right *OrderedMap[K, V]) *OrderedMap[K, V] {
			for k, v := range right.All() {
				put(left, k, v)
			}
			return left
		},
	)
}

// nilErr returns a NilFunc error for name when isNil is set.
func nilErr(name string, isNil bool) error {
	if isNil {
		return errors.NilFunc(name)
	}
	return nil
}
