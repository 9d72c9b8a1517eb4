package vectorize

import (
	"maps"
	"math"
	"slices"
)

// Store is a typed key/value store used to persist [Params].
//
// The TryGet methods return false both when key is absent and when it
// holds a value of a different type. Has tells the two apart.
type Store interface {
	Has(key string) bool
	TryGetInt(key string) (int, bool)
	TryGetFloat(key string) (float64, bool)
	TryGetBool(key string) (bool, bool)
	SetInt(key string, v int)
	SetFloat(key string, v float64)
	SetBool(key string, v bool)
}

var _ Store = (*MapStore)(nil)

// MapStore is an in-memory [Store]. The zero value is ready to use.
type MapStore struct {
	m map[string]any
}

// NewMapStore returns a store holding a copy of m. Integer values may be
// int or int64, as produced by most decoders.
func NewMapStore(m map[string]any) *MapStore {
	return &MapStore{m: maps.Clone(m)}
}

// Lookup returns the raw value stored under key.
func (s *MapStore) Lookup(key string) (any, bool) {
	v, ok := s.m[key]
	return v, ok
}

// Has reports whether key holds a value of any type.
func (s *MapStore) Has(key string) bool {
	_, ok := s.m[key]
	return ok
}

// Keys returns the stored keys in sorted order.
func (s *MapStore) Keys() []string {
	return slices.Sorted(maps.Keys(s.m))
}

// Map returns a copy of the stored values.
func (s *MapStore) Map() map[string]any {
	return maps.Clone(s.m)
}

func (s *MapStore) TryGetInt(key string) (int, bool) {
	switch v := s.m[key].(type) {
	case int:
		return v, true
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// TryGetFloat also accepts integer values, since hand-edited files
// often drop the fractional part.
func (s *MapStore) TryGetFloat(key string) (float64, bool) {
	switch v := s.m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func (s *MapStore) TryGetBool(key string) (bool, bool) {
	v, ok := s.m[key].(bool)
	return v, ok
}

func (s *MapStore) set(key string, v any) {
	if s.m == nil {
		s.m = make(map[string]any)
	}
	s.m[key] = v
}

func (s *MapStore) SetInt(key string, v int)       { s.set(key, v) }
func (s *MapStore) SetFloat(key string, v float64) { s.set(key, v) }
func (s *MapStore) SetBool(key string, v bool)     { s.set(key, v) }

// Delete removes key from the store.
func (s *MapStore) Delete(key string) { delete(s.m, key) }
