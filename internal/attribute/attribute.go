// Package attribute computes derived entity stats from a base value plus a
// set of stacked, removable effects.
//
// A Set is owned by a single entity and is not safe for concurrent use: Get
// memoises into the cache.
package attribute

import (
	"math"
	"slices"

	"github.com/google/uuid"
)

// Set holds base values, active effects and a per-attribute value cache.
type Set[K comparable] struct {
	base    map[K]float32
	effects map[uuid.UUID]Effect[K]
	cache   map[K]float32
}

// New returns an empty attribute set.
func New[K comparable]() *Set[K] {
	return &Set[K]{
		base:    make(map[K]float32),
		effects: make(map[uuid.UUID]Effect[K]),
		cache:   make(map[K]float32),
	}
}

// SetBase stores the base value for attr and drops its cached value.
func (s *Set[K]) SetBase(attr K, value float32) *Set[K] {
	s.base[attr] = value
	delete(s.cache, attr)
	return s
}

// Base returns the base value for attr, defaulting to zero.
func (s *Set[K]) Base(attr K) float32 {
	return s.base[attr]
}

// ApplyEffect registers e and invalidates every attribute it touches. The
// effect stays active until RemoveEffect is called with the returned id.
func (s *Set[K]) ApplyEffect(e Effect[K]) uuid.UUID {
	e.modifiers = slices.Clone(e.modifiers)
	s.invalidate(e)
	s.effects[e.id] = e
	return e.id
}

// RemoveEffect drops the effect with the given id. Unknown ids are ignored.
func (s *Set[K]) RemoveEffect(id uuid.UUID) bool {
	e, ok := s.effects[id]
	if !ok {
		return false
	}
	delete(s.effects, id)
	s.invalidate(e)
	return true
}

// HasEffect reports whether the id is currently active.
func (s *Set[K]) HasEffect(id uuid.UUID) bool {
	_, ok := s.effects[id]
	return ok
}

// EffectCount returns the number of active effects.
func (s *Set[K]) EffectCount() int { return len(s.effects) }

// Get returns the effective value of attr: the base value with every active
// add applied, then every active multiply.
func (s *Set[K]) Get(attr K) float32 {
	if v, ok := s.cache[attr]; ok {
		return v
	}

	var adds, muls []float32
	for _, e := range s.effects {
		for _, m := range e.modifiers {
			if m.Attribute != attr {
				continue
			}
			if m.Operation.Kind == KindMultiply {
				muls = append(muls, m.Operation.Value)
			} else {
				adds = append(adds, m.Operation.Value)
			}
		}
	}
	// Map iteration order is random; sorting keeps float rounding stable.
	slices.Sort(adds)
	slices.Sort(muls)

	value := s.Base(attr)
	for _, x := range adds {
		value = Add(x).Apply(value)
	}
	for _, x := range muls {
		value = Multiply(x).Apply(value)
	}

	s.cache[attr] = value
	return value
}

// GetInt returns Get rounded to the nearest integer.
func (s *Set[K]) GetInt(attr K) int32 {
	v := math.Round(float64(s.Get(attr)))
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

// GetUint returns Get rounded to the nearest integer, clamped to the uint32
// range. Negative values become zero.
func (s *Set[K]) GetUint(attr K) uint32 {
	v := math.Round(float64(s.Get(attr)))
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}

func (s *Set[K]) invalidate(e Effect[K]) {
	for _, m := range e.modifiers {
		delete(s.cache, m.Attribute)
	}
}
