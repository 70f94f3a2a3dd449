package attribute

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Kind identifies how an Operation combines with the running value.
type Kind uint8

const (
	// KindAdd operations are applied first.
	KindAdd Kind = iota
	// KindMultiply operations are applied after every add.
	KindMultiply
)

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindMultiply:
		return "multiply"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Operation is a single arithmetic step applied to an attribute value.
type Operation struct {
	Kind  Kind
	Value float32
}

// Add returns an operation that adds x.
func Add(x float32) Operation { return Operation{Kind: KindAdd, Value: x} }

// Multiply returns an operation that multiplies by x.
func Multiply(x float32) Operation { return Operation{Kind: KindMultiply, Value: x} }

// Apply returns v combined with the operation.
func (o Operation) Apply(v float32) float32 {
	switch o.Kind {
	case KindMultiply:
		return v * o.Value
	default:
		return v + o.Value
	}
}

// Order returns the evaluation rank of the operation; lower ranks run first.
func (o Operation) Order() int { return int(o.Kind) }

func (o Operation) String() string {
	if o.Kind == KindMultiply {
		return fmt.Sprintf("*%g", o.Value)
	}
	return fmt.Sprintf("%+g", o.Value)
}

// Modifier is one effect's contribution to one attribute.
type Modifier[K comparable] struct {
	Attribute K
	Operation Operation
}

// Effect bundles modifiers that are applied and removed as a unit.
type Effect[K comparable] struct {
	id        uuid.UUID
	modifiers []Modifier[K]
}

// NewEffect creates an effect with a fresh unique id.
func NewEffect[K comparable](mods ...Modifier[K]) Effect[K] {
	return Effect[K]{id: uuid.New(), modifiers: slices.Clone(mods)}
}

// ID returns the identifier used to remove the effect later.
func (e Effect[K]) ID() uuid.UUID { return e.id }

// With returns a copy of the effect extended by one modifier. The id is kept.
func (e Effect[K]) With(attr K, op Operation) Effect[K] {
	mods := make([]Modifier[K], len(e.modifiers), len(e.modifiers)+1)
	copy(mods, e.modifiers)
	e.modifiers = append(mods, Modifier[K]{Attribute: attr, Operation: op})
	return e
}

// Modifiers returns a copy of the effect's modifiers.
func (e Effect[K]) Modifiers() []Modifier[K] { return slices.Clone(e.modifiers) }

// Touches reports whether any modifier targets attr.
func (e Effect[K]) Touches(attr K) bool {
	for _, m := range e.modifiers {
		if m.Attribute == attr {
			return true
		}
	}
	return false
}
