package generics

import (
	"testing"

	"github.com/nvallet/jtype/java"
	"github.com/stretchr/testify/assert"
)

// testModel builds the universe most tests share:
//
//	class Number
//	class Comparable<X>
//	class List<E>
func testModel() (m *java.Model, number, comparable, list *java.Class) {
	m = java.NewModel()
	number = java.NewClass("Number", java.ObjectClassName)
	comparable = java.NewClass("Comparable", java.ObjectClassName)
	list = java.NewClass("List", java.ObjectClassName)
	return m, number, comparable, list
}

func param(m *java.Model, owner *java.Class, name string, index int) *java.TypeParameter {
	return java.NewTypeParameter(m, owner, name, index, java.Invariant, false)
}

func TestErasePrimitivesAreIdentity(t *testing.T) {
	for _, p := range java.Primitives() {
		t.Run(p.String(), func(t *testing.T) {
			assert.Same(t, p, Erase(p, nil))
		})
	}
}

func TestEraseClassifierTypes(t *testing.T) {
	m, number, _, list := testModel()

	unbounded := param(m, list, "F", 0)
	unbounded.SetUpperBounds()

	classBounded := param(m, list, "G", 0)
	classBounded.SetUpperBounds(number.DefaultType())

	// H <: I <: Number
	chainEnd := param(m, list, "I", 1)
	chainEnd.SetUpperBounds(number.DefaultType())
	chained := param(m, list, "H", 0)
	chained.SetUpperBounds(chainEnd.DefaultType())

	// J <: K and K <: J
	cycleA := param(m, list, "J", 0)
	cycleB := param(m, list, "K", 1)
	cycleA.SetUpperBounds(cycleB.DefaultType())
	cycleB.SetUpperBounds(cycleA.DefaultType())

	selfCycle := param(m, list, "L", 0)
	selfCycle.SetUpperBounds(selfCycle.DefaultType())

	testCases := []struct {
		name     string
		input    java.Type
		expected java.Type
	}{
		{
			name:     "class reference erases to its default type",
			input:    number.DefaultType(),
			expected: number.DefaultType(),
		},
		{
			name:     "type arguments are dropped",
			input:    java.NewClassifierType(list, number.DefaultType()),
			expected: list.DefaultType(),
		},
		{
			name:     "parameter with no bounds erases to Object",
			input:    unbounded.DefaultType(),
			expected: m.ObjectType(),
		},
		{
			name:     "parameter bounded by a class erases to that class",
			input:    classBounded.DefaultType(),
			expected: number.DefaultType(),
		},
		{
			name:     "bound chain through another parameter reaches the class",
			input:    chained.DefaultType(),
			expected: number.DefaultType(),
		},
		{
			name:     "mutual bound cycle falls back to Object",
			input:    cycleA.DefaultType(),
			expected: m.ObjectType(),
		},
		{
			name:     "self bound cycle falls back to Object",
			input:    selfCycle.DefaultType(),
			expected: m.ObjectType(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Same(t, tc.expected, Erase(tc.input, nil))
		})
	}
}

func TestEraseWildcards(t *testing.T) {
	m, number, _, _ := testModel()

	testCases := []struct {
		name     string
		input    java.Type
		expected java.Type
	}{
		{
			name:     "extends wildcard erases its bound",
			input:    java.NewExtendsWildcard(m, number.DefaultType()),
			expected: number.DefaultType(),
		},
		{
			name:     "super wildcard erases to Object",
			input:    java.NewSuperWildcard(m, number.DefaultType()),
			expected: m.ObjectType(),
		},
		{
			name:     "unbounded wildcard erases to Object",
			input:    java.NewUnboundedWildcard(m),
			expected: m.ObjectType(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Same(t, tc.expected, Erase(tc.input, nil))
		})
	}
}

func TestEraseArrays(t *testing.T) {
	m, number, _, list := testModel()

	t.Run("array of primitive keeps its component", func(t *testing.T) {
		erased := Erase(java.NewArrayType(java.IntType), nil)
		arr, ok := erased.(*java.ArrayType)
		assert.True(t, ok, "expected an array type, got %v", erased)
		assert.Same(t, java.IntType, arr.ComponentType())
	})

	t.Run("array component is erased", func(t *testing.T) {
		f := param(m, list, "F", 0)
		f.SetUpperBounds(number.DefaultType())
		erased := Erase(java.NewArrayType(f.DefaultType()), nil)
		arr, ok := erased.(*java.ArrayType)
		assert.True(t, ok, "expected an array type, got %v", erased)
		assert.Same(t, number.DefaultType(), arr.ComponentType())
	})

	t.Run("array of an unerasable component is itself unerasable", func(t *testing.T) {
		unresolved := java.NewClassifierType(fakeClassifier{})
		assert.Nil(t, Erase(java.NewArrayType(unresolved), nil))
	})
}

func TestEraseSubstitution(t *testing.T) {
	m, number, comparable, list := testModel()

	// F <: G, G unbounded; the substitutor stands Number in for G
	g := param(m, list, "G", 1)
	g.SetUpperBounds()
	f := param(m, list, "F", 0)
	f.SetUpperBounds(g.DefaultType())

	t.Run("substitution terminates the bound chase", func(t *testing.T) {
		sub := substitutorFor(g, number.DefaultType())
		assert.Same(t, number.DefaultType(), Erase(f.DefaultType(), sub))
	})

	t.Run("without a substitution the chase continues", func(t *testing.T) {
		assert.Same(t, m.ObjectType(), Erase(f.DefaultType(), nil))
	})

	t.Run("the substituted type is erased under no substitutions", func(t *testing.T) {
		// H <: I, I <: Comparable; G is substituted with H. Erasing the
		// substituted H must follow H's own bounds only; if the outer
		// substitutor were re-consulted it would stand Number in for I.
		i := param(m, list, "I", 3)
		i.SetUpperBounds(comparable.DefaultType())
		h := param(m, list, "H", 2)
		h.SetUpperBounds(i.DefaultType())
		sub := chainSubstitutor{
			first:  substitutorFor(g, h.DefaultType()),
			second: substitutorFor(i, number.DefaultType()),
		}
		assert.Same(t, comparable.DefaultType(), Erase(f.DefaultType(), sub))
	})
}

func TestEraseUnsupportedVariants(t *testing.T) {
	t.Run("unknown type variant panics", func(t *testing.T) {
		assert.Panics(t, func() {
			Erase(fakeType{}, nil)
		})
	})

	t.Run("unknown classifier kind is merely unerasable", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.Nil(t, Erase(java.NewClassifierType(fakeClassifier{}), nil))
		})
	})
}

// fakeType and fakeClassifier stand outside the model's closed variant sets.
type fakeType struct{ java.Type }
type fakeClassifier struct{ java.Classifier }

func substitutorFor(p *java.TypeParameter, replacement java.Type) java.Substitutor {
	return singleSubstitutor{p: p, replacement: replacement}
}

type singleSubstitutor struct {
	p           *java.TypeParameter
	replacement java.Type
}

func (s singleSubstitutor) Substitute(p *java.TypeParameter) java.Type {
	if p == s.p {
		return s.replacement
	}
	return nil
}

type chainSubstitutor struct {
	first, second java.Substitutor
}

func (s chainSubstitutor) Substitute(p *java.TypeParameter) java.Type {
	if t := s.first.Substitute(p); t != nil {
		return t
	}
	return s.second.Substitute(p)
}
