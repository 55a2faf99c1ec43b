// Package java holds a structural, read-only model of Java-shaped types:
// classifiers (classes and type parameters), primitive, array and wildcard
// types. It is the data model consumed by the generics package; nothing here
// resolves names or checks subtyping.
package java

import (
	"fmt"

	"github.com/nvallet/jtype/util"
)

// Type is the closed set of type variants the model understands.
// Algorithms over the model dispatch exhaustively over these; a variant
// outside this set is a broken model, not a recoverable input.
type Type interface {
	fmt.Stringer
	isType()
}

var (
	_ Type = (*ClassifierType)(nil)
	_ Type = (*PrimitiveType)(nil)
	_ Type = (*ArrayType)(nil)
	_ Type = (*WildcardType)(nil)

	_ Classifier = (*Class)(nil)
	_ Classifier = (*TypeParameter)(nil)
)

// ClassifierType is a reference to a classifier, possibly applied to type
// arguments, as in List<String> or plain T.
type ClassifierType struct {
	classifier Classifier
	typeArgs   []Type
}

func NewClassifierType(classifier Classifier, typeArgs ...Type) *ClassifierType {
	return &ClassifierType{classifier: classifier, typeArgs: typeArgs}
}

func (t *ClassifierType) isType() {}

func (t *ClassifierType) Classifier() Classifier { return t.classifier }

// TypeArguments returns the applied arguments in declaration order.
// Callers must not modify the returned slice.
func (t *ClassifierType) TypeArguments() []Type { return t.typeArgs }

func (t *ClassifierType) String() string {
	if len(t.typeArgs) == 0 {
		return t.classifier.String()
	}
	return t.classifier.String() + "<" + util.JoinString(t.typeArgs, ", ") + ">"
}

// PrimitiveType is an unparameterized scalar type. The set of primitives is
// fixed; use the package-level values rather than constructing new ones.
type PrimitiveType struct {
	name string
}

var (
	BooleanType = &PrimitiveType{name: "boolean"}
	ByteType    = &PrimitiveType{name: "byte"}
	CharType    = &PrimitiveType{name: "char"}
	ShortType   = &PrimitiveType{name: "short"}
	IntType     = &PrimitiveType{name: "int"}
	LongType    = &PrimitiveType{name: "long"}
	FloatType   = &PrimitiveType{name: "float"}
	DoubleType  = &PrimitiveType{name: "double"}
	VoidType    = &PrimitiveType{name: "void"}
)

// Primitives returns every primitive kind in the model.
func Primitives() []*PrimitiveType {
	return []*PrimitiveType{
		BooleanType, ByteType, CharType, ShortType,
		IntType, LongType, FloatType, DoubleType, VoidType,
	}
}

func (t *PrimitiveType) isType()        {}
func (t *PrimitiveType) String() string { return t.name }

// ArrayType wraps a component type.
type ArrayType struct {
	component Type
}

func NewArrayType(component Type) *ArrayType {
	return &ArrayType{component: component}
}

func (t *ArrayType) isType()             {}
func (t *ArrayType) ComponentType() Type { return t.component }
func (t *ArrayType) String() string      { return t.component.String() + "[]" }

// WildcardType is a use-site projection: `? extends X`, `? super X` or a bare
// `?`. Bound may be nil, in which case the wildcard is unbounded.
type WildcardType struct {
	provider TypeProvider
	bound    Type
	extends  bool
}

func NewExtendsWildcard(provider TypeProvider, bound Type) *WildcardType {
	return &WildcardType{provider: provider, bound: bound, extends: true}
}

func NewSuperWildcard(provider TypeProvider, bound Type) *WildcardType {
	return &WildcardType{provider: provider, bound: bound}
}

func NewUnboundedWildcard(provider TypeProvider) *WildcardType {
	return &WildcardType{provider: provider}
}

func (t *WildcardType) isType() {}

// Bound returns the declared bound, or nil for an unbounded wildcard.
func (t *WildcardType) Bound() Type { return t.bound }

// IsExtends reports whether the bound is an upper (`extends`) bound.
// It is false for unbounded and `super`-bounded wildcards.
func (t *WildcardType) IsExtends() bool { return t.extends }

func (t *WildcardType) Provider() TypeProvider { return t.provider }

func (t *WildcardType) String() string {
	switch {
	case t.bound == nil:
		return "?"
	case t.extends:
		return "? extends " + t.bound.String()
	default:
		return "? super " + t.bound.String()
	}
}
