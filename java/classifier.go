package java

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
)

// Classifier is the named entity a ClassifierType refers to: a class (or
// interface) or a type parameter. The set is closed, like Type.
type Classifier interface {
	fmt.Stringer
	Name() string
	isClassifier()
}

// Owner is an opaque identity for a declaration that can own type parameters.
// The model carries owners on parameters but never looks inside them.
type Owner interface {
	OwnerName() string
}

// Class is a class or interface declaration. Classes are immutable after
// construction; supertypes are recorded by name only.
type Class struct {
	name        string
	supertypes  set.Collection[string]
	typeParams  []*TypeParameter
	defaultType *ClassifierType
}

// NewClass builds a class with the given supertype names. The class's default
// type (its raw, unparameterized form) is created eagerly so that it has a
// stable identity.
func NewClass(name string, supertypes ...string) *Class {
	c := &Class{
		name:       name,
		supertypes: set.From(supertypes),
	}
	c.defaultType = NewClassifierType(c)
	return c
}

func (c *Class) isClassifier() {}

func (c *Class) Name() string { return c.name }

// DefaultType returns the class's unparameterized form. Every call returns
// the same value.
func (c *Class) DefaultType() *ClassifierType { return c.defaultType }

func (c *Class) Supertypes() set.Collection[string] { return c.supertypes }

// TypeParameters returns the class's declared parameters in order.
func (c *Class) TypeParameters() []*TypeParameter { return c.typeParams }

// SetTypeParameters attaches the declared parameter list. It may be called
// once, after the parameters (whose owner is this class) have been built.
func (c *Class) SetTypeParameters(params []*TypeParameter) {
	if c.typeParams != nil {
		panic("java: type parameters of " + c.name + " already set")
	}
	c.typeParams = params
}

// OwnerName lets a Class stand as the Owner of its own type parameters.
func (c *Class) OwnerName() string { return c.name }

func (c *Class) String() string { return c.name }

// TypeParameter is a declared generic parameter. Its bounds may reference
// sibling parameters, including mutually, so they are linked in a second
// phase via SetUpperBounds.
type TypeParameter struct {
	provider    TypeProvider
	owner       Owner
	name        string
	index       int
	variance    Variance
	reified     bool
	annotations []string
	upperBounds []*ClassifierType
	defaultType *ClassifierType
}

func NewTypeParameter(
	provider TypeProvider,
	owner Owner,
	name string,
	index int,
	variance Variance,
	reified bool,
	annotations ...string,
) *TypeParameter {
	p := &TypeParameter{
		provider:    provider,
		owner:       owner,
		name:        name,
		index:       index,
		variance:    variance,
		reified:     reified,
		annotations: annotations,
	}
	p.defaultType = NewClassifierType(p)
	return p
}

func (p *TypeParameter) isClassifier() {}

func (p *TypeParameter) Name() string       { return p.name }
func (p *TypeParameter) Index() int         { return p.index }
func (p *TypeParameter) Variance() Variance { return p.variance }
func (p *TypeParameter) IsReified() bool    { return p.reified }
func (p *TypeParameter) Owner() Owner       { return p.owner }

func (p *TypeParameter) Annotations() []string { return p.annotations }

// UpperBounds returns the declared upper bounds in order. May be empty.
func (p *TypeParameter) UpperBounds() []*ClassifierType { return p.upperBounds }

// SetUpperBounds links the declared bounds. It may be called once; bounds of
// freshly created parameters start empty.
func (p *TypeParameter) SetUpperBounds(bounds ...*ClassifierType) {
	if p.upperBounds != nil {
		panic("java: bounds of " + p.name + " already set")
	}
	p.upperBounds = bounds
}

// DefaultType returns the parameter's own type, the T in `class C<T>`.
// Every call returns the same value.
func (p *TypeParameter) DefaultType() *ClassifierType { return p.defaultType }

func (p *TypeParameter) Provider() TypeProvider { return p.provider }

func (p *TypeParameter) String() string { return p.name }

// NamedOwner is a minimal Owner for synthetic declarations that are not
// modeled as classes, such as generated bridge signatures.
type NamedOwner string

func (o NamedOwner) OwnerName() string { return string(o) }
