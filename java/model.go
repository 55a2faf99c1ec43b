package java

// TypeProvider hands out the universal top type. Entities that may need to
// fall back to it (wildcards, type parameters) carry a provider reference, so
// algorithms never have to thread one through.
type TypeProvider interface {
	// ObjectType is the root of the class hierarchy in its default form.
	ObjectType() Type
}

// ObjectClassName is the name of the root class in every Model.
const ObjectClassName = "Object"

var _ TypeProvider = (*Model)(nil)

// Model is the root of an in-memory type universe. It owns the Object class
// and acts as the TypeProvider for everything built against it.
//
// A Model and the entities built on it are immutable once linked, so any
// number of goroutines may run algorithms over the same Model concurrently.
type Model struct {
	object *Class
}

func NewModel() *Model {
	return &Model{object: NewClass(ObjectClassName)}
}

func (m *Model) ObjectClass() *Class { return m.object }

func (m *Model) ObjectType() Type { return m.object.DefaultType() }

// Substitutor answers what type currently stands in for a type parameter.
// A nil result means no substitution is available and the parameter is to be
// used as-is.
type Substitutor interface {
	Substitute(p *TypeParameter) Type
}

type emptySubstitutor struct{}

func (emptySubstitutor) Substitute(*TypeParameter) Type { return nil }

// EmptySubstitutor never substitutes anything.
var EmptySubstitutor Substitutor = emptySubstitutor{}
