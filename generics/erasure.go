// Package generics implements the two generics algorithms the surrounding
// machinery (declaration cloning, synthetic override generation, interop
// bridging) builds on: erasure of a type against a java model, and
// re-hosting of an ordered type-parameter list under a new owner.
package generics

import (
	"fmt"

	"github.com/nvallet/jtype/internal/log"
	"github.com/nvallet/jtype/java"
	"github.com/nvallet/jtype/util"
)

var logger = log.DefaultLogger.With("section", "generics")

// Erase computes the erased form of t: generic arguments are dropped, type
// parameters resolve to their first upper bound's class (or Object), and
// wildcards resolve to their extends-bound's erasure or Object.
//
// substitutor may be nil, meaning no substitutions apply. A nil result means
// no erasure is available for t, which is a normal outcome (for example an
// array over a classifier the model cannot resolve); it is not an error.
//
// Erase never mutates the model and is safe to call concurrently against the
// same model.
func Erase(t java.Type, substitutor java.Substitutor) java.Type {
	if substitutor == nil {
		substitutor = java.EmptySubstitutor
	}
	switch t := t.(type) {
	case *java.ClassifierType:
		switch classifier := t.Classifier().(type) {
		case *java.Class:
			return classifier.DefaultType()
		case *java.TypeParameter:
			return eraseTypeParameter(classifier, util.NewEmptySet[*java.TypeParameter](), substitutor)
		default:
			// a classifier kind the model could not resolve: no erasure
			logger.Debug("cannot erase unresolved classifier", "classifier", fmt.Sprintf("%T", classifier))
			return nil
		}
	case *java.PrimitiveType:
		return t
	case *java.ArrayType:
		component := Erase(t.ComponentType(), substitutor)
		if component == nil {
			return nil
		}
		return java.NewArrayType(component)
	case *java.WildcardType:
		if bound := t.Bound(); bound != nil && t.IsExtends() {
			return Erase(bound, substitutor)
		}
		return t.Provider().ObjectType()
	default:
		panic(fmt.Sprintf("unsupported type: %v (%T)", t, t))
	}
}

// eraseTypeParameter chases p's first declared upper bound until it reaches a
// class, a substitution, or a parameter it has already seen. visited is
// private to one top-level Erase call; the model itself is never marked.
func eraseTypeParameter(
	p *java.TypeParameter,
	visited util.MSet[*java.TypeParameter],
	substitutor java.Substitutor,
) java.Type {
	bounds := p.UpperBounds()
	if len(bounds) > 0 {
		// only the first bound takes part in erasure
		switch classifier := bounds[0].Classifier().(type) {
		case *java.TypeParameter:
			if !visited.Contains(classifier) {
				visited.Add(classifier)
				if substituted := substitutor.Substitute(classifier); substituted != nil {
					return Erase(substituted, java.EmptySubstitutor)
				}
				return eraseTypeParameter(classifier, visited, substitutor)
			}
			logger.Debug("bound cycle, falling back to Object", "parameter", p.Name(), "bound", classifier.Name())
		case *java.Class:
			return classifier.DefaultType()
		}
	}
	return p.Provider().ObjectType()
}
