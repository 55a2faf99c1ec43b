package generics

import (
	"hash/fnv"
	"iter"

	"github.com/benbjohnson/immutable"
	"github.com/nvallet/jtype/java"
	"github.com/nvallet/jtype/util"
)

// ParameterMapping associates original type parameters with their clones,
// preserving the originals' declaration order. Downstream consumers generate
// positionally correspondent signatures from it, so iteration order is part
// of the contract and a plain map would not do.
type ParameterMapping struct {
	pairs []util.Pair[*java.TypeParameter, *java.TypeParameter]
	index map[*java.TypeParameter]*java.TypeParameter
}

func (m *ParameterMapping) Len() int { return len(m.pairs) }

// CloneOf returns the clone created for p, if p was among the originals.
func (m *ParameterMapping) CloneOf(p *java.TypeParameter) (*java.TypeParameter, bool) {
	clone, ok := m.index[p]
	return clone, ok
}

// Pairs iterates (original, clone) in the originals' declaration order.
func (m *ParameterMapping) Pairs() iter.Seq2[*java.TypeParameter, *java.TypeParameter] {
	return func(yield func(*java.TypeParameter, *java.TypeParameter) bool) {
		for _, pair := range m.pairs {
			if !yield(pair.Fst, pair.Snd) {
				return
			}
		}
	}
}

// Clones returns the clones in the originals' declaration order.
func (m *ParameterMapping) Clones() []*java.TypeParameter {
	clones := make([]*java.TypeParameter, len(m.pairs))
	for i, pair := range m.pairs {
		clones[i] = pair.Snd
	}
	return clones
}

// CloneParameters re-hosts original under newOwner, returning the mapping
// from each original to its clone. Clones copy annotations, the reified
// flag, variance, name, and the declaration index verbatim; the index is not
// renumbered for the new owner. A nil newOwner keeps each original's own
// owner, yielding an independent copy with unchanged ownership. Clones carry
// no source provenance and start with no bounds; callers attach substituted
// bounds themselves, typically via BuildSubstitutor.
//
// original is never mutated.
func CloneParameters(original []*java.TypeParameter, newOwner java.Owner) *ParameterMapping {
	m := &ParameterMapping{
		pairs: make([]util.Pair[*java.TypeParameter, *java.TypeParameter], 0, len(original)),
		index: make(map[*java.TypeParameter]*java.TypeParameter, len(original)),
	}
	for _, p := range original {
		owner := newOwner
		if owner == nil {
			owner = p.Owner()
		}
		clone := java.NewTypeParameter(
			p.Provider(),
			owner,
			p.Name(),
			p.Index(),
			p.Variance(),
			p.IsReified(),
			p.Annotations()...,
		)
		m.pairs = append(m.pairs, util.NewPair(p, clone))
		m.index[p] = clone
	}
	return m
}

// BuildSubstitutor derives a substitutor from a clone mapping: each original
// parameter substitutes to its clone's own default type. Parameters outside
// the mapping's domain get no substitution.
func BuildSubstitutor(m *ParameterMapping) java.Substitutor {
	types := immutable.NewMap[*java.TypeParameter, java.Type](paramHasher{})
	for orig, clone := range m.Pairs() {
		types = types.Set(orig, clone.DefaultType())
	}
	return &mapSubstitutor{types: types}
}

type mapSubstitutor struct {
	types *immutable.Map[*java.TypeParameter, java.Type]
}

func (s *mapSubstitutor) Substitute(p *java.TypeParameter) java.Type {
	t, ok := s.types.Get(p)
	if !ok {
		return nil
	}
	return t
}

// paramHasher hashes parameters by name and index; identity settles
// collisions. Two distinct parameters may share a bucket, never an entry.
type paramHasher struct{}

func (paramHasher) Hash(p *java.TypeParameter) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(p.Name()))
	return h.Sum32()*31 + uint32(p.Index())
}

func (paramHasher) Equal(a, b *java.TypeParameter) bool { return a == b }
