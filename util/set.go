package util

import (
	"iter"

	"github.com/benbjohnson/immutable"
)

// MSet is a mutable set over a map. Use immutable.Set instead if the set is
// not going to be modified after construction, as it is cheaper to share.
type MSet[A comparable] struct {
	underlying map[A]struct{}
}

func NewEmptySet[A comparable]() MSet[A] {
	return MSet[A]{underlying: make(map[A]struct{})}
}

func NewSetOf[A comparable](elems []A) MSet[A] {
	s := MSet[A]{underlying: make(map[A]struct{}, len(elems))}
	s.Add(elems...)
	return s
}

func (s MSet[A]) Add(elems ...A) {
	for _, elem := range elems {
		s.underlying[elem] = struct{}{}
	}
}

func (s MSet[A]) Contains(elem A) bool {
	_, ok := s.underlying[elem]
	return ok
}

func (s MSet[A]) Len() int {
	return len(s.underlying)
}

func (s MSet[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for elem := range s.underlying {
			if !yield(elem) {
				return
			}
		}
	}
}

func (s MSet[A]) Immutable(hasher immutable.Hasher[A]) immutable.Set[A] {
	slice := make([]A, 0, len(s.underlying))
	for elem := range s.underlying {
		slice = append(slice, elem)
	}
	return immutable.NewSet(hasher, slice...)
}
