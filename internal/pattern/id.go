// Package pattern implements the matching-logic pattern datatype: the
// tagged variant over element/set variables, symbols, connectives, binders,
// metavariables and deferred substitutions, together with the structural
// predicates (freshness, polarity, well-formedness) a proof checker needs
// to validate instantiation and inference steps.
package pattern

// Id identifies an element variable, set variable, symbol or metavariable.
// Ids are namespace-distinguished by the Kind of the Pattern that holds
// them; an EVar(3) and an SVar(3) do not refer to the same variable.
type Id int

// IdSet is an ordered set of Ids. Order is preserved from construction so
// that printing and re-serialization are deterministic, but membership
// (via Contains) is what every predicate relies on.
type IdSet struct {
	ids []Id
}

// NewIdSet builds an IdSet from a list of ids, preserving first occurrence
// order and dropping duplicates.
func NewIdSet(ids ...Id) IdSet {
	s := IdSet{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id if not already present.
func (s *IdSet) Add(id Id) {
	if s.Contains(id) {
		return
	}
	s.ids = append(s.ids, id)
}

// Contains reports whether id is a member of the set.
func (s IdSet) Contains(id Id) bool {
	for _, x := range s.ids {
		if x == id {
			return true
		}
	}
	return false
}

// Ids returns the set's members in insertion order. The caller must not
// mutate the returned slice.
func (s IdSet) Ids() []Id {
	return s.ids
}

// Len returns the number of members.
func (s IdSet) Len() int {
	return len(s.ids)
}

// IntersectsAny reports whether s and other share at least one member.
// Used by the MetaVar well-formedness check (app-ctx holes vs e-fresh).
func (s IdSet) IntersectsAny(other IdSet) bool {
	for _, x := range s.ids {
		if other.Contains(x) {
			return true
		}
	}
	return false
}

// Equal reports whether s and other contain the same members, regardless
// of insertion order.
func (s IdSet) Equal(other IdSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, x := range s.ids {
		if !other.Contains(x) {
			return false
		}
	}
	return true
}
