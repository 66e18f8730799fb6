package pattern

// Pattern is the tagged-variant matching-logic term. Every concrete kind
// below implements it; callers switch on Kind() or on the concrete type (the
// predicates in this package do the latter). Construction never fails: well-formedness
// (Mu positivity, MetaVar hole/e-fresh disjointness, ESubst/SSubst head
// restriction) is a separate predicate (WellFormed) so that callers — in
// particular the interpreter — can construct-then-check the way the source
// checker does, and so tests can build deliberately ill-formed patterns to
// exercise WellFormed itself.
type Pattern interface {
	Kind() Kind
	String() string
	Equal(other Pattern) bool
}

// EVar is an element variable.
type EVar struct{ ID Id }

// SVar is a set variable.
type SVar struct{ ID Id }

// Symbol is a constant symbol.
type Symbol struct{ ID Id }

// Implication is phi -> psi.
type Implication struct{ Left, Right Pattern }

// Application is phi psi (application of one pattern to another).
type Application struct{ Left, Right Pattern }

// Exists is an element-bound quantifier, exists x. body.
type Exists struct {
	Var  Id
	Body Pattern
}

// Mu is a set-bound fixpoint, mu X. body. Well-formed only when Body is
// positive in X.
type Mu struct {
	Var  Id
	Body Pattern
}

// MetaVar is a placeholder for an arbitrary pattern, constrained by five
// id-sets that any eventual instantiation plug must satisfy: EFresh/SFresh
// (freshness), Positive/Negative (polarity), AppCtxHoles (application
// context holes, consulted by frame-style rules only).
type MetaVar struct {
	ID          Id
	EFresh      IdSet
	SFresh      IdSet
	Positive    IdSet
	Negative    IdSet
	AppCtxHoles IdSet
}

// ESubst is a deferred element-variable substitution: Body[Plug/Var].
// Constructed only over a Body whose head can still be instantiated
// (MetaVar, ESubst or SSubst); reduced when Body becomes concrete.
type ESubst struct {
	Body Pattern
	Var  Id
	Plug Pattern
}

// SSubst is a deferred set-variable substitution, symmetric to ESubst.
type SSubst struct {
	Body Pattern
	Var  Id
	Plug Pattern
}

func (EVar) Kind() Kind        { return EVarKind }
func (SVar) Kind() Kind        { return SVarKind }
func (Symbol) Kind() Kind      { return SymbolKind }
func (Implication) Kind() Kind { return ImplicationKind }
func (Application) Kind() Kind { return ApplicationKind }
func (Exists) Kind() Kind      { return ExistsKind }
func (Mu) Kind() Kind          { return MuKind }
func (MetaVar) Kind() Kind     { return MetaVarKind }
func (ESubst) Kind() Kind      { return ESubstKind }
func (SSubst) Kind() Kind      { return SSubstKind }

// NewEVar constructs an element-variable pattern.
func NewEVar(id Id) Pattern { return EVar{ID: id} }

// NewSVar constructs a set-variable pattern.
func NewSVar(id Id) Pattern { return SVar{ID: id} }

// NewSymbol constructs a constant-symbol pattern.
func NewSymbol(id Id) Pattern { return Symbol{ID: id} }

// NewImplication constructs left -> right.
func NewImplication(left, right Pattern) Pattern {
	return Implication{Left: left, Right: right}
}

// NewApplication constructs the application of left to right.
func NewApplication(left, right Pattern) Pattern {
	return Application{Left: left, Right: right}
}

// NewExists constructs exists var. body.
func NewExists(v Id, body Pattern) Pattern {
	return Exists{Var: v, Body: body}
}

// NewMu constructs mu var. body. Caller should check WellFormed afterwards.
func NewMu(v Id, body Pattern) Pattern {
	return Mu{Var: v, Body: body}
}

// UnconstrainedMetaVar constructs a MetaVar with all five id-sets empty —
// "phi_id" with no side conditions at all.
func UnconstrainedMetaVar(id Id) Pattern {
	return MetaVar{ID: id}
}

// MetaVarSFresh constructs a MetaVar fresh for a single set variable with
// explicit positivity/negativity sets and no e-fresh or hole constraints.
func MetaVarSFresh(id Id, sFresh Id, positive, negative IdSet) Pattern {
	return MetaVar{
		ID:       id,
		SFresh:   NewIdSet(sFresh),
		Positive: positive,
		Negative: negative,
	}
}

// NewMetaVar constructs a fully general MetaVar. Caller should check
// WellFormed afterwards (app-ctx holes must be disjoint from e-fresh).
func NewMetaVar(id Id, eFresh, sFresh, positive, negative, appCtxHoles IdSet) Pattern {
	return MetaVar{
		ID:          id,
		EFresh:      eFresh,
		SFresh:      sFresh,
		Positive:    positive,
		Negative:    negative,
		AppCtxHoles: appCtxHoles,
	}
}

// NewESubst constructs the deferred substitution body[plug/var]. Caller
// should check WellFormed afterwards (body must not be e-fresh in var, and
// body's head must be MetaVar/ESubst/SSubst).
func NewESubst(body Pattern, v Id, plug Pattern) Pattern {
	return ESubst{Body: body, Var: v, Plug: plug}
}

// NewSSubst constructs the deferred substitution body[plug/var], symmetric
// to NewESubst.
func NewSSubst(body Pattern, v Id, plug Pattern) Pattern {
	return SSubst{Body: body, Var: v, Plug: plug}
}

// substitutableHead reports whether p's head is one of the three kinds that
// a deferred ESubst/SSubst may still be constructed over (MetaVar, ESubst,
// SSubst) — i.e. p can still change under further instantiation.
func substitutableHead(p Pattern) bool {
	switch p.Kind() {
	case MetaVarKind, ESubstKind, SSubstKind:
		return true
	default:
		return false
	}
}
