package typing

import (
	"fmt"
	"strings"
)

// ForAll is a type scheme: Type universally quantified over BoundVars.
//
// Every bound variable is expected to occur free in the body, but minimality
// is not enforced.
type ForAll struct {
	boundVars []TyVar
	ty        Type
}

func NewForAll(boundVars []TyVar, ty Type) *ForAll {
	return &ForAll{boundVars: boundVars, ty: ty}
}

// Mono wraps ty in a scheme which quantifies over nothing
func Mono(ty Type) *ForAll {
	return &ForAll{ty: ty}
}

func (s *ForAll) BoundVars() []TyVar { return s.boundVars }
func (s *ForAll) Type() Type         { return s.ty }
func (s *ForAll) IsMonotype() bool   { return len(s.boundVars) == 0 }

// FreeTyVars returns the free type variables of the body which are not bound
// by the scheme
func (s *ForAll) FreeTyVars() TyVarSet {
	return s.ty.FreeTyVars().Diff(NewTyVarSet(s.boundVars...))
}

// Instantiate replaces every bound variable with a fresh one from f, in bound
// order, and returns the fresh variables along with the instantiated body.
// A nil f uses DefaultFresher.
func (s *ForAll) Instantiate(f *Fresher) ([]TyVar, Type) {
	if f == nil {
		f = defaultFresher
	}
	subst := NewSubst()
	fresh := make([]TyVar, 0, len(s.boundVars))
	for _, bv := range s.boundVars {
		tv := f.Fresh()
		fresh = append(fresh, tv)
		subst.Bind(bv, tv)
	}
	return fresh, subst.Apply(s.ty)
}

// Apply returns a new scheme with subst applied to its body.
// Bound variables are never substituted.
func (s *ForAll) Apply(subst Subst) *ForAll {
	return &ForAll{
		boundVars: s.boundVars,
		ty:        subst.without(s.boundVars).Apply(s.ty),
	}
}

func (s *ForAll) String() string {
	if s.IsMonotype() {
		return s.ty.String()
	}
	vars := make([]string, len(s.boundVars))
	for i, v := range s.boundVars {
		vars[i] = v.String()
	}
	return fmt.Sprintf("forall %s. %v", strings.Join(vars, " "), s.ty)
}

// Generalize quantifies ty over the variables free in ty but not free in env.
// Variables still free in env belong to an enclosing binding and must stay
// monomorphic here.
//
// Bound variables are ordered by ascending identity.
func Generalize(ty Type, env Env) *ForAll {
	bound := ty.FreeTyVars().Diff(env.FreeTyVars())
	return NewForAll(bound, ty)
}
