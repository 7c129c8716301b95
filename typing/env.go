package typing

import (
	"cmp"

	"github.com/benbjohnson/immutable"
)

type termIDComparer struct{}

func (termIDComparer) Compare(a, b uint32) int { return cmp.Compare(a, b) }

// Env maps term variable identities to their generalized schemes.
//
// It is persistent: Extend and Remove return a new Env and leave the receiver
// untouched, so an enclosing scope can keep using its own Env.
type Env struct {
	schemes *immutable.SortedMap[uint32, *ForAll]
}

func NewEnv() Env {
	return Env{schemes: immutable.NewSortedMap[uint32, *ForAll](termIDComparer{})}
}

func (e Env) m() *immutable.SortedMap[uint32, *ForAll] {
	if e.schemes == nil {
		return NewEnv().schemes
	}
	return e.schemes
}

func (e Env) Extend(id uint32, scheme *ForAll) Env {
	return Env{schemes: e.m().Set(id, scheme)}
}

func (e Env) Remove(id uint32) Env {
	return Env{schemes: e.m().Delete(id)}
}

func (e Env) Lookup(id uint32) (*ForAll, bool) {
	return e.m().Get(id)
}

func (e Env) Len() int { return e.m().Len() }

// FreeTyVars is the union of the free type variables of every scheme in e
func (e Env) FreeTyVars() TyVarSet {
	var ftv TyVarSet
	itr := e.m().Iterator()
	for !itr.Done() {
		_, scheme, _ := itr.Next()
		ftv = ftv.Union(scheme.FreeTyVars())
	}
	return ftv
}

func (e Env) Apply(subst Subst) Env {
	res := e.m()
	itr := res.Iterator()
	for !itr.Done() {
		id, scheme, _ := itr.Next()
		res = res.Set(id, scheme.Apply(subst))
	}
	return Env{schemes: res}
}
