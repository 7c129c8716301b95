package typing

// Subst represents a substitution mapping from type variables to types
type Subst map[TyVar]Type

func NewSubst() Subst {
	return make(Subst)
}

// Bind adds a mapping and returns the updated substitution
func (s Subst) Bind(v TyVar, t Type) Subst {
	s[v] = t
	return s
}

func (s Subst) Lookup(v TyVar) (Type, bool) {
	t, ok := s[v]
	return t, ok
}

// Apply replaces every free occurrence of a bound variable in t.
// Binders only exist at the ForAll level, so no renaming is ever needed here.
// Subtrees which do not change are shared with t.
func (s Subst) Apply(t Type) Type {
	if len(s) == 0 {
		return t
	}
	switch t := t.(type) {
	case TyVar:
		if replacement, ok := s[t]; ok {
			return replacement
		}
		return t
	case *App:
		head := s.Apply(t.Head)
		changed := head != t.Head
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.Apply(arg)
			changed = changed || args[i] != arg
		}
		if !changed {
			return t
		}
		return &App{Head: head, Args: args}
	default:
		return t
	}
}

// without returns a copy of s which leaves vars untouched
func (s Subst) without(vars []TyVar) Subst {
	filtered := make(Subst, len(s))
	for v, t := range s {
		filtered[v] = t
	}
	for _, v := range vars {
		delete(filtered, v)
	}
	return filtered
}
