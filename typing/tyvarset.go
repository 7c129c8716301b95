package typing

import (
	"slices"
	"sort"
	"strings"

	"github.com/xtgo/set"
)

// TyVarSet is a sorted, duplicate-free set of type variables.
// Iteration order is ascending identity, which keeps every operation built on
// it deterministic.
type TyVarSet []TyVar

var _ sort.Interface = TyVarSet(nil)

func (s TyVarSet) Len() int           { return len(s) }
func (s TyVarSet) Less(i, j int) bool { return s[i] < s[j] }
func (s TyVarSet) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func NewTyVarSet(vars ...TyVar) TyVarSet {
	data := append(TyVarSet(nil), vars...)
	sort.Sort(data)
	return data[:set.Uniq(data)]
}

func (s TyVarSet) Union(other TyVarSet) TyVarSet {
	if len(other) == 0 {
		return s
	}
	if len(s) == 0 {
		return other
	}
	data := make(TyVarSet, 0, len(s)+len(other))
	data = append(data, s...)
	data = append(data, other...)
	return data[:set.Union(data, len(s))]
}

// Diff returns the variables of s which are not in other
func (s TyVarSet) Diff(other TyVarSet) TyVarSet {
	if len(s) == 0 || len(other) == 0 {
		return s
	}
	data := make(TyVarSet, 0, len(s)+len(other))
	data = append(data, s...)
	data = append(data, other...)
	return data[:set.Diff(data, len(s))]
}

func (s TyVarSet) Contains(v TyVar) bool {
	_, found := slices.BinarySearch(s, v)
	return found
}

func (s TyVarSet) String() string {
	strs := make([]string, len(s))
	for i, v := range s {
		strs[i] = v.String()
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
