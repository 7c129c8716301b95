package typing

import "sync/atomic"

// Fresher keeps track of new type variable IDs.
// Unlike a plain counter it is safe for concurrent use: identities are never
// reused, decremented or reset.
type Fresher struct {
	last atomic.Uint32
}

func NewFresher() *Fresher {
	return &Fresher{}
}

// Fresh returns a type variable no previous call to Fresh returned.
// The first identity handed out is 'a1.
func (f *Fresher) Fresh() TyVar {
	return TyVar(f.last.Add(1))
}

// Observe makes sure v is never handed out by f, for variables which were
// allocated elsewhere (such as one read from a serialised module)
func (f *Fresher) Observe(v TyVar) {
	for {
		last := f.last.Load()
		if uint32(v) <= last || f.last.CompareAndSwap(last, uint32(v)) {
			return
		}
	}
}

var defaultFresher = NewFresher()

// DefaultFresher is shared by the whole process. Tests should prefer their own
// Fresher so that identities are reproducible.
func DefaultFresher() *Fresher { return defaultFresher }

func Fresh() TyVar { return defaultFresher.Fresh() }
