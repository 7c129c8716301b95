package typing

import "fmt"

// Kind is the "type of a type".
// * (Star) is the kind of proper types (i32, bool, ()).
// * -> * is the kind of type constructors awaiting one argument.
//
// Kinds are compared structurally, never unified.
type Kind interface {
	fmt.Stringer
	Equal(Kind) bool
	// Arity is the number of arguments a constructor of this kind accepts
	Arity() int
	kindNode()
}

// KStar represents the kind of a fully applied type (*).
type KStar struct{}

func (KStar) kindNode()      {}
func (KStar) String() string { return "*" }
func (KStar) Arity() int     { return 0 }
func (KStar) Equal(other Kind) bool {
	_, ok := other.(KStar)
	return ok
}

// KFun represents a higher kind (k1 -> k2).
type KFun struct {
	Param  Kind
	Result Kind
}

func (KFun) kindNode() {}

func (k KFun) String() string {
	return fmt.Sprintf("(%s -> %s)", k.Param, k.Result)
}

func (k KFun) Arity() int { return 1 + k.Result.Arity() }

func (k KFun) Equal(other Kind) bool {
	o, ok := other.(KFun)
	if !ok {
		return false
	}
	return k.Param.Equal(o.Param) && k.Result.Equal(o.Result)
}

var Star Kind = KStar{}

// KindOfArity returns * -> ... -> * with n arrows
func KindOfArity(n int) Kind {
	var k Kind = Star
	for range n {
		k = KFun{Param: Star, Result: k}
	}
	return k
}
