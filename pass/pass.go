// Package pass defines the contract shared by compiler passes
package pass

import (
	"github.com/cottand/monoc/failed"
	"github.com/pkg/errors"
)

// Pass transforms In into Out, or fails as a whole
type Pass[In, Out any] interface {
	Run(In) (Out, error)
}

// RunEach runs a batch pass once per input, so that a failing input does not
// hide the errors of the others. outs[i] is the zero Out when inputs[i] failed.
func RunEach[In, Out any](p Pass[[]In, []Out], inputs []In) (outs []Out, errs *failed.Errors) {
	outs = make([]Out, len(inputs))
	for i, input := range inputs {
		res, err := p.Run([]In{input})
		if err != nil {
			var compileErr failed.CompileError
			if !errors.As(err, &compileErr) {
				compileErr = failed.New(failed.Unclassified{From: err})
			}
			errs = errs.With(wrapped{CompileError: compileErr, err: err})
			continue
		}
		if len(res) == 1 {
			outs[i] = res[0]
		}
	}
	return outs, errs
}

// wrapped keeps the code of the underlying CompileError but the full message
// of the error returned by the pass
type wrapped struct {
	failed.CompileError
	err error
}

func (w wrapped) Error() string { return w.err.Error() }
func (w wrapped) Unwrap() error { return w.err }
