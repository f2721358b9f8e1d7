// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tribuf

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a producer or consumer protocol until the first effect
// suspension. Returns (result, nil) on completion, or (zero, suspension)
// if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// AdvanceInput dispatches the suspended producer operation on the
// producer handle. Producer operations never fail, so the suspension is
// always consumed and the protocol advances to the next effect or
// completion.
func AdvanceInput[T, R any](in *Input[T], susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	pop, ok := susp.Op().(inputDispatcher[T])
	if !ok {
		panic("tribuf: unhandled effect in AdvanceInput")
	}
	v, err := pop.DispatchInput(in)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}

// AdvanceOutput dispatches the suspended consumer operation on the
// consumer handle. DispatchOutput is non-blocking: it returns
// iox.ErrWouldBlock when no fresh value is pending (the would-block
// boundary).
//
// On success (nil error), the suspension is consumed and the protocol
// advances to the next effect or completion.
// On iox.ErrWouldBlock, the suspension is unconsumed and may be retried
// after the producer publishes.
func AdvanceOutput[T, R any](out *Output[T], susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	cop, ok := susp.Op().(outputDispatcher[T])
	if !ok {
		panic("tribuf: unhandled effect in AdvanceOutput")
	}
	v, err := cop.DispatchOutput(out)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
