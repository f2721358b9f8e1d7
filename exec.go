// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tribuf

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// produceHandler implements kont.Handler for producer effects ([Put]).
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type produceHandler[T, R any] struct {
	in *Input[T]
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h produceHandler[T, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	pop, ok := op.(inputDispatcher[T])
	if !ok {
		panic("tribuf: unhandled effect in produceHandler")
	}
	return dispatchInputWait(h.in, pop), true
}

// consumeHandler implements kont.Handler for consumer effects
// ([Peek], [Take]). Waits past the iox.ErrWouldBlock boundary with
// adaptive backoff.
type consumeHandler[T, R any] struct {
	out *Output[T]
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h consumeHandler[T, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	cop, ok := op.(outputDispatcher[T])
	if !ok {
		panic("tribuf: unhandled effect in consumeHandler")
	}
	return dispatchOutputWait(h.out, cop), true
}

// dispatchInputWait dispatches a producer operation. Producer operations
// are total, so the loop exists only for interface symmetry with the
// consumer side.
func dispatchInputWait[T any](in *Input[T], pop inputDispatcher[T]) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := pop.DispatchInput(in)
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// dispatchOutputWait blocks until DispatchOutput succeeds, backing off
// on iox.ErrWouldBlock with iox.Backoff.
func dispatchOutputWait[T any](out *Output[T], cop outputDispatcher[T]) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := cop.DispatchOutput(out)
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// ExecInput runs a Cont-world producer protocol on the producer handle.
func ExecInput[T, R any](in *Input[T], protocol kont.Eff[R]) R {
	h := produceHandler[T, R]{in: in}
	return kont.Handle(protocol, h)
}

// ExecInputExpr runs an Expr-world producer protocol on the producer
// handle.
func ExecInputExpr[T, R any](in *Input[T], protocol kont.Expr[R]) R {
	h := produceHandler[T, R]{in: in}
	return kont.HandleExpr(protocol, h)
}

// ExecOutput runs a Cont-world consumer protocol on the consumer handle.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func ExecOutput[T, R any](out *Output[T], protocol kont.Eff[R]) R {
	h := consumeHandler[T, R]{out: out}
	return kont.Handle(protocol, h)
}

// ExecOutputExpr runs an Expr-world consumer protocol on the consumer
// handle. Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func ExecOutputExpr[T, R any](out *Output[T], protocol kont.Expr[R]) R {
	h := consumeHandler[T, R]{out: out}
	return kont.HandleExpr(protocol, h)
}
