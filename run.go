// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tribuf

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// RunPair splits buf, runs the Cont-world producer protocol on the
// Input and the consumer protocol on the Output, and returns both
// results. Interleaves execution of both sides on the calling goroutine
// using adaptive backoff (iox.Backoff) when neither side can make
// progress. Does not spawn goroutines or create channels.
//
// One operation per side is dispatched per round, so a producer and
// consumer of matched length observe a strict publish/claim alternation.
func RunPair[T, A, B any](buf *Buffer[T], producer kont.Eff[A], consumer kont.Eff[B]) (A, B) {
	return RunPairExpr(buf, Reify(producer), Reify(consumer))
}

// RunPairExpr splits buf, runs both Expr-world protocols, and returns
// both results. Interleaves execution of both sides on the calling
// goroutine using adaptive backoff (iox.Backoff) when neither side can
// make progress. Does not spawn goroutines or create channels.
func RunPairExpr[T, A, B any](buf *Buffer[T], producer kont.Expr[A], consumer kont.Expr[B]) (A, B) {
	in, out := buf.Split()
	resultA, suspA := Step[A](producer)
	resultB, suspB := Step[B](consumer)
	var bo iox.Backoff

	var popA inputDispatcher[T]
	if suspA != nil {
		popA = suspA.Op().(inputDispatcher[T])
	}
	var copB outputDispatcher[T]
	if suspB != nil {
		copB = suspB.Op().(outputDispatcher[T])
	}

	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			v, err := popA.DispatchInput(in)
			if err == nil {
				resultA, suspA = suspA.Resume(v)
				if suspA != nil {
					popA = suspA.Op().(inputDispatcher[T])
				}
				progress = true
			}
		}
		if suspB != nil {
			v, err := copB.DispatchOutput(out)
			if err == nil {
				resultB, suspB = suspB.Resume(v)
				if suspB != nil {
					copB = suspB.Op().(outputDispatcher[T])
				}
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}
