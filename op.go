// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tribuf

import (
	"code.hybscloud.com/kont"
)

// Put is the producer effect operation for publishing a value of type T.
// Perform(Put[T]{Value: v}) publishes v and resumes with the advisory
// overwrite flag.
type Put[T any] struct {
	kont.Phantom[bool]
	Value T
}

// DispatchInput handles Put on the producer handle. Never blocks.
func (p Put[T]) DispatchInput(in *Input[T]) (kont.Resumed, error) {
	if in.Write(p.Value) {
		return resumedOverwrote, nil
	}
	return resumedClean, nil
}

// Peek is the consumer effect operation for reading the latest value.
// Perform(Peek[T]{}) resumes with a copy of the most recently published
// value (the initial value before any write). Never blocks.
type Peek[T any] struct {
	kont.Phantom[T]
}

// DispatchOutput handles Peek on the consumer handle. Never blocks.
func (Peek[T]) DispatchOutput(out *Output[T]) (kont.Resumed, error) {
	return *out.Read(), nil
}

// Take is the consumer effect operation for claiming a fresh value.
// Perform(Take[T]{}) resumes with a copy of a pending update.
type Take[T any] struct {
	kont.Phantom[T]
}

// DispatchOutput handles Take on the consumer handle.
// Non-blocking: returns iox.ErrWouldBlock when no update is pending.
func (Take[T]) DispatchOutput(out *Output[T]) (kont.Resumed, error) {
	v, err := out.Fetch()
	if err != nil {
		return nil, err
	}
	return *v, nil
}

// resumedOverwrote and resumedClean are pre-boxed Resumed values for
// the Put overwrite flag, avoiding per-dispatch heap escape.
var (
	resumedOverwrote kont.Resumed = true
	resumedClean     kont.Resumed = false
)

// inputDispatcher is the structural interface for producer operations.
// DispatchInput never fails: triple-buffer writes are unconditional.
type inputDispatcher[T any] interface {
	DispatchInput(in *Input[T]) (kont.Resumed, error)
}

// outputDispatcher is the structural interface for consumer operations.
// DispatchOutput is non-blocking: it returns iox.ErrWouldBlock at the
// boundary when no fresh value is available.
type outputDispatcher[T any] interface {
	DispatchOutput(out *Output[T]) (kont.Resumed, error)
}
