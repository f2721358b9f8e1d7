// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tribuf

import (
	"code.hybscloud.com/iox"
)

// Output is the consumer handle of a triple buffer.
//
// The consumer can access the latest published value at any time without
// waiting for the producer. An Output must only be used by one goroutine
// at a time.
type Output[T any] struct {
	shared *sharedState[T]
	idx    uint32
}

// Read returns the latest value published by the producer, fetching a
// pending update first if one exists. Before the first write it returns
// the buffer's initial value.
//
// The returned pointer aliases the consumer's private slot: it is valid
// until the next Read or Fetch on this handle and must not be retained
// across such calls.
func (out *Output[T]) Read() *T {
	out.update()
	return &out.shared.slots[out.idx]
}

// Fetch claims a pending update and returns a pointer to it, or
// iox.ErrWouldBlock when the producer has published nothing new since
// the last fetch. On would-block no exchange is performed and the
// previous output slot stays untouched.
//
// The returned pointer has the same lifetime contract as [Output.Read].
func (out *Output[T]) Fetch() (*T, error) {
	if !out.update() {
		return nil, iox.ErrWouldBlock
	}
	return &out.shared.slots[out.idx], nil
}

// Updated reports whether a not-yet-fetched update is pending.
//
// Diagnostic only: the answer may be stale by the time it returns, and
// it performs no synchronization. Do not drive read decisions with it.
func (out *Output[T]) Updated() bool {
	return out.shared.back.LoadRelaxed()&backDirtyBit != 0
}

// update claims the back slot as the new output slot when it is dirty,
// clearing the dirty bit as part of the same exchange; the former
// output slot becomes the new back slot. When clean this is a single
// relaxed load and the descriptor is left untouched.
//
// Returns whether an update was pulled.
func (out *Output[T]) update() bool {
	if out.shared.back.LoadRelaxed()&backDirtyBit == 0 {
		return false
	}
	former := out.shared.swapUpdate(out.idx)
	out.idx = former & backIndexMask
	return true
}
