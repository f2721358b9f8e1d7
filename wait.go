// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tribuf

import (
	"code.hybscloud.com/iox"
)

// Blocking conveniences layered on the non-blocking handle operations.
// The core protocol never waits; these helpers convert would-block into
// waiting with adaptive backoff (iox.Backoff), without spawning
// goroutines or creating channels.

// ReadFresh waits until the producer publishes a value not yet fetched
// by this handle, claims it, and returns it. Values published while
// waiting replace one another; only the latest is delivered.
//
// The returned pointer has the same lifetime contract as [Output.Read].
func (out *Output[T]) ReadFresh() *T {
	var bo iox.Backoff
	for !out.update() {
		bo.Wait()
	}
	return &out.shared.slots[out.idx]
}

// WriteAwaitConsumed writes value, then waits until the consumer has
// fetched it. Returns the advisory overwrite flag of the write.
//
// This is a pacing helper: the wait observes the dirty bit with relaxed
// loads and establishes no ordering beyond what the consumer's fetch
// already provides.
func (in *Input[T]) WriteAwaitConsumed(value T) bool {
	overwrote := in.Write(value)
	var bo iox.Backoff
	for !in.Consumed() {
		bo.Wait()
	}
	return overwrote
}
