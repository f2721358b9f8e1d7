// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tribuf

// Input is the producer handle of a triple buffer.
//
// The producer can submit an update at any time without waiting for the
// consumer: a collision costs cache contention, never a deadlock or a
// scheduling-induced stall. An Input must only be used by one goroutine
// at a time.
type Input[T any] struct {
	shared *sharedState[T]
	idx    uint32
}

// Write stores value into the producer's private slot and publishes it
// to the consumer.
//
// The returned flag reports whether a previously published value was
// still unread and has now been permanently replaced. It is advisory
// only: do not let it gate whether a write happens, as that degrades
// the primitive into a poor spinlock-based double buffer. If a blocking
// hand-off is what you need, use [Input.WriteAwaitConsumed] or a proper
// bounded queue.
func (in *Input[T]) Write(value T) bool {
	in.shared.slots[in.idx] = value
	return in.publish()
}

// Consumed reports whether the consumer has fetched the last published
// value.
//
// Diagnostic only: the answer may be stale by the time it returns, and
// it performs no synchronization. Do not drive write decisions with it.
func (in *Input[T]) Consumed() bool {
	return in.shared.back.LoadRelaxed()&backDirtyBit == 0
}

// publish exchanges the producer's slot with the back slot in one
// indivisible read-modify-write, marking it dirty. The slot that was in
// flight becomes the producer's new private slot.
//
// Returns whether the exchange discarded an unread value.
func (in *Input[T]) publish() bool {
	former := in.shared.swapPublish(in.idx | backDirtyBit)
	in.idx = former & backIndexMask
	return former&backDirtyBit != 0
}
