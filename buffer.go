// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tribuf

import (
	"code.hybscloud.com/atomix"
)

// Back-buffer descriptor layout. The low two bits hold the index of the
// slot currently in flight between producer and consumer; the bit above
// them is set by the producer when that slot carries a value the
// consumer has not fetched yet.
const (
	backIndexMask uint32 = 0b011
	backDirtyBit  uint32 = 0b100
)

// sharedState is the storage jointly referenced by both handles: three
// value slots and the atomic back-buffer descriptor.
//
// Slot contents are read and written without per-access synchronization.
// This is sound because the input index, the output index, and the
// descriptor's back index form a permutation of {0, 1, 2} at every
// reachable state, and a side only ever touches the slot it privately
// holds. Ownership moves exclusively through the descriptor exchange.
type sharedState[T any] struct {
	slots [3]T
	// The descriptor is the only word both sides hit on every
	// operation; keep it off the slots' cache lines.
	_    [64]byte
	back atomix.Uint32
	_    [64]byte
}

// Buffer is an unsplit triple buffer holding a value of type T.
//
// A Buffer is split exactly once into an [Input] and an [Output] handle,
// to be moved to the producer and consumer goroutines respectively. The
// handle pair, the slots, and the descriptor live in this single
// allocation; the shared state is released once both handles become
// unreachable.
type Buffer[T any] struct {
	shared sharedState[T]
	input  Input[T]
	output Output[T]
	serial Serial
	split  bool
}

// New creates a triple buffer with all three slots set to initial.
//
// Slots receive independent copies by assignment. If T holds interior
// references (slices, maps, pointers) that later writes would alias,
// use [NewWith] with a generator instead.
func New[T any](initial T) *Buffer[T] {
	return NewWith(func() T { return initial })
}

// NewWith creates a triple buffer, invoking gen once per slot.
func NewWith[T any](gen func() T) *Buffer[T] {
	b := &Buffer[T]{}
	b.shared.slots[0] = gen()
	b.shared.slots[1] = gen()
	b.shared.slots[2] = gen()
	// Initial partition: back = 0 (clean), input = 1, output = 2.
	b.shared.back.StoreRelaxed(0)
	b.input = Input[T]{shared: &b.shared, idx: 1}
	b.output = Output[T]{shared: &b.shared, idx: 2}
	b.serial = nextSerial()
	return b
}

// NewZero creates a triple buffer with all three slots zero-valued.
func NewZero[T any]() *Buffer[T] {
	var zero T
	return NewWith(func() T { return zero })
}

// Split extracts the producer and consumer handles.
//
// A buffer is split exactly once; a second call panics. After the split,
// the Input must only be used by the producer goroutine and the Output
// only by the consumer goroutine.
func (b *Buffer[T]) Split() (*Input[T], *Output[T]) {
	if b.split {
		panic("tribuf: buffer already split")
	}
	b.split = true
	return &b.input, &b.output
}

// Serial returns the serial number assigned to this buffer.
func (b *Buffer[T]) Serial() Serial {
	return b.serial
}

// Clone duplicates the buffer into fresh, independent shared state.
// Slots are copied by assignment; both handle positions and the
// descriptor carry over.
//
// Intended for tests and diagnostics. The caller must guarantee that no
// producer or consumer operation is in flight on either buffer for the
// duration of the call.
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := &Buffer[T]{}
	c.shared.slots = b.shared.slots
	c.shared.back.StoreRelaxed(b.shared.back.LoadRelaxed())
	c.input = Input[T]{shared: &c.shared, idx: b.input.idx}
	c.output = Output[T]{shared: &c.shared, idx: b.output.idx}
	c.serial = nextSerial()
	return c
}

// EqualFunc reports whether two buffers hold equal state: slot contents
// compared pairwise with eq, plus identical descriptors and identical
// handle positions. Serial numbers do not participate.
//
// Intended for tests and diagnostics, with the same exclusivity
// precondition as [Buffer.Clone].
func (b *Buffer[T]) EqualFunc(o *Buffer[T], eq func(a, b T) bool) bool {
	for i := range b.shared.slots {
		if !eq(b.shared.slots[i], o.shared.slots[i]) {
			return false
		}
	}
	return b.shared.back.LoadRelaxed() == o.shared.back.LoadRelaxed() &&
		b.input.idx == o.input.idx &&
		b.output.idx == o.output.idx
}

// Equal is [Buffer.EqualFunc] for comparable element types.
func Equal[T comparable](a, b *Buffer[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}
