// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build tribuf_raw

package tribuf

// In-place access to the buffer slots, available under the tribuf_raw
// build tag. It avoids constructing a fresh T per update when that is
// expensive, at the cost of the stronger exchange orderings selected in
// ordering_raw.go.

// RawInput returns a pointer to the producer's private slot for in-place
// mutation.
//
// The slot does not hold the last value sent: it holds whatever the
// consumer abandoned when this slot last cycled back. Treat the contents
// as unspecified and re-initialize before relying on any field. Updates
// are not propagated automatically; call [Input.RawPublish] when done.
//
// The pointer is valid until the next Write or RawPublish on this handle.
func (in *Input[T]) RawInput() *T {
	return &in.shared.slots[in.idx]
}

// RawPublish unconditionally publishes the producer's slot to the
// consumer. Returns the same advisory overwrite flag as [Input.Write].
func (in *Input[T]) RawPublish() bool {
	return in.publish()
}

// RawOutput returns a pointer to the consumer's private slot for
// in-place mutation, for example to post-process a delivered value.
//
// The slot is replaced out from under you by the next Read, Fetch or
// RawUpdate on this handle, and any edits still in it at that point are
// handed back to the producer.
func (out *Output[T]) RawOutput() *T {
	return &out.shared.slots[out.idx]
}

// RawUpdate fetches a pending update into the output slot, if any,
// overwriting any in-place edits. Returns whether an update was pulled.
func (out *Output[T]) RawUpdate() bool {
	return out.update()
}
