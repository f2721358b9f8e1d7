// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !tribuf_raw

package tribuf

// Descriptor exchange orderings for the default build: slot contents
// only flow producer → consumer, so publish releases the producer's
// writes and update acquires them. The raw build (tribuf_raw) upgrades
// both to acquire-release, see ordering_raw.go.

func (s *sharedState[T]) swapPublish(v uint32) uint32 {
	return s.back.SwapRelease(v)
}

func (s *sharedState[T]) swapUpdate(v uint32) uint32 {
	return s.back.SwapAcquire(v)
}
