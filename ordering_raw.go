// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build tribuf_raw

package tribuf

// Descriptor exchange orderings for the raw build. In-place access lets
// the consumer mutate its slot before relinquishing it, so each side
// must also observe the writes the other performed into the slot it
// reclaims: both exchanges become acquire-release.

func (s *sharedState[T]) swapPublish(v uint32) uint32 {
	return s.back.SwapAcqRel(v)
}

func (s *sharedState[T]) swapUpdate(v uint32) uint32 {
	return s.back.SwapAcqRel(v)
}
