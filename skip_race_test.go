// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package tribuf_test

import "testing"

// skipRace skips tests that rotate slot ownership between goroutines.
// The race detector tracks per-variable happens-before and cannot see
// the cross-variable memory ordering of the descriptor exchange
// (swap-release on publish, swap-acquire on update), producing false
// positives on the slot accesses it guards.
func skipRace(tb testing.TB) {
	tb.Helper()
	tb.Skip("skip: slot hand-off uses cross-variable memory ordering")
}
