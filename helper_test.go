// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tribuf_test

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/tribuf"
)

// driveOutput drives a consumer protocol to completion on out via a
// Step+AdvanceOutput loop, retrying on iox.ErrWouldBlock (no fresh
// value yet). Used by stepping tests to exercise the non-blocking path.
func driveOutput[T, R any](out *tribuf.Output[T], protocol kont.Expr[R]) R {
	result, susp := tribuf.Step[R](protocol)
	for susp != nil {
		var err error
		result, susp, err = tribuf.AdvanceOutput(out, susp)
		if err != nil {
			continue
		}
	}
	return result
}
