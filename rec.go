// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tribuf

import (
	"code.hybscloud.com/kont"
)

// Loop runs a recursive producer or consumer protocol (Cont-world).
// step returns Left(nextState) to continue or Right(result) to finish.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if left, ok := e.GetLeft(); ok {
			return Loop(left, step)
		}
		right, _ := e.GetRight()
		return kont.Pure(right)
	})
}

// PutEach publishes each element of values in order, then continues
// with next. Elements the consumer does not claim in time are replaced
// by their successors, per latest-value-wins semantics.
func PutEach[T, B any](values []T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(Loop(values, func(s []T) kont.Eff[kont.Either[[]T, struct{}]] {
		if len(s) == 0 {
			return kont.Pure(kont.Right[[]T, struct{}](struct{}{}))
		}
		return PutThen(s[0], kont.Pure(kont.Left[[]T, struct{}](s[1:])))
	}), next)
}

// TakeN claims n fresh values, one publication at a time, and passes
// them to f in the order they were claimed.
func TakeN[T, B any](n int, f func([]T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(Loop(make([]T, 0, n), func(acc []T) kont.Eff[kont.Either[[]T, []T]] {
		if len(acc) == n {
			return kont.Pure(kont.Right[[]T, []T](acc))
		}
		return TakeBind(func(v T) kont.Eff[kont.Either[[]T, []T]] {
			return kont.Pure(kont.Left[[]T, []T](append(acc, v)))
		})
	}), f)
}
