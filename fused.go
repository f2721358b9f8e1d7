// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tribuf

import (
	"code.hybscloud.com/kont"
)

// PutThen publishes a value and then continues with next, discarding
// the advisory overwrite flag.
// Fuses Perform(Put[T]{Value: v}) + Then.
func PutThen[T, B any](v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Put[T]{Value: v}), next)
}

// PutBind publishes a value and passes the advisory overwrite flag to f.
// Fuses Perform(Put[T]{Value: v}) + Bind.
func PutBind[T, B any](v T, f func(overwrote bool) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Put[T]{Value: v}), f)
}

// PeekBind reads the latest value and passes a copy to f. Never blocks.
// Fuses Perform(Peek[T]{}) + Bind.
func PeekBind[T, B any](f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Peek[T]{}), f)
}

// TakeBind claims a fresh value and passes a copy to f.
// Fuses Perform(Take[T]{}) + Bind.
func TakeBind[T, B any](f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Take[T]{}), f)
}
