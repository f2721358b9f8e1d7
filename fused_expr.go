// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tribuf

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated erased frame to eliminate heap escapes when boxing
// empty structs into kont.Frame during Expr-world execution.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprPutThen publishes a value and then continues with next, discarding
// the advisory overwrite flag.
// Fuses ExprPerform(Put[T]{Value: v}) + ExprThen.
func ExprPutThen[T, B any](v T, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Put[T]{Value: v}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

func putBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(bool) kont.Expr[B])
	result := f(current.(bool))
	return kont.Erased(result.Value), result.Frame
}

// ExprPutBind publishes a value and passes the advisory overwrite flag to f.
// Fuses ExprPerform(Put[T]{Value: v}) + ExprBind.
func ExprPutBind[T, B any](v T, f func(overwrote bool) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = putBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Put[T]{Value: v}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

func valueBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T) kont.Expr[B])
	result := f(current.(T))
	return kont.Erased(result.Value), result.Frame
}

// ExprPeekBind reads the latest value and passes a copy to f. Never blocks.
// Fuses ExprPerform(Peek[T]{}) + ExprBind.
func ExprPeekBind[T, B any](f func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = valueBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Peek[T]{}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprTakeBind claims a fresh value and passes a copy to f.
// Fuses ExprPerform(Take[T]{}) + ExprBind.
func ExprTakeBind[T, B any](f func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = valueBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Take[T]{}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}
