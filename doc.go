// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tribuf provides a lock-free single-producer single-consumer
// triple buffer: a shared variable where the producer continuously
// publishes new values and the consumer always reads the most recently
// published one, without either side blocking on the other.
//
// Unlike a queue, a triple buffer keeps only the latest value: an update
// published before the consumer fetched the previous one silently
// replaces it. Both sides complete every operation in bounded time,
// regardless of the other side's scheduling.
//
// # Architecture
//
//   - Storage: three value slots plus one atomic back-buffer descriptor
//     (slot index and dirty bit packed in a single word) via
//     [code.hybscloud.com/atomix]. [Buffer.Split] yields the
//     [Input]/[Output] handle pair.
//   - Hand-off: ownership of slots rotates by atomically exchanging
//     indices; the producer-held, consumer-held, and in-flight slot are
//     pairwise distinct at all times, so slot contents never need locks.
//   - Non-blocking: [Input.Write] and [Output.Read] never wait.
//     [Output.Fetch] returns [code.hybscloud.com/iox.ErrWouldBlock] when
//     no fresh value is pending.
//   - Execution: Dual-world API supporting closure-based (Cont-world)
//     and defunctionalized (Expr-world) evaluation of effectful
//     producer/consumer protocols via [code.hybscloud.com/kont].
//
// # API Topologies
//
//   - Handles: [Input.Write], [Input.Consumed], [Output.Read],
//     [Output.Fetch], [Output.Updated]. Blocking conveniences layered on
//     top: [Output.ReadFresh], [Input.WriteAwaitConsumed].
//   - Operations: [Put], [Peek], [Take].
//   - Cont-world: [PutThen], [PutBind], [PeekBind], [TakeBind],
//     [PutEach], [TakeN].
//   - Expr-world: Zero-allocation variants [ExprPutThen], [ExprPeekBind],
//     [ExprTakeBind]. Bridge via [Reify] and [Reflect].
//
// # Integration
//
//   - Stepping: [Step] with [AdvanceInput]/[AdvanceOutput] evaluates
//     protocols one effect at a time, for integration with an outer loop.
//   - Blocking: [ExecInput], [ExecOutput] and [RunPair] (plus Expr
//     variants) wait past the would-block boundary using adaptive backoff.
//
// # Example
//
//	buf := tribuf.New(0)
//	in, out := buf.Split()
//
//	// Producer side, any time:
//	in.Write(42)
//
//	// Consumer side, any time:
//	latest := out.Read()
//	fmt.Println(*latest) // 42
//
// The pointer returned by Read is valid until the next Read or Fetch on
// the same handle. Each handle must be used by one goroutine at a time.
package tribuf
