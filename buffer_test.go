// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tribuf_test

import (
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/tribuf"
)

func TestBasicHandoff(t *testing.T) {
	buf := tribuf.New(42)
	in, out := buf.Split()

	if got := *out.Read(); got != 42 {
		t.Fatalf("read before any write = %d, want 42", got)
	}

	in.Write(7)
	if got := *out.Read(); got != 7 {
		t.Fatalf("read after write = %d, want 7", got)
	}
	if got := *out.Read(); got != 7 {
		t.Fatalf("repeated read = %d, want 7", got)
	}
}

func TestOverwriteSemantics(t *testing.T) {
	buf := tribuf.NewZero[int]()
	in, out := buf.Split()

	if in.Write(1) {
		t.Fatal("first write reported an overwrite")
	}
	if !in.Write(2) {
		t.Fatal("second unread write did not report an overwrite")
	}
	if got := *out.Read(); got != 2 {
		t.Fatalf("read = %d, want the latest value 2", got)
	}

	// Once consumed, the next write is clean again.
	if in.Write(3) {
		t.Fatal("write after consumption reported an overwrite")
	}
}

func TestDiagnostics(t *testing.T) {
	buf := tribuf.NewZero[int]()
	in, out := buf.Split()

	if out.Updated() {
		t.Fatal("fresh buffer reports a pending update")
	}
	if !in.Consumed() {
		t.Fatal("fresh buffer reports an unconsumed value")
	}

	in.Write(5)
	if !out.Updated() {
		t.Fatal("no pending update after write")
	}
	if in.Consumed() {
		t.Fatal("unread value reported as consumed")
	}

	out.Read()
	if out.Updated() {
		t.Fatal("pending update after read")
	}
	if !in.Consumed() {
		t.Fatal("consumed value reported as unread")
	}
}

func TestFetchWouldBlock(t *testing.T) {
	buf := tribuf.New("initial")
	in, out := buf.Split()

	if _, err := out.Fetch(); err != iox.ErrWouldBlock {
		t.Fatalf("fetch on clean buffer: err = %v, want ErrWouldBlock", err)
	}

	in.Write("fresh")
	v, err := out.Fetch()
	if err != nil {
		t.Fatalf("fetch after write failed: %v", err)
	}
	if *v != "fresh" {
		t.Fatalf("fetched %q, want %q", *v, "fresh")
	}

	if _, err := out.Fetch(); err != iox.ErrWouldBlock {
		t.Fatalf("second fetch: err = %v, want ErrWouldBlock", err)
	}
	// The claimed value survives a failed fetch.
	if got := *out.Read(); got != "fresh" {
		t.Fatalf("read after would-block = %q, want %q", got, "fresh")
	}
}

func TestNewWithDistinctSlots(t *testing.T) {
	calls := 0
	buf := tribuf.NewWith(func() []byte {
		calls++
		return make([]byte, 1)
	})
	if calls != 3 {
		t.Fatalf("generator invoked %d times, want 3", calls)
	}

	in, out := buf.Split()

	// In-place mutation of the consumer's slot must not reach the slots
	// the producer cycles through: the generated instances are distinct.
	(*out.Read())[0] = 'x'
	in.Write([]byte{'a'})
	in.Write([]byte{'b'})
	if got := *out.Read(); got[0] != 'b' {
		t.Fatalf("read %q, want %q", got, "b")
	}
}

func TestSplitTwicePanics(t *testing.T) {
	buf := tribuf.NewZero[int]()
	buf.Split()

	defer func() {
		if recover() == nil {
			t.Fatal("second Split did not panic")
		}
	}()
	buf.Split()
}

func TestManyWritesNeverBlock(t *testing.T) {
	buf := tribuf.NewZero[int]()
	in, out := buf.Split()

	for i := 0; i < 1000; i++ {
		in.Write(i)
	}
	if got := *out.Read(); got != 999 {
		t.Fatalf("read = %d, want the latest value 999", got)
	}
}

func TestSerialMonotonic(t *testing.T) {
	b1 := tribuf.NewZero[int]()
	b2 := tribuf.NewZero[int]()
	b3 := tribuf.NewZero[int]()

	if b1.Serial() >= b2.Serial() {
		t.Fatalf("serials not increasing: %d >= %d", b1.Serial(), b2.Serial())
	}
	if b2.Serial() >= b3.Serial() {
		t.Fatalf("serials not increasing: %d >= %d", b2.Serial(), b3.Serial())
	}
}
