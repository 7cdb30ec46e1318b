package outbox

import (
	"testing"
)

func openTestOutbox(t *testing.T) *Outbox {
	t.Helper()
	ob, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	t.Cleanup(func() { _ = ob.Close() })
	return ob
}

func TestOutboxPutGet(t *testing.T) {
	ob := openTestOutbox(t)

	if err := ob.Put(7, []byte("payload-7")); err != nil {
		t.Fatalf("put: %v", err)
	}

	e, err := ob.Get(7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e.Seq != 7 || e.State != StateNew || string(e.Payload) != "payload-7" {
		t.Fatalf("entry = %+v", e)
	}
}

func TestOutboxStateTransitions(t *testing.T) {
	ob := openTestOutbox(t)
	_ = ob.Put(1, []byte("x"))

	if err := ob.MarkSent(1); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	e, _ := ob.Get(1)
	if e.State != StateSent || e.LastAttempt == 0 {
		t.Fatalf("after MarkSent: %+v", e)
	}

	if err := ob.MarkAcked(1); err != nil {
		t.Fatalf("mark acked: %v", err)
	}
	e, _ = ob.Get(1)
	if e.State != StateAcked {
		t.Fatalf("after MarkAcked: %+v", e)
	}
}

func TestOutboxScanPending(t *testing.T) {
	ob := openTestOutbox(t)
	_ = ob.Put(1, []byte("a"))
	_ = ob.Put(2, []byte("b"))
	_ = ob.Put(3, []byte("c"))
	_ = ob.MarkAcked(2)
	_ = ob.MarkSent(3) // crashed mid-publish: still pending

	var seqs []uint64
	err := ob.ScanPending(func(e Entry) error {
		seqs = append(seqs, e.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(seqs) != 2 || seqs[0] != 1 || seqs[1] != 3 {
		t.Fatalf("pending = %v, want [1 3]", seqs)
	}
}

func TestOutboxTruncateAcked(t *testing.T) {
	ob := openTestOutbox(t)
	_ = ob.Put(1, []byte("a"))
	_ = ob.Put(2, []byte("b"))
	_ = ob.Put(3, []byte("c"))
	_ = ob.MarkAcked(1)
	_ = ob.MarkAcked(3)

	if err := ob.TruncateAckedUpTo(2); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	if _, err := ob.Get(1); err == nil {
		t.Fatal("acked entry 1 survived truncation")
	}
	if _, err := ob.Get(2); err != nil {
		t.Fatal("pending entry 2 must survive truncation")
	}
	if _, err := ob.Get(3); err != nil {
		t.Fatal("entry 3 is past the cut and must survive")
	}
}

func TestEntryRoundTrip(t *testing.T) {
	in := Entry{
		Seq:         9,
		State:       StateSent,
		Retries:     3,
		LastAttempt: 12345,
		Payload:     []byte("hello"),
	}
	out, err := decodeEntry(9, encodeEntry(in))
	if err != nil {
		t.Fatal(err)
	}
	if out.State != in.State || out.Retries != in.Retries ||
		out.LastAttempt != in.LastAttempt || string(out.Payload) != "hello" {
		t.Fatalf("round trip = %+v", out)
	}

	if _, err := decodeEntry(1, []byte{1, 2}); err == nil {
		t.Fatal("expected error for short value")
	}
}
