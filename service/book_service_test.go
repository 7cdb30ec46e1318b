package service

import (
	"testing"
	"time"

	"lob/domain/book"
	"lob/infra/memory"
	"lob/infra/sequence"
	"lob/infra/wal"
)

func newTestService(t *testing.T, dir string) *BookService {
	t.Helper()
	journal, err := wal.Open(wal.Config{
		Dir:             dir,
		SegmentSize:     1 << 20,
		SegmentDuration: time.Hour,
	})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { _ = journal.Close() })

	return New(book.New(), journal, nil, sequence.New(0), nil)
}

func TestServiceMutations(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	seq, err := svc.Add(book.Order{ID: 1, Side: book.Buy, Price: 100, Qty: 10})
	if err != nil || seq == 0 {
		t.Fatalf("add: seq=%d err=%v", seq, err)
	}
	if _, err := svc.Add(book.Order{ID: 2, Side: book.Sell, Price: 101, Qty: 5}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if ok, err := svc.Amend(1, 100, 25); !ok || err != nil {
		t.Fatalf("amend: ok=%v err=%v", ok, err)
	}
	if ok, err := svc.Cancel(2); !ok || err != nil {
		t.Fatalf("cancel: ok=%v err=%v", ok, err)
	}
	if ok, _ := svc.Cancel(42); ok {
		t.Fatal("cancel of unknown id reported success")
	}

	bids, asks := svc.Depth(5)
	if len(bids) != 1 || bids[0].TotalQty != 25 || len(asks) != 0 {
		t.Fatalf("depth = %v / %v", bids, asks)
	}
	if svc.CanMatch() {
		t.Fatal("one-sided book reported crossable")
	}
}

func TestReplayRebuildsBook(t *testing.T) {
	dir := t.TempDir()

	svc := newTestService(t, dir)
	_, _ = svc.Add(book.Order{ID: 1, Side: book.Buy, Price: 100, Qty: 10})
	_, _ = svc.Add(book.Order{ID: 2, Side: book.Buy, Price: 99.5, Qty: 20})
	_, _ = svc.Add(book.Order{ID: 3, Side: book.Sell, Price: 101, Qty: 30})
	_, _ = svc.Amend(1, 100, 50)
	_, _ = svc.Cancel(2)
	_ = svc.journal.Sync()

	// fresh process: rebuild from the journal alone
	rebuilt := book.New()
	seqGen := sequence.New(0)
	if err := ReplayJournal(dir, rebuilt, seqGen); err != nil {
		t.Fatalf("replay: %v", err)
	}

	if seqGen.Current() != 5 {
		t.Fatalf("sequencer resumed at %d, want 5", seqGen.Current())
	}

	bids, asks := rebuilt.Snapshot(10)
	if len(bids) != 1 || bids[0] != (book.LevelView{Price: 100, TotalQty: 50}) {
		t.Fatalf("bids = %v", bids)
	}
	if len(asks) != 1 || asks[0] != (book.LevelView{Price: 101, TotalQty: 30}) {
		t.Fatalf("asks = %v", asks)
	}

	st := rebuilt.Stats()
	if st.ActiveOrders != 2 {
		t.Fatalf("active orders = %d, want 2", st.ActiveOrders)
	}
}

func TestDeferredReclamationThroughService(t *testing.T) {
	ring := memory.NewRetireRing(16)
	b := book.New()
	svc := New(b, nil, nil, sequence.New(0), ring)

	_, _ = svc.Add(book.Order{ID: 1, Side: book.Buy, Price: 100, Qty: 10})
	_, _ = svc.Cancel(1)

	// retired node and level sit on the ring until the epoch advances
	orders, levels := b.PoolStats()
	if orders.Frees != 0 || levels.Frees != 0 {
		t.Fatal("cells reclaimed before epoch advance")
	}

	svc.AdvanceEpoch()

	orders, levels = b.PoolStats()
	if orders.Frees != 1 || levels.Frees != 1 {
		t.Fatalf("cells not reclaimed: %+v / %+v", orders, levels)
	}
}
