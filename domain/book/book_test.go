package book

import (
	"math"
	"testing"
)

func mustAdd(t *testing.T, b *Book, o Order) {
	t.Helper()
	if err := b.Add(o); err != nil {
		t.Fatalf("add %d failed: %v", o.ID, err)
	}
}

// basicBook builds the canonical five-order book:
// bids 100.00 (ids 1,3) and 99.50 (id 2); asks 101.00 (ids 4,5).
func basicBook(t *testing.T) *Book {
	t.Helper()
	b := New()
	mustAdd(t, b, Order{ID: 1, Side: Buy, Price: 100.00, Qty: 100})
	mustAdd(t, b, Order{ID: 2, Side: Buy, Price: 99.50, Qty: 200})
	mustAdd(t, b, Order{ID: 3, Side: Buy, Price: 100.00, Qty: 150})
	mustAdd(t, b, Order{ID: 4, Side: Sell, Price: 101.00, Qty: 100})
	mustAdd(t, b, Order{ID: 5, Side: Sell, Price: 101.00, Qty: 80})
	return b
}

// checkInvariants verifies the structural invariants that must hold
// after every operation: per-level aggregates, tree ordering, and the
// bijection between the order index and the level queues.
func checkInvariants(t *testing.T, b *Book) {
	t.Helper()

	seen := make(map[uint64]*OrderNode)
	walk := func(tree *RBTree, side Side, ascending bool) {
		last := math.Inf(-1)
		if !ascending {
			last = math.Inf(1)
		}
		iter := tree.Ascend
		if !ascending {
			iter = tree.Descend
		}
		iter(func(l *Level) bool {
			if (ascending && l.Price <= last) || (!ascending && l.Price >= last) {
				t.Fatalf("side iteration not strictly ordered at %v", l.Price)
			}
			last = l.Price

			if l.Empty() {
				t.Fatalf("empty level %v still indexed", l.Price)
			}

			var qty, count uint64
			for n := l.Head(); n != nil; n = n.Next() {
				if n.Order.Side != side {
					t.Fatalf("order %d on wrong side", n.Order.ID)
				}
				if n.Order.Price != l.Price {
					t.Fatalf("order %d price %v does not match level %v", n.Order.ID, n.Order.Price, l.Price)
				}
				if n.Level() != l {
					t.Fatalf("order %d has stale level pointer", n.Order.ID)
				}
				if _, dup := seen[n.Order.ID]; dup {
					t.Fatalf("order %d appears in two queues", n.Order.ID)
				}
				seen[n.Order.ID] = n
				qty += n.Order.Qty
				count++
			}
			if qty != l.TotalQty {
				t.Fatalf("level %v TotalQty=%d, queue sums to %d", l.Price, l.TotalQty, qty)
			}
			if count != l.OrderCount {
				t.Fatalf("level %v OrderCount=%d, queue holds %d", l.Price, l.OrderCount, count)
			}
			return true
		})
	}

	walk(b.bids, Buy, false)
	walk(b.asks, Sell, true)

	if len(seen) != len(b.orders) {
		t.Fatalf("order index holds %d entries, queues hold %d", len(b.orders), len(seen))
	}
	for id, n := range b.orders {
		if seen[id] != n {
			t.Fatalf("order index entry %d does not point at its queue node", id)
		}
	}
}

func TestBasicBook(t *testing.T) {
	b := basicBook(t)
	checkInvariants(t, b)

	bestBid, bestAsk := b.BestPrices()
	if bestBid != 100.00 || bestAsk != 101.00 {
		t.Fatalf("best = (%v, %v), want (100, 101)", bestBid, bestAsk)
	}

	bids, asks := b.Snapshot(2)
	wantBids := []LevelView{{100.00, 250}, {99.50, 200}}
	wantAsks := []LevelView{{101.00, 180}}
	if len(bids) != 2 || bids[0] != wantBids[0] || bids[1] != wantBids[1] {
		t.Fatalf("bids = %v, want %v", bids, wantBids)
	}
	if len(asks) != 1 || asks[0] != wantAsks[0] {
		t.Fatalf("asks = %v, want %v", asks, wantAsks)
	}
}

func TestCancelEmptiesLevel(t *testing.T) {
	b := basicBook(t)

	if !b.Cancel(2) {
		t.Fatal("cancel of resting order failed")
	}
	checkInvariants(t, b)

	if b.bids.Size() != 1 {
		t.Fatalf("bid levels = %d, want 1", b.bids.Size())
	}
	bids, _ := b.Snapshot(5)
	if len(bids) != 1 || bids[0] != (LevelView{100.00, 250}) {
		t.Fatalf("bids = %v, want [{100 250}]", bids)
	}
}

func TestCancelUnknownID(t *testing.T) {
	b := basicBook(t)
	if b.Cancel(42) {
		t.Fatal("cancel of unknown id reported success")
	}
	checkInvariants(t, b)
}

func TestCancelUndoesAdd(t *testing.T) {
	b := basicBook(t)
	beforeBids, beforeAsks := b.Snapshot(100)
	beforeBid, beforeAsk := b.BestPrices()
	beforeActive := len(b.orders)

	mustAdd(t, b, Order{ID: 99, Side: Buy, Price: 100.25, Qty: 10})
	if !b.Cancel(99) {
		t.Fatal("cancel failed")
	}
	checkInvariants(t, b)

	afterBids, afterAsks := b.Snapshot(100)
	afterBid, afterAsk := b.BestPrices()

	if len(afterBids) != len(beforeBids) || len(afterAsks) != len(beforeAsks) {
		t.Fatalf("depth changed: %v / %v", afterBids, afterAsks)
	}
	for i := range beforeBids {
		if afterBids[i] != beforeBids[i] {
			t.Fatalf("bid level %d changed: %v != %v", i, afterBids[i], beforeBids[i])
		}
	}
	for i := range beforeAsks {
		if afterAsks[i] != beforeAsks[i] {
			t.Fatalf("ask level %d changed: %v != %v", i, afterAsks[i], beforeAsks[i])
		}
	}
	if afterBid != beforeBid || afterAsk != beforeAsk || len(b.orders) != beforeActive {
		t.Fatal("observable state not restored")
	}
}

func TestAmendQuantityPreservesPriority(t *testing.T) {
	b := basicBook(t)

	if !b.Amend(1, 100.00, 500) {
		t.Fatal("amend failed")
	}
	checkInvariants(t, b)

	lvl := b.bids.Find(100.00)
	if lvl == nil {
		t.Fatal("level 100 missing")
	}
	head := lvl.Head()
	if head.Order.ID != 1 || head.Order.Qty != 500 {
		t.Fatalf("head = %d(q=%d), want 1(q=500)", head.Order.ID, head.Order.Qty)
	}
	second := head.Next()
	if second == nil || second.Order.ID != 3 || second.Order.Qty != 150 {
		t.Fatalf("second in queue is not order 3(q=150)")
	}
	if lvl.TotalQty != 650 {
		t.Fatalf("TotalQty = %d, want 650", lvl.TotalQty)
	}
}

func TestAmendPriceMovesOrder(t *testing.T) {
	b := basicBook(t)

	if !b.Amend(4, 100.50, 100) {
		t.Fatal("amend failed")
	}
	checkInvariants(t, b)

	n := b.Lookup(4)
	if n == nil || n.Order.Price != 100.50 || n.Order.Side != Sell {
		t.Fatalf("order 4 not resting at 100.50 on ask side")
	}
	if n.Order.TimestampNs == 0 {
		t.Fatal("price-change amend did not refresh timestamp")
	}

	old := b.asks.Find(101.00)
	if old == nil || old.OrderCount != 1 || old.Head().Order.ID != 5 || old.TotalQty != 80 {
		t.Fatalf("level 101 should hold only order 5(q=80)")
	}

	_, bestAsk := b.BestPrices()
	if bestAsk != 100.50 {
		t.Fatalf("best ask = %v, want 100.50", bestAsk)
	}
}

func TestAmendPriceLosesPriority(t *testing.T) {
	b := basicBook(t)

	// move order 1 into 99.50 where order 2 already rests
	if !b.Amend(1, 99.50, 100) {
		t.Fatal("amend failed")
	}
	checkInvariants(t, b)

	lvl := b.bids.Find(99.50)
	if lvl == nil || lvl.OrderCount != 2 {
		t.Fatal("level 99.50 should hold two orders")
	}
	if lvl.Head().Order.ID != 2 {
		t.Fatal("incumbent order 2 lost its priority")
	}
	if lvl.Head().Next().Order.ID != 1 {
		t.Fatal("amended order 1 is not at the tail")
	}
}

func TestAmendZeroQuantityCancels(t *testing.T) {
	b := basicBook(t)

	if !b.Amend(2, 99.50, 0) {
		t.Fatal("amend failed")
	}
	checkInvariants(t, b)

	if b.Lookup(2) != nil {
		t.Fatal("order 2 still resting after zero-quantity amend")
	}
	if b.bids.Find(99.50) != nil {
		t.Fatal("level 99.50 should be gone")
	}
}

func TestAmendUnknownID(t *testing.T) {
	b := basicBook(t)
	if b.Amend(42, 100.00, 10) {
		t.Fatal("amend of unknown id reported success")
	}
}

func TestCrossingDetection(t *testing.T) {
	b := basicBook(t)

	if b.CanMatch() {
		t.Fatal("uncrossed book reported crossable")
	}

	mustAdd(t, b, Order{ID: 10, Side: Buy, Price: 105.00, Qty: 1})
	checkInvariants(t, b)

	if !b.CanMatch() {
		t.Fatal("crossed book not detected")
	}
	bestBid, bestAsk := b.BestPrices()
	if bestBid != 105.00 || bestAsk != 101.00 {
		t.Fatalf("best = (%v, %v), want (105, 101)", bestBid, bestAsk)
	}
	// no automatic matching: everything still rests
	if len(b.orders) != 6 {
		t.Fatalf("active orders = %d, want 6", len(b.orders))
	}
}

func TestEmptyBookSentinels(t *testing.T) {
	b := New()

	bestBid, bestAsk := b.BestPrices()
	if bestBid != 0 || bestAsk != NoAsk {
		t.Fatalf("best = (%v, %v), want (0, NoAsk)", bestBid, bestAsk)
	}
	if b.CanMatch() {
		t.Fatal("empty book reported crossable")
	}
	bids, asks := b.Snapshot(10)
	if len(bids) != 0 || len(asks) != 0 {
		t.Fatalf("snapshot of empty book not empty: %v / %v", bids, asks)
	}
	if st := b.Stats(); st.Spread != 0 {
		t.Fatalf("spread = %v, want 0", st.Spread)
	}
}

func TestAddPreconditions(t *testing.T) {
	b := basicBook(t)

	if err := b.Add(Order{ID: 1, Side: Buy, Price: 98, Qty: 5}); err != ErrDuplicateID {
		t.Fatalf("duplicate id: got %v", err)
	}
	if err := b.Add(Order{ID: 50, Side: Buy, Price: 98, Qty: 0}); err != ErrZeroQty {
		t.Fatalf("zero qty: got %v", err)
	}
	if err := b.Add(Order{ID: 51, Side: Buy, Price: 0, Qty: 5}); err != ErrBadPrice {
		t.Fatalf("zero price: got %v", err)
	}
	if err := b.Add(Order{ID: 52, Side: Buy, Price: -1, Qty: 5}); err != ErrBadPrice {
		t.Fatalf("negative price: got %v", err)
	}
	if err := b.Add(Order{ID: 53, Side: Buy, Price: math.Inf(1), Qty: 5}); err != ErrBadPrice {
		t.Fatalf("infinite price: got %v", err)
	}

	// rejected adds leave no trace
	checkInvariants(t, b)
	if len(b.orders) != 5 {
		t.Fatalf("active orders = %d, want 5", len(b.orders))
	}
}

func TestSnapshotPrefix(t *testing.T) {
	b := basicBook(t)
	mustAdd(t, b, Order{ID: 20, Side: Sell, Price: 102.00, Qty: 40})
	mustAdd(t, b, Order{ID: 21, Side: Buy, Price: 98.00, Qty: 60})

	for k := 0; k < 4; k++ {
		shortBids, shortAsks := b.Snapshot(k)
		longBids, longAsks := b.Snapshot(k + 1)
		for i := range shortBids {
			if shortBids[i] != longBids[i] {
				t.Fatalf("bids(%d) not a prefix of bids(%d)", k, k+1)
			}
		}
		for i := range shortAsks {
			if shortAsks[i] != longAsks[i] {
				t.Fatalf("asks(%d) not a prefix of asks(%d)", k, k+1)
			}
		}
	}
}

func TestSnapshotPure(t *testing.T) {
	b := basicBook(t)

	bids1, asks1 := b.Snapshot(10)
	bids2, asks2 := b.Snapshot(10)
	if len(bids1) != len(bids2) || len(asks1) != len(asks2) {
		t.Fatal("consecutive snapshots differ in depth")
	}
	for i := range bids1 {
		if bids1[i] != bids2[i] {
			t.Fatal("consecutive snapshots differ")
		}
	}
	for i := range asks1 {
		if asks1[i] != asks2[i] {
			t.Fatal("consecutive snapshots differ")
		}
	}
}

func TestBestPriceCacheTracksMutations(t *testing.T) {
	b := basicBook(t)

	recompute := func() (float64, float64) {
		bid, ask := 0.0, NoAsk
		b.BidsWalk(func(l *Level) bool { bid = l.Price; return false })
		b.AsksWalk(func(l *Level) bool { ask = l.Price; return false })
		return bid, ask
	}

	ops := []func(){
		func() { mustAdd(t, b, Order{ID: 30, Side: Buy, Price: 100.75, Qty: 5}) },
		func() { b.Cancel(30) },
		func() { b.Amend(4, 100.10, 100) },
		func() { b.Amend(5, 101.00, 8) },
		func() { b.Cancel(1) },
		func() { b.Cancel(3) },
		func() { b.Cancel(2) },
	}
	for i, op := range ops {
		op()
		gotBid, gotAsk := b.BestPrices()
		wantBid, wantAsk := recompute()
		if gotBid != wantBid || gotAsk != wantAsk {
			t.Fatalf("op %d: cached best (%v, %v) != recomputed (%v, %v)",
				i, gotBid, gotAsk, wantBid, wantAsk)
		}
		checkInvariants(t, b)
	}
}

func TestStats(t *testing.T) {
	b := basicBook(t)
	b.Cancel(2)
	b.Amend(1, 100.00, 500)
	b.Snapshot(3)

	st := b.Stats()
	if st.TotalOrders != 5 || st.TotalCancels != 1 || st.TotalAmends != 1 {
		t.Fatalf("counters = %+v", st)
	}
	if st.TotalSnapshots != 1 {
		t.Fatalf("snapshots = %d, want 1", st.TotalSnapshots)
	}
	if st.ActiveOrders != 4 || st.BidLevels != 1 || st.AskLevels != 1 {
		t.Fatalf("shape = %+v", st)
	}
	if st.Spread != 1.0 {
		t.Fatalf("spread = %v, want 1", st.Spread)
	}
}

func TestPoolReusesCells(t *testing.T) {
	b := New()

	mustAdd(t, b, Order{ID: 1, Side: Buy, Price: 100, Qty: 10})
	first := b.Lookup(1)
	b.Cancel(1)

	mustAdd(t, b, Order{ID: 2, Side: Buy, Price: 101, Qty: 20})
	if b.Lookup(2) != first {
		t.Fatal("freed order cell was not reissued LIFO")
	}

	orders, levels := b.PoolStats()
	if orders.Live != 1 || levels.Live != 1 {
		t.Fatalf("pool stats = %+v / %+v", orders, levels)
	}
}

func TestDeferredReclaimer(t *testing.T) {
	b := New()

	var retired []any
	b.UseReclaimer(captureReclaimer{&retired})

	mustAdd(t, b, Order{ID: 1, Side: Buy, Price: 100, Qty: 10})
	b.Cancel(1)

	if len(retired) != 2 {
		t.Fatalf("retired %d objects, want node+level", len(retired))
	}
	for _, v := range retired {
		b.Recycle(v)
	}
	orders, levels := b.PoolStats()
	if orders.Frees != 1 || levels.Frees != 1 {
		t.Fatalf("recycle did not reach the pools: %+v / %+v", orders, levels)
	}
}

type captureReclaimer struct {
	out *[]any
}

func (c captureReclaimer) RetireOrder(n *OrderNode) { *c.out = append(*c.out, n) }
func (c captureReclaimer) RetireLevel(l *Level)     { *c.out = append(*c.out, l) }
