package book

import (
	"errors"
	"math"
	"time"

	"lob/infra/memory"
)

// priceEpsilon decides whether an amend keeps the order at its level.
// Prices within epsilon are the same price; the order keeps its place
// in the FIFO queue.
const priceEpsilon = 1e-9

// NoAsk is the best-ask sentinel reported while the ask side is empty.
// The best-bid sentinel for an empty bid side is 0.
const NoAsk = math.MaxFloat64

const (
	orderBlockSize = 1024
	levelBlockSize = 256

	// pre-sized for expected peak live orders, avoids rehash in the hot path
	orderIndexCapacity = 10_000
)

var (
	ErrDuplicateID = errors.New("book: duplicate order id")
	ErrZeroQty     = errors.New("book: quantity must be positive")
	ErrBadPrice    = errors.New("book: price must be positive and finite")
)

// Reclaimer receives nodes and levels that left the book. Installing one
// defers cell reuse: the book unlinks as usual but hands the cells over
// instead of freeing them, and the reclaimer calls Recycle once no
// concurrent snapshot reader can still observe them.
type Reclaimer interface {
	RetireOrder(*OrderNode)
	RetireLevel(*Level)
}

// Book is a single-instrument, single-writer limit order book. It holds
// resting orders only; a crossed book is observable through CanMatch but
// never resolved here.
type Book struct {
	bids *RBTree
	asks *RBTree

	orders map[uint64]*OrderNode

	orderPool *memory.Slab[OrderNode]
	levelPool *memory.Slab[Level]
	reclaim   Reclaimer

	totalOrders    uint64
	totalCancels   uint64
	totalAmends    uint64
	totalSnapshots uint64

	cachedBestBid float64
	cachedBestAsk float64
	cacheValid    bool
}

// LevelView is one aggregated price level in a depth snapshot.
type LevelView struct {
	Price    float64
	TotalQty uint64
}

// Stats is a pure read of the book's counters and shape.
type Stats struct {
	TotalOrders    uint64
	TotalCancels   uint64
	TotalAmends    uint64
	TotalSnapshots uint64
	ActiveOrders   uint64
	BidLevels      int
	AskLevels      int
	BestBid        float64
	BestAsk        float64
	Spread         float64
}

func New() *Book {
	return &Book{
		bids:      NewRBTree(),
		asks:      NewRBTree(),
		orders:    make(map[uint64]*OrderNode, orderIndexCapacity),
		orderPool: memory.NewSlab[OrderNode](orderBlockSize),
		levelPool: memory.NewSlab[Level](levelBlockSize),
	}
}

// UseReclaimer installs a deferred reclaimer. Call before traffic.
func (b *Book) UseReclaimer(r Reclaimer) {
	b.reclaim = r
}

// ---------------- Mutations ----------------

// Add rests a new order in the book. Preconditions are checked up front;
// a rejected add leaves no trace.
func (b *Book) Add(o Order) error {
	if o.Qty == 0 {
		return ErrZeroQty
	}
	if !(o.Price > 0) || math.IsInf(o.Price, 1) {
		return ErrBadPrice
	}
	if _, dup := b.orders[o.ID]; dup {
		return ErrDuplicateID
	}

	n := b.orderPool.Get()
	n.Order = o

	b.orders[o.ID] = n
	b.addToSide(b.sideTree(o.Side), n)

	b.cacheValid = false
	b.totalOrders++
	return nil
}

// Cancel removes a resting order. Returns false for an unknown id.
func (b *Book) Cancel(id uint64) bool {
	n, ok := b.orders[id]
	if !ok {
		return false
	}

	b.removeFromSide(b.sideTree(n.Order.Side), n)
	delete(b.orders, id)
	b.retireOrder(n)

	b.cacheValid = false
	b.totalCancels++
	return true
}

// Amend changes a resting order's price and/or quantity. A same-price
// amend updates quantity in place and keeps time priority; a price
// change reissues the order at the new level with a fresh timestamp,
// moving it to the tail there. Amending to quantity zero cancels.
// Returns false for an unknown id or an invalid new price.
func (b *Book) Amend(id uint64, newPrice float64, newQty uint64) bool {
	n, ok := b.orders[id]
	if !ok {
		return false
	}

	if newQty == 0 {
		b.totalAmends++
		return b.Cancel(id)
	}

	if math.Abs(n.Order.Price-newPrice) <= priceEpsilon {
		n.level.updateQty(n, newQty)
		b.cacheValid = false
		b.totalAmends++
		return true
	}

	if !(newPrice > 0) || math.IsInf(newPrice, 1) {
		return false
	}

	repl := Order{
		ID:          id,
		Side:        n.Order.Side,
		Price:       newPrice,
		Qty:         newQty,
		TimestampNs: time.Now().UnixNano(),
	}
	b.Cancel(id)
	if err := b.Add(repl); err != nil {
		// preconditions were re-checked above; the id cannot collide
		// with itself after the cancel
		panic(err)
	}
	b.totalAmends++
	return true
}

// ---------------- Queries ----------------

// Snapshot reads the top depth levels of each side, bids from the
// highest price down, asks from the lowest price up. It never mutates
// book state and does not consult the top-of-book cache.
func (b *Book) Snapshot(depth int) (bids, asks []LevelView) {
	b.totalSnapshots++

	bids = make([]LevelView, 0, depth)
	asks = make([]LevelView, 0, depth)

	b.bids.Descend(func(l *Level) bool {
		if len(bids) == depth {
			return false
		}
		bids = append(bids, LevelView{Price: l.Price, TotalQty: l.TotalQty})
		return true
	})
	b.asks.Ascend(func(l *Level) bool {
		if len(asks) == depth {
			return false
		}
		asks = append(asks, LevelView{Price: l.Price, TotalQty: l.TotalQty})
		return true
	})
	return bids, asks
}

// BestPrices returns the memoized top of book, recomputing it after any
// mutation invalidated the cache. Empty sides report the sentinels 0
// and NoAsk.
func (b *Book) BestPrices() (bestBid, bestAsk float64) {
	if !b.cacheValid {
		b.cachedBestBid = 0
		if l := b.bids.Max(); l != nil {
			b.cachedBestBid = l.Price
		}
		b.cachedBestAsk = NoAsk
		if l := b.asks.Min(); l != nil {
			b.cachedBestAsk = l.Price
		}
		b.cacheValid = true
	}
	return b.cachedBestBid, b.cachedBestAsk
}

// CanMatch reports whether the book is crossed: both sides non-empty
// and best bid at or above best ask. The book never matches; crossed
// state is left for an execution engine to resolve.
func (b *Book) CanMatch() bool {
	if b.bids.Size() == 0 || b.asks.Size() == 0 {
		return false
	}
	bestBid, bestAsk := b.BestPrices()
	return bestBid >= bestAsk
}

func (b *Book) Stats() Stats {
	bestBid, bestAsk := b.BestPrices()
	spread := 0.0
	if bestAsk != NoAsk {
		spread = bestAsk - bestBid
	}
	return Stats{
		TotalOrders:    b.totalOrders,
		TotalCancels:   b.totalCancels,
		TotalAmends:    b.totalAmends,
		TotalSnapshots: b.totalSnapshots,
		ActiveOrders:   uint64(len(b.orders)),
		BidLevels:      b.bids.Size(),
		AskLevels:      b.asks.Size(),
		BestBid:        bestBid,
		BestAsk:        bestAsk,
		Spread:         spread,
	}
}

// PoolStats exposes the slab counters for operational reporting.
func (b *Book) PoolStats() (orders, levels memory.SlabStats) {
	return b.orderPool.Stats(), b.levelPool.Stats()
}

// BidsWalk visits bid levels best (highest) first.
func (b *Book) BidsWalk(fn func(*Level) bool) {
	b.bids.Descend(fn)
}

// AsksWalk visits ask levels best (lowest) first.
func (b *Book) AsksWalk(fn func(*Level) bool) {
	b.asks.Ascend(fn)
}

// Lookup returns the node resting under id, nil when absent.
func (b *Book) Lookup(id uint64) *OrderNode {
	return b.orders[id]
}

// Recycle returns a retired node or level to the book's pools. Only a
// deferred Reclaimer calls this, after readers have drained.
func (b *Book) Recycle(v any) {
	switch x := v.(type) {
	case *OrderNode:
		b.orderPool.Put(x)
	case *Level:
		b.levelPool.Put(x)
	default:
		panic("book: Recycle received foreign object")
	}
}

// ---------------- Internal ----------------

func (b *Book) sideTree(s Side) *RBTree {
	if s == Buy {
		return b.bids
	}
	return b.asks
}

func (b *Book) addToSide(t *RBTree, n *OrderNode) {
	lvl := t.Find(n.Order.Price)
	if lvl == nil {
		lvl = b.levelPool.Get()
		lvl.Price = n.Order.Price
		t.Insert(lvl.Price, lvl)
	}
	lvl.enqueue(n)
}

func (b *Book) removeFromSide(t *RBTree, n *OrderNode) {
	lvl := n.level
	lvl.unlink(n)
	if lvl.Empty() {
		t.Delete(lvl.Price)
		b.retireLevel(lvl)
	}
}

func (b *Book) retireOrder(n *OrderNode) {
	if b.reclaim != nil {
		b.reclaim.RetireOrder(n)
		return
	}
	b.orderPool.Put(n)
}

func (b *Book) retireLevel(l *Level) {
	if b.reclaim != nil {
		b.reclaim.RetireLevel(l)
		return
	}
	b.levelPool.Put(l)
}
