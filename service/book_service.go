package service

import (
	"encoding/json"

	"lob/domain/book"
	"lob/infra/memory"
	"lob/infra/outbox"
	"lob/infra/sequence"
	"lob/infra/wal"
)

/*
BookService is the ONLY write entry point into the system.

Every mutation follows the same path:
  1. take a sequence ID
  2. journal the intent
  3. apply to the book
  4. stage the event for broadcast

The journal and outbox are optional (nil disables them); the book and
sequencer are not.
*/

type BookService struct {
	book    *book.Book
	journal *wal.WAL
	outbox  *outbox.Outbox
	seq     *sequence.Sequencer
	ring    *memory.RetireRing
	reader  *memory.ReaderEpoch
}

// Event is the broadcast payload staged per mutation.
type Event struct {
	V    int     `json:"v"`
	Type string  `json:"type"`
	ID   uint64  `json:"id"`
	Seq  uint64  `json:"seq"`
	Side string  `json:"side,omitempty"`
	Px   float64 `json:"px,omitempty"`
	Qty  uint64  `json:"qty,omitempty"`
	OK   bool    `json:"ok"`
}

// New wires all dependencies. When ring is non-nil the book's retired
// cells are parked there and reclaimed by AdvanceEpoch once snapshot
// readers have drained.
func New(
	b *book.Book,
	journal *wal.WAL,
	ob *outbox.Outbox,
	seq *sequence.Sequencer,
	ring *memory.RetireRing,
) *BookService {
	s := &BookService{
		book:    b,
		journal: journal,
		outbox:  ob,
		seq:     seq,
		ring:    ring,
		reader:  memory.NewReaderEpoch(),
	}
	if ring != nil {
		b.UseReclaimer(ringReclaimer{ring})
	}
	return s
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Add journals and rests a new order, returning its sequence ID.
func (s *BookService) Add(o book.Order) (uint64, error) {
	seq := s.seq.Next()

	if s.journal != nil {
		if err := s.journal.Append(wal.NewRecord(wal.OpAdd, seq, wal.EncodeAdd(o))); err != nil {
			return 0, err
		}
	}

	if err := s.book.Add(o); err != nil {
		return 0, err
	}

	s.stage(Event{V: 1, Type: "add", ID: o.ID, Seq: seq,
		Side: o.Side.String(), Px: o.Price, Qty: o.Qty, OK: true})
	return seq, nil
}

// Cancel journals and removes a resting order.
func (s *BookService) Cancel(id uint64) (bool, error) {
	seq := s.seq.Next()

	if s.journal != nil {
		if err := s.journal.Append(wal.NewRecord(wal.OpCancel, seq, wal.EncodeCancel(id))); err != nil {
			return false, err
		}
	}

	ok := s.book.Cancel(id)
	if ok {
		s.stage(Event{V: 1, Type: "cancel", ID: id, Seq: seq, OK: true})
	}
	return ok, nil
}

// Amend journals and applies a price/quantity amendment.
func (s *BookService) Amend(id uint64, newPrice float64, newQty uint64) (bool, error) {
	seq := s.seq.Next()

	if s.journal != nil {
		if err := s.journal.Append(wal.NewRecord(wal.OpAmend, seq, wal.EncodeAmend(id, newPrice, newQty))); err != nil {
			return false, err
		}
	}

	ok := s.book.Amend(id, newPrice, newQty)
	if ok {
		s.stage(Event{V: 1, Type: "amend", ID: id, Seq: seq,
			Px: newPrice, Qty: newQty, OK: true})
	}
	return ok, nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Depth returns the top depth levels per side under a read epoch, so a
// deferred reclaimer never reuses cells out from under the walk.
func (s *BookService) Depth(depth int) (bids, asks []book.LevelView) {
	s.reader.Enter()
	defer s.reader.Exit()

	return s.book.Snapshot(depth)
}

func (s *BookService) Best() (bestBid, bestAsk float64) {
	return s.book.BestPrices()
}

func (s *BookService) CanMatch() bool {
	return s.book.CanMatch()
}

func (s *BookService) Stats() book.Stats {
	return s.book.Stats()
}

//
// ──────────────────────────────────────────────────────────
// Reclamation
// ──────────────────────────────────────────────────────────
//

// AdvanceEpoch performs safe reclamation. Called periodically by a
// background job.
func (s *BookService) AdvanceEpoch() {
	if s.ring == nil {
		return
	}
	memory.AdvanceEpochAndReclaim(s.ring, s.book.Recycle, s.reader)
}

type ringReclaimer struct {
	ring *memory.RetireRing
}

func (r ringReclaimer) RetireOrder(n *book.OrderNode) {
	if !r.ring.Enqueue(n) {
		panic("service: retire ring full")
	}
}

func (r ringReclaimer) RetireLevel(l *book.Level) {
	if !r.ring.Enqueue(l) {
		panic("service: retire ring full")
	}
}

// ──────────────────────────────────────────────────────────

func (s *BookService) stage(e Event) {
	if s.outbox == nil {
		return
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return
	}
	_ = s.outbox.Put(e.Seq, payload)
}
