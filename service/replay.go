package service

import (
	"log"

	"lob/domain/book"
	"lob/infra/sequence"
	"lob/infra/wal"
)

/*
ReplayJournal rebuilds in-memory state from the journal.

IMPORTANT:
- This MUST run before accepting traffic.
- Lookup misses during replay are normal (a cancel whose add segment
  was truncated after a snapshot); they are skipped, not fatal.
*/

func ReplayJournal(
	dir string,
	b *book.Book,
	seqGen *sequence.Sequencer,
) error {
	lastSeq, err := wal.Replay(dir, func(rec *wal.Record) error {
		switch rec.Op {
		case wal.OpAdd:
			o, err := wal.DecodeAdd(rec.Data)
			if err != nil {
				return err
			}
			if err := b.Add(o); err != nil {
				log.Printf("[replay] add seq=%d rejected: %v", rec.Seq, err)
			}

		case wal.OpCancel:
			id, err := wal.DecodeCancel(rec.Data)
			if err != nil {
				return err
			}
			b.Cancel(id)

		case wal.OpAmend:
			id, price, qty, err := wal.DecodeAmend(rec.Data)
			if err != nil {
				return err
			}
			b.Amend(id, price, qty)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Resume sequencing AFTER replay.
	seqGen.Reset(lastSeq)

	log.Printf("[replay] journal replay completed (last seq = %d)", lastSeq)
	return nil
}
