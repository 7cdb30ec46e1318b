package memory

import "sync/atomic"

// GlobalEpoch monotonically increases.
var GlobalEpoch atomic.Uint64

const inactive = ^uint64(0)

// ReaderEpoch marks when a reader entered a read section.
type ReaderEpoch struct {
	epoch atomic.Uint64
}

func NewReaderEpoch() *ReaderEpoch {
	r := &ReaderEpoch{}
	r.epoch.Store(inactive)
	return r
}

func (r *ReaderEpoch) Enter() {
	r.epoch.Store(GlobalEpoch.Load())
}

func (r *ReaderEpoch) Exit() {
	r.epoch.Store(inactive)
}

func (r *ReaderEpoch) Value() uint64 {
	return r.epoch.Load()
}

// AdvanceEpochAndReclaim advances the global epoch and drains the ring
// into free, but only while no reader is inside a read section. The
// ring is FIFO: once one object must be kept, every newer one must too.
func AdvanceEpochAndReclaim(
	ring *RetireRing,
	free func(any),
	readers ...*ReaderEpoch,
) {
	GlobalEpoch.Add(1)

	if minReaderEpoch(readers...) != inactive {
		return
	}

	for {
		obj := ring.Dequeue()
		if obj == nil {
			return
		}
		free(obj)
	}
}

func minReaderEpoch(rs ...*ReaderEpoch) uint64 {
	min := inactive
	for _, r := range rs {
		if r == nil {
			continue
		}
		v := r.Value()
		if v < min {
			min = v
		}
	}
	return min
}
