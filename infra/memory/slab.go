package memory

// Slab is a typed slab allocator. Cells live in fixed-capacity blocks
// that are never moved or released, so a *T handed out stays valid for
// the life of the slab. Freed cells go on a LIFO free list and are
// preferred over bumping into fresh block space.
//
// Double-free is not detected; a cell pushed twice corrupts the free
// list.
type Slab[T any] struct {
	blockSize int
	blocks    [][]T
	cursor    int // cells consumed in the newest block
	free      []*T

	allocs uint64
	frees  uint64
}

// SlabStats reports allocator activity.
type SlabStats struct {
	Blocks   int
	Allocs   uint64
	Frees    uint64
	Live     uint64
	FreeList int
}

func NewSlab[T any](blockSize int) *Slab[T] {
	if blockSize <= 0 {
		panic("memory: slab block size must be positive")
	}
	s := &Slab[T]{
		blockSize: blockSize,
		free:      make([]*T, 0, blockSize),
	}
	s.grow()
	return s
}

// Get returns a zeroed cell in O(1) amortized.
func (s *Slab[T]) Get() *T {
	s.allocs++

	if n := len(s.free); n > 0 {
		p := s.free[n-1]
		s.free = s.free[:n-1]
		var zero T
		*p = zero
		return p
	}

	if s.cursor == s.blockSize {
		s.grow()
	}
	blk := s.blocks[len(s.blocks)-1]
	p := &blk[s.cursor]
	s.cursor++
	return p
}

// Put returns a cell to the free list. The caller must drop every
// reference; the cell is reissued by a later Get.
func (s *Slab[T]) Put(p *T) {
	if p == nil {
		return
	}
	s.frees++
	s.free = append(s.free, p)
}

// PutAny lets a Slab participate in type-erased reclamation.
func (s *Slab[T]) PutAny(v any) {
	p, ok := v.(*T)
	if !ok {
		panic("memory: PutAny received wrong type")
	}
	s.Put(p)
}

func (s *Slab[T]) Stats() SlabStats {
	return SlabStats{
		Blocks:   len(s.blocks),
		Allocs:   s.allocs,
		Frees:    s.frees,
		Live:     s.allocs - s.frees,
		FreeList: len(s.free),
	}
}

func (s *Slab[T]) grow() {
	s.blocks = append(s.blocks, make([]T, s.blockSize))
	s.cursor = 0
}
