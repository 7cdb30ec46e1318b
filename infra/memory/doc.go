// Package memory provides the low-level primitives for memory
// management and safe reclamation: slab allocators with stable cell
// handles, a lock-free RetireRing, and global epoch tracking used by
// the book and its snapshot readers.
//
// The memory package is dependency-free and forms the foundation for
// object reuse and RCU-style epoch advancement.
package memory
