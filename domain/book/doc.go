// Package book implements the in-memory limit order book for a single
// instrument. It maintains two red-black trees for the bid and ask
// sides, FIFO time-priority queues at each price level, an order-id
// index for O(1) random access, and slab-backed allocation for order
// and level cells.
//
// The book is resting-only and single-writer. It answers market-data
// queries (top of book, depth snapshots, stats) deterministically;
// matching, intake and persistence live outside this package.
package book
