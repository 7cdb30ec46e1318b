// Package wal journals book mutations to append-only segment files so
// the resting book can be rebuilt after a restart. Records are framed
// with a CRC32 trailer and a strictly monotonic sequence; replay
// verifies both.
package wal
