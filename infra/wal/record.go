package wal

import "time"

// Op is the journaled book mutation.
type Op uint8

const (
	OpAdd Op = iota
	OpCancel
	OpAmend
)

// Record is an immutable journal entry.
type Record struct {
	Op   Op
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(op Op, seq uint64, data []byte) *Record {
	return &Record{
		Op:   op,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}
