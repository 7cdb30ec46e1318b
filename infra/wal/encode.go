package wal

import (
	"encoding/binary"
	"errors"
	"math"

	"lob/domain/book"
)

// Fixed little-endian payloads per op. Prices travel as IEEE-754 bits.
//
//	add:    [id:8][side:1][price:8][qty:8][ts:8]
//	cancel: [id:8]
//	amend:  [id:8][price:8][qty:8]

var ErrShortPayload = errors.New("wal: short payload")

func EncodeAdd(o book.Order) []byte {
	buf := make([]byte, 33)
	binary.LittleEndian.PutUint64(buf[0:8], o.ID)
	buf[8] = byte(o.Side)
	binary.LittleEndian.PutUint64(buf[9:17], math.Float64bits(o.Price))
	binary.LittleEndian.PutUint64(buf[17:25], o.Qty)
	binary.LittleEndian.PutUint64(buf[25:33], uint64(o.TimestampNs))
	return buf
}

func DecodeAdd(data []byte) (book.Order, error) {
	if len(data) < 33 {
		return book.Order{}, ErrShortPayload
	}
	return book.Order{
		ID:          binary.LittleEndian.Uint64(data[0:8]),
		Side:        book.Side(data[8]),
		Price:       math.Float64frombits(binary.LittleEndian.Uint64(data[9:17])),
		Qty:         binary.LittleEndian.Uint64(data[17:25]),
		TimestampNs: int64(binary.LittleEndian.Uint64(data[25:33])),
	}, nil
}

func EncodeCancel(id uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, id)
	return buf
}

func DecodeCancel(data []byte) (uint64, error) {
	if len(data) < 8 {
		return 0, ErrShortPayload
	}
	return binary.LittleEndian.Uint64(data), nil
}

func EncodeAmend(id uint64, price float64, qty uint64) []byte {
	buf := make([]byte, 24)
	binary.LittleEndian.PutUint64(buf[0:8], id)
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(price))
	binary.LittleEndian.PutUint64(buf[16:24], qty)
	return buf
}

func DecodeAmend(data []byte) (id uint64, price float64, qty uint64, err error) {
	if len(data) < 24 {
		return 0, 0, 0, ErrShortPayload
	}
	id = binary.LittleEndian.Uint64(data[0:8])
	price = math.Float64frombits(binary.LittleEndian.Uint64(data[8:16]))
	qty = binary.LittleEndian.Uint64(data[16:24])
	return id, price, qty, nil
}
