package service

import (
	"context"
	"log"
	"strconv"
	"time"

	pb "lob/api/pb"
	"lob/infra/kafka"
)

// StartFeedJob periodically publishes a depth snapshot to the
// market-data topic as a protobuf DepthUpdate. Runs until ctx is
// cancelled.
func (s *BookService) StartFeedJob(
	ctx context.Context,
	producer *kafka.Producer,
	interval time.Duration,
	depth int,
) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.publishDepth(ctx, producer, depth)
			}
		}
	}()
}

func (s *BookService) publishDepth(ctx context.Context, producer *kafka.Producer, depth int) {
	bids, asks := s.Depth(depth)

	upd := &pb.DepthUpdate{
		Seq:  s.seq.Current(),
		Time: time.Now().UnixNano(),
		Bids: make([]*pb.LevelEntry, 0, len(bids)),
		Asks: make([]*pb.LevelEntry, 0, len(asks)),
	}
	for _, lv := range bids {
		upd.Bids = append(upd.Bids, &pb.LevelEntry{Price: lv.Price, TotalQty: lv.TotalQty})
	}
	for _, lv := range asks {
		upd.Asks = append(upd.Asks, &pb.LevelEntry{Price: lv.Price, TotalQty: lv.TotalQty})
	}

	payload, err := pb.Marshal(upd)
	if err != nil {
		return
	}

	key := []byte(strconv.FormatUint(upd.Seq, 10))
	if err := producer.Send(ctx, key, payload); err != nil {
		log.Printf("[feed] publish failed: %v", err)
	}
}
