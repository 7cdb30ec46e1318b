package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"google.golang.org/grpc"

	"lob/api/grpcserver"
	pb "lob/api/pb"
	"lob/config"
	"lob/domain/book"
	"lob/infra/kafka"
	"lob/infra/memory"
	"lob/infra/outbox"
	"lob/infra/sequence"
	"lob/infra/wal"
	"lob/jobs/broadcaster"
	"lob/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// ---------------- Journal ----------------

	journal, err := wal.Open(wal.Config{
		Dir:             cfg.JournalDir,
		SegmentSize:     cfg.SegmentSize,
		SegmentDuration: cfg.SegmentDuration,
	})
	if err != nil {
		log.Fatalf("journal init failed: %v", err)
	}
	defer journal.Close()

	// ---------------- Outbox ----------------

	var ob *outbox.Outbox
	if cfg.Broadcast() {
		ob, err = outbox.Open(cfg.OutboxDir)
		if err != nil {
			log.Fatalf("outbox init failed: %v", err)
		}
		defer ob.Close()
	}

	// ---------------- Domain ----------------

	b := book.New()
	seqGen := sequence.New(0)
	ring := memory.NewRetireRing(cfg.RetireRingSize)

	// ---------------- Replay ----------------

	if err := service.ReplayJournal(cfg.JournalDir, b, seqGen); err != nil {
		log.Fatalf("journal replay failed: %v", err)
	}

	// ---------------- Service ----------------

	svc := service.New(b, journal, ob, seqGen, ring)

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ticker := time.NewTicker(cfg.EpochInterval)
		defer ticker.Stop()
		for range ticker.C {
			svc.AdvanceEpoch()
		}
	}()

	if cfg.Broadcast() {
		bc, err := broadcaster.New(ob, cfg.Brokers, cfg.EventTopic, cfg.BroadcastTick)
		if err != nil {
			log.Fatalf("broadcaster init failed: %v", err)
		}
		defer bc.Close()
		bc.Start(ctx)

		feed := kafka.NewProducer(cfg.Brokers, cfg.DepthTopic)
		defer feed.Close()
		svc.StartFeedJob(ctx, feed, cfg.FeedInterval, cfg.DepthLevels)
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterMarketDataServer(grpcSrv, grpcserver.NewServer(svc))

	log.Printf("book engine listening on :%d", cfg.GRPCPort)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
