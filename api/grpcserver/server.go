package grpcserver

import (
	"context"
	"log"

	pb "lob/api/pb"
	"lob/domain/book"
	"lob/service"
)

// Server adapts BookService to gRPC.
type Server struct {
	pb.UnimplementedMarketDataServer
	svc *service.BookService
}

func NewServer(svc *service.BookService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) AddOrder(
	ctx context.Context,
	req *pb.AddOrderRequest,
) (*pb.OrderAck, error) {
	o := book.Order{
		ID:    req.GetOrderId(),
		Side:  toSide(req.GetSide()),
		Price: req.GetPrice(),
		Qty:   req.GetQty(),
	}

	seq, err := s.svc.Add(o)
	if err != nil {
		return &pb.OrderAck{Ok: false, Error: err.Error()}, nil
	}

	log.Printf(
		"[grpc] AddOrder id=%d side=%v price=%.4f qty=%d seq=%d",
		o.ID, o.Side, o.Price, o.Qty, seq,
	)

	return &pb.OrderAck{Ok: true, Seq: seq}, nil
}

func (s *Server) CancelOrder(
	ctx context.Context,
	req *pb.CancelOrderRequest,
) (*pb.OrderAck, error) {
	ok, err := s.svc.Cancel(req.GetOrderId())
	if err != nil {
		return &pb.OrderAck{Ok: false, Error: err.Error()}, nil
	}
	if !ok {
		return &pb.OrderAck{Ok: false, Error: "unknown order id"}, nil
	}
	return &pb.OrderAck{Ok: true}, nil
}

func (s *Server) AmendOrder(
	ctx context.Context,
	req *pb.AmendOrderRequest,
) (*pb.OrderAck, error) {
	ok, err := s.svc.Amend(req.GetOrderId(), req.GetNewPrice(), req.GetNewQty())
	if err != nil {
		return &pb.OrderAck{Ok: false, Error: err.Error()}, nil
	}
	if !ok {
		return &pb.OrderAck{Ok: false, Error: "unknown order id or bad price"}, nil
	}
	return &pb.OrderAck{Ok: true}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetDepth(
	ctx context.Context,
	req *pb.DepthRequest,
) (*pb.DepthResponse, error) {
	bids, asks := s.svc.Depth(int(req.GetDepth()))

	resp := &pb.DepthResponse{
		Bids: make([]*pb.LevelEntry, 0, len(bids)),
		Asks: make([]*pb.LevelEntry, 0, len(asks)),
	}
	for _, lv := range bids {
		resp.Bids = append(resp.Bids, &pb.LevelEntry{Price: lv.Price, TotalQty: lv.TotalQty})
	}
	for _, lv := range asks {
		resp.Asks = append(resp.Asks, &pb.LevelEntry{Price: lv.Price, TotalQty: lv.TotalQty})
	}
	return resp, nil
}

func (s *Server) GetBest(
	ctx context.Context,
	req *pb.BestRequest,
) (*pb.BestResponse, error) {
	bestBid, bestAsk := s.svc.Best()
	return &pb.BestResponse{
		BestBid:  bestBid,
		BestAsk:  bestAsk,
		CanMatch: s.svc.CanMatch(),
	}, nil
}

func (s *Server) GetStats(
	ctx context.Context,
	req *pb.StatsRequest,
) (*pb.StatsResponse, error) {
	st := s.svc.Stats()
	return &pb.StatsResponse{
		TotalOrders:    st.TotalOrders,
		TotalCancels:   st.TotalCancels,
		TotalAmends:    st.TotalAmends,
		TotalSnapshots: st.TotalSnapshots,
		ActiveOrders:   st.ActiveOrders,
		BidLevels:      uint32(st.BidLevels),
		AskLevels:      uint32(st.AskLevels),
		BestBid:        st.BestBid,
		BestAsk:        st.BestAsk,
		Spread:         st.Spread,
	}, nil
}

func toSide(s pb.Side) book.Side {
	if s == pb.Side_ASK {
		return book.Sell
	}
	return book.Buy
}
