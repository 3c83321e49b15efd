package main

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mortalmad92/cryptosearch/feed"
	"github.com/mortalmad92/cryptosearch/metrics"
	"github.com/mortalmad92/cryptosearch/model/market"
	pb "github.com/mortalmad92/cryptosearch/model/protobuf"
	"github.com/mortalmad92/cryptosearch/session"
	"github.com/mortalmad92/cryptosearch/toplist"
)

// subscriberBuffer is how many queued updates a slow client may fall
// behind before deltas are dropped. Every publish carries full candle
// state, so a dropped delta heals on the next one.
const subscriberBuffer = 64

type feedServer struct {
	pb.UnimplementedMarketFeedServer

	coord   *session.Coordinator
	hub     *feed.Hub
	ranker  *toplist.Ranker
	metrics *metrics.Metrics
	log     *logrus.Entry
}

func newFeedServer(coord *session.Coordinator, hub *feed.Hub, ranker *toplist.Ranker, m *metrics.Metrics, log *logrus.Logger) *feedServer {
	return &feedServer{
		coord:   coord,
		hub:     hub,
		ranker:  ranker,
		metrics: m,
		log:     log.WithField("component", "grpc"),
	}
}

// Subscribe redirects the session to the requested view, then streams
// every state change until the client disconnects. All subscribers
// share the one session; the last request wins, and everyone sees it.
func (s *feedServer) Subscribe(req *pb.SubscribeRequest, stream pb.MarketFeed_SubscribeServer) error {
	ctx := stream.Context()
	log := s.log.WithFields(logrus.Fields{
		"symbol":   req.GetSymbol(),
		"exchange": req.GetExchange(),
		"interval": req.GetInterval(),
	})
	log.Info("new subscription")

	if err := s.redirect(ctx, req); err != nil {
		return err
	}

	updates := make(chan feed.Update, subscriberBuffer)
	sub := s.hub.Attach(func(u feed.Update) {
		select {
		case updates <- u:
		default:
		}
	})
	defer sub.Unsubscribe()
	s.metrics.SubscriberConnected()
	defer s.metrics.SubscriberDisconnected()

	// Replay current state so the client does not start blank. Attach
	// happened first, so a racing publish is duplicated, never lost.
	latest := s.hub.Latest()
	latest.Reset = true
	if err := stream.Send(toProtoUpdate(latest)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("client disconnected")
			return ctx.Err()
		case u := <-updates:
			if err := stream.Send(toProtoUpdate(u)); err != nil {
				return err
			}
		}
	}
}

// redirect moves the shared session to what the request asks for. An
// empty symbol attaches to whatever is already active.
func (s *feedServer) redirect(ctx context.Context, req *pb.SubscribeRequest) error {
	if req.GetSymbol() == "" {
		return nil
	}

	var forced market.Exchange
	if req.GetExchange() != "" {
		ex, ok := market.ParseExchange(strings.ToLower(req.GetExchange()))
		if !ok {
			return status.Errorf(codes.InvalidArgument, "unknown exchange %q", req.GetExchange())
		}
		forced = ex
	}

	symbol, exchange, interval := s.coord.View()
	sameSymbol := strings.EqualFold(req.GetSymbol(), symbol)

	switch {
	case !sameSymbol:
		var err error
		if forced != "" {
			err = s.coord.Search(ctx, req.GetSymbol(), forced)
		} else {
			err = s.coord.Search(ctx, req.GetSymbol())
		}
		if err != nil {
			return rpcError(err)
		}
		if req.GetInterval() != "" {
			if _, _, cur := s.coord.View(); cur != req.GetInterval() {
				if err := s.coord.SetInterval(ctx, req.GetInterval()); err != nil {
					return rpcError(err)
				}
			}
		}
	default:
		if forced != "" && forced != exchange {
			if err := s.coord.SetExchange(ctx, forced); err != nil {
				return rpcError(err)
			}
		}
		if req.GetInterval() != "" && req.GetInterval() != interval {
			if err := s.coord.SetInterval(ctx, req.GetInterval()); err != nil {
				return rpcError(err)
			}
		}
	}
	return nil
}

func (s *feedServer) TopSymbols(ctx context.Context, req *pb.TopSymbolsRequest) (*pb.TopSymbolsResponse, error) {
	entries, err := s.ranker.TopByQuoteVolume(ctx, int(req.GetLimit()))
	if err != nil {
		return nil, rpcError(err)
	}

	resp := &pb.TopSymbolsResponse{Entries: make([]*pb.TopEntry, len(entries))}
	for i, e := range entries {
		resp.Entries[i] = &pb.TopEntry{
			Symbol:             e.Symbol,
			LastPrice:          e.LastPrice,
			PriceChangePercent: e.PriceChangePercent,
			QuoteVolume:        e.QuoteVolume,
		}
	}
	return resp, nil
}

// rpcError maps the session error taxonomy to gRPC status codes. A
// stale token means another client redirected the session mid-flight;
// that is not an error worth surfacing, the stream simply follows the
// newer state.
func rpcError(err error) error {
	switch {
	case err == nil || errors.Is(err, market.ErrStaleToken):
		return nil
	case errors.Is(err, market.ErrSymbolNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, market.ErrFetchUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, market.ErrMalformedResponse):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.InvalidArgument, err.Error())
	}
}

func toProtoUpdate(u feed.Update) *pb.Update {
	out := &pb.Update{
		Reset_:   u.Reset,
		Symbol:   u.Symbol,
		Exchange: string(u.Exchange),
		Interval: u.Interval,
	}
	if u.Ticker != nil {
		out.Ticker = &pb.TickerSnapshot{
			Symbol:             u.Ticker.Symbol,
			PriceChange:        u.Ticker.PriceChange,
			PriceChangePercent: u.Ticker.PriceChangePercent,
			LastPrice:          u.Ticker.LastPrice,
			HighPrice:          u.Ticker.HighPrice,
			LowPrice:           u.Ticker.LowPrice,
			Volume:             u.Ticker.Volume,
			Exchange:           string(u.Ticker.Exchange),
		}
	}
	if u.Candles != nil {
		out.Candles = make([]*pb.Candle, len(u.Candles))
		for i, c := range u.Candles {
			out.Candles[i] = &pb.Candle{
				Time:   c.Time,
				Open:   c.Open,
				High:   c.High,
				Low:    c.Low,
				Close:  c.Close,
				Volume: c.Volume,
			}
		}
	}
	if u.Indicators != nil {
		out.Indicators = &pb.IndicatorSet{
			Ema: u.Indicators.EMA,
			Rsi: u.Indicators.RSI,
			K:   u.Indicators.K,
			D:   u.Indicators.D,
			J:   u.Indicators.J,
			Sar: u.Indicators.SAR,
		}
	}
	if u.Available != nil {
		out.Available = make([]string, len(u.Available))
		for i, ex := range u.Available {
			out.Available[i] = string(ex)
		}
	}
	return out
}
