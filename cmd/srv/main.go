package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/mortalmad92/cryptosearch/adapter"
	"github.com/mortalmad92/cryptosearch/adapter/binance"
	"github.com/mortalmad92/cryptosearch/adapter/bybit"
	"github.com/mortalmad92/cryptosearch/adapter/gate"
	"github.com/mortalmad92/cryptosearch/adapter/mexc"
	"github.com/mortalmad92/cryptosearch/adapter/okx"
	"github.com/mortalmad92/cryptosearch/config"
	"github.com/mortalmad92/cryptosearch/feed"
	"github.com/mortalmad92/cryptosearch/fetch"
	"github.com/mortalmad92/cryptosearch/metrics"
	"github.com/mortalmad92/cryptosearch/model/market"
	pb "github.com/mortalmad92/cryptosearch/model/protobuf"
	"github.com/mortalmad92/cryptosearch/session"
	"github.com/mortalmad92/cryptosearch/stream"
	"github.com/mortalmad92/cryptosearch/toplist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config load failed")
	}
	log := cfg.Logger()

	adapters, err := buildAdapters(cfg.ExchangePriority)
	if err != nil {
		log.WithError(err).Fatal("bad exchange priority")
	}

	m := metrics.New(nil)
	health := metrics.NewHealth()
	metricsSrv := metrics.NewServer(cfg.MetricsAddr, health, log)
	metricsSrv.Start()

	fetcher := fetch.New(cfg.RelayURL, log, m)
	hub := feed.NewHub(log, m)
	coord, err := session.New(session.Config{
		Adapters:    adapters,
		Fetch:       fetcher,
		Stream:      stream.New(log, m, health),
		Hub:         hub,
		SeriesCap:   cfg.SeriesCap,
		CandleLimit: cfg.CandleLimit,
		Logger:      log,
		Metrics:     m,
		Health:      health,
	})
	if err != nil {
		log.WithError(err).Fatal("session setup failed")
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.WithError(err).WithField("addr", cfg.GRPCAddr).Fatal("failed to listen")
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterMarketFeedServer(grpcSrv, newFeedServer(coord, hub, toplist.New("", fetcher, log), m, log))

	go func() {
		log.WithField("addr", cfg.GRPCAddr).Info("gRPC server listening")
		if err := grpcSrv.Serve(lis); err != nil {
			log.WithError(err).Fatal("gRPC server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	grpcSrv.GracefulStop()
	coord.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsSrv.Stop(shutdownCtx); err != nil {
		log.WithError(err).Warn("metrics server shutdown failed")
	}
}

func buildAdapters(priority []market.Exchange) ([]adapter.Adapter, error) {
	out := make([]adapter.Adapter, 0, len(priority))
	for _, ex := range priority {
		switch ex {
		case market.Binance:
			out = append(out, binance.New())
		case market.Bybit:
			out = append(out, bybit.New())
		case market.MEXC:
			out = append(out, mexc.New())
		case market.Gate:
			out = append(out, gate.New())
		case market.OKX:
			out = append(out, okx.New())
		default:
			return nil, fmt.Errorf("no adapter for exchange %q", ex)
		}
	}
	return out, nil
}
