package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/avast/retry-go"
	tea "github.com/charmbracelet/bubbletea"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/mortalmad92/cryptosearch/model/protobuf"
)

func main() {
	addr := getEnv("SERVER_ADDR", "localhost:50051")
	symbol := getEnv("SYMBOL", "BTC")
	exchange := getEnv("EXCHANGE", "")
	interval := getEnv("INTERVAL", "")
	nKline := getEnvInt("N_KLINE", 48)

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}
	defer conn.Close()

	client := pb.NewMarketFeedClient(conn)
	req := &pb.SubscribeRequest{
		Symbol:   symbol,
		Exchange: exchange,
		Interval: interval,
	}

	ch := make(chan *pb.Update, 128)
	go func() {
		// Attempts(0) retries forever; every re-subscribe repeats the
		// original request so the session comes back to the requested view.
		_ = retry.Do(
			func() error { return streamUpdates(client, req, ch) },
			retry.Attempts(0),
			retry.Delay(3*time.Second),
			retry.DelayType(retry.FixedDelay),
			retry.OnRetry(func(_ uint, err error) {
				log.Printf("stream dropped: %v — reconnecting", err)
			}),
		)
	}()

	p := tea.NewProgram(
		newModel(symbol, interval, nKline, ch),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}

func streamUpdates(client pb.MarketFeedClient, req *pb.SubscribeRequest, ch chan<- *pb.Update) error {
	stream, err := client.Subscribe(context.Background(), req)
	if err != nil {
		return err
	}
	for {
		u, err := stream.Recv()
		if err == io.EOF {
			return errors.New("server closed the stream")
		}
		if err != nil {
			return err
		}
		ch <- u
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
