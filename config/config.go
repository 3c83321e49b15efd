// Package config reads process configuration from the environment, with
// an optional .env file for development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// Config carries everything the server binary needs at startup.
// Zero values for SeriesCap, CandleLimit and RelayURL mean "use the
// owning package's default".
type Config struct {
	ExchangePriority []market.Exchange
	SeriesCap        int
	CandleLimit      int
	RelayURL         string
	GRPCAddr         string
	MetricsAddr      string
	LogLevel         string
}

// Load reads the environment. A missing .env file is not an error;
// deployments set variables directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	priority, err := parsePriority(getEnv("EXCHANGE_PRIORITY", ""))
	if err != nil {
		return nil, err
	}

	return &Config{
		ExchangePriority: priority,
		SeriesCap:        getEnvInt("SERIES_CAP", 0),
		CandleLimit:      getEnvInt("CANDLE_LIMIT", 0),
		RelayURL:         getEnv("RELAY_URL", ""),
		GRPCAddr:         getEnv("GRPC_ADDR", ":50051"),
		MetricsAddr:      getEnv("METRICS_ADDR", ":9091"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}, nil
}

// Logger builds the process logger at the configured level; an
// unrecognized level falls back to info.
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}

// parsePriority turns "binance,okx,gate" into an exchange list. Empty
// input keeps the built-in priority order.
func parsePriority(raw string) ([]market.Exchange, error) {
	if strings.TrimSpace(raw) == "" {
		return market.DefaultPriority(), nil
	}
	var out []market.Exchange
	seen := make(map[market.Exchange]bool)
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(strings.ToLower(part))
		if name == "" {
			continue
		}
		ex, ok := market.ParseExchange(name)
		if !ok {
			return nil, fmt.Errorf("config: unknown exchange %q in EXCHANGE_PRIORITY", part)
		}
		if seen[ex] {
			return nil, fmt.Errorf("config: duplicate exchange %q in EXCHANGE_PRIORITY", part)
		}
		seen[ex] = true
		out = append(out, ex)
	}
	if len(out) == 0 {
		return market.DefaultPriority(), nil
	}
	return out, nil
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
