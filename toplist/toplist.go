// Package toplist ranks spot symbols by 24h quote-currency turnover.
// The ranking is a point-in-time snapshot meant for a landing view, not
// a live feed; callers re-fetch when they want fresher numbers.
package toplist

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mortalmad92/cryptosearch/adapter"
	"github.com/mortalmad92/cryptosearch/fetch"
	"github.com/mortalmad92/cryptosearch/model/market"
)

const (
	// DefaultURL serves the 24h ticker for every listed pair when no
	// symbol parameter is given.
	DefaultURL = "https://api.binance.com/api/v3/ticker/24hr"

	// DefaultLimit is how many entries a non-positive n resolves to.
	DefaultLimit = 20
)

// Entry is one ranked symbol. Symbol is the base asset without the
// settlement quote suffix, ready to feed back into a search.
type Entry struct {
	Symbol             string
	LastPrice          string
	PriceChangePercent string
	QuoteVolume        string
}

// Ranker fetches and orders the full ticker array.
type Ranker struct {
	url   string
	fetch *fetch.Client
	log   *logrus.Entry
}

// New builds a Ranker. An empty url selects DefaultURL.
func New(url string, f *fetch.Client, log *logrus.Logger) *Ranker {
	if url == "" {
		url = DefaultURL
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Ranker{
		url:   url,
		fetch: f,
		log:   log.WithField("component", "toplist"),
	}
}

// row is one element of the full 24hr ticker array.
type row struct {
	Symbol             string `json:"symbol"`
	LastPrice          string `json:"lastPrice"`
	PriceChangePercent string `json:"priceChangePercent"`
	QuoteVolume        string `json:"quoteVolume"`
}

// TopByQuoteVolume returns the n highest-turnover symbols quoted in the
// settlement currency, descending. Rows whose volume does not parse are
// skipped rather than failing the whole ranking.
func (r *Ranker) TopByQuoteVolume(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		n = DefaultLimit
	}

	raw, err := r.fetch.Get(ctx, market.Binance, r.url)
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("toplist: %w: %v", market.ErrMalformedResponse, err)
	}

	type ranked struct {
		entry  Entry
		volume decimal.Decimal
	}
	candidates := make([]ranked, 0, len(rows))
	for _, rw := range rows {
		if !strings.HasSuffix(rw.Symbol, adapter.Quote) {
			continue
		}
		vol, err := decimal.NewFromString(rw.QuoteVolume)
		if err != nil {
			r.log.WithField("symbol", rw.Symbol).WithError(err).Debug("skipping row with unparseable volume")
			continue
		}
		candidates = append(candidates, ranked{
			entry: Entry{
				Symbol:             strings.TrimSuffix(rw.Symbol, adapter.Quote),
				LastPrice:          rw.LastPrice,
				PriceChangePercent: rw.PriceChangePercent,
				QuoteVolume:        rw.QuoteVolume,
			},
			volume: vol,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].volume.Cmp(candidates[j].volume) > 0
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]Entry, n)
	for i := range out {
		out[i] = candidates[i].entry
	}
	return out, nil
}
