package toplist

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortalmad92/cryptosearch/fetch"
	"github.com/mortalmad92/cryptosearch/model/market"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newRanker(t *testing.T, body string, status int) *Ranker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(relay.Close)

	return New(srv.URL, fetch.New(relay.URL, quietLogger(), nil), quietLogger())
}

func TestTopByQuoteVolumeFiltersSortsAndTrims(t *testing.T) {
	body := `[
		{"symbol":"BTCUSDT","lastPrice":"50000","priceChangePercent":"1.2","quoteVolume":"900000"},
		{"symbol":"ETHBTC","lastPrice":"0.05","priceChangePercent":"0.4","quoteVolume":"99999999"},
		{"symbol":"ETHUSDT","lastPrice":"3000","priceChangePercent":"-0.7","quoteVolume":"1200000.5"},
		{"symbol":"DOGEUSDT","lastPrice":"0.1","priceChangePercent":"9.9","quoteVolume":"350000"}
	]`
	r := newRanker(t, body, http.StatusOK)

	got, err := r.TopByQuoteVolume(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, got, 3, "non-quote pairs are excluded")
	assert.Equal(t, "ETH", got[0].Symbol)
	assert.Equal(t, "BTC", got[1].Symbol)
	assert.Equal(t, "DOGE", got[2].Symbol)
	assert.Equal(t, "1200000.5", got[0].QuoteVolume)
	assert.Equal(t, "-0.7", got[0].PriceChangePercent)
}

func TestTopByQuoteVolumeLimitsResult(t *testing.T) {
	body := `[
		{"symbol":"AUSDT","lastPrice":"1","priceChangePercent":"0","quoteVolume":"3"},
		{"symbol":"BUSDT","lastPrice":"1","priceChangePercent":"0","quoteVolume":"2"},
		{"symbol":"CUSDT","lastPrice":"1","priceChangePercent":"0","quoteVolume":"1"}
	]`
	r := newRanker(t, body, http.StatusOK)

	got, err := r.TopByQuoteVolume(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Symbol)
	assert.Equal(t, "B", got[1].Symbol)
}

func TestTopByQuoteVolumeSkipsUnparseableRows(t *testing.T) {
	body := `[
		{"symbol":"AUSDT","lastPrice":"1","priceChangePercent":"0","quoteVolume":"oops"},
		{"symbol":"BUSDT","lastPrice":"1","priceChangePercent":"0","quoteVolume":"5"}
	]`
	r := newRanker(t, body, http.StatusOK)

	got, err := r.TopByQuoteVolume(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Symbol)
}

func TestTopByQuoteVolumeMalformedBody(t *testing.T) {
	r := newRanker(t, `{"code":-1000}`, http.StatusOK)

	_, err := r.TopByQuoteVolume(context.Background(), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, market.ErrMalformedResponse)
}

func TestTopByQuoteVolumeFetchFailure(t *testing.T) {
	r := newRanker(t, "", http.StatusInternalServerError)

	_, err := r.TopByQuoteVolume(context.Background(), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, market.ErrFetchUnavailable)
}
