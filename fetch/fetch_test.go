package fetch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortalmad92/cryptosearch/model/market"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestGetDirectSkipsRelay(t *testing.T) {
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer direct.Close()

	var relayCalls atomic.Int64
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relayCalls.Add(1)
	}))
	defer relay.Close()

	c := New(relay.URL, quietLogger(), nil)
	body, err := c.Get(context.Background(), market.Binance, direct.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Zero(t, relayCalls.Load())
}

func TestGetFallsBackToRelayOnce(t *testing.T) {
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer direct.Close()

	var relayCalls atomic.Int64
	var gotTarget string
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relayCalls.Add(1)
		gotTarget = r.URL.Query().Get("url")
		json.NewEncoder(w).Encode(map[string]string{"contents": `{"symbol":"BTCUSDT"}`})
	}))
	defer relay.Close()

	c := New(relay.URL, quietLogger(), nil)
	body, err := c.Get(context.Background(), market.Binance, direct.URL+"/api/v3/ticker/24hr?symbol=BTCUSDT")
	require.NoError(t, err)
	assert.JSONEq(t, `{"symbol":"BTCUSDT"}`, string(body))
	assert.Equal(t, int64(1), relayCalls.Load())
	assert.Equal(t, direct.URL+"/api/v3/ticker/24hr?symbol=BTCUSDT", gotTarget)
}

func TestGetCombinedFailure(t *testing.T) {
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer direct.Close()

	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "also down", http.StatusBadGateway)
	}))
	defer relay.Close()

	c := New(relay.URL, quietLogger(), nil)
	_, err := c.Get(context.Background(), market.Bybit, direct.URL)
	assert.ErrorIs(t, err, market.ErrFetchUnavailable)
}

func TestGetRelayEnvelopeMalformed(t *testing.T) {
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusNotFound)
	}))
	defer direct.Close()

	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not a json envelope"))
	}))
	defer relay.Close()

	c := New(relay.URL, quietLogger(), nil)
	_, err := c.Get(context.Background(), market.Gate, direct.URL)
	assert.ErrorIs(t, err, market.ErrFetchUnavailable)
}

func TestGetRelayPassesNonJSONContentsVerbatim(t *testing.T) {
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer direct.Close()

	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"contents": "plain text body"})
	}))
	defer relay.Close()

	c := New(relay.URL, quietLogger(), nil)
	body, err := c.Get(context.Background(), market.OKX, direct.URL)
	require.NoError(t, err)
	assert.Equal(t, "plain text body", string(body))
}
