// Package stream owns the live candle subscription. At most one
// subscription exists per manager; opening a new one always tears the
// previous one down first. There is no automatic reconnect: a dropped
// socket stays down until the orchestrator issues a fresh Subscribe,
// which keeps duplicate callbacks and stray timers impossible.
package stream

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/mortalmad92/cryptosearch/adapter"
	"github.com/mortalmad92/cryptosearch/metrics"
	"github.com/mortalmad92/cryptosearch/model/market"
)

// Manager drives the lifecycle of the single live stream subscription.
type Manager struct {
	log     *logrus.Entry
	metrics *metrics.Metrics
	health  *metrics.Health

	mu  sync.Mutex
	sub *subscription
}

// New builds a Manager. Logger, metrics and health may each be nil.
func New(log *logrus.Logger, m *metrics.Metrics, h *metrics.Health) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Manager{
		log:     log.WithField("component", "stream"),
		metrics: m,
		health:  h,
	}
}

// subscription is the owned resource record for one live socket: the
// connection, the keep-alive stop channel and the read pump's done
// channel. Writes after the handshake are serialized through mu.
type subscription struct {
	conn     *websocket.Conn
	exchange market.Exchange
	stop     chan struct{}
	done     chan struct{}

	mu     sync.Mutex
	closed bool
}

// write sends one text frame, silently skipping when the socket has
// been closed. No queuing, no backlog.
func (s *subscription) write(frame []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	return s.conn.WriteMessage(websocket.TextMessage, frame)
}

// close marks the subscription closed and shuts the socket down. Safe
// to call more than once.
func (s *subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	s.conn.Close()
}

func (s *subscription) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Subscribe tears down any existing subscription, dials the adapter's
// stream endpoint, sends the subscribe frame and starts the keep-alive
// and read goroutines. onCandle runs on the read goroutine for every
// frame that parses to a candle; control frames are dropped.
func (m *Manager) Subscribe(ctx context.Context, a adapter.Adapter, symbol, native string, onCandle func(market.Candle)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teardownLocked()

	log := m.log.WithFields(logrus.Fields{
		"exchange": a.Name(),
		"symbol":   symbol,
		"interval": native,
	})

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, a.StreamURL(symbol, native), nil)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", market.ErrStream, a.Name(), err)
	}

	sub := &subscription{
		conn:     conn,
		exchange: a.Name(),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	if frame := a.SubscribeFrame(symbol, native); frame != nil {
		if err := sub.write(frame); err != nil {
			sub.close()
			return fmt.Errorf("%w: subscribe %s: %v", market.ErrStream, a.Name(), err)
		}
	}

	if interval := a.KeepAliveInterval(); interval > 0 {
		go m.keepAlive(sub, a, interval)
	}
	go m.readPump(sub, a, log, onCandle)

	m.sub = sub
	m.metrics.SetLiveSubscriptions(1)
	m.health.SetStreamConnected(true)
	log.Info("stream subscribed")
	return nil
}

// keepAlive sends the adapter's heartbeat until the subscription is
// torn down. The frame is rebuilt each tick since some exchanges stamp
// the current time into it.
func (m *Manager) keepAlive(sub *subscription, a adapter.Adapter, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-sub.stop:
			return
		case <-t.C:
			if err := sub.write(a.KeepAliveFrame()); err != nil {
				m.log.WithField("exchange", sub.exchange).WithError(err).Debug("keep-alive write failed")
			}
		}
	}
}

// readPump delivers candles until the socket errors or is closed. On a
// socket error the pump exits but the subscription record stays in
// place; recovery is the orchestrator's call, not ours.
func (m *Manager) readPump(sub *subscription, a adapter.Adapter, log *logrus.Entry, onCandle func(market.Candle)) {
	defer close(sub.done)
	for {
		_, raw, err := sub.conn.ReadMessage()
		if err != nil {
			if sub.isClosed() {
				return
			}
			log.WithError(err).Warn("stream socket error, subscription left in place")
			m.metrics.StreamErrored(sub.exchange)
			m.health.SetStreamConnected(false)
			return
		}

		candle, err := a.ParseStreamMessage(raw)
		if err != nil {
			log.WithError(err).Debug("dropping unparseable stream frame")
			continue
		}
		if candle == nil {
			continue
		}

		m.metrics.CandleStreamed(sub.exchange)
		m.health.CandleSeen()
		onCandle(*candle)
	}
}

// Teardown closes the live subscription, if any, and blocks until its
// goroutines have exited. Idempotent.
func (m *Manager) Teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teardownLocked()
}

func (m *Manager) teardownLocked() {
	if m.sub == nil {
		return
	}
	close(m.sub.stop)
	m.sub.close()
	<-m.sub.done
	m.sub = nil
	m.metrics.SetLiveSubscriptions(0)
	m.health.SetStreamConnected(false)
}

// Active reports whether a subscription record exists. The record
// outlives a dead socket until the next Subscribe or Teardown.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sub != nil
}
