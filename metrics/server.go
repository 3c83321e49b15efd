package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server exposes /metrics and /healthz on its own listener, away from
// the feed port.
type Server struct {
	srv *http.Server
	log *logrus.Entry
}

func NewServer(addr string, health *Health, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", health)

	return &Server{
		srv: &http.Server{Addr: addr, Handler: mux},
		log: log.WithField("component", "metrics"),
	}
}

// Start launches the listener in a goroutine.
func (s *Server) Start() {
	go func() {
		s.log.WithField("addr", s.srv.Addr).Info("metrics server listening")
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			s.log.WithError(err).Error("metrics server failed")
		}
	}()
}

// Stop shuts the listener down, honoring the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
