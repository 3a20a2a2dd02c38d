package handlers

import (
	"context"
	"net/http"
	"time"
)

const defaultShutdownTimeout = 5 * time.Second

// Server wraps http.Server with bounded header reads and idle keep-alives.
// Per-request duration is bounded by the router's timeout middleware instead
// of ReadTimeout/WriteTimeout, which would also cut long-lived observer
// connections on /ws.
type Server struct {
	*http.Server
	shutdownTimeout time.Duration
}

func NewServer(addr string, h http.Handler, shutdownTimeout time.Duration) *Server {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Run serves until ctx is canceled, then shuts down gracefully within the
// configured timeout so in-flight units of work finish or roll back cleanly.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.ListenAndServe() }()
	select {
	case <-ctx.Done():
		ctx2, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		_ = s.Shutdown(ctx2)
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
