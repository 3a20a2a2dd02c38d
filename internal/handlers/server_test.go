package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_Timeouts(t *testing.T) {
	srv := NewServer(":0", http.NewServeMux(), 2*time.Second)
	assert.Equal(t, 2*time.Second, srv.shutdownTimeout)
	assert.Equal(t, 5*time.Second, srv.ReadHeaderTimeout)
	assert.Equal(t, 60*time.Second, srv.IdleTimeout)

	// Non-positive falls back rather than shutting down with no grace at all.
	srv = NewServer(":0", http.NewServeMux(), 0)
	assert.Equal(t, defaultShutdownTimeout, srv.shutdownTimeout)
}

func TestServerRun_GracefulShutdown(t *testing.T) {
	srv := NewServer("127.0.0.1:0", http.NewServeMux(), time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down after cancellation")
	}
}

func TestServerRun_ListenFailure(t *testing.T) {
	srv := NewServer("256.256.256.256:1", http.NewServeMux(), time.Second)
	err := srv.Run(context.Background())
	assert.Error(t, err)
}
