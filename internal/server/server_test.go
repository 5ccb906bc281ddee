package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	httphandler "github.com/MKhiriev/go-notes-keeper/internal/handler/http"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestServer(t *testing.T, addr string) Server {
	t.Helper()
	cfg := config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv
}

func TestNewServer_NoHandlers(t *testing.T) {
	for name, handlers := range map[string]*handler.Handlers{
		"nil handlers":     nil,
		"nil HTTP handler": {},
	} {
		t.Run(name, func(t *testing.T) {
			srv, err := NewServer(handlers, config.Server{HTTPAddress: ":3000"}, logger.Nop())

			assert.ErrorIs(t, err, errNoHTTPHandler)
			assert.Nil(t, srv)
		})
	}
}

func TestNewServer_NoListenAddress(t *testing.T) {
	handlers := &handler.Handlers{HTTP: httphandler.NewHandler(&service.Services{}, config.Server{}, logger.Nop())}

	srv, err := NewServer(handlers, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoListenAddress)
	assert.NotErrorIs(t, err, errNoHTTPHandler)
	assert.Nil(t, srv)
}

func TestServer_RunServesUntilCanceled(t *testing.T) {
	addr := freeAddress(t)
	srv := newTestServer(t, addr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/unknown")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err := http.Get("http://" + addr + "/api/unknown")
	assert.Error(t, err)
}

func TestServer_RunReportsListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := newTestServer(t, l.Addr().String())

	err = srv.Run(context.Background())
	assert.Error(t, err)
}
