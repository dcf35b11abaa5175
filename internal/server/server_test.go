package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-file-cipher/internal/config"
	"github.com/MKhiriev/go-file-cipher/internal/handler"
	myHTTP "github.com/MKhiriev/go-file-cipher/internal/handler/http"
	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/MKhiriev/go-file-cipher/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestServer(addr string, h http.Handler) *server {
	return &server{
		httpServer: newHTTPServer(h, config.Server{
			HTTPAddress:     addr,
			RequestTimeout:  time.Second,
			ShutdownTimeout: time.Second,
		}, logger.Nop()),
		logger: logger.Nop(),
	}
}

func TestNewServer_NoHTTPAddress(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, config.App{SessionKey: "key"}, logger.Nop()),
	}

	srv, err := NewServer(handlers, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_NilHandlers(t *testing.T) {
	srv, err := NewServer(nil, config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, config.App{SessionKey: "key"}, logger.Nop()),
	}

	srv, err := NewServer(handlers, config.Server{
		HTTPAddress:     "localhost:9090",
		RequestTimeout:  3 * time.Second,
		ShutdownTimeout: 7 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	s, ok := srv.(*server)
	require.True(t, ok)
	assert.Equal(t, "localhost:9090", s.httpServer.server.Addr)
	assert.Equal(t, 3*time.Second, s.httpServer.server.ReadTimeout)
	assert.Equal(t, 3*time.Second, s.httpServer.server.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, s.httpServer.server.ReadHeaderTimeout)
	assert.Equal(t, 7*time.Second, s.httpServer.shutdownTimeout)
	assert.NotNil(t, s.httpServer.server.Handler)
}

func TestRun_ServesUntilContextDone(t *testing.T) {
	addr := freeAddress(t)
	s := newTestServer(addr, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}

	_, err := http.Get("http://" + addr + "/")
	assert.Error(t, err)
}

func TestRun_ListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	s := newTestServer(l.Addr().String(), http.NotFoundHandler())

	err = s.run(context.Background())
	assert.Error(t, err)
}

func TestRun_WithoutHTTPServer(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errNoServersAreCreated)
}
