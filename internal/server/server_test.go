package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestServe_StopsOnContextCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.Equal(t, nil, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(ln.Addr().String(), handler, logger, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	assert.Equal(t, nil, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.Equal(t, nil, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.Equal(t, nil, err)
	defer ln.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(ln.Addr().String(), http.NotFoundHandler(), logger, time.Second)

	err = srv.Run(context.Background())
	assert.NotEqual(t, nil, err)
}
