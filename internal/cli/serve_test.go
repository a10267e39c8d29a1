package cli

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sanixdarker/gqlmd/internal/app"
)

// fakeServer mimics http.Server: Start returns ErrServerClosed as soon as
// Shutdown begins, while Shutdown itself keeps draining for a while.
type fakeServer struct {
	startErr    error
	shutdownErr error
	closed      chan struct{}
	drained     atomic.Bool
}

func newFakeServer() *fakeServer {
	return &fakeServer{closed: make(chan struct{})}
}

func (f *fakeServer) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.closed
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown() error {
	close(f.closed)
	time.Sleep(50 * time.Millisecond)
	f.drained.Store(true)
	return f.shutdownErr
}

func testServeApp() *app.App {
	cfg := app.DefaultConfig()
	cfg.LogOutput = io.Discard
	return app.New(cfg)
}

func TestServe_WaitsForShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := newFakeServer()

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	if err := serve(ctx, testServeApp(), srv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !srv.drained.Load() {
		t.Error("expected serve to return only after shutdown finished")
	}
}

func TestServe_ShutdownError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := newFakeServer()
	srv.shutdownErr = errors.New("deadline exceeded")

	err := serve(ctx, testServeApp(), srv)
	if err == nil {
		t.Fatal("expected shutdown error")
	}
	if !errors.Is(err, srv.shutdownErr) {
		t.Errorf("expected wrapped shutdown error, got %v", err)
	}
}

func TestServe_StartError(t *testing.T) {
	srv := newFakeServer()
	srv.startErr = errors.New("address already in use")

	err := serve(context.Background(), testServeApp(), srv)
	if !errors.Is(err, srv.startErr) {
		t.Errorf("expected start error, got %v", err)
	}
}
