package e2e

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/sanixdarker/gqlmd/internal/app"
	"github.com/sanixdarker/gqlmd/internal/server"
)

var (
	testApp    *app.App
	testServer *server.Server
	testPort   = 18080
	baseURL    string
)

// TestMain starts the server once for the whole suite
func TestMain(m *testing.M) {
	cfg := app.DefaultConfig()
	cfg.Port = testPort
	cfg.RateLimit = 1000
	cfg.Burst = 1000
	cfg.Retries = 0
	cfg.LogOutput = io.Discard

	testApp = app.New(cfg)
	testServer = server.New(testApp)
	baseURL = fmt.Sprintf("http://localhost:%d", testPort)

	go func() {
		if err := testServer.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("server error: %v\n", err)
		}
	}()

	if err := waitForServer(baseURL+"/healthz", 5*time.Second); err != nil {
		fmt.Printf("server failed to start: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	testServer.Shutdown()

	os.Exit(code)
}

// waitForServer waits for the server to be ready
func waitForServer(url string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for server")
		case <-ticker.C:
			resp, err := http.Get(url)
			if err == nil {
				resp.Body.Close()
				return nil
			}
		}
	}
}

// getTestURL returns the full URL for a given path
func getTestURL(path string) string {
	return baseURL + path
}
