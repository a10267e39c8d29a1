package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/sanixdarker/gqlmd/internal/app"
	"github.com/sanixdarker/gqlmd/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort      int
	serveDebug     bool
	serveRateLimit float64
	serveBurst     int
	serveCacheTTL  time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the rendering API server",
	Long: `Start an HTTP server that renders introspection responses on demand.

Endpoints:
  GET  /healthz                    liveness probe
  GET  /api/documents              names of the rendered documents
  POST /api/render                 all non-empty documents as JSON
  POST /api/render/{document}      one document as Markdown, or HTML with ?format=html

Examples:
  gqlmd serve
  gqlmd serve --port 9000 --rate-limit 5 --burst 10
  gqlmd serve --cache-ttl 0
  curl --data-binary @response.json localhost:8080/api/render/objects`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.DefaultConfig()
		cfg.Port = servePort
		cfg.Debug = serveDebug
		cfg.RateLimit = serveRateLimit
		cfg.Burst = serveBurst
		cfg.CacheTTL = serveCacheTTL
		cfg.LogOutput = cmd.ErrOrStderr()

		if !cmd.Flags().Changed("port") {
			if env := os.Getenv("GQLMD_PORT"); env != "" {
				port, err := strconv.Atoi(env)
				if err != nil {
					return fmt.Errorf("invalid GQLMD_PORT %q: %w", env, err)
				}
				cfg.Port = port
			}
		}

		application := app.New(cfg)
		fmt.Fprintf(cmd.OutOrStdout(), "gqlmd server running at http://localhost:%d\n", cfg.Port)
		return serve(cmd.Context(), application, server.New(application))
	},
}

// httpServer is the part of *server.Server that serve drives.
type httpServer interface {
	Start() error
	Shutdown() error
}

// serve runs srv until ctx is done, then waits for in-flight requests to
// drain before returning.
func serve(ctx context.Context, a *app.App, srv httpServer) error {
	shutdownErr := make(chan error, 1)
	stopped := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			shutdownErr <- nil
			return
		}
		a.Logger.Info("shutting down server...")
		shutdownErr <- srv.Shutdown()
	}()

	a.Logger.Info("starting server", "port", a.Config.Port)
	err := srv.Start()
	close(stopped)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		a.Logger.Error("shutdown failed", "error", err)
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	a.Logger.Info("server stopped")
	return nil
}

func init() {
	defaults := app.DefaultConfig()

	serveCmd.Flags().IntVarP(&servePort, "port", "p", defaults.Port, "HTTP port to listen on (or set GQLMD_PORT)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().Float64Var(&serveRateLimit, "rate-limit", defaults.RateLimit, "Requests per second allowed per client on /api")
	serveCmd.Flags().IntVar(&serveBurst, "burst", defaults.Burst, "Request burst allowed per client on /api")

	serveCmd.Flags().DurationVar(&serveCacheTTL, "cache-ttl", defaults.CacheTTL, "How long rendered documents are cached per request body (0 disables)")

	rootCmd.AddCommand(serveCmd)
}
