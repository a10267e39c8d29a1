// Package server provides the HTTP server.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sanixdarker/gqlmd/internal/app"
	"github.com/sanixdarker/gqlmd/internal/server/handlers"
	servermw "github.com/sanixdarker/gqlmd/internal/server/middleware"
	"github.com/sanixdarker/gqlmd/web"
)

// Server represents the HTTP server.
type Server struct {
	app     *app.App
	server  *http.Server
	router  *chi.Mux
	limiter *servermw.RateLimiter
	ctx     context.Context
	stop    context.CancelFunc
}

// New creates a new Server.
func New(application *app.App) *Server {
	ctx, stop := context.WithCancel(context.Background())

	s := &Server{
		app:     application,
		router:  chi.NewRouter(),
		limiter: servermw.NewRateLimiter(ctx, application.Config.RateLimit, application.Config.Burst),
		ctx:     ctx,
		stop:    stop,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(servermw.SecurityHeaders)
	s.router.Use(servermw.Logger(s.app.Logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Handle("/static/*", http.StripPrefix("/static/", web.ServeStatic()))

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ok")
	})

	renderHandler := handlers.NewRenderHandler(s.ctx, s.app)

	s.router.Route("/api", func(r chi.Router) {
		r.Use(s.limiter.Limit)
		r.Get("/documents", renderHandler.Documents)
		r.Post("/render", renderHandler.Render)
		r.Post("/render/{document}", renderHandler.RenderDocument)
	})
}

// Handler returns the root handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	defer s.stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
