// Package middleware provides HTTP middleware.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Logger returns a middleware that logs one line per request. Server errors
// are logged at error level, everything else at info. Render requests also
// carry the document name and whether the render cache answered.
func Logger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				level := slog.LevelInfo
				if ww.Status() >= http.StatusInternalServerError {
					level = slog.LevelError
				}

				attrs := []slog.Attr{
					slog.String("id", middleware.GetReqID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}
				// The route context is filled in while routing, so it is
				// only complete once next has returned.
				if rctx := chi.RouteContext(r.Context()); rctx != nil {
					if pattern := rctx.RoutePattern(); pattern != "" {
						attrs = append(attrs, slog.String("route", pattern))
					}
					if document := rctx.URLParam("document"); document != "" {
						attrs = append(attrs, slog.String("document", document))
					}
				}
				if hit := ww.Header().Get("X-Cache"); hit != "" {
					attrs = append(attrs, slog.String("cache", hit))
				}
				attrs = append(attrs,
					slog.Int("status", ww.Status()),
					slog.Duration("duration", time.Since(start)),
					slog.Int("bytes", ww.BytesWritten()),
				)

				logger.LogAttrs(r.Context(), level, "request", attrs...)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
