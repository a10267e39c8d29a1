// Package handlers provides the HTTP handlers of the rendering API.
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/sanixdarker/gqlmd/internal/app"
	"github.com/sanixdarker/gqlmd/internal/cache"
	"github.com/sanixdarker/gqlmd/internal/output"
	"github.com/sanixdarker/gqlmd/pkg/docs"
	"github.com/sanixdarker/gqlmd/pkg/schema"
)

// MaxBodySize caps the size of an uploaded introspection response.
const MaxBodySize = 10 << 20

// Error kinds reported alongside schema.ErrorKind values.
const (
	kindInvalidJSON     = "invalid_json"
	kindTooLarge        = "too_large"
	kindUnknownDocument = "unknown_document"
	kindInternal        = "internal"
)

// RenderHandler renders uploaded introspection responses. Rendered
// documents are cached by request body for Config.CacheTTL.
type RenderHandler struct {
	app   *app.App
	cache *cache.Cache[map[string]string]
}

// NewRenderHandler creates a new RenderHandler. The cache is swept until
// ctx is done.
func NewRenderHandler(ctx context.Context, application *app.App) *RenderHandler {
	return &RenderHandler{
		app:   application,
		cache: cache.New[map[string]string](ctx, application.Config.CacheTTL),
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type renderResponse struct {
	Documents map[string]string `json:"documents"`
}

// Documents lists the names of the documents a render produces.
func (h *RenderHandler) Documents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, docs.DocumentNames)
}

// Render renders every document of the uploaded schema. Empty documents are
// left out of the response.
func (h *RenderHandler) Render(w http.ResponseWriter, r *http.Request) {
	documents, ok := h.documents(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, renderResponse{Documents: documents})
}

// RenderDocument renders a single document as Markdown, or as an HTML page
// with ?format=html. A document with nothing to show yields 204.
func (h *RenderHandler) RenderDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "document")
	if !docs.IsDocument(name) {
		writeError(w, http.StatusNotFound, "unknown document: "+name, kindUnknownDocument)
		return
	}

	documents, ok := h.documents(w, r)
	if !ok {
		return
	}

	content := documents[name]
	if content == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.URL.Query().Get("format") == "html" {
		page, err := output.RenderHTML(name, content, output.HTMLOptions{StylesheetURL: "/static/style.css"})
		if err != nil {
			h.app.Logger.Error("failed to render HTML", "document", name, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to render HTML", kindInternal)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	io.WriteString(w, content)
}

// documents returns the non-empty documents of the uploaded schema, from
// the cache when the same body was rendered before. It writes the error
// response itself when it fails.
func (h *RenderHandler) documents(w http.ResponseWriter, r *http.Request) (map[string]string, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large", kindTooLarge)
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "failed to read request body", kindInvalidJSON)
		return nil, false
	}

	key := cache.Key(body)
	if documents, ok := h.cache.Get(key); ok {
		w.Header().Set("X-Cache", "HIT")
		return documents, true
	}
	w.Header().Set("X-Cache", "MISS")

	s, err := schema.Parse(body)
	if err != nil {
		var schemaErr *schema.SchemaError
		if errors.As(err, &schemaErr) {
			writeError(w, http.StatusBadRequest, schemaErr.Message, string(schemaErr.Kind))
			return nil, false
		}
		writeError(w, http.StatusBadRequest, err.Error(), kindInvalidJSON)
		return nil, false
	}
	h.app.Logger.Debug("schema parsed", "types", len(s.Types))

	rendered, err := docs.RenderConcurrent(r.Context(), s)
	if err != nil {
		h.app.Logger.Warn("render aborted", "error", err)
		writeError(w, http.StatusServiceUnavailable, err.Error(), kindInternal)
		return nil, false
	}

	documents := make(map[string]string, len(rendered))
	for name, content := range rendered {
		if content != "" {
			documents[name] = content
		}
	}
	h.cache.Set(key, documents)
	return documents, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, kind string) {
	writeJSON(w, status, errorResponse{Error: msg, Kind: kind})
}
