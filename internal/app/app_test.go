package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestRequestHeaders(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Headers = []string{"X-Api-Key: secret"}
	cfg.Token = "abc"

	headers, err := cfg.RequestHeaders()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := headers.Get("X-Api-Key"); got != "secret" {
		t.Errorf("expected X-Api-Key, got %q", got)
	}
	if got := headers.Get("Authorization"); got != "Bearer abc" {
		t.Errorf("expected bearer token, got %q", got)
	}
}

func TestRequestHeadersExplicitAuthorization(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Headers = []string{"Authorization: Basic xyz"}
	cfg.Token = "abc"

	headers, err := cfg.RequestHeaders()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := headers.Get("Authorization"); got != "Basic xyz" {
		t.Errorf("expected explicit header to win, got %q", got)
	}
}

func TestRequestHeadersInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Headers = []string{"broken"}

	if _, err := cfg.RequestHeaders(); err == nil {
		t.Error("expected error for malformed header")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.LogOutput = &buf

	a := New(cfg)
	a.Logger.Debug("hidden")
	a.Logger.Info("rendered", "documents", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug to be filtered, got %q", out)
	}
	if !strings.Contains(out, "rendered") || !strings.Contains(out, "documents=3") {
		t.Errorf("expected info line, got %q", out)
	}

	buf.Reset()
	cfg.Debug = true
	New(cfg).Logger.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected debug line, got %q", buf.String())
	}
}
