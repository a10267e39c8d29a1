// Package app provides the application container and dependency injection.
package app

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sanixdarker/gqlmd/internal/introspect"
)

// Config holds application configuration.
type Config struct {
	// Source
	URL     string
	JSON    string
	Schema  string
	Headers []string
	Token   string

	// Output
	OutDir      string
	FrontMatter string
	HTML        bool

	// Transport
	Timeout time.Duration
	Retries int

	// Server
	Port      int
	RateLimit float64
	Burst     int
	CacheTTL  time.Duration

	Debug     bool
	LogOutput io.Writer
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	opts := introspect.DefaultOptions()
	return &Config{
		Timeout:   opts.Timeout,
		Retries:   opts.Retries,
		Port:      8080,
		RateLimit: 10,
		Burst:     20,
		CacheTTL:  10 * time.Minute,
		Debug:     false,
	}
}

// RequestHeaders returns the headers sent to the introspected endpoint.
// Token becomes a bearer Authorization header unless one was given.
func (c *Config) RequestHeaders() (http.Header, error) {
	headers, err := introspect.ParseHeaders(c.Headers)
	if err != nil {
		return nil, err
	}
	if c.Token != "" && headers.Get("Authorization") == "" {
		headers.Set("Authorization", "Bearer "+c.Token)
	}
	return headers, nil
}

// App is the main application container.
type App struct {
	Config *Config
	Logger *slog.Logger
	Client *introspect.Client
}

// New creates a new application instance.
func New(cfg *Config) *App {
	logLevel := log.InfoLevel
	if cfg.Debug {
		logLevel = log.DebugLevel
	}
	out := cfg.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := slog.New(log.NewWithOptions(out, log.Options{
		Level:           logLevel,
		Prefix:          "gqlmd",
		ReportTimestamp: true,
	}))

	opts := introspect.DefaultOptions()
	opts.Timeout = cfg.Timeout
	opts.Retries = cfg.Retries
	opts.Logger = logger

	return &App{
		Config: cfg,
		Logger: logger,
		Client: introspect.NewClient(opts),
	}
}
