// Package cli provides the command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sanixdarker/gqlmd/internal/app"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"
	// Commit is set at build time.
	Commit = "none"
)

// fileSystem backs every file the CLI reads or writes.
var fileSystem afero.Fs = afero.NewOsFs()

var (
	renderURL         string
	renderJSON        string
	renderSchema      string
	renderHeaders     []string
	renderOutDir      string
	renderFrontMatter string
	renderHTML        bool
	renderTimeout     time.Duration
	renderRetries     int
	renderVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "gqlmd",
	Short: "Convert a GraphQL schema to Markdown",
	Long: `gqlmd converts a GraphQL introspection result into cross-linked
Markdown documents, one per category: queries, mutations, subscriptions,
objects, inputs, enums, interfaces, unions and scalars.

Specify the source of the schema using --url, --json or --schema.
Without a source, gqlmd reads an introspection response from stdin.
With --out-dir, each non-empty document is written to <name>.md in that
directory; otherwise all documents are printed to stdout.

Environment:
  GQLMD_URL     endpoint to introspect when no source flag is given
  GQLMD_TOKEN   bearer token sent as the Authorization header

Examples:
  gqlmd --url https://api.example.com/graphql -o docs
  gqlmd --url wss://api.example.com/graphql -H "X-Api-Key: secret"
  gqlmd --json response.json -o docs -f "layout:api;title:{{.Title}}"
  gqlmd --json response.json -o site --html
  cat response.json | gqlmd > schema.md`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.DefaultConfig()
		cfg.URL = renderURL
		cfg.JSON = renderJSON
		cfg.Schema = renderSchema
		cfg.Headers = renderHeaders
		cfg.OutDir = renderOutDir
		cfg.FrontMatter = renderFrontMatter
		cfg.HTML = renderHTML
		cfg.Timeout = renderTimeout
		cfg.Retries = renderRetries
		cfg.Debug = renderVerbose
		cfg.LogOutput = cmd.ErrOrStderr()
		applyEnv(cfg)

		return render(cmd.Context(), app.New(cfg), fileSystem, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gqlmd version %s (commit: %s)\n", Version, Commit)
	},
}

func init() {
	defaults := app.DefaultConfig()

	flags := rootCmd.Flags()
	flags.StringVarP(&renderURL, "url", "u", "", "URL to introspect (http, https, ws or wss)")
	flags.StringVarP(&renderJSON, "json", "j", "", "File containing an introspection response")
	flags.StringVarP(&renderSchema, "schema", "s", "", "GraphQL schema file")
	flags.StringArrayVarP(&renderHeaders, "header", "H", nil, "Header to send in URL requests, in name:value format; repeatable")
	flags.StringVarP(&renderOutDir, "out-dir", "o", "", "Output directory for multiple files")
	flags.StringVarP(&renderFrontMatter, "front-matter", "f", "", "Front matter for output files, in key:value;key2:value2 format")
	flags.BoolVar(&renderHTML, "html", false, "Also write an HTML page per document (requires --out-dir)")
	flags.DurationVar(&renderTimeout, "timeout", defaults.Timeout, "Timeout for URL requests")
	flags.IntVar(&renderRetries, "retries", defaults.Retries, "Retries for failed URL requests")
	flags.BoolVarP(&renderVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
}

// applyEnv fills settings the flags left unset from the environment.
func applyEnv(cfg *app.Config) {
	if cfg.URL == "" && cfg.JSON == "" && cfg.Schema == "" {
		cfg.URL = os.Getenv("GQLMD_URL")
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv("GQLMD_TOKEN")
	}
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
