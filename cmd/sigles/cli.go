package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/sigles"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Lookup   sigles.LookupService
	Registry sigles.ExtractorRegistry
	Pages    sigles.PageService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" env:"SIGLES_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" env:"SIGLES_LOG_FORMAT" help:"Log format (text, json)"`

	Timeout        time.Duration `default:"10s" env:"SIGLES_TIMEOUT" help:"Per-fetch timeout"`
	UserAgent      string        `name:"user-agent" env:"SIGLES_USER_AGENT" help:"User-Agent sent to sources"`
	AcceptLanguage string        `name:"accept-language" env:"SIGLES_ACCEPT_LANGUAGE" help:"Accept-Language sent to sources"`
	Retries        uint          `default:"4" env:"SIGLES_RETRIES" help:"Fetch attempts per page, first one included"`
	RPS            float64       `name:"rps" default:"2" env:"SIGLES_RPS" help:"Requests per second per source host"`
	Browser        bool          `env:"SIGLES_BROWSER" help:"Fetch pages with headless Chrome"`
	Cache          string        `env:"SIGLES_CACHE" help:"Page cache database path (caching disabled when empty)"`
	CacheTTL       time.Duration `name:"cache-ttl" default:"24h" env:"SIGLES_CACHE_TTL" help:"How long cached pages are served"`
	SavePages      string        `name:"save-pages" env:"SIGLES_SAVE_PAGES" help:"Directory where live-fetched pages are archived"`
	Concurrency    int           `short:"c" default:"4" env:"SIGLES_CONCURRENCY" help:"Sources queried in parallel"`

	Lookup  LookupCmd  `cmd:"" help:"Look up an acronym"`
	Serve   ServeCmd   `cmd:"" help:"Serve the lookup API over HTTP"`
	Extract ExtractCmd `cmd:"" help:"Extract definitions from a saved source page"`
	Purge   PurgeCmd   `cmd:"" help:"Remove old pages from the page cache"`
}

// fetchConfig translates the global flags into the fetch settings.
func (c *CLI) fetchConfig() sigles.FetchConfig {
	cfg := sigles.DefaultFetchConfig()
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
	if c.AcceptLanguage != "" {
		cfg.AcceptLanguage = c.AcceptLanguage
	}
	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	return cfg
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Term   string `arg:"" help:"Acronym to look up"`
	All    bool   `short:"a" help:"Query every source"`
	Source string `short:"s" help:"Query a single source and list all its candidates"`
	JSON   bool   `name:"json" help:"Print records as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":5000" env:"SIGLES_ADDR" help:"Listen address"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File   string `arg:"" type:"existingfile" help:"Saved HTML page"`
	Term   string `arg:"" help:"Acronym the page was fetched for"`
	Source string `short:"s" help:"Source of the page (detected when omitted)"`
	JSON   bool   `name:"json" help:"Print records as JSON"`
}

// PurgeCmd is the "purge" subcommand.
type PurgeCmd struct {
	OlderThan time.Duration `name:"older-than" default:"720h" help:"Remove pages fetched longer ago than this"`
}
