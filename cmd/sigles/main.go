package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sigles"
	"github.com/fwojciec/sigles/cache"
	"github.com/fwojciec/sigles/fs"
	"github.com/fwojciec/sigles/goquery"
	sigleshttp "github.com/fwojciec/sigles/http"
	"github.com/fwojciec/sigles/lookup"
	"github.com/fwojciec/sigles/rate"
	"github.com/fwojciec/sigles/retry"
	"github.com/fwojciec/sigles/rod"
	siglesslog "github.com/fwojciec/sigles/slog"
	"github.com/fwojciec/sigles/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the page cache, opened when --cache is set.
	DB *sqlite.DB

	// Fetcher replaces the live HTTP or browser fetcher when set.
	// Used for end-to-end testing.
	Fetcher sigles.Fetcher

	fetcher sigles.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	if m.fetcher != nil {
		if err := m.fetcher.Close(); err != nil {
			firstErr = err
		}
	}
	if m.DB != nil {
		if err := m.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sigles"),
		kong.Description("Look up French acronyms in Usito and online acronym dictionaries."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sigles --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := NewLogger(stderr, cli.LogLevel, cli.LogFormat)
	deps.Logger = logger
	deps.Registry = siglesslog.NewLoggingRegistry(goquery.NewDefaultRegistry(), goquery.NewDetector(), logger)

	defer m.Close()

	if cli.Cache != "" && (cmd == "lookup" || cmd == "serve" || cmd == "purge") {
		m.DB = sqlite.NewDB(cli.Cache)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set SIGLES_CACHE to use a different cache path")
			return fmt.Errorf("failed to open page cache at %q: %w", cli.Cache, err)
		}
		deps.Pages = sqlite.NewPageService(m.DB)
	}

	if cmd == "lookup" || cmd == "serve" {
		fetcher, err := m.newFetcher(cli, deps.Pages, logger)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		m.fetcher = fetcher

		providers := siglesslog.WrapProviders(lookup.NewProviders(fetcher), logger)
		svc := lookup.NewService(providers, lookup.WithConcurrency(cli.Concurrency))
		deps.Lookup = siglesslog.NewLoggingService(svc, logger)
	}

	return kongCtx.Run(deps)
}

// newFetcher builds the fetch stack. From the outside in: page cache,
// per-host rate limit, retries, logging, the page archive, then the live
// fetcher.
// A non-positive rate disables rate limiting.
func (m *Main) newFetcher(cli *CLI, pages sigles.PageService, logger *slog.Logger) (sigles.Fetcher, error) {
	cfg := cli.fetchConfig()

	base := m.Fetcher
	if base == nil {
		if cli.Browser {
			f, err := rod.NewFetcher(rod.WithConfig(cfg))
			if err != nil {
				return nil, err
			}
			base = f
		} else {
			base = sigleshttp.NewFetcher(sigleshttp.WithConfig(cfg))
		}
	}

	if cli.SavePages != "" {
		base = fs.NewFetcher(base, fs.NewWriter(cli.SavePages), func(url string, err error) {
			logger.Warn("archive page", "url", url, "err", err)
		})
	}

	var f sigles.Fetcher = siglesslog.NewLoggingFetcher(base, logger)
	f = retry.NewFetcher(f,
		retry.WithAttempts(cli.Retries),
		retry.WithOnRetry(func(url string, attempt uint, err error) {
			logger.Warn("retrying fetch", "url", url, "attempt", attempt, "err", err)
		}),
	)
	if cli.RPS > 0 {
		f = rate.NewFetcher(f, rate.NewDomainLimiter(cli.RPS))
	}
	if pages != nil {
		f = cache.NewFetcher(f, pages, cli.CacheTTL, func(url string, err error) {
			logger.Warn("cache page", "url", url, "err", err)
		})
	}
	return f, nil
}
