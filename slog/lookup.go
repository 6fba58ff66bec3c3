package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sigles"
)

// Ensure LoggingProvider implements sigles.Provider.
var _ sigles.Provider = (*LoggingProvider)(nil)

// LoggingProvider wraps a Provider with per-lookup logging.
type LoggingProvider struct {
	next   sigles.Provider
	logger *slog.Logger
}

// NewLoggingProvider creates a new LoggingProvider.
func NewLoggingProvider(next sigles.Provider, logger *slog.Logger) *LoggingProvider {
	return &LoggingProvider{next: next, logger: logger}
}

// Lookup logs the source, term, candidate count and duration.
func (p *LoggingProvider) Lookup(ctx context.Context, term string) (records []*sigles.Record, err error) {
	defer func(begin time.Time) {
		p.logger.InfoContext(ctx, "provider lookup",
			"source", p.next.Source(),
			"term", term,
			"candidates", len(records),
			"duration", time.Since(begin),
			"code", sigles.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return p.next.Lookup(ctx, term)
}

// Source delegates to the wrapped provider.
func (p *LoggingProvider) Source() sigles.Source {
	return p.next.Source()
}

// WrapProviders wraps every provider with a LoggingProvider.
func WrapProviders(providers []sigles.Provider, logger *slog.Logger) []sigles.Provider {
	wrapped := make([]sigles.Provider, len(providers))
	for i, p := range providers {
		wrapped[i] = NewLoggingProvider(p, logger)
	}
	return wrapped
}

// Ensure LoggingService implements sigles.LookupService.
var _ sigles.LookupService = (*LoggingService)(nil)

// LoggingService wraps a LookupService with per-operation logging.
type LoggingService struct {
	next   sigles.LookupService
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next sigles.LookupService, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// LookupUsito logs the Usito lookup.
func (s *LoggingService) LookupUsito(ctx context.Context, term string) (rec *sigles.Record, err error) {
	defer func(begin time.Time) {
		n := 0
		if rec != nil {
			n = 1
		}
		s.log(ctx, "LookupUsito", term, n, begin, err)
	}(time.Now())
	return s.next.LookupUsito(ctx, term)
}

// LookupAll logs the aggregated lookup.
func (s *LoggingService) LookupAll(ctx context.Context, term string) (result *sigles.Result, err error) {
	defer func(begin time.Time) {
		n := 0
		if result != nil {
			n = len(result.Records)
		}
		s.log(ctx, "LookupAll", term, n, begin, err)
	}(time.Now())
	return s.next.LookupAll(ctx, term)
}

// LookupSource logs the single-source lookup.
func (s *LoggingService) LookupSource(ctx context.Context, source sigles.Source, term string) (records []*sigles.Record, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "LookupSource:"+string(source), term, len(records), begin, err)
	}(time.Now())
	return s.next.LookupSource(ctx, source, term)
}

func (s *LoggingService) log(ctx context.Context, op, term string, records int, begin time.Time, err error) {
	level := slog.LevelInfo
	if err != nil && sigles.ErrorCode(err) == sigles.EINTERNAL {
		level = slog.LevelError
	}
	s.logger.Log(ctx, level, "lookup",
		"op", op,
		"term", term,
		"records", records,
		"duration", time.Since(begin),
		"err", err,
	)
}
