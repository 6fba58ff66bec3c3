package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sigles"
)

// Compile-time interface verification.
var _ sigles.PageService = (*PageService)(nil)

// PageService implements sigles.PageService using SQLite.
type PageService struct {
	db  *DB
	now func() time.Time
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db, now: time.Now}
}

// hash returns the hex xxHash of s. Page ids hash the URL; content
// hashes hash the HTML.
func hash(s string) string {
	var b [8]byte
	h := xxhash.Sum64String(s)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:])
}

// FindPage returns the cached page for url.
func (s *PageService) FindPage(ctx context.Context, url string) (*sigles.Page, error) {
	var page sigles.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT url, html, content_hash, fetched_at
		FROM pages
		WHERE id = ?
	`, hash(url)).Scan(&page.URL, &page.HTML, &page.ContentHash, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sigles.Errorf(sigles.ENOTFOUND, "page not cached")
	}
	if err != nil {
		return nil, err
	}

	if page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}
	return &page, nil
}

// SavePage stores page, replacing any previous copy of its URL.
func (s *PageService) SavePage(ctx context.Context, page *sigles.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ContentHash = hash(page.HTML)
	page.FetchedAt = s.now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, html, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			html = excluded.html,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, hash(page.URL), page.URL, page.HTML, page.ContentHash, page.FetchedAt.Format(time.RFC3339))
	return err
}

// DeletePagesBefore removes pages fetched before t.
func (s *PageService) DeletePagesBefore(ctx context.Context, t time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM pages WHERE fetched_at < ?
	`, t.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
