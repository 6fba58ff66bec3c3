// Package fs archives fetched source pages on disk.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/sigles"
)

// URLToPath converts a source page URL to a relative file path under its
// host. The path is stored decoded.
// Example: https://usito.usherbrooke.ca/d%C3%A9finitions/ONG → usito.usherbrooke.ca/définitions/ONG.html
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", sigles.Errorf(sigles.EINVALID, "invalid page url %q", rawURL)
	}
	if u.Hostname() == "" {
		return "", sigles.Errorf(sigles.EINVALID, "page url %q has no host", rawURL)
	}

	p := u.Path
	switch {
	case p == "" || p == "/":
		p = "index.html"
	case strings.HasSuffix(p, "/"):
		p = path.Clean("/"+p) + "/index.html"
	default:
		p = path.Clean("/" + p)
		if !strings.HasSuffix(p, ".html") {
			p += ".html"
		}
	}

	return path.Join(u.Hostname(), strings.TrimPrefix(p, "/")), nil
}

// FormatPage prefixes the page HTML with a comment naming its source.
func FormatPage(page *sigles.Page) string {
	var b strings.Builder
	b.WriteString("<!--\n")
	b.WriteString("source: ")
	b.WriteString(page.URL)
	b.WriteString("\nfetched: ")
	b.WriteString(page.FetchedAt.UTC().Format(time.RFC3339))
	b.WriteString("\n-->\n")
	b.WriteString(page.HTML)
	return b.String()
}

// Writer writes pages as HTML files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// SavePage writes page to disk, replacing any earlier copy. The file is
// written next to its destination and renamed into place.
func (w *Writer) SavePage(ctx context.Context, page *sigles.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(page.URL)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".page-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(FormatPage(page)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fullPath)
}
