// Package goquery implements sigles.Extractor for each supported source
// using CSS selectors and ordered text heuristics over the parsed page.
package goquery

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sigles"
	"github.com/fwojciec/sigles/text"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parse parses raw HTML into a document.
func parse(raw string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, sigles.Errorf(sigles.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// flatText returns the text of the selection with every text node trimmed
// and joined by a single space. Script and style contents are skipped.
func flatText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		case html.CommentNode:
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

// squashText returns the flat text of the selection with whitespace collapsed.
func squashText(sel *goquery.Selection) string {
	return text.Squash(flatText(sel))
}

// region returns the first element matching selector, falling back to the
// body and then to the whole document.
func region(doc *goquery.Document, selector string) *goquery.Selection {
	if sel := doc.Find(selector).First(); sel.Length() > 0 {
		return sel
	}
	if body := doc.Find("body"); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// decodedHref returns the href attribute with percent-escapes decoded,
// so "/d%C3%A9finitions/" compares equal to "/définitions/".
func decodedHref(sel *goquery.Selection) (string, bool) {
	href, ok := sel.Attr("href")
	if !ok || href == "" {
		return "", false
	}
	if decoded, err := url.PathUnescape(href); err == nil {
		return decoded, true
	}
	return href, true
}

// stripTermPrefix removes a leading occurrence of term (case-insensitive)
// and the separators that follow it.
func stripTermPrefix(s, term string) string {
	term = strings.TrimSpace(term)
	n := len(term)
	if n == 0 || n > len(s) {
		return s
	}
	if n < len(s) && !utf8.RuneStart(s[n]) {
		return s
	}
	if !strings.EqualFold(s[:n], term) {
		return s
	}
	return strings.TrimLeft(s[n:], " \t-–—:·|")
}
