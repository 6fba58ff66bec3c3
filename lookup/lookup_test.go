package lookup_test

import (
	"context"
	"errors"
	"sync"

	"github.com/fwojciec/sigles/mock"
)

const (
	usitoEntryPage = `<html><body><main>
<h1>ONG</h1><span>[ɔɛnʒe]</span><span>n. f. inv.</span>
<p>Une organisation non gouvernementale.</p>
<p>« Les ONG humanitaires »</p>
<section>ÉTYMOLOGIE 1980 de l'anglais NGO</section>
<section>ORTHOGRAPHE Ce sigle est invariable en nombre.</section>
</main></body></html>`

	usitoMissingPage = `<html><body><main><p>Aucun résultat.</p></main></body></html>`

	usitoIndexPage = `<html><body><ul>
<li><a href="/annexes/sigles/O#OMS">OMS</a> Organisation mondiale de la santé</li>
<li><a href="/annexes/sigles/O#ONG">ONG</a> Organisation non gouvernementale</li>
</ul></body></html>`

	abbreviationsPage = `<html><body><table class="tdata">
<tr><td>ONG</td><td>Organisation Non Gouvernementale</td><td>Governmental</td></tr>
<tr><td>ONG</td><td>Office National de Gestion</td><td>Business</td></tr>
</table></body></html>`

	acronymFinderPage = `<html><body><table class="result-list">
<tr><td>ONG</td><td>Organisation Non Gouvernementale (French)</td><td>Organizations</td></tr>
</table></body></html>`

	allAcronymsPage = `<html><body>
<div class="meaning">ONG <span class="category">Organizations</span> Non-Governmental Organization</div>
</body></html>`

	emptyPage = `<html><body><p>Nothing here.</p></body></html>`
)

var errUnreachable = errors.New("connection refused")

// siteFetcher serves pages by URL and records every requested URL.
// Unknown URLs return emptyPage; URLs listed in failures return an error.
func siteFetcher(pages map[string]string, failures ...string) (*mock.Fetcher, func() []string) {
	var mu sync.Mutex
	var requested []string
	failing := make(map[string]bool, len(failures))
	for _, u := range failures {
		failing[u] = true
	}

	f := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			mu.Lock()
			requested = append(requested, url)
			mu.Unlock()
			if failing[url] {
				return "", errUnreachable
			}
			if html, ok := pages[url]; ok {
				return html, nil
			}
			return emptyPage, nil
		},
		CloseFn: func() error { return nil },
	}
	return f, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), requested...)
	}
}
