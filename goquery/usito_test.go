package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/sigles"
	"github.com/fwojciec/sigles/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usitoONG = `<!DOCTYPE html>
<html lang="fr">
<head><title>ONG - Usito</title><script>var definitions = "n. m. Ne pas lire ce script.";</script></head>
<body>
<header><nav><a href="/">Accueil</a></nav></header>
<main>
	<h1>ONG</h1>
	<span class="prononciation">[ɔɛnʒe]</span>
	<span class="categorie">n. f. inv.</span>
	<p class="definition">Une organisation non gouvernementale.</p>
	<p class="exemple">« Les ONG humanitaires »</p>
	<p>→ <a href="/d%C3%A9finitions/OSBL">OSBL</a></p>
	<section>ÉTYMOLOGIE 1980 de l'anglais NGO</section>
	<section>ORTHOGRAPHE Ce sigle est invariable en nombre.</section>
</main>
<footer>Usito, Université de Sherbrooke</footer>
</body>
</html>`

func TestUsitoExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts entry fields", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewUsitoExtractor()

		got, err := e.Extract(usitoONG, "ong")

		require.NoError(t, err)
		require.Len(t, got, 1)
		rec := got[0]
		assert.Equal(t, sigles.SourceUsito, rec.Source)
		assert.Equal(t, "ONG", rec.Term)
		assert.Equal(t, "Une organisation non gouvernementale.", rec.Definition)
		assert.Equal(t, "[ɔɛnʒe]", rec.Pronunciation)
		assert.Equal(t, "Les ONG humanitaires", rec.Example)
		assert.True(t, strings.HasPrefix(rec.Etymology, "1980 de l'anglais NGO"), rec.Etymology)
		require.NotNil(t, rec.Grammar)
		assert.Equal(t, sigles.Grammar{
			Type:   sigles.TypeNoun,
			Gender: sigles.GenderFeminine,
			Number: sigles.NumberInvariable,
		}, *rec.Grammar)
		assert.Equal(t, []string{"OSBL"}, rec.Synonyms)
	})

	t.Run("strips leading numbering before the definition", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><h1>ACEF</h1><p>n. m. 1. Association coopérative d'économie familiale.</p></main></body></html>`
		e := goquery.NewUsitoExtractor()

		got, err := e.Extract(html, "ACEF")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Association coopérative d'économie familiale.", got[0].Definition)
		require.NotNil(t, got[0].Grammar)
		assert.Equal(t, sigles.GenderMasculine, got[0].Grammar.Gender)
		assert.Empty(t, got[0].Grammar.Number)
	})

	t.Run("removes trailing boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p>inv. Organisation internationale de normalisation. Le Centre d'analyse des textes tient cette liste.</p></main></body></html>`
		e := goquery.NewUsitoExtractor()

		got, err := e.Extract(html, "ISO")

		require.NoError(t, err)
		assert.Equal(t, "Organisation internationale de normalisation.", got[0].Definition)
	})

	t.Run("cleans widget artifacts from the definition", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p>n. f. Infobulle Société de transport de Montréal. renvoi_syn STM</p></main></body></html>`
		e := goquery.NewUsitoExtractor()

		got, err := e.Extract(html, "STM")

		require.NoError(t, err)
		assert.Equal(t, "Société de transport de Montréal.", got[0].Definition)
	})

	t.Run("reports invariance without a part of speech", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p>invariable Quelque chose de suffisamment long ici.</p></main></body></html>`
		e := goquery.NewUsitoExtractor()

		got, err := e.Extract(html, "QQC")

		require.NoError(t, err)
		require.NotNil(t, got[0].Grammar)
		assert.Empty(t, got[0].Grammar.Type)
		assert.Equal(t, sigles.NumberInvariable, got[0].Grammar.Number)
	})

	t.Run("ignores years outside the etymology section", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
<p>n. f. inv. Une organisation non gouvernementale.</p>
<section>ÉTYMOLOGIE De l'anglais non-governmental organization.</section>
<section>ORTHOGRAPHE Ce sigle est invariable en nombre.</section>
</main><footer>© 2024 Université de Sherbrooke</footer></body></html>`
		e := goquery.NewUsitoExtractor()

		got, err := e.Extract(html, "ONG")

		require.NoError(t, err)
		assert.Empty(t, got[0].Etymology)
	})

	t.Run("keeps the etymology when the page has no orthography section", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
<p>n. f. inv. Une organisation non gouvernementale.</p>
<section>ÉTYMOLOGIE 1980 de l'anglais NGO</section>
</main></body></html>`
		e := goquery.NewUsitoExtractor()

		got, err := e.Extract(html, "ONG")

		require.NoError(t, err)
		assert.Equal(t, "1980 de l'anglais NGO", got[0].Etymology)
	})

	t.Run("returns not found for short definitions", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p>n. m. Trop court.</p></main></body></html>`
		e := goquery.NewUsitoExtractor()

		_, err := e.Extract(html, "TC")

		assert.Equal(t, sigles.ENOTFOUND, sigles.ErrorCode(err))
	})

	t.Run("returns not found without part of speech or invariance marker", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p>Aucun résultat pour ZZZQQQ dans le dictionnaire.</p></main></body></html>`
		e := goquery.NewUsitoExtractor()

		_, err := e.Extract(html, "ZZZQQQ")

		assert.Equal(t, sigles.ENOTFOUND, sigles.ErrorCode(err))
	})
}

func TestUsitoExtractor_Synonyms(t *testing.T) {
	t.Parallel()

	var links []string
	links = append(links, `<p>→ <a href="/d%C3%A9finitions/ONG">ONG</a></p>`)
	links = append(links, `<p>→ <a href="/d%C3%A9finitions/OSBL">OSBL</a></p>`)
	links = append(links, `<p>→ <a href="/d%C3%A9finitions/osbl">osbl</a></p>`)
	links = append(links, `<p><a href="/d%C3%A9finitions/SANS">SANS</a> sans renvoi</p>`)
	for i := 1; i <= 6; i++ {
		links = append(links, fmt.Sprintf(`<p>Synonyme : <a href="/d%%C3%%A9finitions/SYN%d">SYN%d</a></p>`, i, i))
	}
	html := `<html><body><main><p>n. f. inv. Une organisation non gouvernementale.</p>` +
		strings.Join(links, "\n") + `</main></body></html>`

	e := goquery.NewUsitoExtractor()

	got, err := e.Extract(html, "ONG")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"OSBL", "SYN1", "SYN2", "SYN3", "SYN4"}, got[0].Synonyms)
	assert.LessOrEqual(t, len(got[0].Synonyms), sigles.MaxSynonyms)
}

func TestUsitoExtractor_Source(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sigles.SourceUsito, goquery.NewUsitoExtractor().Source())
}
