package goquery_test

import (
	"testing"

	"github.com/fwojciec/sigles"
	"github.com/fwojciec/sigles/goquery"
	"github.com/fwojciec/sigles/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceExtractor(source sigles.Source) *mock.Extractor {
	return &mock.Extractor{SourceFn: func() sigles.Source { return source }}
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns registered extractor for source", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry(&mock.SourceDetector{})
		registry.Register(sourceExtractor(sigles.SourceAbbreviations))

		got := registry.Get(sigles.SourceAbbreviations)

		require.NotNil(t, got)
		assert.Equal(t, sigles.SourceAbbreviations, got.Source())
	})

	t.Run("returns nil for unregistered source", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry(&mock.SourceDetector{})

		assert.Nil(t, registry.Get(sigles.SourceUsito))
	})

	t.Run("register replaces existing extractor", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry(&mock.SourceDetector{})
		first := sourceExtractor(sigles.SourceUsito)
		second := sourceExtractor(sigles.SourceUsito)
		registry.Register(first)
		registry.Register(second)

		assert.Same(t, second, registry.Get(sigles.SourceUsito))
	})
}

func TestRegistry_GetForHTML(t *testing.T) {
	t.Parallel()

	t.Run("returns extractor for detected source", func(t *testing.T) {
		t.Parallel()

		detector := &mock.SourceDetector{
			DetectFn: func(html string) sigles.Source { return sigles.SourceAllAcronyms },
		}
		registry := goquery.NewRegistry(detector)
		registry.Register(sourceExtractor(sigles.SourceAllAcronyms))

		got := registry.GetForHTML("<html></html>")

		require.NotNil(t, got)
		assert.Equal(t, sigles.SourceAllAcronyms, got.Source())
	})

	t.Run("returns nil when source is unknown", func(t *testing.T) {
		t.Parallel()

		detector := &mock.SourceDetector{
			DetectFn: func(html string) sigles.Source { return "" },
		}
		registry := goquery.NewRegistry(detector)
		registry.Register(sourceExtractor(sigles.SourceUsito))

		assert.Nil(t, registry.GetForHTML("<html></html>"))
	})
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	registry := goquery.NewRegistry(&mock.SourceDetector{})
	registry.Register(sourceExtractor(sigles.SourceAllAcronyms))
	registry.Register(sourceExtractor(sigles.SourceUsito))
	registry.Register(sourceExtractor(sigles.SourceAcronymFinder))

	assert.Equal(t, []sigles.Source{
		sigles.SourceUsito,
		sigles.SourceAcronymFinder,
		sigles.SourceAllAcronyms,
	}, registry.List())
}

func TestNewDefaultRegistry(t *testing.T) {
	t.Parallel()

	registry := goquery.NewDefaultRegistry()

	assert.Equal(t, sigles.Sources, registry.List())
	for _, s := range sigles.Sources {
		got := registry.Get(s)
		require.NotNil(t, got, s)
		assert.Equal(t, s, got.Source())
	}
}
