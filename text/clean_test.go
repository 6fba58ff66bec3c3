package text_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/sigles/text"
	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("returns empty for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", text.Clean(""))
	})

	t.Run("collapses whitespace and trims", func(t *testing.T) {
		t.Parallel()

		got := text.Clean("  Une   organisation\n\tnon gouvernementale.  ")
		assert.Equal(t, "Une organisation non gouvernementale.", got)
	})

	t.Run("removes tooltip tokens case-insensitively", func(t *testing.T) {
		t.Parallel()

		got := text.Clean("Infobulle Organisation INFOBULLE sans but lucratif")
		assert.Equal(t, "Organisation sans but lucratif", got)
	})

	t.Run("removes numbered informations boilerplate up to the sentence end", func(t *testing.T) {
		t.Parallel()

		got := text.Clean("Organisation internationale. 3 Informations sur ce mot. Fin")
		assert.Equal(t, "Organisation internationale. Fin", got)
	})

	t.Run("removes cross-reference and entry id artifacts", func(t *testing.T) {
		t.Parallel()

		got := text.Clean("renvoi_fleche Sigle entree_42 (voir aussi) courant")
		assert.Equal(t, "Sigle courant", got)
	})

	t.Run("removes glossary block spanning lines", func(t *testing.T) {
		t.Parallel()

		got := text.Clean("Définition. Consulter le glossaire\npour la liste des\nabréviations. Suite")
		assert.Equal(t, "Définition. Suite", got)
	})

	t.Run("drops everything from renvoi_syn", func(t *testing.T) {
		t.Parallel()

		got := text.Clean("Organisation non gouvernementale. renvoi_syn association, groupe")
		assert.Equal(t, "Organisation non gouvernementale.", got)
	})

	t.Run("removes invariance footer", func(t *testing.T) {
		t.Parallel()

		got := text.Clean("Organisation non gouvernementale. Ce sigle est invariable en nombre.")
		assert.Equal(t, "Organisation non gouvernementale.", got)
	})

	t.Run("never leaves consecutive whitespace", func(t *testing.T) {
		t.Parallel()

		multi := regexp.MustCompile(`\s\s`)
		inputs := []string{
			"a  b",
			"a \n infobulle \n b",
			"x 12 Informations ici. y",
			"début  « citation » : fin",
			"\t\t",
		}
		for _, in := range inputs {
			assert.False(t, multi.MatchString(text.Clean(in)), "input %q", in)
		}
	})
}

func TestSquash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Non Governmental Organization", text.Squash("\n Non   Governmental Organization \n"))
	assert.Equal(t, "", text.Squash("   "))
}
