package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cardResponse = `[
  {"front": "What is photosynthesis?", "back": "The process converting light into chemical energy."},
  {"front": "What absorbs light in plants?", "back": "Chlorophyll, the green pigment in leaves."}
]`

func TestFlashcards_Generate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sourceText := "Photosynthesis converts light into energy. Plants use chlorophyll."

	t.Run("parses valid cards", func(t *testing.T) {
		t.Parallel()
		gen := &scriptedGenerator{responses: []string{cardResponse}}
		cards, err := NewFlashcards(gen).Generate(ctx, sourceText, "", 5)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		for _, c := range cards {
			assert.NotEmpty(t, c.Front)
			assert.NotEmpty(t, c.Back)
		}
	})

	t.Run("malformed output yields empty slice, not error", func(t *testing.T) {
		t.Parallel()
		gen := &scriptedGenerator{responses: []string{"{not json at all"}}
		cards, err := NewFlashcards(gen).Generate(ctx, sourceText, "", 5)
		require.NoError(t, err)
		assert.Empty(t, cards)
	})

	t.Run("regex fallback extracts inline pairs", func(t *testing.T) {
		t.Parallel()
		// Broken array (trailing comma) but extractable pairs.
		broken := `[
  {"front": "What is photosynthesis?", "back": "Conversion of light into energy."},
  {"front": "What is chlorophyll?", "back": "The pigment that absorbs light."},
]x`
		gen := &scriptedGenerator{responses: []string{broken}}
		cards, err := NewFlashcards(gen).Generate(ctx, sourceText, "", 5)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "What is photosynthesis?", cards[0].Front)
	})

	t.Run("regex fallback extracts Q/A lines", func(t *testing.T) {
		t.Parallel()
		freeform := "Here you go:\nQ: What is photosynthesis?\nA: Converting light into energy.\nQ: Where does it happen?\nA: In the chloroplasts."
		gen := &scriptedGenerator{responses: []string{freeform}}
		cards, err := NewFlashcards(gen).Generate(ctx, sourceText, "", 5)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "Where does it happen?", cards[1].Front)
	})

	t.Run("out-of-bounds cards are dropped", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("x", 600)
		mixed := `[
  {"front": "Ok?", "back": "No"},
  {"front": "What is a valid card?", "back": "This one, both sides are sane."},
  {"front": "Too long back?", "back": "` + long + `"}
]`
		gen := &scriptedGenerator{responses: []string{mixed}}
		cards, err := NewFlashcards(gen).Generate(ctx, sourceText, "", 5)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "What is a valid card?", cards[0].Front)
	})

	t.Run("count is a cap", func(t *testing.T) {
		t.Parallel()
		gen := &scriptedGenerator{responses: []string{cardResponse}}
		cards, err := NewFlashcards(gen).Generate(ctx, sourceText, "", 1)
		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})

	t.Run("no input rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewFlashcards(&scriptedGenerator{}).Generate(ctx, "", "", 5)
		require.ErrorIs(t, err, ErrNoInput)
	})
}
