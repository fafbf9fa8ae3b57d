package generator

import (
	"context"
	"testing"
	"unicode/utf8"

	"edugen/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotes_Generate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns markdown with fences stripped", func(t *testing.T) {
		t.Parallel()
		gen := &scriptedGenerator{responses: []string{"```markdown\n# Photosynthesis\n\n**Key term**: chlorophyll\n```"}}
		notes, err := NewNotes(gen).Generate(ctx, "Photosynthesis converts light into energy.", "", models.DefaultNoteSettings())
		require.NoError(t, err)
		assert.Equal(t, "# Photosynthesis\n\n**Key term**: chlorophyll", notes)
	})

	t.Run("style instruction reaches the prompt", func(t *testing.T) {
		t.Parallel()
		gen := &scriptedGenerator{responses: []string{"- point"}}
		settings := models.NoteSettings{Style: models.NoteStyleBulletPoints}
		_, err := NewNotes(gen).Generate(ctx, "", "photosynthesis", settings)
		require.NoError(t, err)
		require.Len(t, gen.prompts, 1)
		assert.Contains(t, gen.prompts[0], "bullet point format")
		assert.Contains(t, gen.prompts[0], "Note Style: Bullet Points")
	})

	t.Run("include examples toggles the prompt", func(t *testing.T) {
		t.Parallel()
		gen := &scriptedGenerator{responses: []string{"notes", "notes"}}
		n := NewNotes(gen)

		with := models.NoteSettings{Style: models.NoteStyleDetailed, IncludeExamples: true}
		_, err := n.Generate(ctx, "Photosynthesis converts light into energy.", "", with)
		require.NoError(t, err)

		without := models.NoteSettings{Style: models.NoteStyleDetailed}
		_, err = n.Generate(ctx, "Photosynthesis converts light into energy.", "", without)
		require.NoError(t, err)

		require.Len(t, gen.prompts, 2)
		assert.Contains(t, gen.prompts[0], "Include concrete examples")
		assert.NotContains(t, gen.prompts[1], "Include concrete examples")
	})

	t.Run("invalid style rejected", func(t *testing.T) {
		t.Parallel()
		gen := &scriptedGenerator{}
		_, err := NewNotes(gen).Generate(ctx, "text", "", models.NoteSettings{Style: "Interpretive Dance"})
		require.Error(t, err)
		assert.Empty(t, gen.prompts)
	})

	t.Run("no input rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewNotes(&scriptedGenerator{}).Generate(ctx, "", "", models.DefaultNoteSettings())
		require.ErrorIs(t, err, ErrNoInput)
	})
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()
	html, err := RenderHTML("# Title\n\n**bold** term")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))

	t.Run("backs up to a rune boundary", func(t *testing.T) {
		t.Parallel()
		// "né" is 3 bytes; a budget of 2 lands inside the é.
		got := truncate("né", 2)
		assert.Equal(t, "n", got)
		assert.True(t, utf8.ValidString(got))

		got = truncate("日本語", 4)
		assert.Equal(t, "日", got)
		assert.True(t, utf8.ValidString(got))
	})
}
