package parser

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePPTX(t *testing.T, slides map[string]string) string {
	t.Helper()

	path := t.TempDir() + "/deck.pptx"
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, text := range slides {
		entry, err := w.Create("ppt/slides/" + name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(fmt.Sprintf("<p:sp><a:t>%s</a:t></p:sp>", text)))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return path
}

func TestExtractPPTX_SlideOrder(t *testing.T) {
	t.Parallel()

	// slide10 must come after slide2 even though it sorts first
	// lexicographically.
	path := writePPTX(t, map[string]string{
		"slide10.xml": "Conclusion",
		"slide1.xml":  "Introduction",
		"slide2.xml":  "Method",
	})

	text, err := ExtractFile(path)
	require.NoError(t, err)

	intro := strings.Index(text, "[slide1.xml]")
	method := strings.Index(text, "[slide2.xml]")
	conclusion := strings.Index(text, "[slide10.xml]")
	require.NotEqual(t, -1, intro)
	require.NotEqual(t, -1, method)
	require.NotEqual(t, -1, conclusion)
	assert.Less(t, intro, method)
	assert.Less(t, method, conclusion)
}

func TestExtractPPTX_SkipsNonSlideEntries(t *testing.T) {
	t.Parallel()

	path := t.TempDir() + "/deck.pptx"
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range map[string]string{
		"ppt/slides/slide1.xml":             "<a:t>Only slide</a:t>",
		"ppt/slides/_rels/slide1.xml.rels":  "<Relationships/>",
		"ppt/slideLayouts/slideLayout1.xml": "<a:t>layout text</a:t>",
		"ppt/notesSlides/notesSlide1.xml":   "<a:t>speaker notes</a:t>",
	} {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	text, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Only slide")
	assert.NotContains(t, text, "layout text")
	assert.NotContains(t, text, "speaker notes")
}

func TestSlideNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		num  int
		ok   bool
	}{
		{"ppt/slides/slide1.xml", 1, true},
		{"ppt/slides/slide42.xml", 42, true},
		{"ppt/slides/_rels/slide1.xml.rels", 0, false},
		{"ppt/slideLayouts/slideLayout1.xml", 0, false},
		{"ppt/slides/slide.xml", 0, false},
	}
	for _, tc := range cases {
		num, ok := slideNumber(tc.name)
		assert.Equal(t, tc.ok, ok, tc.name)
		assert.Equal(t, tc.num, num, tc.name)
	}
}
