package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	content string
	err     error
}

func (f *fakeModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.content}},
	}, nil
}

func (f *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	return f.content, f.err
}

func TestChatModel_Generate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns model output", func(t *testing.T) {
		t.Parallel()
		c := &ChatModel{llm: &fakeModel{content: "Photosynthesis converts light into energy."}}
		got := c.Generate(ctx, "explain photosynthesis", 0.3)
		assert.Equal(t, "Photosynthesis converts light into energy.", got)
	})

	t.Run("error becomes sentinel text", func(t *testing.T) {
		t.Parallel()
		c := &ChatModel{llm: &fakeModel{err: errors.New("rate limited")}}
		got := c.Generate(ctx, "anything", 0.7)
		assert.Contains(t, got, "Error generating response:")
		assert.Contains(t, got, "rate limited")
	})

	t.Run("empty output becomes fallback line", func(t *testing.T) {
		t.Parallel()
		c := &ChatModel{llm: &fakeModel{content: "   "}}
		got := c.Generate(ctx, "anything", 0.7)
		assert.Equal(t, "No response generated.", got)
	})

	t.Run("never empty", func(t *testing.T) {
		t.Parallel()
		for _, m := range []*fakeModel{
			{content: ""},
			{err: errors.New("boom")},
			{content: "ok"},
		} {
			c := &ChatModel{llm: m}
			assert.NotEmpty(t, c.Generate(ctx, "q", 0))
		}
	})
}
