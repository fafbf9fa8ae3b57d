package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("TEST_LLM_KEY", "sk-test-123")

	path := t.TempDir() + "/config.yaml"
	data := `
llm:
  provider: openai
  base_url: https://api.groq.com/openai/v1
  key: ${TEST_LLM_KEY}
  model: llama-3.3-70b-versatile
embed_llm:
  provider: ollama
  base_url: http://localhost:11434
  model: nomic-embed-text
store:
  in_memory: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-test-123", cfg.LLM.Key)
	assert.Equal(t, "ollama", cfg.EmbedLLM.Provider)
	assert.True(t, cfg.Store.InMemory)

	// defaults fill unset fields
	assert.Equal(t, "chromem", cfg.Store.Backend)
	assert.Equal(t, "edugen_documents", cfg.Store.Collection)
	assert.Equal(t, 1000, cfg.RAG.ChunkSize)
	assert.Equal(t, 200, cfg.RAG.ChunkOverlap)
	assert.Equal(t, 5, cfg.RAG.TopK)
	assert.InDelta(t, 0.3, cfg.RAG.Temperature, 0.0001)
}

func TestLoadConfig_Missing(t *testing.T) {
	t.Parallel()
	_, err := LoadConfig("/nonexistent/config.yaml")
	assert.Error(t, err)
}
