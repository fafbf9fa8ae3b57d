package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LLMConfig describes one model endpoint. Provider is "openai" for any
// OpenAI-compatible API (Groq, OpenRouter, Gemini compat mode) or
// "ollama" for a local server.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	BaseURL  string `yaml:"base_url"`
	Key      string `yaml:"key"`
	Model    string `yaml:"model"`
}

// StoreConfig selects the vector store backend. Backend is "chromem"
// (embedded, persistent on Path unless InMemory) or "postgres"
// (pgvector via bun).
type StoreConfig struct {
	Backend    string `yaml:"backend"`
	Path       string `yaml:"path"`
	Collection string `yaml:"collection"`
	InMemory   bool   `yaml:"in_memory"`
	DSN        string `yaml:"dsn"`
	Password   string `yaml:"password"`
	Debug      bool   `yaml:"debug"`
}

// RAGConfig holds chunking and retrieval parameters.
type RAGConfig struct {
	ChunkSize    int     `yaml:"chunk_size"`
	ChunkOverlap int     `yaml:"chunk_overlap"`
	TopK         int     `yaml:"top_k"`
	Temperature  float64 `yaml:"temperature"`
}

type Config struct {
	LLM      LLMConfig   `yaml:"llm"`
	EmbedLLM LLMConfig   `yaml:"embed_llm"`
	Store    StoreConfig `yaml:"store"`
	RAG      RAGConfig   `yaml:"rag"`
}

const (
	defaultChunkSize    = 1000
	defaultChunkOverlap = 200
	defaultTopK         = 5
	defaultTemperature  = 0.3
	defaultCollection   = "edugen_documents"
	defaultStorePath    = "./data/vectorstore"
)

// LoadConfig reads a YAML config file. ${VAR} references in key fields
// are expanded from the environment so secrets stay out of the file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.LLM.Key = os.ExpandEnv(cfg.LLM.Key)
	cfg.EmbedLLM.Key = os.ExpandEnv(cfg.EmbedLLM.Key)
	cfg.Store.DSN = os.ExpandEnv(cfg.Store.DSN)
	cfg.Store.Password = os.ExpandEnv(cfg.Store.Password)
	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills zero-valued fields with the standard settings.
func (c *Config) ApplyDefaults() {
	if c.RAG.ChunkSize == 0 {
		c.RAG.ChunkSize = defaultChunkSize
	}
	if c.RAG.ChunkOverlap == 0 {
		c.RAG.ChunkOverlap = defaultChunkOverlap
	}
	if c.RAG.TopK == 0 {
		c.RAG.TopK = defaultTopK
	}
	if c.RAG.Temperature == 0 {
		c.RAG.Temperature = defaultTemperature
	}
	if c.Store.Backend == "" {
		c.Store.Backend = "chromem"
	}
	if c.Store.Collection == "" {
		c.Store.Collection = defaultCollection
	}
	if c.Store.Path == "" {
		c.Store.Path = defaultStorePath
	}
}
