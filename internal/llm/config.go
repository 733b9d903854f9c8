// Package llm provides centralized model configuration and client abstractions
// for the embedding capability backing semantic scoring.
package llm

// Provider represents an embedding provider.
type Provider string

// Provider constants define supported providers.
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for the embedding client.
type Config struct {
	Provider       Provider
	EmbeddingModel string
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return &Config{
		Provider:       ProviderGemini,
		EmbeddingModel: "text-embedding-004",
	}
}
