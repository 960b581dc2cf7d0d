package llm

// DefaultLocalBaseURL is where vLLM-style self-hosted inference servers
// listen out of the box.
const DefaultLocalBaseURL = "http://localhost:8000/v1"

// NewLocal builds an adapter for a self-hosted OpenAI-compatible server.
// A missing endpoint falls back to the loopback default instead of failing;
// local servers usually ignore the API key, so an empty one is accepted.
func NewLocal(cfg Config) (*openAIProvider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultLocalBaseURL
	}
	return newOpenAICompatible("local", cfg)
}
