package llm

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenRouter builds an adapter for the OpenRouter aggregator. The
// endpoint is fixed; the model name selects the upstream model using the
// router's own naming convention.
func NewOpenRouter(cfg Config) (*openAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigError{Reason: "openrouter: API key is required"}
	}
	cfg.BaseURL = openRouterBaseURL
	return newOpenAICompatible("openrouter", cfg)
}
