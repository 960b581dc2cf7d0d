package domain

// GenerationSettings tunes a single completion request. Zero values mean
// "use the backend's own default": MaxTokens 0 leaves the limit to the
// backend, which is what the chat path wants.
type GenerationSettings struct {
	Temperature float32
	MaxTokens   int
}
