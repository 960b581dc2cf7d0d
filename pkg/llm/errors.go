package llm

// ConfigError reports an invalid or incomplete provider configuration at
// construction time. It is fatal: the process should abort rather than run
// without a working provider.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "provider config: " + e.Reason
}

// ProviderError wraps any backend call failure: transport, authentication,
// or a malformed response. A backend adapter never substitutes an empty
// string for a failed call.
type ProviderError struct {
	Backend string
	Err     error
}

func (e *ProviderError) Error() string {
	return e.Backend + " backend: " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
