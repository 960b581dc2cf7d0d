package domain

// Chat is the conversation state owned by a single Telegram chat. Messages
// are ordered chronologically; when present, the system message is always
// the first entry and there is never more than one.
type Chat struct {
	ID       int64
	Messages []ChatMessage
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const DefaultPromptName = "default"

// DefaultSystemPrompt seeds an empty prompt store and backs sessions when
// the "default" template is missing.
const DefaultSystemPrompt = "You are a helpful assistant. Keep replies within 20 words."
