package domain

// Response is the outbound envelope handlers push to the transport. When
// Err is set the transport relays a user-facing error description instead
// of Text; the session itself stays usable.
type Response struct {
	ChatID           int64
	ReplyToMessageID int
	Text             string
	Err              error
}
