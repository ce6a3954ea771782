package domain

// GuestSession is substituted when a chat request carries no session ID.
const GuestSession = "guest"

// OfflineReply is returned when the bot is disabled or unconfigured.
const OfflineReply = "Our AI assistant is currently offline. Please contact human support."

// ChatRequest is the request to send a chat message.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

// ChatResponse is the reply returned to the widget.
type ChatResponse struct {
	Reply string `json:"reply"`
}
