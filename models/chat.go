package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one conversation turn. It lives only for the duration of a request.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/places/:id/chat. The caller resends the
// full history on every turn.
type ChatRequest struct {
	Message string        `json:"message" binding:"required,min=1"`
	History []ChatMessage `json:"history" binding:"omitempty,dive"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
