package openai

//go:generate mockgen -destination=mock/mock_client.go -package=mockopenai -source=interface.go

import "context"

// Chat roles understood by the completions endpoint
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one entry of a chat prompt
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a single chat completion call
type ChatRequest struct {
	Messages  []Message
	MaxTokens int
	// JSON asks the model for a json_object response
	JSON bool
}

// Client talks to an OpenAI compatible chat completions API
type Client interface {
	// Complete returns the first choice's message content
	Complete(ctx context.Context, req *ChatRequest) (string, error)
}
