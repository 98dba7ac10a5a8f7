package models

import "strings"

// DefaultModel is used when a chat request does not name a model.
const DefaultModel = "liteLLM"

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint. The page replays the
// full history on every request; nothing is stored server-side.
type ChatRequest struct {
	Messages  []ChatMessage `json:"messages"`
	ModelName string        `json:"model_name"`
}

// Prompt flattens the message history into the newline-joined
// "role: content" string handed to the LLM client. An empty history
// flattens to the empty string.
func (r *ChatRequest) Prompt() string {
	lines := make([]string, len(r.Messages))
	for i, m := range r.Messages {
		lines[i] = m.Role + ": " + m.Content
	}
	return strings.Join(lines, "\n")
}

// ChatResponse is the success envelope for the chat endpoint.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse carries the error text for server-side failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DetailResponse carries the message for client errors such as an
// unsupported model name.
type DetailResponse struct {
	Detail string `json:"detail"`
}
