package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ollama "github.com/ollama/ollama/api"
)

var _ Client = (*OllamaClient)(nil)

// OllamaClient produces completions from a local or remote Ollama server.
type OllamaClient struct {
	client *ollama.Client
	model  string
}

func NewOllamaClient(host, model string) (*OllamaClient, error) {
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama host %q: %w", host, err)
	}

	return &OllamaClient{
		client: ollama.NewClient(base, &http.Client{}),
		model:  model,
	}, nil
}

// Chat implements Client.
func (c *OllamaClient) Chat(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &ollama.ChatRequest{
		Model: c.model,
		Messages: []ollama.Message{
			{Role: "user", Content: prompt},
		},
		Stream: &stream,
	}

	var builder strings.Builder
	err := c.client.Chat(ctx, req, func(res ollama.ChatResponse) error {
		builder.WriteString(res.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("Ollama API error: %w", err)
	}

	return builder.String(), nil
}
