package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var _ Client = (*LiteLLMClient)(nil)

// LiteLLMClient talks to a LiteLLM proxy, which speaks the OpenAI chat
// completions protocol, through the official OpenAI SDK.
type LiteLLMClient struct {
	client openai.Client
	model  string
}

func NewLiteLLMClient(baseURL, apiKey, model string) *LiteLLMClient {
	opts := []option.RequestOption{option.WithBaseURL(baseURL)}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	return &LiteLLMClient{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Chat implements Client. The call is synchronous with no deadline of its
// own; cancellation comes from the request context, if at all.
func (c *LiteLLMClient) Chat(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(c.model),
	})
	if err != nil {
		return "", fmt.Errorf("LiteLLM API error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return completion.Choices[0].Message.Content, nil
}
