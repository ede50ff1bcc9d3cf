package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Turn is one entry of the ordered conversation sent upstream.
type Turn struct {
	Role    string
	Content string
}

// CompletionClient wraps the external chat-completion service. One
// blocking round trip per call; failures propagate to the caller, which
// owns the user-facing fallback text.
type CompletionClient struct {
	client      *openai.Client
	model       string
	temperature float64
}

func NewCompletionClient(baseURL, apiKey, model string) *CompletionClient {
	options := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	}

	client := openai.NewClient(options...)
	return &CompletionClient{client: &client, model: model, temperature: 0.7}
}

// Complete sends the system prompt followed by the turns in order and
// returns the first choice's message content.
func (cc *CompletionClient) Complete(ctx context.Context, systemPrompt string, turns []Turn, maxTokens int64) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns)+1)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	for _, turn := range turns {
		switch turn.Role {
		case "assistant":
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}

	resp, err := cc.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       cc.model,
		Temperature: openai.Float(cc.temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion service returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
