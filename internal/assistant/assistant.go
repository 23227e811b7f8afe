// Package assistant wraps the LLM used for route chat.
package assistant

import (
	"context"
	"fmt"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/application"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Client answers route questions through the Anthropic messages API.
type Client struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewClient creates an assistant client.
func NewClient(apiKey, model string) *Client {
	return &Client{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
	}
}

// Answer forwards the conversation with the route context as system prompt
// and returns the assistant's reply.
func (c *Client) Answer(ctx context.Context, system string, messages []application.ChatMessage) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
	}
	for _, msg := range messages {
		block := anthropic.NewTextBlock(msg.Content)
		if msg.Role == "assistant" {
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(block))
		} else {
			params.Messages = append(params.Messages, anthropic.NewUserMessage(block))
		}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("messages request failed: %w", err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("assistant returned no text content")
}
