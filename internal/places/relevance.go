package places

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// RelevancePredicate judges whether a discovered place really matches the
// user's query. Implementations may be non-deterministic; callers treat a
// failed judgement as "reject this one place" and keep going.
type RelevancePredicate interface {
	Matches(ctx context.Context, name, category, query string) (bool, error)
}

// LLMPredicate asks a language model for a yes/no relevance judgement.
type LLMPredicate struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewLLMPredicate creates an LLM-backed relevance predicate.
func NewLLMPredicate(apiKey, model string) *LLMPredicate {
	return &LLMPredicate{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
	}
}

// Matches asks the model whether the place matches the query. The prompt
// constrains the answer to a single word so the response can be checked
// literally.
func (p *LLMPredicate) Matches(ctx context.Context, name, category, query string) (bool, error) {
	prompt := fmt.Sprintf(
		`The place is named %q and has the category %q. Is this place a %s? Answer only "yes" or "no".`,
		name, category, query)

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       p.model,
		MaxTokens:   5,
		Temperature: anthropic.Float(0),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return false, fmt.Errorf("relevance judgement failed: %w", err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return strings.Contains(strings.ToLower(block.Text), "yes"), nil
		}
	}
	return false, nil
}
