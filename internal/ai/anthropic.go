package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	titlePrompt = `You are an expert at generating concise and descriptive titles for notes.

Generate a title that accurately reflects the content of the note. The title should be no more than 10 words. Respond with the title only.

Note Content: %s`

	summaryPrompt = `Summarize the following note content in a concise manner:

%s`
)

// AnthropicGenerator generates titles and summaries with the Anthropic
// Messages API.
type AnthropicGenerator struct {
	client anthropic.Client
	model  string
}

// NewAnthropicGenerator creates a generator backed by the given model
func NewAnthropicGenerator(apiKey, model string) *AnthropicGenerator {
	return &AnthropicGenerator{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// GenerateTitle implements Generator
func (g *AnthropicGenerator) GenerateTitle(ctx context.Context, content string) (string, error) {
	text, err := g.complete(ctx, fmt.Sprintf(titlePrompt, content), 64)
	if err != nil {
		return "", fmt.Errorf("generate title: %w", err)
	}
	return text, nil
}

// Summarize implements Generator
func (g *AnthropicGenerator) Summarize(ctx context.Context, content string) (string, error) {
	text, err := g.complete(ctx, fmt.Sprintf(summaryPrompt, content), 512)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return text, nil
}

func (g *AnthropicGenerator) complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("empty completion from model %s", g.model)
	}
	return text, nil
}
