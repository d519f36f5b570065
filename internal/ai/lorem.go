package ai

import (
	"context"
	"strings"

	loremgen "github.com/bozaro/golorem"
)

// LoremGenerator produces placeholder titles and summaries without
// calling any provider. Used in dev and test environments so the server
// runs without an API key.
type LoremGenerator struct {
	generator *loremgen.Lorem
}

// NewLoremGenerator creates a lorem generator
func NewLoremGenerator() *LoremGenerator {
	return &LoremGenerator{
		generator: loremgen.New(),
	}
}

// GenerateTitle implements Generator
func (g *LoremGenerator) GenerateTitle(ctx context.Context, content string) (string, error) {
	title := g.generator.Sentence(3, 8)
	return strings.TrimSuffix(title, "."), nil
}

// Summarize implements Generator
func (g *LoremGenerator) Summarize(ctx context.Context, content string) (string, error) {
	return g.generator.Paragraph(2, 4), nil
}
