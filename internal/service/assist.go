package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"chronoflow/internal/ai"
	"chronoflow/internal/config"
	"chronoflow/internal/domain"
	"chronoflow/internal/domain/services"
)

// ErrAssistFailed is returned when the generator fails for any reason.
// The underlying provider error is logged, never propagated to callers.
var ErrAssistFailed = errors.New("assistant request failed")

// assistService implements the AssistService interface
type assistService struct {
	generator ai.Generator
	logger    *slog.Logger
}

// NewAssistService creates a new assist service
func NewAssistService(generator ai.Generator, logger *slog.Logger) services.AssistService {
	return &assistService{
		generator: generator,
		logger:    logger,
	}
}

// SuggestTitle generates a short title for the given note content
func (s *assistService) SuggestTitle(ctx context.Context, content string) (string, error) {
	if err := validateAssistContent(content); err != nil {
		return "", err
	}

	title, err := s.generator.GenerateTitle(ctx, content)
	if err != nil {
		s.logger.Error("title generation failed", "error", err)
		return "", ErrAssistFailed
	}

	return title, nil
}

// SummarizeNote produces a concise summary of the given note content
func (s *assistService) SummarizeNote(ctx context.Context, content string) (string, error) {
	if err := validateAssistContent(content); err != nil {
		return "", err
	}

	summary, err := s.generator.Summarize(ctx, content)
	if err != nil {
		s.logger.Error("summarization failed", "error", err)
		return "", ErrAssistFailed
	}

	return summary, nil
}

func validateAssistContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content is empty", domain.ErrValidation)
	}
	if len(content) > config.MaxAssistContentLength {
		return fmt.Errorf("%w: content too long", domain.ErrValidation)
	}
	return nil
}
