package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"chronoflow/internal/config"
	"chronoflow/internal/domain"
)

func TestSuggestTitle(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		generator fakeGenerator
		want      string
		wantErr   error
	}{
		{
			name:      "returns generated title",
			content:   "meeting notes from tuesday",
			generator: fakeGenerator{title: "Tuesday Meeting Notes"},
			want:      "Tuesday Meeting Notes",
		},
		{
			name:    "rejects empty content",
			content: "   ",
			wantErr: domain.ErrValidation,
		},
		{
			name:    "rejects oversized content",
			content: strings.Repeat("a", config.MaxAssistContentLength+1),
			wantErr: domain.ErrValidation,
		},
		{
			name:      "provider failure is generic",
			content:   "something",
			generator: fakeGenerator{failWith: errors.New("rate limited: key sk-123")},
			wantErr:   ErrAssistFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAssistService(&tt.generator, discardLogger())

			got, err := svc.SuggestTitle(context.Background(), tt.content)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SuggestTitle() error = %v, want %v", err, tt.wantErr)
				}
				if err != nil && strings.Contains(err.Error(), "sk-123") {
					t.Errorf("SuggestTitle() error leaks provider detail: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SuggestTitle() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SuggestTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarizeNote(t *testing.T) {
	svc := NewAssistService(&fakeGenerator{summary: "short version"}, discardLogger())

	got, err := svc.SummarizeNote(context.Background(), "a very long note")
	if err != nil {
		t.Fatalf("SummarizeNote() unexpected error: %v", err)
	}
	if got != "short version" {
		t.Errorf("SummarizeNote() = %q", got)
	}

	failing := NewAssistService(&fakeGenerator{failWith: errors.New("boom")}, discardLogger())
	if _, err := failing.SummarizeNote(context.Background(), "x"); !errors.Is(err, ErrAssistFailed) {
		t.Errorf("SummarizeNote() error = %v, want ErrAssistFailed", err)
	}
}
