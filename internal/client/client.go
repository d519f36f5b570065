// Package client is the HTTP consumer of the mutation endpoints. It
// decodes the structured result envelopes and satisfies
// reconcile.Endpoints, so the optimistic store can run against a live
// server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"chronoflow/internal/api"
	"chronoflow/internal/domain/models"
	"chronoflow/internal/domain/services"
)

// Client talks to a ChronoFlow server
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL (e.g. "http://localhost:8080")
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// AddTimeline creates a new timeline lane
func (c *Client) AddTimeline(ctx context.Context) (*models.TimelineHydrated, error) {
	var result api.AddTimelineResult
	if err := c.post(ctx, "/api/timelines", nil, &result); err != nil {
		return nil, err
	}
	if !result.Success || result.NewTimeline == nil {
		return nil, envelopeError(result.Error, nil, "failed to add timeline")
	}
	return result.NewTimeline, nil
}

// AddNote publishes a note (or promotes a draft when DraftID is set)
func (c *Client) AddNote(ctx context.Context, req *services.AddNoteRequest) (*models.NoteHydrated, error) {
	var result api.AddNoteResult
	if err := c.post(ctx, "/api/notes", req, &result); err != nil {
		return nil, err
	}
	if !result.Success || result.NewNote == nil {
		return nil, envelopeError(result.Error, result.Errors, "failed to add note")
	}
	return result.NewNote, nil
}

// SaveDraft creates or updates a draft and returns its id
func (c *Client) SaveDraft(ctx context.Context, req *services.SaveDraftRequest) (string, error) {
	var result api.SaveDraftResult
	if err := c.post(ctx, "/api/drafts", req, &result); err != nil {
		return "", err
	}
	if !result.Success {
		return "", envelopeError(result.Error, result.Errors, "failed to save draft")
	}
	return result.DraftID, nil
}

// SuggestTitle asks the server's assistant for a title suggestion
func (c *Client) SuggestTitle(ctx context.Context, content string) (string, error) {
	var result api.TitleResult
	if err := c.post(ctx, "/api/assist/title", api.AssistRequest{Content: content}, &result); err != nil {
		return "", err
	}
	if result.Error != "" {
		return "", errors.New(result.Error)
	}
	return result.Title, nil
}

// Board fetches the authoritative board snapshot, used to resync the
// optimistic store.
func (c *Client) Board(ctx context.Context) (*models.BoardSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/board", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get board: unexpected status %d", resp.StatusCode)
	}

	var snapshot models.BoardSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	return &snapshot, nil
}

// post sends a JSON body and decodes the result envelope regardless of
// status code; the envelope, not the status, carries the outcome.
func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}

// envelopeError builds an error from a failure envelope
func envelopeError(message string, fields map[string][]string, fallback string) error {
	if message != "" {
		return errors.New(message)
	}
	if len(fields) > 0 {
		return fmt.Errorf("%s: invalid fields %v", fallback, fieldNames(fields))
	}
	return errors.New(fallback)
}

func fieldNames(fields map[string][]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	return names
}
