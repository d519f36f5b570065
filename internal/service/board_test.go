package service

import (
	"context"
	"testing"

	"chronoflow/internal/domain/models"
	"chronoflow/internal/domain/services"
)

func TestBoardSnapshot_CachesUntilInvalidated(t *testing.T) {
	timelineRepo := &fakeTimelineRepo{}
	noteRepo := newFakeNoteRepo()
	board := NewBoardService(timelineRepo, noteRepo, discardLogger())

	if _, err := board.Snapshot(context.Background()); err != nil {
		t.Fatalf("Snapshot() unexpected error: %v", err)
	}
	if _, err := board.Snapshot(context.Background()); err != nil {
		t.Fatalf("Snapshot() unexpected error: %v", err)
	}
	if timelineRepo.listCalls != 1 || noteRepo.listCalls != 1 {
		t.Errorf("Snapshot() hit storage %d/%d times, want 1/1 (cached)",
			timelineRepo.listCalls, noteRepo.listCalls)
	}

	board.Invalidate()
	if _, err := board.Snapshot(context.Background()); err != nil {
		t.Fatalf("Snapshot() unexpected error: %v", err)
	}
	if timelineRepo.listCalls != 2 {
		t.Errorf("Snapshot() after Invalidate() hit storage %d times, want 2", timelineRepo.listCalls)
	}
}

func TestBoardSnapshot_ExcludesDrafts(t *testing.T) {
	timelineRepo := &fakeTimelineRepo{}
	noteRepo := newFakeNoteRepo()
	board := NewBoardService(timelineRepo, noteRepo, discardLogger())

	timelineSvc := NewTimelineService(timelineRepo, board, discardLogger())
	noteSvc := NewNoteService(noteRepo, nil, board, discardLogger())

	timeline, err := timelineSvc.AddTimeline(context.Background())
	if err != nil {
		t.Fatalf("AddTimeline() unexpected error: %v", err)
	}
	if _, err := noteSvc.AddNote(context.Background(), &services.AddNoteRequest{
		Title: "Published", Content: "x", LineID: timeline.ID,
	}); err != nil {
		t.Fatalf("AddNote() unexpected error: %v", err)
	}
	if _, err := noteSvc.SaveDraft(context.Background(), &services.SaveDraftRequest{
		LineID: timeline.ID,
	}); err != nil {
		t.Fatalf("SaveDraft() unexpected error: %v", err)
	}

	snapshot, err := board.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() unexpected error: %v", err)
	}
	if len(snapshot.Notes) != 1 {
		t.Fatalf("Snapshot() has %d notes, want 1 (drafts excluded)", len(snapshot.Notes))
	}
	if snapshot.Notes[0].Status != models.NoteStatusPublished {
		t.Errorf("Snapshot() note status = %q, want published", snapshot.Notes[0].Status)
	}
	if snapshot.Notes[0].CreatedAt == "" {
		t.Error("Snapshot() note has empty hydrated timestamp")
	}
}
