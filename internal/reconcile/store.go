// Package reconcile keeps a client-held copy of the board responsive
// without waiting for server round-trips. Every mutation inserts a
// provisional entity under a reserved temporary id, fires the endpoint
// call asynchronously, and later either substitutes the confirmed
// entity or rolls the provisional one back. A pending table tracks
// each temporary id so it is resolved exactly once; a full resync
// discards anything still unresolved.
package reconcile

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"chronoflow/internal/domain/models"
	"chronoflow/internal/domain/services"
)

// LocalIDPrefix marks temporary identifiers. Server ids are UUIDs and
// never start with this prefix, so the two id spaces cannot collide.
const LocalIDPrefix = "local-"

// ErrAlreadyResolved is returned when a resolution arrives for a
// temporary id that was already resolved or discarded by a resync.
var ErrAlreadyResolved = errors.New("temporary id already resolved")

// Endpoints is the server surface the store mutates through. The HTTP
// client implements it; tests substitute in-memory fakes.
type Endpoints interface {
	AddTimeline(ctx context.Context) (*models.TimelineHydrated, error)
	AddNote(ctx context.Context, req *services.AddNoteRequest) (*models.NoteHydrated, error)
	SaveDraft(ctx context.Context, req *services.SaveDraftRequest) (string, error)
}

// pendingKind distinguishes what a temporary id provisionally created.
type pendingKind int

const (
	pendingTimeline pendingKind = iota + 1
	pendingNote
	pendingDraft
)

// IsLocalID reports whether id is a temporary client-side identifier.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}

// Store holds the local collections and the pending-resolution table.
// All mutations of the collections are serialized by the mutex; the
// endpoint calls themselves run outside it.
type Store struct {
	endpoints Endpoints
	onError   func(message string)

	// overridable in tests
	now       func() time.Time
	newTempID func() string

	mu        sync.Mutex
	timelines []models.TimelineHydrated
	notes     []models.NoteHydrated
	pending   map[string]pendingKind
}

// NewStore creates a store over the given endpoints. onError receives
// user-facing messages for rolled-back mutations; it may be nil.
func NewStore(endpoints Endpoints, onError func(message string)) *Store {
	if onError == nil {
		onError = func(string) {}
	}
	return &Store{
		endpoints: endpoints,
		onError:   onError,
		now:       time.Now,
		newTempID: func() string { return LocalIDPrefix + uuid.NewString() },
		pending:   make(map[string]pendingKind),
	}
}

// Pending is the handle for one in-flight mutation.
type Pending struct {
	TempID string

	done    chan struct{}
	err     error
	draftID string
}

// Wait blocks until the mutation is resolved and returns its error.
func (p *Pending) Wait() error {
	<-p.done
	return p.err
}

// DraftID returns the confirmed draft id after a successful SaveDraft.
// Valid only after Wait returns nil.
func (p *Pending) DraftID() string {
	return p.draftID
}

// Timelines returns a copy of the local timeline collection, sorted by
// number.
func (s *Store) Timelines() []models.TimelineHydrated {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.TimelineHydrated, len(s.timelines))
	copy(out, s.timelines)
	return out
}

// Notes returns a copy of the local note collection.
func (s *Store) Notes() []models.NoteHydrated {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.NoteHydrated, len(s.notes))
	copy(out, s.notes)
	return out
}

// PendingCount returns the number of unresolved mutations.
func (s *Store) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Resync replaces both local collections with a fresh authoritative
// snapshot. Unresolved optimistic entries are discarded; their late
// resolutions become no-ops.
func (s *Store) Resync(snapshot *models.BoardSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timelines = make([]models.TimelineHydrated, len(snapshot.Timelines))
	copy(s.timelines, snapshot.Timelines)
	s.notes = make([]models.NoteHydrated, len(snapshot.Notes))
	copy(s.notes, snapshot.Notes)
	s.pending = make(map[string]pendingKind)
}

// AddTimeline optimistically appends a timeline with the next local
// number and confirms it against the server.
func (s *Store) AddTimeline(ctx context.Context) *Pending {
	s.mu.Lock()
	tempID := s.newTempID()
	provisional := models.TimelineHydrated{
		ID:        tempID,
		Number:    s.nextNumberLocked(),
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	s.timelines = append(s.timelines, provisional)
	s.sortTimelinesLocked()
	s.pending[tempID] = pendingTimeline
	s.mu.Unlock()

	p := &Pending{TempID: tempID, done: make(chan struct{})}
	go func() {
		defer close(p.done)
		confirmed, err := s.endpoints.AddTimeline(ctx)
		p.err = s.resolveTimeline(tempID, confirmed, err)
	}()
	return p
}

// AddNote optimistically appends a published note and confirms it
// against the server. A promotion (DraftID set) follows the same path;
// the confirmed entity carries the draft's real id.
func (s *Store) AddNote(ctx context.Context, req *services.AddNoteRequest) *Pending {
	s.mu.Lock()
	tempID := s.newTempID()
	provisional := models.NoteHydrated{
		ID:        tempID,
		LineID:    req.LineID,
		Title:     req.Title,
		Content:   req.Content,
		Status:    models.NoteStatusPublished,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	s.notes = append(s.notes, provisional)
	s.pending[tempID] = pendingNote
	s.mu.Unlock()

	p := &Pending{TempID: tempID, done: make(chan struct{})}
	go func() {
		defer close(p.done)
		confirmed, err := s.endpoints.AddNote(ctx, req)
		p.err = s.resolveNote(tempID, confirmed, err)
	}()
	return p
}

// SaveDraft persists a draft without touching the visible note list;
// drafts are not rendered in the published view. The pending table
// still tracks the call so a resync discards its resolution.
func (s *Store) SaveDraft(ctx context.Context, req *services.SaveDraftRequest) *Pending {
	s.mu.Lock()
	tempID := s.newTempID()
	s.pending[tempID] = pendingDraft
	s.mu.Unlock()

	p := &Pending{TempID: tempID, done: make(chan struct{})}
	go func() {
		defer close(p.done)
		draftID, err := s.endpoints.SaveDraft(ctx, req)
		p.draftID = draftID
		p.err = s.resolveDraft(tempID, err)
	}()
	return p
}

// resolveTimeline settles one timeline mutation: substitution on
// success, rollback on failure. Exactly-once: a second resolution for
// the same temp id reports ErrAlreadyResolved and changes nothing.
func (s *Store) resolveTimeline(tempID string, confirmed *models.TimelineHydrated, callErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending[tempID] != pendingTimeline {
		return ErrAlreadyResolved
	}
	delete(s.pending, tempID)

	if callErr != nil {
		s.timelines = removeTimeline(s.timelines, tempID)
		s.onError(callErr.Error())
		return callErr
	}

	for i := range s.timelines {
		if s.timelines[i].ID == tempID {
			s.timelines[i] = *confirmed
			break
		}
	}
	s.sortTimelinesLocked()
	return nil
}

// resolveNote settles one note mutation.
func (s *Store) resolveNote(tempID string, confirmed *models.NoteHydrated, callErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending[tempID] != pendingNote {
		return ErrAlreadyResolved
	}
	delete(s.pending, tempID)

	if callErr != nil {
		s.notes = removeNote(s.notes, tempID)
		s.onError(callErr.Error())
		return callErr
	}

	for i := range s.notes {
		if s.notes[i].ID == tempID {
			s.notes[i] = *confirmed
			break
		}
	}
	return nil
}

// resolveDraft settles one draft save. There is no provisional entity
// to roll back; only the pending entry is retired.
func (s *Store) resolveDraft(tempID string, callErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending[tempID] != pendingDraft {
		return ErrAlreadyResolved
	}
	delete(s.pending, tempID)

	if callErr != nil {
		s.onError(callErr.Error())
		return callErr
	}
	return nil
}

// nextNumberLocked computes the provisional lane number from local
// state: current max + 1, or 1 for an empty board.
func (s *Store) nextNumberLocked() int {
	next := 1
	for i := range s.timelines {
		if s.timelines[i].Number >= next {
			next = s.timelines[i].Number + 1
		}
	}
	return next
}

func (s *Store) sortTimelinesLocked() {
	sort.SliceStable(s.timelines, func(i, j int) bool {
		return s.timelines[i].Number < s.timelines[j].Number
	})
}

func removeTimeline(timelines []models.TimelineHydrated, id string) []models.TimelineHydrated {
	out := timelines[:0]
	for i := range timelines {
		if timelines[i].ID != id {
			out = append(out, timelines[i])
		}
	}
	return out
}

func removeNote(notes []models.NoteHydrated, id string) []models.NoteHydrated {
	out := notes[:0]
	for i := range notes {
		if notes[i].ID != id {
			out = append(out, notes[i])
		}
	}
	return out
}
