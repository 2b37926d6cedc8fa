package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"tenfold/internal/catalog"
	"tenfold/internal/domain"
	"tenfold/internal/domain/models"
	"tenfold/internal/domain/repositories"
)

// fakeStore is an in-memory stand-in for the Postgres layer. It reproduces
// the storage semantics the services rely on: owner-scoped visibility,
// server-assigned timestamps, the owner cascade on user deletion and the
// set-null cascade on generation deletion.
type fakeStore struct {
	mu          sync.Mutex
	users       map[uuid.UUID]bool
	generations map[int64]*models.Generation
	flashcards  map[int64]*models.Flashcard
	errorLogs   map[int64]*models.GenerationErrorLog
	nextID      int64
	clock       time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       make(map[uuid.UUID]bool),
		generations: make(map[int64]*models.Generation),
		flashcards:  make(map[int64]*models.Flashcard),
		errorLogs:   make(map[int64]*models.GenerationErrorLog),
		clock:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// now advances a synthetic clock so consecutive statements never see the
// same timestamp, like now() across statements in separate transactions.
func (s *fakeStore) now() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

func (s *fakeStore) nextSeq() int64 {
	s.nextID++
	return s.nextID
}

type storeSnapshot struct {
	generations map[int64]*models.Generation
	flashcards  map[int64]*models.Flashcard
	errorLogs   map[int64]*models.GenerationErrorLog
	nextID      int64
}

func (s *fakeStore) snapshot() storeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := storeSnapshot{
		generations: make(map[int64]*models.Generation, len(s.generations)),
		flashcards:  make(map[int64]*models.Flashcard, len(s.flashcards)),
		errorLogs:   make(map[int64]*models.GenerationErrorLog, len(s.errorLogs)),
		nextID:      s.nextID,
	}
	for id, gen := range s.generations {
		cp := *gen
		snap.generations[id] = &cp
	}
	for id, card := range s.flashcards {
		cp := *card
		snap.flashcards[id] = &cp
	}
	for id, entry := range s.errorLogs {
		cp := *entry
		snap.errorLogs[id] = &cp
	}
	return snap
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generations = snap.generations
	s.flashcards = snap.flashcards
	s.errorLogs = snap.errorLogs
	s.nextID = snap.nextID
}

// fakeTxManager rolls the store back to its pre-transaction state when the
// function fails, matching the all-or-nothing behavior of a real transaction.
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	snap := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

type fakeGenerationRepo struct {
	store *fakeStore
}

func (r *fakeGenerationRepo) Create(ctx context.Context, ident domain.Identity, gen *models.Generation) error {
	if err := domain.AuthorizeWrite(ident, gen.OwnerID); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	gen.ID = r.store.nextSeq()
	now := r.store.now()
	gen.CreatedAt = now
	gen.UpdatedAt = now
	cp := *gen
	r.store.generations[gen.ID] = &cp
	return nil
}

func (r *fakeGenerationRepo) GetByID(ctx context.Context, ident domain.Identity, id int64) (*models.Generation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	gen, ok := r.store.generations[id]
	if !ident.Authenticated() || !ok || gen.OwnerID != ident.UserID {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("generation %d not found", id)}
	}
	cp := *gen
	return &cp, nil
}

func (r *fakeGenerationRepo) List(ctx context.Context, ident domain.Identity) ([]models.Generation, error) {
	out := []models.Generation{}
	if !ident.Authenticated() {
		return out, nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, gen := range r.store.generations {
		if gen.OwnerID == ident.UserID {
			out = append(out, *gen)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeGenerationRepo) UpdateAcceptedCounts(ctx context.Context, ident domain.Identity, id int64, acceptedUnedited, acceptedEdited *int) (*models.Generation, error) {
	if !ident.Authenticated() {
		return nil, &domain.UnauthorizedError{Message: "authentication required"}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	gen, ok := r.store.generations[id]
	if !ok || gen.OwnerID != ident.UserID {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("generation %d not found", id)}
	}
	if acceptedUnedited != nil {
		v := *acceptedUnedited
		gen.AcceptedUneditedCount = &v
	}
	if acceptedEdited != nil {
		v := *acceptedEdited
		gen.AcceptedEditedCount = &v
	}
	gen.UpdatedAt = r.store.now()
	cp := *gen
	return &cp, nil
}

func (r *fakeGenerationRepo) Delete(ctx context.Context, ident domain.Identity, id int64) error {
	if !ident.Authenticated() {
		return &domain.UnauthorizedError{Message: "authentication required"}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	gen, ok := r.store.generations[id]
	if !ok || gen.OwnerID != ident.UserID {
		return &domain.NotFoundError{Message: fmt.Sprintf("generation %d not found", id)}
	}
	delete(r.store.generations, id)
	for _, card := range r.store.flashcards {
		if card.GenerationID != nil && *card.GenerationID == id {
			card.GenerationID = nil
		}
	}
	return nil
}

type fakeFlashcardRepo struct {
	store *fakeStore
}

func (r *fakeFlashcardRepo) Create(ctx context.Context, ident domain.Identity, card *models.Flashcard) error {
	if err := domain.AuthorizeWrite(ident, card.OwnerID); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if card.GenerationID != nil {
		if _, ok := r.store.generations[*card.GenerationID]; !ok {
			return &domain.ConflictError{Message: fmt.Sprintf("generation %d does not exist", *card.GenerationID)}
		}
	}

	card.ID = r.store.nextSeq()
	now := r.store.now()
	card.CreatedAt = now
	card.UpdatedAt = now
	cp := *card
	r.store.flashcards[card.ID] = &cp
	return nil
}

func (r *fakeFlashcardRepo) GetByID(ctx context.Context, ident domain.Identity, id int64) (*models.Flashcard, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	card, ok := r.store.flashcards[id]
	if !ident.Authenticated() || !ok || card.OwnerID != ident.UserID {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("flashcard %d not found", id)}
	}
	cp := *card
	return &cp, nil
}

func (r *fakeFlashcardRepo) List(ctx context.Context, ident domain.Identity) ([]models.Flashcard, error) {
	out := []models.Flashcard{}
	if !ident.Authenticated() {
		return out, nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, card := range r.store.flashcards {
		if card.OwnerID == ident.UserID {
			out = append(out, *card)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeFlashcardRepo) ListByGeneration(ctx context.Context, ident domain.Identity, generationID int64) ([]models.Flashcard, error) {
	all, err := r.List(ctx, ident)
	if err != nil {
		return nil, err
	}
	out := []models.Flashcard{}
	for _, card := range all {
		if card.GenerationID != nil && *card.GenerationID == generationID {
			out = append(out, card)
		}
	}
	return out, nil
}

func (r *fakeFlashcardRepo) Update(ctx context.Context, ident domain.Identity, id int64, upd repositories.FlashcardUpdate) (*models.Flashcard, error) {
	if !ident.Authenticated() {
		return nil, &domain.UnauthorizedError{Message: "authentication required"}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	card, ok := r.store.flashcards[id]
	if !ok || card.OwnerID != ident.UserID {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("flashcard %d not found", id)}
	}
	if upd.Front != nil {
		card.Front = *upd.Front
	}
	if upd.Back != nil {
		card.Back = *upd.Back
	}
	card.UpdatedAt = r.store.now()
	cp := *card
	return &cp, nil
}

func (r *fakeFlashcardRepo) Delete(ctx context.Context, ident domain.Identity, id int64) error {
	if !ident.Authenticated() {
		return &domain.UnauthorizedError{Message: "authentication required"}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	card, ok := r.store.flashcards[id]
	if !ok || card.OwnerID != ident.UserID {
		return &domain.NotFoundError{Message: fmt.Sprintf("flashcard %d not found", id)}
	}
	delete(r.store.flashcards, id)
	return nil
}

type fakeErrorLogRepo struct {
	store *fakeStore
}

func (r *fakeErrorLogRepo) Create(ctx context.Context, ident domain.Identity, entry *models.GenerationErrorLog) error {
	if err := domain.AuthorizeWrite(ident, entry.OwnerID); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entry.ID = r.store.nextSeq()
	entry.CreatedAt = r.store.now()
	cp := *entry
	r.store.errorLogs[entry.ID] = &cp
	return nil
}

func (r *fakeErrorLogRepo) List(ctx context.Context, ident domain.Identity) ([]models.GenerationErrorLog, error) {
	out := []models.GenerationErrorLog{}
	if !ident.Authenticated() {
		return out, nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, entry := range r.store.errorLogs {
		if entry.OwnerID == ident.UserID {
			out = append(out, *entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeErrorLogRepo) Delete(ctx context.Context, ident domain.Identity, id int64) error {
	if !ident.Authenticated() {
		return &domain.UnauthorizedError{Message: "authentication required"}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entry, ok := r.store.errorLogs[id]
	if !ok || entry.OwnerID != ident.UserID {
		return &domain.NotFoundError{Message: fmt.Sprintf("error log %d not found", id)}
	}
	delete(r.store.errorLogs, id)
	return nil
}

type fakeIdentityRepo struct {
	store *fakeStore
}

func (r *fakeIdentityRepo) Ensure(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return &domain.UnauthorizedError{Message: "authentication required"}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.users[userID] = true
	return nil
}

func (r *fakeIdentityRepo) Delete(ctx context.Context, ident domain.Identity) error {
	if !ident.Authenticated() {
		return &domain.UnauthorizedError{Message: "authentication required"}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !r.store.users[ident.UserID] {
		return &domain.NotFoundError{Message: "user not found"}
	}
	delete(r.store.users, ident.UserID)
	for id, gen := range r.store.generations {
		if gen.OwnerID == ident.UserID {
			delete(r.store.generations, id)
		}
	}
	for id, card := range r.store.flashcards {
		if card.OwnerID == ident.UserID {
			delete(r.store.flashcards, id)
		}
	}
	for id, entry := range r.store.errorLogs {
		if entry.OwnerID == ident.UserID {
			delete(r.store.errorLogs, id)
		}
	}
	return nil
}

// testEnv wires every service onto one shared fake store so cross-entity
// behavior (cascades, generation references) can be exercised end to end.
type testEnv struct {
	store       *fakeStore
	generations *fakeGenerationRepo
	flashcards  *fakeFlashcardRepo
	errorLogs   *fakeErrorLogRepo
	identities  *fakeIdentityRepo
	txManager   *fakeTxManager
	logger      *slog.Logger
	catalog     *catalog.Registry
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	registry, err := catalog.NewRegistry()
	if err != nil {
		t.Fatalf("load model catalog: %v", err)
	}

	store := newFakeStore()
	return &testEnv{
		store:       store,
		generations: &fakeGenerationRepo{store: store},
		flashcards:  &fakeFlashcardRepo{store: store},
		errorLogs:   &fakeErrorLogRepo{store: store},
		identities:  &fakeIdentityRepo{store: store},
		txManager:   &fakeTxManager{store: store},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		catalog:     registry,
	}
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }
