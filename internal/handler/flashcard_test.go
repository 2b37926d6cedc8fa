package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"tenfold/internal/domain"
	"tenfold/internal/domain/models"
	"tenfold/internal/domain/services"
)

// stubFlashcardService returns canned results so the handler's routing,
// decoding and error mapping can be exercised without storage.
type stubFlashcardService struct {
	card  *models.Flashcard
	cards []models.Flashcard
	err   error
}

func (s *stubFlashcardService) CreateFlashcard(ctx context.Context, ident domain.Identity, req *services.CreateFlashcardRequest) (*models.Flashcard, error) {
	return s.card, s.err
}

func (s *stubFlashcardService) CreateFlashcards(ctx context.Context, ident domain.Identity, req *services.CreateFlashcardBatchRequest) ([]models.Flashcard, error) {
	return s.cards, s.err
}

func (s *stubFlashcardService) GetFlashcard(ctx context.Context, ident domain.Identity, id int64) (*models.Flashcard, error) {
	return s.card, s.err
}

func (s *stubFlashcardService) ListFlashcards(ctx context.Context, ident domain.Identity) ([]models.Flashcard, error) {
	return s.cards, s.err
}

func (s *stubFlashcardService) ListFlashcardsByGeneration(ctx context.Context, ident domain.Identity, generationID int64) ([]models.Flashcard, error) {
	return s.cards, s.err
}

func (s *stubFlashcardService) UpdateFlashcard(ctx context.Context, ident domain.Identity, id int64, req *services.UpdateFlashcardRequest) (*models.Flashcard, error) {
	return s.card, s.err
}

func (s *stubFlashcardService) DeleteFlashcard(ctx context.Context, ident domain.Identity, id int64) error {
	return s.err
}

func newFlashcardMux(svc services.FlashcardService) *http.ServeMux {
	h := NewFlashcardHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/flashcards", h.CreateFlashcard)
	mux.HandleFunc("POST /api/flashcards/batch", h.CreateFlashcardBatch)
	mux.HandleFunc("GET /api/flashcards", h.ListFlashcards)
	mux.HandleFunc("GET /api/flashcards/{id}", h.GetFlashcard)
	mux.HandleFunc("PATCH /api/flashcards/{id}", h.UpdateFlashcard)
	mux.HandleFunc("DELETE /api/flashcards/{id}", h.DeleteFlashcard)
	return mux
}

func TestCreateFlashcardHandler(t *testing.T) {
	card := &models.Flashcard{ID: 1, Front: "q", Back: "a", Source: models.SourceManual, OwnerID: uuid.New()}
	mux := newFlashcardMux(&stubFlashcardService{card: card})

	req := httptest.NewRequest(http.MethodPost, "/api/flashcards",
		strings.NewReader(`{"front":"q","back":"a","source":"manual"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var got models.Flashcard
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if got.ID != card.ID || got.Front != card.Front {
		t.Errorf("body = %+v", got)
	}
}

func TestCreateFlashcardHandlerBadJSON(t *testing.T) {
	mux := newFlashcardMux(&stubFlashcardService{})

	req := httptest.NewRequest(http.MethodPost, "/api/flashcards", strings.NewReader(`{"front":`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestFlashcardHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &domain.ValidationError{Message: "front too long"}, http.StatusBadRequest},
		{"unauthorized", &domain.UnauthorizedError{Message: "authentication required"}, http.StatusUnauthorized},
		{"forbidden", &domain.ForbiddenError{Message: "not the owner"}, http.StatusForbidden},
		{"not found", &domain.NotFoundError{Message: "flashcard 1 not found"}, http.StatusNotFound},
		{"conflict", &domain.ConflictError{Message: "generation 9 does not exist"}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newFlashcardMux(&stubFlashcardService{err: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/api/flashcards",
				strings.NewReader(`{"front":"q","back":"a","source":"manual"}`))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestGetFlashcardHandlerInvalidID(t *testing.T) {
	mux := newFlashcardMux(&stubFlashcardService{})

	for _, path := range []string{"/api/flashcards/abc", "/api/flashcards/0", "/api/flashcards/-4"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, rec.Code)
		}
	}
}

func TestListFlashcardsHandlerGenerationFilter(t *testing.T) {
	mux := newFlashcardMux(&stubFlashcardService{cards: []models.Flashcard{}})

	req := httptest.NewRequest(http.MethodGet, "/api/flashcards?generation_id=oops", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad filter: status = %d, want 400", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/flashcards?generation_id=3", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid filter: status = %d, want 200", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("empty listing = %q, want []", body)
	}
}

func TestDeleteFlashcardHandler(t *testing.T) {
	mux := newFlashcardMux(&stubFlashcardService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/flashcards/7", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}
