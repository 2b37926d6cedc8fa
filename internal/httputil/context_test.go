package httputil

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"tenfold/internal/domain"
)

func TestIdentityRoundTrip(t *testing.T) {
	ident := domain.NewIdentity(uuid.New())
	req := WithIdentity(httptest.NewRequest("GET", "/api/flashcards", nil), ident)

	if got := IdentityFrom(req); got != ident {
		t.Errorf("got %v, want %v", got, ident)
	}
}

func TestIdentityDefaultsToAnonymous(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/flashcards", nil)

	got := IdentityFrom(req)
	if got.Authenticated() {
		t.Error("request without identity must resolve to anonymous")
	}
	if got != domain.Anonymous {
		t.Errorf("got %v, want the anonymous identity", got)
	}
}
