package verse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	versemodel "github.com/feemjesusbr/backend/internal/model/verse"
)

func TestBibleAPIAdaptsPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"reference": "João 3:16",
			"verses": [{"book_name": "João", "chapter": 3, "verse": 16, "text": "Porque Deus amou o mundo..."}],
			"text": "Porque Deus amou o mundo..."
		}`))
	}))
	defer server.Close()

	provider := NewBibleAPI(server.URL, "almeida", time.Second)
	outcome := provider.Random(context.Background())

	if outcome.Kind != versemodel.OutcomeSuccess {
		t.Fatalf("expected success, got %s (err=%v)", outcome.Kind, outcome.Err)
	}
	if outcome.Verse.Reference != "João 3:16" {
		t.Fatalf("unexpected reference: %s", outcome.Verse.Reference)
	}
	if outcome.Verse.Book != "João" || outcome.Verse.Chapter != 3 || outcome.Verse.Verse != 16 {
		t.Fatalf("unexpected verse fields: %+v", outcome.Verse)
	}
}

func TestBibleAPISoftFailureOnEmptyPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reference": "", "verses": []}`))
	}))
	defer server.Close()

	provider := NewBibleAPI(server.URL, "almeida", time.Second)
	outcome := provider.Random(context.Background())

	if outcome.Kind != versemodel.OutcomeSoftFailure {
		t.Fatalf("expected soft failure, got %s", outcome.Kind)
	}
}

func TestBibleAPIHardFailureOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewBibleAPI(server.URL, "almeida", time.Second)
	outcome := provider.Random(context.Background())

	if outcome.Kind != versemodel.OutcomeHardFailure {
		t.Fatalf("expected hard failure, got %s", outcome.Kind)
	}
}

func TestBibleAPITimesOutSlowServer(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	provider := NewBibleAPI(server.URL, "almeida", 50*time.Millisecond)

	start := time.Now()
	outcome := provider.Random(context.Background())
	elapsed := time.Since(start)

	if outcome.Kind != versemodel.OutcomeHardFailure {
		t.Fatalf("expected hard failure on timeout, got %s", outcome.Kind)
	}
	if elapsed > time.Second {
		t.Fatalf("timeout did not bound the request, took %s", elapsed)
	}
}

func TestABibliaDigitalAdaptsPayload(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"book": {"name": "Salmos"},
			"chapter": 23,
			"number": 1,
			"text": "O Senhor é o meu pastor; nada me faltará."
		}`))
	}))
	defer server.Close()

	provider := NewABibliaDigital(server.URL, "test-token", time.Second)
	outcome := provider.Random(context.Background())

	if outcome.Kind != versemodel.OutcomeSuccess {
		t.Fatalf("expected success, got %s (err=%v)", outcome.Kind, outcome.Err)
	}
	if outcome.Verse.Reference != "Salmos 23:1" {
		t.Fatalf("unexpected reference: %s", outcome.Verse.Reference)
	}
	if gotAuth != "Bearer test-token" {
		t.Fatalf("expected bearer token header, got %q", gotAuth)
	}
}

func TestABibliaDigitalSoftFailureOnMissingText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"book": {"name": "Salmos"}, "chapter": 23, "number": 1, "text": "  "}`))
	}))
	defer server.Close()

	provider := NewABibliaDigital(server.URL, "test-token", time.Second)
	outcome := provider.Random(context.Background())

	if outcome.Kind != versemodel.OutcomeSoftFailure {
		t.Fatalf("expected soft failure, got %s", outcome.Kind)
	}
}
