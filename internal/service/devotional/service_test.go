package devotional

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/feemjesusbr/backend/internal/model/emotion"
	verseservice "github.com/feemjesusbr/backend/internal/service/verse"
)

type fakeGenerator struct {
	text string
	err  error
}

func (g *fakeGenerator) Name() string { return "fake" }

func (g *fakeGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	return g.text, g.err
}

func TestDevotionalOfflineTemplate(t *testing.T) {
	svc := NewService(nil, verseservice.NewService(nil))

	got := svc.Devotional(context.Background(), "ansioso", 5)

	entry := emotion.Lookup(emotion.Ansioso)
	if got.Title != "Devocional: Ansiedade" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
	if got.Content != entry.Devotional {
		t.Fatalf("expected curated devotional content, got %q", got.Content)
	}
	if got.Verse != entry.Verse.Text || got.Reference != entry.Verse.Reference {
		t.Fatalf("expected category verse, got %q (%s)", got.Verse, got.Reference)
	}
	if got.Prayer == "" {
		t.Fatalf("expected a prayer")
	}
}

func TestDevotionalUnknownEmotionDefaults(t *testing.T) {
	svc := NewService(nil, verseservice.NewService(nil))

	got := svc.Devotional(context.Background(), "sentimento-inexistente", 0)

	want := emotion.Lookup(emotion.Ansioso)
	if got.Reference != want.Verse.Reference {
		t.Fatalf("expected default category verse %s, got %s", want.Verse.Reference, got.Reference)
	}
}

func TestDevotionalRemoteFailureFallsBackToTemplate(t *testing.T) {
	svc := NewService(&fakeGenerator{err: errors.New("provider down")}, verseservice.NewService(nil))

	got := svc.Devotional(context.Background(), "triste", 0)

	entry := emotion.Lookup(emotion.Triste)
	if got.Content != entry.Devotional {
		t.Fatalf("expected curated content on remote failure, got %q", got.Content)
	}
}

func TestDevotionalRemoteSuccessReplacesContent(t *testing.T) {
	generated := strings.Repeat("Deus cuida de você em cada detalhe da sua caminhada. ", 3)
	svc := NewService(&fakeGenerator{text: generated}, verseservice.NewService(nil))

	got := svc.Devotional(context.Background(), "triste", 0)

	if got.Content != strings.TrimSpace(generated) {
		t.Fatalf("expected remote content, got %q", got.Content)
	}
	// Verse and prayer remain curated even when the text is remote.
	entry := emotion.Lookup(emotion.Triste)
	if got.Reference != entry.Verse.Reference {
		t.Fatalf("expected category verse, got %s", got.Reference)
	}
}

func TestCertificateOmitsMissingOptionalFields(t *testing.T) {
	svc := NewService(nil, verseservice.NewService(nil))

	got := svc.Certificate(context.Background(), "Maria Silva", 0, "")

	if !strings.Contains(got.Content, "Maria Silva") {
		t.Fatalf("certificate content missing the contributor name: %q", got.Content)
	}
	if strings.Contains(got.Content, "R$") {
		t.Fatalf("certificate must omit the donation sentence when no amount was given: %q", got.Content)
	}
	if strings.Contains(got.Content, "mensagem") {
		t.Fatalf("certificate must omit the message sentence when none was given: %q", got.Content)
	}
	if got.Verse == "" || got.VerseReference == "" {
		t.Fatalf("expected verse on the certificate")
	}
	if !strings.Contains(got.Prayer, "Maria Silva") {
		t.Fatalf("template prayer should mention the contributor: %q", got.Prayer)
	}
}

func TestCertificateIncludesOptionalFields(t *testing.T) {
	svc := NewService(nil, verseservice.NewService(nil))

	got := svc.Certificate(context.Background(), "João Souza", 50, "Deus abençoe o ministério")

	if !strings.Contains(got.Content, "R$ 50.00") {
		t.Fatalf("expected donation amount in content: %q", got.Content)
	}
	if !strings.Contains(got.Content, "Deus abençoe o ministério") {
		t.Fatalf("expected special message in content: %q", got.Content)
	}
}

func TestCertificateRemotePrayer(t *testing.T) {
	generated := "Senhor, obrigado pela vida de João e por sua generosidade para com o Teu reino. Amém."
	svc := NewService(&fakeGenerator{text: generated}, verseservice.NewService(nil))

	got := svc.Certificate(context.Background(), "João", 0, "")

	if got.Prayer != generated {
		t.Fatalf("expected remote prayer, got %q", got.Prayer)
	}
}
