package assistant

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/feemjesusbr/backend/internal/analysis/message"
	"github.com/feemjesusbr/backend/internal/model/chat"
	"github.com/feemjesusbr/backend/internal/model/emotion"
	verseservice "github.com/feemjesusbr/backend/internal/service/verse"
)

// fakeGenerator scripts the remote model.
type fakeGenerator struct {
	text string
	err  error
}

func (g *fakeGenerator) Name() string { return "fake" }

func (g *fakeGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	return g.text, g.err
}

func newOfflineService(opts ...Option) *Service {
	// No providers: the verse resolver serves curated content without any
	// network call.
	verses := verseservice.NewService(nil)
	failing := &fakeGenerator{err: errors.New("provider down")}
	return NewService(failing, verses, opts...)
}

func TestRespondOfflineAnxiousScenario(t *testing.T) {
	svc := newOfflineService()

	reply := svc.Respond(context.Background(), "Estou muito ansioso com meu futuro")

	if reply.Source != chat.SourceOffline {
		t.Fatalf("expected offline source, got %s", reply.Source)
	}
	if !containsString(fallbackResponses[message.Anxiety], reply.Response) {
		t.Fatalf("response not drawn from the anxiety fallback list: %q", reply.Response)
	}
	if reply.Verse == "" || reply.Reference == "" {
		t.Fatalf("expected verse and reference, got %+v", reply)
	}
	if reply.Prayer == "" {
		t.Fatalf("expected a prayer attached to the reply")
	}
	if reply.Confidence != chat.ConfidenceHigh {
		t.Fatalf("curated category fallback should be high confidence, got %s", reply.Confidence)
	}
}

func TestRespondPrayerCategoryMembership(t *testing.T) {
	svc := newOfflineService()

	reply := svc.Respond(context.Background(), "Preciso de oração pela minha família")

	if !containsString(fallbackResponses[message.PrayerRequest], reply.Response) {
		t.Fatalf("response not drawn from the prayer fallback list: %q", reply.Response)
	}
}

func TestRespondGeneralFallbackIsMediumConfidence(t *testing.T) {
	svc := newOfflineService()

	reply := svc.Respond(context.Background(), "A reunião de amanhã mudou de horário")

	if reply.Confidence != chat.ConfidenceMedium {
		t.Fatalf("generic fallback should be medium confidence, got %s", reply.Confidence)
	}
	if reply.Source != chat.SourceOffline {
		t.Fatalf("expected offline source, got %s", reply.Source)
	}
}

func TestRespondRemoteSuccess(t *testing.T) {
	verses := verseservice.NewService(nil)
	generated := "Que a paz de Deus guarde o seu coração hoje e sempre, em toda circunstância."
	svc := NewService(&fakeGenerator{text: generated}, verses)

	reply := svc.Respond(context.Background(), "Como posso ter paz?")

	if reply.Source != "fake" {
		t.Fatalf("expected remote source, got %s", reply.Source)
	}
	if reply.Confidence != chat.ConfidenceHigh {
		t.Fatalf("remote reply should be high confidence, got %s", reply.Confidence)
	}
	if reply.Response != generated {
		t.Fatalf("unexpected response: %q", reply.Response)
	}
	if reply.Verse == "" || reply.Prayer == "" {
		t.Fatalf("remote replies still carry verse and prayer, got %+v", reply)
	}
}

func TestRespondShortRemoteOutputFallsBack(t *testing.T) {
	verses := verseservice.NewService(nil)
	svc := NewService(&fakeGenerator{text: "Amém."}, verses)

	reply := svc.Respond(context.Background(), "Me fale sobre fé")

	if reply.Source != chat.SourceOffline {
		t.Fatalf("degenerate remote output must fall back to offline, got %s", reply.Source)
	}
}

func TestRespondNilGeneratorStaysOffline(t *testing.T) {
	verses := verseservice.NewService(nil)
	svc := NewService(nil, verses)

	reply := svc.Respond(context.Background(), "Olá, tudo bem?")

	if reply.Source != chat.SourceOffline {
		t.Fatalf("expected offline source without a generator, got %s", reply.Source)
	}
	if reply.Response == "" {
		t.Fatalf("expected a curated response")
	}
}

func TestRespondDeterministicWithSeededSource(t *testing.T) {
	a := newOfflineService(WithRandSource(rand.NewSource(7)))
	b := newOfflineService(WithRandSource(rand.NewSource(7)))

	msg := "A reunião de amanhã mudou de horário"
	first := a.Respond(context.Background(), msg)
	second := b.Respond(context.Background(), msg)

	if first.Response != second.Response {
		t.Fatalf("expected identical fallback selection, got %q and %q", first.Response, second.Response)
	}
}

func TestRespondAttachesCategoryVerse(t *testing.T) {
	svc := newOfflineService()

	reply := svc.Respond(context.Background(), "Estou muito ansioso com meu futuro")

	want := emotion.Lookup(emotion.Ansioso).Verse
	if reply.Reference != want.Reference {
		t.Fatalf("expected anxiety category verse %s, got %s", want.Reference, reply.Reference)
	}
}

func TestPrayReturnsPrayerText(t *testing.T) {
	svc := newOfflineService()

	reply := svc.Pray(context.Background(), "Ore pela minha saúde")

	if reply.Response == "" {
		t.Fatalf("expected prayer text")
	}
	if !containsString(fallbackResponses[message.PrayerRequest], reply.Response) {
		t.Fatalf("offline prayer not drawn from the prayer list: %q", reply.Response)
	}
	if reply.Verse == "" || reply.Reference == "" {
		t.Fatalf("expected verse attached to prayer reply")
	}
}

func containsString(pool []string, s string) bool {
	for _, candidate := range pool {
		if strings.TrimSpace(candidate) == strings.TrimSpace(s) {
			return true
		}
	}
	return false
}
