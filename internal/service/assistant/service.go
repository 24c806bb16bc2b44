package assistant

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/feemjesusbr/backend/internal/analysis/message"
	"github.com/feemjesusbr/backend/internal/model/chat"
	"github.com/feemjesusbr/backend/internal/model/emotion"
	versemodel "github.com/feemjesusbr/backend/internal/model/verse"
	verseservice "github.com/feemjesusbr/backend/internal/service/verse"
)

// minResponseLength is the shortest remote answer accepted as usable, in
// runes. Anything shorter counts as a soft failure and falls through to the
// curated responses.
const minResponseLength = 20

const assistantSystemPrompt = `Você é um assistente cristão do aplicativo Fé em Jesus BR. ` +
	`Responda em português do Brasil, com tom pastoral, acolhedor e bíblico. ` +
	`Seja breve (no máximo três parágrafos curtos), cite a Bíblia quando fizer sentido ` +
	`e nunca dê conselhos médicos, jurídicos ou financeiros.`

const prayerSystemPrompt = `Você é um assistente cristão do aplicativo Fé em Jesus BR. ` +
	`Escreva uma oração curta e pessoal em português do Brasil a partir do pedido do usuário. ` +
	`Use tom reverente e acolhedor, no máximo dois parágrafos, terminando com "Amém".`

// TextGenerator is the remote text provider contract. A nil generator means
// the service runs fully offline.
type TextGenerator interface {
	Name() string
	Generate(ctx context.Context, system, query string) (string, error)
}

// Service answers user messages with pastoral text, always pairing the reply
// with a verse and a prayer. Like the verse resolver, it never fails: the
// worst case is an entirely curated offline reply.
type Service struct {
	llm    TextGenerator
	verses *verseservice.Service

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option customizes a Service, mainly for tests.
type Option func(*Service)

// WithRandSource replaces the randomness source so fallback selection
// becomes deterministic.
func WithRandSource(src rand.Source) Option {
	return func(s *Service) { s.rng = rand.New(src) }
}

// NewService builds the assistant. llm may be nil when AI credentials are
// not configured.
func NewService(llm TextGenerator, verses *verseservice.Service, opts ...Option) *Service {
	s := &Service{
		llm:    llm,
		verses: verses,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Respond produces the reply for one free-text message.
func (s *Service) Respond(ctx context.Context, userMessage string) chat.Reply {
	intent := message.Classify(userMessage)

	reply := s.generate(ctx, assistantSystemPrompt, userMessage, intent)

	verse := s.verseFor(ctx, intent)
	reply.Verse = verse.Text
	reply.Reference = verse.Reference
	reply.Prayer = s.prayerFor(intent)
	return reply
}

// Pray produces a personal prayer for the user's request. The reply text is
// itself a prayer, so no extra prayer string is attached.
func (s *Service) Pray(ctx context.Context, userMessage string) chat.Reply {
	intent := message.PrayerRequest

	reply := s.generate(ctx, prayerSystemPrompt, userMessage, intent)

	verse := s.verseFor(ctx, message.Classify(userMessage))
	reply.Verse = verse.Text
	reply.Reference = verse.Reference
	return reply
}

// generate tries the remote provider first and degrades to the curated list
// for the intent. Remote errors are logged, never propagated.
func (s *Service) generate(ctx context.Context, system, userMessage string, intent message.Intent) chat.Reply {
	if s.llm != nil {
		text, err := s.llm.Generate(ctx, system, userMessage)
		switch {
		case err != nil:
			log.Printf("[assistant] provider=%s intent=%s attempt failed: %v", s.llm.Name(), intent, err)
		case utf8.RuneCountInString(strings.TrimSpace(text)) < minResponseLength:
			// Degenerate output is treated like a malformed payload.
			log.Printf("[assistant] provider=%s intent=%s response too short, using fallback", s.llm.Name(), intent)
		default:
			return chat.Reply{
				Response:   strings.TrimSpace(text),
				Confidence: chat.ConfidenceHigh,
				Source:     s.llm.Name(),
			}
		}
	}

	confidence := chat.ConfidenceHigh
	if intent == message.General {
		confidence = chat.ConfidenceMedium
	}

	return chat.Reply{
		Response:   s.pickResponse(intent),
		Confidence: confidence,
		Source:     chat.SourceOffline,
	}
}

func (s *Service) verseFor(ctx context.Context, intent message.Intent) versemodel.Verse {
	if category, ok := intentCategory[intent]; ok {
		return emotion.Lookup(category).Verse
	}
	return s.verses.Random(ctx)
}

func (s *Service) prayerFor(intent message.Intent) string {
	if category, ok := intentCategory[intent]; ok {
		return emotion.Lookup(category).Prayer
	}
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return emotion.Prayers[s.rng.Intn(len(emotion.Prayers))]
}

func (s *Service) pickResponse(intent message.Intent) string {
	pool, ok := fallbackResponses[intent]
	if !ok || len(pool) == 0 {
		pool = fallbackResponses[message.General]
	}
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return pool[s.rng.Intn(len(pool))]
}
