package verse

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/feemjesusbr/backend/internal/analysis/message"
	"github.com/feemjesusbr/backend/internal/model/emotion"
	versemodel "github.com/feemjesusbr/backend/internal/model/verse"
)

// Service resolves verses from remote providers with a curated offline
// fallback. It never fails: every mode returns a valid Verse even when all
// providers are down.
type Service struct {
	providers []Provider
	now       func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand

	// Single-slot daily cache. Concurrent misses may each recompute and
	// overwrite the slot; the write is idempotent for a given date.
	cacheMu    sync.Mutex
	cacheDate  string
	cacheVerse versemodel.Verse
}

// Option customizes a Service, mainly for tests.
type Option func(*Service)

// WithRandSource replaces the randomness source so fallback selection
// becomes deterministic.
func WithRandSource(src rand.Source) Option {
	return func(s *Service) { s.rng = rand.New(src) }
}

// WithClock replaces the wall clock used by the daily mode.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService builds a resolver over the given providers, tried in order.
func NewService(providers []Provider, opts ...Option) *Service {
	s := &Service{
		providers: providers,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Daily returns the verse of the current calendar day. It is served entirely
// from the curated list, indexed by day of year, and memoized per date; no
// network call is ever made.
func (s *Service) Daily() versemodel.Verse {
	today := s.now()
	key := today.Format("2006-01-02")

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	if s.cacheDate == key {
		return s.cacheVerse
	}

	idx := (today.YearDay() - 1) % len(versemodel.Fallback)
	s.cacheDate = key
	s.cacheVerse = versemodel.Fallback[idx]
	return s.cacheVerse
}

// Random tries each remote provider in priority order and returns the first
// usable verse. When every attempt fails it falls back to a random curated
// verse, so the caller always gets content.
func (s *Service) Random(ctx context.Context) versemodel.Verse {
	for _, provider := range s.providers {
		start := time.Now()
		outcome := provider.Random(ctx)
		attempt := versemodel.Attempt{
			Provider: provider.Name(),
			Elapsed:  time.Since(start),
			Outcome:  outcome.Kind,
			Err:      outcome.Err,
		}

		if outcome.Kind == versemodel.OutcomeSuccess {
			log.Printf("[verse] provider=%s outcome=%s elapsed=%s", attempt.Provider, attempt.Outcome, attempt.Elapsed)
			return outcome.Verse
		}
		log.Printf("[verse] provider=%s outcome=%s elapsed=%s err=%v", attempt.Provider, attempt.Outcome, attempt.Elapsed, attempt.Err)
	}

	return s.fallbackRandom()
}

// ForEmotion returns the curated verse for an emotion label. Unknown labels
// resolve to the default category; remote providers are never consulted.
func (s *Service) ForEmotion(raw string) versemodel.Verse {
	return emotion.Lookup(emotion.Category(message.Normalize(raw))).Verse
}

func (s *Service) fallbackRandom() versemodel.Verse {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return versemodel.Fallback[s.rng.Intn(len(versemodel.Fallback))]
}

// Pick returns a random curated verse without touching any provider. The
// assistant uses it when it needs a verse but must stay offline.
func (s *Service) Pick() versemodel.Verse {
	return s.fallbackRandom()
}
