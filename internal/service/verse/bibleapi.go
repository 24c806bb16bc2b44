package verse

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	versemodel "github.com/feemjesusbr/backend/internal/model/verse"
)

// BibleAPIProvider adapts bible-api.com, which serves public-domain
// translations (Almeida for Portuguese) without an API key.
type BibleAPIProvider struct {
	baseURL     string
	translation string
	client      *http.Client
	timeout     time.Duration
}

// NewBibleAPI builds the bible-api.com adapter.
func NewBibleAPI(baseURL, translation string, timeout time.Duration) *BibleAPIProvider {
	return &BibleAPIProvider{
		baseURL:     strings.TrimRight(baseURL, "/"),
		translation: translation,
		client:      &http.Client{},
		timeout:     timeout,
	}
}

// Name identifies the provider in attempt logs and reply sources.
func (p *BibleAPIProvider) Name() string { return "bible-api" }

type bibleAPIPayload struct {
	Reference string `json:"reference"`
	Verses    []struct {
		BookName string `json:"book_name"`
		Chapter  int    `json:"chapter"`
		Verse    int    `json:"verse"`
		Text     string `json:"text"`
	} `json:"verses"`
	Text string `json:"text"`
}

// Random fetches one random verse in the configured translation.
func (p *BibleAPIProvider) Random(ctx context.Context) versemodel.Outcome {
	url := fmt.Sprintf("%s/?random=verse&translation=%s", p.baseURL, p.translation)

	var payload bibleAPIPayload
	if err := fetchJSON(ctx, p.client, p.timeout, url, nil, &payload); err != nil {
		return versemodel.HardFailure(err)
	}

	if len(payload.Verses) == 0 {
		return versemodel.SoftFailure()
	}

	first := payload.Verses[0]
	text := strings.TrimSpace(first.Text)
	if text == "" {
		text = strings.TrimSpace(payload.Text)
	}
	if text == "" || first.BookName == "" || first.Chapter <= 0 || first.Verse <= 0 {
		return versemodel.SoftFailure()
	}

	return versemodel.Success(versemodel.New(text, first.BookName, first.Chapter, first.Verse))
}
