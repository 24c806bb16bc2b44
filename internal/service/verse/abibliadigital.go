package verse

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	versemodel "github.com/feemjesusbr/backend/internal/model/verse"
)

// ABibliaDigitalProvider adapts abibliadigital.com.br, a Brazilian API with
// NVI text. It requires a bearer token; without one the provider is simply
// not registered.
type ABibliaDigitalProvider struct {
	baseURL string
	token   string
	client  *http.Client
	timeout time.Duration
}

// NewABibliaDigital builds the abibliadigital adapter.
func NewABibliaDigital(baseURL, token string, timeout time.Duration) *ABibliaDigitalProvider {
	return &ABibliaDigitalProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{},
		timeout: timeout,
	}
}

// Name identifies the provider in attempt logs and reply sources.
func (p *ABibliaDigitalProvider) Name() string { return "abibliadigital" }

type aBibliaDigitalPayload struct {
	Book struct {
		Name string `json:"name"`
	} `json:"book"`
	Chapter int    `json:"chapter"`
	Number  int    `json:"number"`
	Text    string `json:"text"`
}

// Random fetches one random NVI verse.
func (p *ABibliaDigitalProvider) Random(ctx context.Context) versemodel.Outcome {
	url := fmt.Sprintf("%s/verses/nvi/random", p.baseURL)

	header := http.Header{}
	if p.token != "" {
		header.Set("Authorization", "Bearer "+p.token)
	}

	var payload aBibliaDigitalPayload
	if err := fetchJSON(ctx, p.client, p.timeout, url, header, &payload); err != nil {
		return versemodel.HardFailure(err)
	}

	text := strings.TrimSpace(payload.Text)
	if text == "" || payload.Book.Name == "" || payload.Chapter <= 0 || payload.Number <= 0 {
		return versemodel.SoftFailure()
	}

	return versemodel.Success(versemodel.New(text, payload.Book.Name, payload.Chapter, payload.Number))
}
