package verse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	versemodel "github.com/feemjesusbr/backend/internal/model/verse"
)

// Provider fetches one random verse from a remote source and adapts the
// provider-specific payload into the common Verse record. Providers never
// panic and never return a Go error directly; every attempt collapses into
// a tagged Outcome so the resolver can decide to continue.
type Provider interface {
	Name() string
	Random(ctx context.Context) versemodel.Outcome
}

// fetchJSON performs a timeout-bounded GET and decodes the JSON body into
// out. The context deadline cancels the underlying request, so a stuck
// provider cannot hold the connection past its budget.
func fetchJSON(ctx context.Context, client *http.Client, timeout time.Duration, url string, header http.Header, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
