package chat

// Confidence grades how strong a reply is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// SourceOffline marks replies assembled from curated content instead of a
// remote provider. Remote replies carry the provider name, so curated text
// is always distinguishable from genuine AI output.
const SourceOffline = "offline"

// Reply is the assistant's answer to one user message. It is created per
// request and discarded after the HTTP response is sent.
type Reply struct {
	Response   string     `json:"response"`
	Verse      string     `json:"verse,omitempty"`
	Reference  string     `json:"verseReference,omitempty"`
	Prayer     string     `json:"prayer,omitempty"`
	Confidence Confidence `json:"confidence"`
	Source     string     `json:"source"`
}
