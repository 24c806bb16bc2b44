package verse

import (
	"fmt"
	"time"
)

// Verse is a single Bible verse in Portuguese translation.
type Verse struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
	Book      string `json:"book"`
	Chapter   int    `json:"chapter"`
	Verse     int    `json:"verse"`
}

// New builds a Verse with the reference derived from book/chapter/verse.
func New(text, book string, chapter, number int) Verse {
	return Verse{
		Text:      text,
		Reference: fmt.Sprintf("%s %d:%d", book, chapter, number),
		Book:      book,
		Chapter:   chapter,
		Verse:     number,
	}
}

// Valid reports whether the verse carries usable content.
func (v Verse) Valid() bool {
	return v.Text != "" && v.Reference != ""
}

// OutcomeKind tags the result of one provider attempt.
type OutcomeKind int

const (
	// OutcomeSuccess means the provider returned a usable verse.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeSoftFailure means the provider responded but the payload was
	// unusable (missing text, empty reference). Try the next provider.
	OutcomeSoftFailure
	// OutcomeHardFailure means the request itself failed (timeout, DNS,
	// connection reset, non-2xx status). Also try the next provider.
	OutcomeHardFailure
)

// String returns the log-friendly name of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeSoftFailure:
		return "malformed-response"
	case OutcomeHardFailure:
		return "request-failed"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of a single provider attempt.
type Outcome struct {
	Kind  OutcomeKind
	Verse Verse
	Err   error
}

// Success wraps a usable verse.
func Success(v Verse) Outcome {
	return Outcome{Kind: OutcomeSuccess, Verse: v}
}

// SoftFailure marks a reachable provider whose payload was unusable.
func SoftFailure() Outcome {
	return Outcome{Kind: OutcomeSoftFailure}
}

// HardFailure marks a transport-level provider failure.
func HardFailure(err error) Outcome {
	return Outcome{Kind: OutcomeHardFailure, Err: err}
}

// Attempt records one resolution try for diagnostics. It is never persisted.
type Attempt struct {
	Provider string
	Elapsed  time.Duration
	Outcome  OutcomeKind
	Err      error
}
