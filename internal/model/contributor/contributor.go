package contributor

import (
	"context"
	"time"
)

// Contributor is a registered supporter of the ministry.
type Contributor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	DonationAmount float64   `json:"donationAmount,omitempty"`
	SpecialMessage string    `json:"specialMessage,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Store persists contributors.
type Store interface {
	Save(ctx context.Context, c Contributor) error
	List(ctx context.Context) ([]Contributor, error)
}
