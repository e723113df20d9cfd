package domain

import "time"

// Principal is the authenticated caller extracted from a verified access token.
type Principal struct {
	UserID    string    `json:"user_id"`
	TokenID   string    `json:"token_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RemainingTTL returns how long the token stays valid after reference.
func (p *Principal) RemainingTTL(reference time.Time) time.Duration {
	if p == nil || p.ExpiresAt.IsZero() {
		return 0
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	if !p.ExpiresAt.After(reference) {
		return 0
	}
	return p.ExpiresAt.Sub(reference)
}
