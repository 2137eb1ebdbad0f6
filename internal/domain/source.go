package domain

import "time"

// VerificationStatus is the terminal state of a source-verification check.
type VerificationStatus string

// Verification status constants.
const (
	StatusVerified VerificationStatus = "verified"
	StatusInvalid  VerificationStatus = "invalid"
	StatusArchived VerificationStatus = "archived"
)

// VerifiedSource is the input to source verification: a claimed URL, the
// platform it supposedly came from, and when it was scraped/claimed.
type VerifiedSource struct {
	OriginalURL string    `json:"original_url"`
	Platform    string    `json:"platform"`
	ClaimedDate time.Time `json:"claimed_date"`
}

// VerificationResult is the outcome of verifying one source.
type VerificationResult struct {
	URL        string             `json:"url"`
	Status     VerificationStatus `json:"status"`
	Reason     string             `json:"reason,omitempty"`
	VerifiedAt time.Time          `json:"verified_at"`
}
