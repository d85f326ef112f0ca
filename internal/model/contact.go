package model

import "time"

// ContactEntry is one person in the contact directory. Name is the lookup
// key; duplicate names are resolved last-write-wins at directory build time.
type ContactEntry struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneDigits string `json:"phone_digits"` // digits only, at least 4
}

// FeedbackEntry is one appended handling note. Entries are append-only and
// keyed by the normalized contract identifier; multiple entries per
// identifier are retained.
type FeedbackEntry struct {
	ContractIDNorm string    `json:"contract_id_norm"`
	ResponseText   string    `json:"response_text"`
	Author         string    `json:"author"`
	RecordedAt     time.Time `json:"recorded_at"`
	Note           string    `json:"note"`
}
