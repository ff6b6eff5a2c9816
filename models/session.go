package models

import "time"

// SessionState is everything the server remembers about one anonymous
// browsing session, stored as one JSON value in the state store.
// Platform is the persisted persona; the reveal fields and the wizard
// both reset whenever it changes.
type SessionState struct {
	Platform Platform `json:"platform"`

	// Reveal window over the filtered project listing.
	FilterKey  string    `json:"filter_key"`
	Visible    int       `json:"visible"`
	LastGrowAt time.Time `json:"last_grow_at"`

	Wizard WizardState `json:"wizard"`
}
