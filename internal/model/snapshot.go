package model

import "time"

// Snapshot is the complete response payload for one fetch cycle. It is
// immutable once assembled: each poll produces a fresh Snapshot wholesale,
// never an incremental patch of the previous one.
type Snapshot struct {
	AccountSummary

	Sessions     []Session `json:"sessions"`
	SessionCount int       `json:"session_count"`

	// Counts of sessions where the corresponding rakeback payout marker
	// was set.
	RakebackBelowCount int `json:"rakeback_below_count"`
	RakebackAboveCount int `json:"rakeback_above_count"`

	Metrics Derived `json:"metrics"`

	// FetchID uniquely identifies the fetch cycle that produced this
	// snapshot. Generation is assigned by the poller before the fetch
	// starts; a completed snapshot is published only if no newer
	// generation published first.
	FetchID     string    `json:"fetch_id"`
	Generation  uint64    `json:"generation"`
	GeneratedAt time.Time `json:"generated_at"`
}
