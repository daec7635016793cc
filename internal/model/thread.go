package model

import "time"

// ThreadContext carries resolved references from prior turns of a
// conversation so a follow-up like "what should she do first?" can keep
// pointing at the same person or cohort.
type ThreadContext struct {
	ThreadID      string    `json:"threadId"`
	FocusPersonID string    `json:"focusPersonId,omitempty"`
	Geo           string    `json:"geo,omitempty"`
	Manager       string    `json:"manager,omitempty"`
	WindowDays    int       `json:"windowDays,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
