package domain

import "time"

// DraftID identifies an email draft.
type DraftID int64

// EmailDraft is a generated outbound email for one lead of an account.
type EmailDraft struct {
	ID        DraftID   `json:"id"`
	AccountID AccountID `json:"accountId"`
	LeadID    LeadID    `json:"leadId"`

	Subject string `json:"subject"`
	Body    string `json:"body"`

	CreatedAt time.Time `json:"createdAt"`
	// Exported is when the draft was archived; zero value means pending.
	Exported time.Time `json:"exported,omitzero"`
}

// IsExported reports whether the draft has been archived.
func (d EmailDraft) IsExported() bool { return !d.Exported.IsZero() }
