package domain

import (
	"strings"
	"time"
)

// EmailNotFound is the sentinel the scraper stores when no email was found.
const EmailNotFound = "not found"

// LeadID identifies a lead in the shared catalog.
type LeadID int64

// Lead is a discovered business record. Leads belong to a shared catalog and
// are linked to accounts through associations.
type Lead struct {
	ID LeadID `json:"id"`

	Title   string `json:"title"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	URL     string `json:"url,omitempty"`
	Email   string `json:"email,omitempty"`

	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`

	// Categories is the lead's tag list, stored space separated.
	Categories CategorySet `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// HasValidEmail reports whether the lead carries a usable email address.
func (l Lead) HasValidEmail() bool { return IsValidEmail(l.Email) }

// IsValidEmail reports whether a resolved email is non-empty and not the
// scraper's "not found" sentinel.
func IsValidEmail(email string) bool {
	e := strings.TrimSpace(email)

	return e != "" && !strings.EqualFold(e, EmailNotFound)
}

// AssociationID identifies a lead association row.
type AssociationID int64

// LeadAssociation links an account to a lead and carries the account-specific
// exclusion and emailed state.
type LeadAssociation struct {
	ID        AssociationID `json:"id"`
	AccountID AccountID     `json:"accountId"`
	LeadID    LeadID        `json:"leadId"`
	// Excluded is when the lead was excluded; zero value means active.
	Excluded time.Time `json:"excluded,omitzero"`
	// Emailed marks leads an email was already sent to.
	Emailed bool `json:"emailed"`

	CreatedAt time.Time `json:"createdAt"`
}

// IsExcluded reports whether the association is excluded.
func (a LeadAssociation) IsExcluded() bool { return !a.Excluded.IsZero() }

// LeadCandidate is an association enriched with the set-membership facts the
// lead list filter needs, computed by storage in a single query.
type LeadCandidate struct {
	LeadAssociation

	// HasValidEmail is true when the referenced lead has a usable email.
	HasValidEmail bool
	// Drafted is true when an email draft exists for this account and lead.
	Drafted bool
}

// LeadFilter selects which associations are visible in a lead list.
type LeadFilter struct {
	// IncludeWithoutEmail keeps leads without a valid email.
	IncludeWithoutEmail bool `json:"includeWithoutEmail"`
	// IncludeAlreadyEmailed keeps leads that already have a draft.
	IncludeAlreadyEmailed bool `json:"includeAlreadyEmailed"`
	// ExcludedOnly switches to the excluded view.
	ExcludedOnly bool `json:"excludedOnly"`
}

// LeadRow is a hydrated lead as shown in a list, with its association state.
type LeadRow struct {
	Lead

	AssociationID AssociationID `json:"associationId"`
	Excluded      time.Time     `json:"excluded,omitzero"`
	Emailed       bool          `json:"emailed"`
	CategoryList  []string      `json:"categories"`
}

// LeadPage is one page of a filtered lead list.
type LeadPage struct {
	Rows         []LeadRow  `json:"rows"`
	Page         int        `json:"page"`
	PageSize     int        `json:"pageSize"`
	TotalRecords int        `json:"totalRecords"`
	TotalPages   int        `json:"totalPages"`
	Filter       LeadFilter `json:"filter"`
}
