package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountID uniquely identifies an account within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type AccountID uuid.UUID

// IsZero reports whether the id is the zero UUID.
func (id AccountID) IsZero() bool { return id == AccountID{} }

// String returns the canonical UUID representation.
func (id AccountID) String() string { return uuid.UUID(id).String() }

func (id AccountID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *AccountID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// Account is the identity-linked profile of a CRM user.
type Account struct {
	// ID is the internal account identifier.
	ID AccountID `json:"id"`
	// IdentityID is the subject issued by the identity provider.
	IdentityID string `json:"-"`
	// Number is the external account number sent to dispatcher webhooks.
	Number string `json:"accountNumber"`

	DisplayName  string `json:"displayName"`
	BusinessName string `json:"businessName,omitempty"`
	BusinessInfo string `json:"businessInfo,omitempty"`

	// Settings holds the account's search configuration.
	Settings SearchSettings `json:"settings"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session is the resolved caller of an operation. It is passed explicitly to
// every data-access call instead of being looked up from ambient state.
type Session struct {
	// IdentityID is the authenticated subject.
	IdentityID string
	// AccountID is the account the identity resolved to. Zero when unresolved.
	AccountID AccountID
	// AccountNumber is the account's external identifier.
	AccountNumber string
}

// HasAccount reports whether the session resolved to an account.
func (s Session) HasAccount() bool { return !s.AccountID.IsZero() }
