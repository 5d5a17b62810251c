package postgres

import (
	"database/sql"
	"leadgen/pkg/domain"
	"time"

	"github.com/google/uuid"
)

const (
	tableAccounts  = "user_accounts"
	tableLeads     = "serp_leads_v2"
	tableUserLeads = "user_leads"
	tableDrafts    = "email_drafts"
	tableLocations = "google_locations"
	tableSearches  = "user_searches"
)

type PgAccount struct {
	ID            uuid.UUID `db:"id"             goqu:"skipinsert"`
	IdentityID    string    `db:"identity_id"`
	AccountNumber string    `db:"account_number"`
	DisplayName   string    `db:"display_name"`
	BusinessName  string    `db:"business_name"`
	BusinessInfo  string    `db:"business_info"`

	Keywords           sql.NullString `db:"serp_kw"`
	Locations          sql.NullString `db:"serp_loc"`
	Categories         sql.NullString `db:"serp_cat"`
	ExcludedCategories sql.NullString `db:"serp_exc_cat"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgAccount) ToDomain() *domain.Account {
	return &domain.Account{
		ID:           domain.AccountID(p.ID),
		IdentityID:   p.IdentityID,
		Number:       p.AccountNumber,
		DisplayName:  p.DisplayName,
		BusinessName: p.BusinessName,
		BusinessInfo: p.BusinessInfo,
		Settings: domain.SearchSettings{
			Keywords:           nullStringPtr(p.Keywords),
			Locations:          nullStringPtr(p.Locations),
			Categories:         nullStringPtr(p.Categories),
			ExcludedCategories: nullStringPtr(p.ExcludedCategories),
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

type PgLead struct {
	ID         int64          `db:"id"`
	Title      string         `db:"title"`
	Address    string         `db:"address"`
	Phone      string         `db:"phone"`
	URL        string         `db:"url"`
	Email      sql.NullString `db:"email"`
	Facebook   string         `db:"facebook"`
	Instagram  string         `db:"instagram"`
	LinkedIn   string         `db:"linkedin"`
	Twitter    string         `db:"twitter"`
	Categories string         `db:"categories"`
	CreatedAt  time.Time      `db:"created_at" goqu:"skipinsert"`
}

func (p *PgLead) ToDomain() domain.Lead {
	return domain.Lead{
		ID:         domain.LeadID(p.ID),
		Title:      p.Title,
		Address:    p.Address,
		Phone:      p.Phone,
		URL:        p.URL,
		Email:      p.Email.String,
		Facebook:   p.Facebook,
		Instagram:  p.Instagram,
		LinkedIn:   p.LinkedIn,
		Twitter:    p.Twitter,
		Categories: domain.ParseSpaced(p.Categories),
		CreatedAt:  p.CreatedAt,
	}
}

// PgLeadCandidate is a user_leads row joined with the two membership flags
// computed by the candidates query.
type PgLeadCandidate struct {
	ID            int64        `db:"id"`
	AccountID     uuid.UUID    `db:"account_id"`
	LeadID        int64        `db:"lead_id"`
	Excluded      sql.NullTime `db:"excluded"`
	Emailed       bool         `db:"emailed"`
	CreatedAt     time.Time    `db:"created_at"`
	HasValidEmail bool         `db:"has_valid_email"`
	Drafted       bool         `db:"drafted"`
}

func (p *PgLeadCandidate) ToDomain() domain.LeadCandidate {
	return domain.LeadCandidate{
		LeadAssociation: domain.LeadAssociation{
			ID:        domain.AssociationID(p.ID),
			AccountID: domain.AccountID(p.AccountID),
			LeadID:    domain.LeadID(p.LeadID),
			Excluded:  p.Excluded.Time,
			Emailed:   p.Emailed,
			CreatedAt: p.CreatedAt,
		},
		HasValidEmail: p.HasValidEmail,
		Drafted:       p.Drafted,
	}
}

type PgDraft struct {
	ID        int64        `db:"id"         goqu:"skipinsert"`
	AccountID uuid.UUID    `db:"account_id"`
	LeadID    int64        `db:"lead_id"`
	Subject   string       `db:"subject"`
	Body      string       `db:"body"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	Exported  sql.NullTime `db:"exported"`
}

func (p *PgDraft) ToDomain() domain.EmailDraft {
	return domain.EmailDraft{
		ID:        domain.DraftID(p.ID),
		AccountID: domain.AccountID(p.AccountID),
		LeadID:    domain.LeadID(p.LeadID),
		Subject:   p.Subject,
		Body:      p.Body,
		CreatedAt: p.CreatedAt,
		Exported:  p.Exported.Time,
	}
}

type PgLocation struct {
	Code        int    `db:"code"`
	Name        string `db:"name"`
	CountryCode string `db:"country_code"`
	TargetType  string `db:"target_type"`
}

func (p *PgLocation) ToDomain() domain.Location {
	return domain.Location{
		Code:        p.Code,
		Name:        p.Name,
		CountryCode: p.CountryCode,
		TargetType:  p.TargetType,
	}
}

type PgSearch struct {
	AccountID    uuid.UUID `db:"account_id"`
	Keyword      string    `db:"keyword"`
	LocationCode int       `db:"location_code"`
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String

	return &v
}

func ptrNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func leadIDsToInt64(ids []domain.LeadID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}

	return out
}
