// Package webhook defines the client used to fire the external search and
// email generation workflows.
package webhook

import (
	"context"
	"leadgen/pkg/domain"

	"github.com/go-faster/jx"
)

// Name identifies one of the fixed webhook endpoints.
type Name string

const (
	// Search starts a scraping run for the account's saved settings.
	Search Name = "search"
	// Emails generates email drafts for selected leads.
	Emails Name = "emails"
)

// Payload is the JSON document sent in the payload query parameter.
type Payload interface {
	Encode(e *jx.Encoder)
}

// SearchPayload asks the search workflow to run. Repeat re-runs combinations
// that were already searched.
type SearchPayload struct {
	Repeat bool
}

func (p SearchPayload) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("repeat", func(e *jx.Encoder) { e.Bool(p.Repeat) })
	})
}

// EmailsPayload lists the leads to draft emails for.
type EmailsPayload struct {
	LeadIDs []domain.LeadID
}

func (p EmailsPayload) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("lead_ids", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, id := range p.LeadIDs {
					e.Int64(int64(id))
				}
			})
		})
	})
}

// Response is what a webhook answered.
type Response struct {
	// StatusCode is the HTTP status the webhook returned.
	StatusCode int
	// JSON is true when the body was a JSON document.
	JSON bool
	// Message is the human readable outcome: the "message" field of a JSON
	// object, the raw JSON otherwise, or the trimmed text body.
	Message string
}

// Client calls dispatcher webhooks.
//
//go:generate mockgen -package mockwebhook -source=interface.go -destination=mock/mockwebhook.go *
type Client interface {
	// Call fires the named webhook for the account. Non-2xx answers and
	// unreadable bodies are returned as serrors.ErrUpstream.
	Call(ctx context.Context, name Name, accountNumber string, payload Payload) (Response, error)
}
