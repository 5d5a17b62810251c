package v1handler

import (
	"context"
	"encoding/json"
	"leadgen/internal/account"
	"leadgen/internal/config"
	"leadgen/internal/dispatch"
	"leadgen/internal/drafts"
	"leadgen/internal/leads"
	"leadgen/internal/settings"
	"leadgen/pkg/controller"
	"leadgen/pkg/logger"
	"leadgen/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

type Deps struct {
	Accounts   account.Resolver
	Leads      leads.Service
	Settings   settings.Service
	Dispatcher dispatch.Dispatcher
	Drafts     drafts.Service
}

type Options struct {
	// TriggerRate is the per account token refill rate of trigger endpoints.
	TriggerRate float64
	// TriggerBurst is the per account bucket size of trigger endpoints.
	TriggerBurst int
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		TriggerRate:  cfg.HTTP.RateLimit,
		TriggerBurst: cfg.HTTP.RateBurst,
	}
}

type Handler struct {
	deps    Deps
	limiter *controller.RateLimiter
}

func New(deps Deps, opts Options) *Handler {
	burst := opts.TriggerBurst
	if burst <= 0 {
		burst = 1
	}

	return &Handler{
		deps:    deps,
		limiter: controller.NewRateLimiter(opts.TriggerRate, burst),
	}
}

// Routes registers the v1 operations. The caller is expected to have
// installed SecHandler.Authenticate on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/account", h.GetAccount)

	r.Get("/leads", h.ListLeads)
	r.Post("/leads/exclude", h.ExcludeLeads)
	r.Post("/leads/restore", h.RestoreLeads)
	r.Post("/leads/categories", h.SelectedCategories)

	r.Get("/settings", h.GetSettings)
	r.Put("/settings", h.UpdateSettings)
	r.Post("/locations/validate", h.ValidateLocations)

	r.Get("/search/preview", h.PreviewSearch)
	r.Group(func(r chi.Router) {
		r.Use(controller.WithRateLimit(h.limiter, rateLimitKey))
		r.Post("/search/trigger", h.TriggerSearch)
		r.Post("/emails/generate", h.GenerateEmails)
	})

	r.Get("/drafts", h.ListDrafts)
	r.Post("/drafts/export", h.ExportDrafts)
}

// rateLimitKey buckets trigger calls per account. Identities without a linked
// account are bucketed by token subject so they are limited too.
func rateLimitKey(r *http.Request) string {
	session := GetSessionFromContext(r.Context())
	if session.HasAccount() {
		return "account:" + session.AccountID.String()
	}
	if identity := GetIdentityFromContext(r.Context()); identity != "" {
		return "identity:" + identity
	}

	return ""
}

// ErrorStatus is the status and body an error is rendered with.
type ErrorStatus struct {
	StatusCode int
	Response   controller.ErrorResponse
}

func (h Handler) NewError(ctx context.Context, err error) *ErrorStatus {
	status := serrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, err.Error())
	}

	return &ErrorStatus{
		StatusCode: status,
		Response: controller.ErrorResponse{
			Code:    serrors.KindOf(err).Error(),
			Message: serrors.UserMessage(err),
		},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	controller.WriteJSON(w, res.StatusCode, res.Response)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be an integer", name)
	}

	return v, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be a boolean", name)
	}

	return v, nil
}
