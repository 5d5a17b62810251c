package v1handler

import (
	"leadgen/internal/leads"
	"leadgen/pkg/controller"
	"leadgen/pkg/domain"
	"net/http"
)

type LeadIDsRequest struct {
	LeadIDs []domain.LeadID `json:"leadIds"`
}

type ExcludeRequest struct {
	LeadIDs          []domain.LeadID `json:"leadIds"`
	Categories       []string        `json:"categories"`
	CustomCategories string          `json:"customCategories"`
}

type UpdatedResponse struct {
	Updated int64 `json:"updated"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ListLeads returns one page of the caller's leads.
func (h Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	var (
		query leads.ListQuery
		err   error
	)
	if query.Page, err = queryInt(r, "page", 1); err != nil {
		h.writeError(w, r, err)

		return
	}
	if query.PageSize, err = queryInt(r, "pageSize", 0); err != nil {
		h.writeError(w, r, err)

		return
	}
	if query.Filter.IncludeWithoutEmail, err = queryBool(r, "includeWithoutEmail"); err != nil {
		h.writeError(w, r, err)

		return
	}
	if query.Filter.IncludeAlreadyEmailed, err = queryBool(r, "includeAlreadyEmailed"); err != nil {
		h.writeError(w, r, err)

		return
	}
	if query.Filter.ExcludedOnly, err = queryBool(r, "excludedOnly"); err != nil {
		h.writeError(w, r, err)

		return
	}

	page, err := h.deps.Leads.List(r.Context(), GetSessionFromContext(r.Context()), query)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, page)
}

// ExcludeLeads hides the given leads and remembers the chosen categories.
func (h Handler) ExcludeLeads(w http.ResponseWriter, r *http.Request) {
	var req ExcludeRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	categories, err := leads.ExclusionCategories(req.Categories, req.CustomCategories)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	n, err := h.deps.Leads.Exclude(r.Context(), GetSessionFromContext(r.Context()), req.LeadIDs, categories)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, UpdatedResponse{Updated: n})
}

// RestoreLeads moves leads back into the active view.
func (h Handler) RestoreLeads(w http.ResponseWriter, r *http.Request) {
	var req LeadIDsRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	n, err := h.deps.Leads.Restore(r.Context(), GetSessionFromContext(r.Context()), req.LeadIDs)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, UpdatedResponse{Updated: n})
}

// SelectedCategories pre-fills the exclusion dialog.
func (h Handler) SelectedCategories(w http.ResponseWriter, r *http.Request) {
	var req LeadIDsRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	set, err := h.deps.Leads.SelectedCategories(r.Context(), GetSessionFromContext(r.Context()), req.LeadIDs)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, CategoriesResponse{Categories: set.Items()})
}
