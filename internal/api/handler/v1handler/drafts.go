package v1handler

import (
	"leadgen/pkg/controller"
	"leadgen/pkg/domain"
	"net/http"
)

type ExportDraftsRequest struct {
	DraftIDs []domain.DraftID `json:"draftIds"`
}

type DraftsResponse struct {
	Drafts []domain.EmailDraft `json:"drafts"`
}

// ListDrafts returns pending drafts, or archived ones with ?archived=true.
func (h Handler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	archived, err := queryBool(r, "archived")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	list, err := h.deps.Drafts.List(r.Context(), GetSessionFromContext(r.Context()), archived)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if list == nil {
		list = []domain.EmailDraft{}
	}

	controller.WriteJSON(w, http.StatusOK, DraftsResponse{Drafts: list})
}

func (h Handler) ExportDrafts(w http.ResponseWriter, r *http.Request) {
	var req ExportDraftsRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	list, err := h.deps.Drafts.Export(r.Context(), GetSessionFromContext(r.Context()), req.DraftIDs)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if list == nil {
		list = []domain.EmailDraft{}
	}

	controller.WriteJSON(w, http.StatusOK, DraftsResponse{Drafts: list})
}
