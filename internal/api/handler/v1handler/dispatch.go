package v1handler

import (
	"leadgen/internal/dispatch"
	"leadgen/pkg/controller"
	"net/http"
)

type TriggerSearchRequest struct {
	Repeat bool `json:"repeat"`
}

type TriggerResponse struct {
	Webhook string `json:"webhook"`
	Message string `json:"message"`
	// RefreshAfterMs tells clients when to reload the affected views.
	RefreshAfterMs int64 `json:"refreshAfterMs"`
}

func toTriggerResponse(res dispatch.Result) TriggerResponse {
	return TriggerResponse{
		Webhook:        res.Webhook,
		Message:        res.Message,
		RefreshAfterMs: res.RefreshAfter.Milliseconds(),
	}
}

func (h Handler) PreviewSearch(w http.ResponseWriter, r *http.Request) {
	p, err := h.deps.Dispatcher.Preview(r.Context(), GetSessionFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, p)
}

func (h Handler) TriggerSearch(w http.ResponseWriter, r *http.Request) {
	var req TriggerSearchRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Dispatcher.TriggerSearch(r.Context(), GetSessionFromContext(r.Context()), req.Repeat)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusAccepted, toTriggerResponse(res))
}

func (h Handler) GenerateEmails(w http.ResponseWriter, r *http.Request) {
	var req LeadIDsRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Dispatcher.GenerateEmails(r.Context(), GetSessionFromContext(r.Context()), req.LeadIDs)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusAccepted, toTriggerResponse(res))
}
