package v1handler

import (
	"leadgen/pkg/controller"
	"net/http"
)

// GetAccount returns the caller's profile.
func (h Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	acc, err := h.deps.Accounts.Profile(r.Context(), GetSessionFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, acc)
}
