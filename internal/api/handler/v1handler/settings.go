package v1handler

import (
	"leadgen/pkg/controller"
	"leadgen/pkg/domain"
	"net/http"
)

type ValidateLocationsRequest struct {
	Locations string `json:"locations"`
}

func (h Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.deps.Settings.Get(r.Context(), GetSessionFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, s)
}

// UpdateSettings replaces all four settings fields; absent fields are cleared.
func (h Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req domain.SearchSettings
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	s, err := h.deps.Settings.Update(r.Context(), GetSessionFromContext(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, s)
}

// ValidateLocations reports unknown location codes. Unknown codes are not an
// error; they come back in the invalid list.
func (h Handler) ValidateLocations(w http.ResponseWriter, r *http.Request) {
	var req ValidateLocationsRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Settings.ValidateLocations(r.Context(), req.Locations)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if res.Valid == nil {
		res.Valid = []domain.Location{}
	}
	if res.Invalid == nil {
		res.Invalid = []string{}
	}

	controller.WriteJSON(w, http.StatusOK, res)
}
