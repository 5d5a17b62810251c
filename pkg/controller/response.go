package controller

import (
	"context"
	"encoding/json"
	"leadgen/pkg/logger"
	"leadgen/pkg/serrors"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteJSON encodes v as the JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError converts err into a user-facing error response. Internal causes
// are logged and never written to the client.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	status := serrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	WriteJSON(w, status, ErrorResponse{
		Code:    serrors.KindOf(err).Error(),
		Message: serrors.UserMessage(err),
	})
}
