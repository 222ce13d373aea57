// Package render writes JSON bodies and maps domain errors to HTTP statuses.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/intent-reconciliation/pkg/gateway"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/chris/intent-reconciliation/pkg/reconcile"
	"github.com/chris/intent-reconciliation/pkg/storage"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// Status returns the HTTP status for err.
func Status(err error) int {
	var verr *reconcile.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, models.ErrNonPositiveAmount):
		return http.StatusBadRequest
	case errors.Is(err, gateway.ErrInvalidSignature):
		return http.StatusUnauthorized
	case errors.Is(err, storage.ErrIntentNotFound),
		errors.Is(err, storage.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrAccountExists),
		errors.Is(err, storage.ErrIntentExists),
		errors.Is(err, reconcile.ErrIntentConflict):
		return http.StatusConflict
	case errors.Is(err, storage.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, gateway.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as a plain-text response. Internal errors are logged and
// their detail is not sent to the client.
func Error(w http.ResponseWriter, r *http.Request, action string, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "action", action, "error", err)
		http.Error(w, fmt.Sprintf("Failed to %s", action), status)
		return
	}
	http.Error(w, err.Error(), status)
}
