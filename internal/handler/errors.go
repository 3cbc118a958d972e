package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/sunnytrips/internal/domain"
)

// errorResponse is the body of every non-2xx answer:
// {"error":{"code":"...","message":"..."}}.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// writeServiceError maps a service error onto a status code and body.
// resource names what was being looked up, e.g. "trip", for 404 messages.
// Anything that is not a known sentinel is logged and answered with a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, resource string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", resource+" not found")
	case errors.Is(err, domain.ErrOwnerNotFound):
		writeError(w, http.StatusUnprocessableEntity, "owner_not_found", fromSentinel(err, domain.ErrOwnerNotFound))
	case errors.Is(err, domain.ErrReconciliationMismatch):
		writeError(w, http.StatusConflict, "reconciliation_mismatch", afterSentinel(err, domain.ErrReconciliationMismatch))
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", afterSentinel(err, domain.ErrValidation))
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// fromSentinel drops the "pkg.Type.Method: " layers in front of sentinel.
// e.g. "service.TripService.Create: owner not found: user 7" -> "owner not found: user 7"
func fromSentinel(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()); i >= 0 {
		return msg[i:]
	}
	return msg
}

// afterSentinel returns only the detail following sentinel.
// e.g. "service.UserService.Create: validation error: nome is required" -> "nome is required"
func afterSentinel(err, sentinel error) string {
	msg := fromSentinel(err, sentinel)
	if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return rest
	}
	return msg
}

// readJSON decodes the request body into dst. On failure it writes the
// error response itself and returns false.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
		return false
	}
	var badTime *dateTimeError
	if errors.As(err, &badTime) {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", badTime.Error())
		return false
	}
	writeError(w, http.StatusBadRequest, "bad_request", "malformed JSON body")
	return false
}

// pathID binds the {id} path segment as an int64.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "id must be an integer")
		return 0, false
	}
	return id, true
}

// ownerID binds the required usuarioId query parameter.
func ownerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var id int64
	if err := runtime.BindQueryParameter("form", true, true, "usuarioId", r.URL.Query(), &id); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "usuarioId query parameter must be an integer")
		return 0, false
	}
	return id, true
}
