package shared

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
)

// ErrorResponse is the standard error payload returned by all API endpoints.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
	TraceID string              `json:"trace_id,omitempty"`
}

// RespondWithJSON writes data as a JSON response with the given status code.
// A nil data value writes only the status code, which callers use for 204.
func RespondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent, so the best we can do is log.
		slog.Default().Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a standardized error response. The trace ID, when
// present in the context, is echoed back so clients can correlate failures
// with server logs.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string, fields []domain.FieldError) {
	resp := ErrorResponse{
		Error:   message,
		Fields:  fields,
		TraceID: GetTraceID(r.Context()),
	}
	RespondWithJSON(w, status, resp)
}

// RespondWithErrorAndLog logs the underlying error and writes a safe error
// response. The original error is logged (redacted) but never sent to the
// client; message is the client-facing text.
func RespondWithErrorAndLog(ctx context.Context, w http.ResponseWriter, r *http.Request, status int, message string, err error, fields []domain.FieldError) {
	log := logger.FromContext(ctx)

	attrs := []any{
		"status", status,
		"path", r.URL.Path,
		"method", r.Method,
	}
	if err != nil {
		attrs = append(attrs, "error", redact.Error(err))
	}

	if status >= http.StatusInternalServerError {
		log.Error(message, attrs...)
	} else {
		log.Warn(message, attrs...)
	}

	RespondWithError(w, r, status, message, fields)
}
