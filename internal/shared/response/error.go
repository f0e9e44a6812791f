package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"starsystem-server/internal/shared/errors"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// InternalMessage replaces the message of internal errors on the wire.
const InternalMessage = "internal server error"

type outcome struct {
	status int
	level  slog.Level
	msg    string
}

var outcomes = map[errors.ErrorType]outcome{
	errors.ErrorTypeNotFound:         {http.StatusNotFound, slog.LevelDebug, "Resource not found"},
	errors.ErrorTypeValidation:       {http.StatusBadRequest, slog.LevelDebug, "Validation error"},
	errors.ErrorTypeMethodNotAllowed: {http.StatusMethodNotAllowed, slog.LevelDebug, "Method not allowed"},
	errors.ErrorTypeRateLimited:      {http.StatusTooManyRequests, slog.LevelWarn, "Rate limit exceeded"},
	errors.ErrorTypeCanceled:         {http.StatusRequestTimeout, slog.LevelInfo, "Request canceled"},
	errors.ErrorTypeExternal:         {http.StatusServiceUnavailable, slog.LevelError, "External service error"},
	errors.ErrorTypeInternal:         {http.StatusInternalServerError, slog.LevelError, "Internal server error"},
}

func outcomeFor(errorType errors.ErrorType) outcome {
	if o, ok := outcomes[errorType]; ok {
		return o
	}
	return outcomes[errors.ErrorTypeInternal]
}

// Error logs err and writes it as a JSON error response.
// This is the only place request errors are logged.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	errorType := errors.GetType(err)
	o := outcomeFor(errorType)

	logger.Log(r.Context(), o.level, o.msg,
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
		"error_type", errorType,
		"status_code", o.status,
		"error", err,
	)

	message := err.Error()
	if o.status == http.StatusInternalServerError {
		message = InternalMessage
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(o.status)
	// status is already sent, an encode failure cannot be reported
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   string(errorType),
		Message: message,
		Code:    o.status,
	})
}

// Success writes data as JSON with the given status. A nil data writes no body.
func Success(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}
