package server

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/jha-go/pkg/jha"
	"github.com/ukaji3/jha-go/pkg/jha/output"
	"github.com/ukaji3/jha-go/pkg/jha/views"
)

var (
	errNoDivision   = errors.New("no division selected")
	errInvalidSheet = errors.New("invalid sheet index")
	errInvalidBody  = errors.New("invalid request body")
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, jha.ErrFileNotFound),
		errors.Is(err, views.ErrUnknownDivision),
		errors.Is(err, errInvalidSheet):
		return http.StatusNotFound
	case errors.Is(err, jha.ErrMissingSheets):
		return http.StatusUnprocessableEntity
	case errors.Is(err, output.ErrInvalidFormat),
		errors.Is(err, errInvalidBody),
		errors.Is(err, errUnknownField):
		return http.StatusBadRequest
	case errors.Is(err, errNoDivision):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes it as a JSON error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	requestID := middleware.GetReqID(r.Context())

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("request_id", requestID).
		Str("path", r.URL.Path).
		Int("status", status).
		Msg("request error")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error(), RequestID: requestID}); err != nil {
		log.Error().Err(err).Msg("json encode error")
	}
}

// writeJSON encodes v as JSON and writes it to w.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("json encode error")
	}
}

// writeDownload sends res as a file attachment.
func writeDownload(w http.ResponseWriter, res *output.Result) {
	w.Header().Set("Content-Type", res.MimeType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": res.Filename}))
	if _, err := w.Write(res.Data); err != nil {
		log.Error().Err(err).Str("filename", res.Filename).Msg("download write error")
	}
}
