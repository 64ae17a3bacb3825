package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fundflow/backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteJSONStatus writes a JSON body under an explicit status code. The
// Content-Type header has to be set before the status line goes out, so it
// cannot be left to WriteJSON.
func (r Responder) WriteJSONStatus(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	r.WriteJSON(w, data)
}

// WriteError maps a typed failure to its protocol response. The "detail"
// key always carries the human-readable message.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return a generic internal error
	// without leaking internals to the client.
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		r.WriteJSON(w, map[string]any{
			"detail": "an unexpected error occurred",
			"status": "error",
		})
		return
	}

	response := map[string]any{
		"detail": apiErr.Error(),
		"status": "error",
	}
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}
	if apiErr.Cause != nil {
		r.logger.Error().Str("cause", apiErr.GetFullError()).Msg(apiErr.Error())
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(apiErr.StatusCode)
	r.WriteJSON(w, response)
}
