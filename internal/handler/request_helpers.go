package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/logger"
)

// ValidationErrorResponse lists the failing fields of a rejected body
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// decodeRequest reads exactly one JSON object into T and validates it. On
// false the response has been written.
func decodeRequest[T any](w http.ResponseWriter, r *http.Request, action string) (T, bool) {
	var req T
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(&req)
	if err == nil && dec.More() {
		err = errTrailingData
	}
	if err != nil {
		log.Warn(LogMsgRequestDecodeFailed, "action", action, "error", err)
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
		case errors.Is(err, io.EOF):
			respondError(w, http.StatusBadRequest, ErrMsgEmptyBody)
		default:
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		}
		return req, false
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Debug(LogMsgRequestInvalid, "action", action, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return req, false
	}
	return req, true
}

// modeParam reads the required ?mode= parameter. On false the response has
// been written.
func modeParam(w http.ResponseWriter, r *http.Request, op string) (domain.GridMode, bool) {
	raw := r.URL.Query().Get(QueryParamMode)
	if raw == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, QueryParamMode))
		return "", false
	}
	mode, err := domain.ParseGridMode(raw)
	if err != nil {
		respondServiceError(w, r, op, err)
		return "", false
	}
	return mode, true
}

// limitParam parses ?limit=. Absent means zero, the service default.
func limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get(QueryParamLimit)
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return limit, true
}
