package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/logger"
)

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and answers with the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceCallFailed, "operation", op, "error", err)
	} else {
		log.Debug(LogMsgServiceCallFailed, "operation", op, "error", err)
	}
	respondError(w, status, msg)
}

// serviceErrors maps domain errors to a status and a message users can act
// upon. The first match wins.
var serviceErrors = []struct {
	target  error
	status  int
	message string
}{
	{domain.ErrInvalidBet, http.StatusBadRequest, ErrMsgInvalidBetError},
	{domain.ErrNoFreeSpins, http.StatusConflict, ErrMsgNoFreeSpinsError},
	{domain.ErrUnknownMode, http.StatusBadRequest, ErrMsgUnknownModeError},
	{domain.ErrUnknownProfile, http.StatusBadRequest, ErrMsgUnknownProfileError},
	{domain.ErrInsufficientShards, http.StatusConflict, ErrMsgInsufficientShardsErr},
	{domain.ErrUnknownShardTier, http.StatusBadRequest, ErrMsgUnknownShardTierError},
	{domain.ErrResultNotFound, http.StatusNotFound, ErrMsgResultNotFoundHTTP},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
	{domain.ErrConcurrentStateConflict, http.StatusServiceUnavailable, ErrMsgUnavailableError},
}

// mapServiceErrorToUserMessage resolves err against serviceErrors. Anything
// unrecognised becomes a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}
	for _, se := range serviceErrors {
		if errors.Is(err, se.target) {
			return se.status, se.message
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
