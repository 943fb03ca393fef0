package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/logger"
	"github.com/osse101/SpinForge_Go/internal/slots"
)

// SpinHandler serves spins, result history and RTP diagnostics
type SpinHandler struct {
	service slots.Service
}

// NewSpinHandler creates a new spin handler
func NewSpinHandler(service slots.Service) *SpinHandler {
	return &SpinHandler{service: service}
}

// SpinRequest is the body of POST /api/v1/spin. The caller has already
// debited bet_amount from the player's balance.
type SpinRequest struct {
	UserID        string  `json:"user_id" validate:"required,max=128,printascii"`
	BetAmount     float64 `json:"bet_amount" validate:"gte=0"`
	Mode          string  `json:"mode" validate:"required,gridmode"`
	FreeSpin      bool    `json:"free_spin"`
	UserSpinCount int     `json:"user_spin_count" validate:"gte=0"`
	Volatility    string  `json:"volatility,omitempty" validate:"omitempty,max=32"`
}

// ResultsResponse lists a user's results, newest first
type ResultsResponse struct {
	UserID  string              `json:"user_id"`
	Results []domain.GameResult `json:"results"`
}

// RTPStateResponse is the diagnostics view of one RTP scope
type RTPStateResponse struct {
	domain.RTPState
	CurrentRTP float64 `json:"current_rtp"`
}

// HandleSpin resolves one spin
func (h *SpinHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[SpinRequest](w, r, "Spin")
	if !ok {
		return
	}

	mode, err := domain.ParseGridMode(req.Mode)
	if err != nil {
		respondServiceError(w, r, ErrMsgSpinFailed, err)
		return
	}

	res, err := h.service.ResolveSpin(r.Context(), slots.SpinRequest{
		UserID:        req.UserID,
		BetAmount:     req.BetAmount,
		Mode:          mode,
		FreeSpin:      req.FreeSpin,
		UserSpinCount: req.UserSpinCount,
		Volatility:    req.Volatility,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgSpinFailed, err)
		return
	}

	logger.FromContext(r.Context()).Debug(LogMsgSpinResolved,
		"user_id", req.UserID, "game_id", res.GameID, "payout", res.Payout)
	respondJSON(w, http.StatusOK, res)
}

// HandleGetResults lists a user's stored results
func (h *SpinHandler) HandleGetResults(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, URLParamUserID)
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}

	results, err := h.service.FindResults(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetResultsFailed, err)
		return
	}
	if results == nil {
		results = []domain.GameResult{}
	}
	respondJSON(w, http.StatusOK, ResultsResponse{UserID: userID, Results: results})
}

// HandleGetResult returns one stored result by game id
func (h *SpinHandler) HandleGetResult(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.FindResult(r.Context(), chi.URLParam(r, URLParamGameID))
	if err != nil {
		respondServiceError(w, r, ErrMsgGetResultsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleGetFreeSpins reports the user's bonus round for ?mode=, inactive when none
func (h *SpinHandler) HandleGetFreeSpins(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, URLParamUserID)
	mode, ok := modeParam(w, r, ErrMsgGetFreeSpinsFailed)
	if !ok {
		return
	}

	state := h.service.FreeSpins(userID, mode)
	if state == nil {
		state = &domain.FreeSpinState{}
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleGetRTPState reports the RTP state a user's spins of ?mode= are
// recorded under. user_id only matters for per-user scopes.
func (h *SpinHandler) HandleGetRTPState(w http.ResponseWriter, r *http.Request) {
	mode, ok := modeParam(w, r, ErrMsgGetRTPStateFailed)
	if !ok {
		return
	}

	state, err := h.service.RTPState(r.Context(), mode, r.URL.Query().Get(QueryParamUserID))
	if err != nil {
		respondServiceError(w, r, ErrMsgGetRTPStateFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, RTPStateResponse{RTPState: state, CurrentRTP: state.CurrentRTP()})
}
