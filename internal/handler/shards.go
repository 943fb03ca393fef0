package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/shards"
)

// ShardHandler serves the shard ledger
type ShardHandler struct {
	service shards.Service
}

// NewShardHandler creates a new shard handler
func NewShardHandler(service shards.Service) *ShardHandler {
	return &ShardHandler{service: service}
}

// RedeemRequest is the body of POST /users/{userID}/shards/redeem.
// Required defaults to the configured threshold.
type RedeemRequest struct {
	Tier     string `json:"tier" validate:"required,shardtier"`
	Required int    `json:"required" validate:"gte=0,lte=1000000"`
}

// RedeemResponse reports a redemption attempt
type RedeemResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Balance *domain.ShardBalance `json:"balance,omitempty"`
}

// HandleGetBalance returns the player's balance, creating an empty one
func (h *ShardHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	bal, err := h.service.GetOrCreateBalance(r.Context(), chi.URLParam(r, URLParamUserID))
	if err != nil {
		respondServiceError(w, r, ErrMsgGetShardsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, bal)
}

// HandleRedeem debits shards of one tier. Insufficient shards answer 409
// with the unchanged balance.
func (h *ShardHandler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[RedeemRequest](w, r, "RedeemShards")
	if !ok {
		return
	}

	tier, err := domain.ParseShardTier(req.Tier)
	if err != nil {
		respondServiceError(w, r, ErrMsgRedeemShardsFailed, err)
		return
	}

	res, err := h.service.RedeemShards(r.Context(), chi.URLParam(r, URLParamUserID), tier, req.Required)
	if err != nil {
		respondServiceError(w, r, ErrMsgRedeemShardsFailed, err)
		return
	}

	status := http.StatusOK
	if !res.Success {
		status, _ = mapServiceErrorToUserMessage(res.Error)
	}
	respondJSON(w, status, RedeemResponse{Success: res.Success, Message: res.Message, Balance: res.Balance})
}
