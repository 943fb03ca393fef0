package handler

import (
	"context"
	"net/http"

	"github.com/osse101/SpinForge_Go/internal/domain"
)

// PriceQuoter quotes the spin price of a mode and volatility profile
type PriceQuoter interface {
	Quote(ctx context.Context, mode domain.GridMode, profile string) (domain.PriceBreakdown, error)
}

// HandleGetPrice quotes ?mode= at ?volatility= (the mode default when empty)
func HandleGetPrice(quoter PriceQuoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, ok := modeParam(w, r, ErrMsgQuotePriceFailed)
		if !ok {
			return
		}

		quote, err := quoter.Quote(r.Context(), mode, r.URL.Query().Get(QueryParamVolatility))
		if err != nil {
			respondServiceError(w, r, ErrMsgQuotePriceFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, quote)
	}
}
