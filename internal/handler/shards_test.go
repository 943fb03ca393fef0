package handler

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/SpinForge_Go/internal/domain"
)

func newShardRouter(svc *MockShardService) http.Handler {
	h := NewShardHandler(svc)
	r := chi.NewRouter()
	r.Get("/users/{userID}/shards", h.HandleGetBalance)
	r.Post("/users/{userID}/shards/redeem", h.HandleRedeem)
	return r
}

func TestHandleGetBalance(t *testing.T) {
	svc := &MockShardService{}
	bal := domain.NewShardBalance("p1")
	bal.Counts[domain.ShardTierA] = 7
	svc.On("GetOrCreateBalance", mock.Anything, "p1").Return(bal, nil)

	w := serve(newShardRouter(svc), "GET", "/users/p1/shards", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"A":7`)
	svc.AssertExpectations(t)
}

func TestHandleRedeem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockShardService{}
		bal := domain.NewShardBalance("p1")
		svc.On("RedeemShards", mock.Anything, "p1", domain.ShardTierB, 0).Return(&domain.RedemptionResult{
			Success: true, Message: "redeemed", Balance: bal,
		}, nil)

		w := serve(newShardRouter(svc), "POST", "/users/p1/shards/redeem", `{"tier":"b"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		svc.AssertExpectations(t)
	})

	t.Run("Insufficient Shards", func(t *testing.T) {
		svc := &MockShardService{}
		bal := domain.NewShardBalance("p1")
		bal.Counts[domain.ShardTierS] = 3
		svc.On("RedeemShards", mock.Anything, "p1", domain.ShardTierS, 10).Return(&domain.RedemptionResult{
			Success: false, Error: domain.ErrInsufficientShards, Message: "insufficient shards", Balance: bal,
		}, nil)

		w := serve(newShardRouter(svc), "POST", "/users/p1/shards/redeem", `{"tier":"S","required":10}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
		assert.Contains(t, w.Body.String(), `"S":3`)
	})

	t.Run("Unknown Tier", func(t *testing.T) {
		svc := &MockShardService{}
		w := serve(newShardRouter(svc), "POST", "/users/p1/shards/redeem", `{"tier":"Z"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"tier":"Invalid shard tier"`)
		svc.AssertNotCalled(t, "RedeemShards", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Store Failure", func(t *testing.T) {
		svc := &MockShardService{}
		svc.On("RedeemShards", mock.Anything, "p1", domain.ShardTierC, 0).Return(nil, assert.AnError)

		w := serve(newShardRouter(svc), "POST", "/users/p1/shards/redeem", `{"tier":"C"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
