package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/Atulkumarjha/JusPay-sub000/internal/logger"
	"github.com/Atulkumarjha/JusPay-sub000/internal/middlewares"
	"github.com/Atulkumarjha/JusPay-sub000/internal/services"
)

// BalanceGetter defines the interface that the service must implement.
type BalanceGetter interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (tokens, fiatEquivalent float64, err error)
}

// BalanceResponse represents a successful response with the wallet balance
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Token balance
	// default: 100.0
	TokenBalance float64 `json:"token_balance"`

	// Fiat equivalent at the fixed conversion rate
	// default: 300.0
	FiatEquivalent float64 `json:"fiat_equivalent"`
}

// BalanceErrorResponse represents an error response when fetching the balance
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching the wallet balance.
// @Summary Get wallet balance
// @Description Returns the token balance and its fiat equivalent at the fixed rate
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Wallet balance"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.BalanceErrorResponse "Account not found"
// @Failure 500 {object} handlers.BalanceErrorResponse "Internal server error"
// @Router /balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(svc BalanceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		tokens, fiat, err := svc.GetBalance(ctx, userID)
		if err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BalanceErrorResponse{
					Error: "Account not found",
				})
				return
			}
			logger.Log.Errorw("failed to get balance", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BalanceErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{
			TokenBalance:   tokens,
			FiatEquivalent: fiat,
		})
	}
}

// RegisterGetBalanceHandler registers routes for fetching the balance
func RegisterGetBalanceHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/balance", h)
}
