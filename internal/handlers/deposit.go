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

// Creditor defines the interface that the service must implement.
type Creditor interface {
	Credit(ctx context.Context, userID uuid.UUID, amount float64, description string) (newBalance, fiatEquivalent float64, referenceID string, err error)
}

// DepositRequest represents the JSON body for a token deposit
// swagger:model DepositRequest
type DepositRequest struct {
	// Token amount to credit
	// required: true
	// default: 40.0
	Amount float64 `json:"amount"`

	// Free-form description recorded on the ledger entry
	// default: signup bonus
	Description string `json:"description"`
}

// DepositResponse represents a successful deposit response
// swagger:model DepositResponse
type DepositResponse struct {
	// Success message
	// default: Deposit successful
	Message string `json:"message"`

	// New token balance
	NewBalance float64 `json:"new_balance"`

	// Fiat equivalent of the new balance
	FiatEquivalent float64 `json:"fiat_equivalent"`

	// Reference id of the ledger entry
	ReferenceID string `json:"reference_id"`
}

// DepositErrorResponse represents an error response for deposits
// swagger:model DepositErrorResponse
type DepositErrorResponse struct {
	// Error message
	// default: Invalid amount
	Error string `json:"error"`
}

// NewDepositHandler returns an HTTP handler for crediting tokens.
// @Summary Deposit tokens
// @Description Credits tokens to the wallet and appends a ledger entry atomically
// @Tags wallet
// @Accept json
// @Produce json
// @Param depositRequest body handlers.DepositRequest true "Deposit Request"
// @Success 200 {object} handlers.DepositResponse "Deposit successful"
// @Failure 400 {object} handlers.DepositErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.DepositErrorResponse "Unauthorized"
// @Router /wallet/deposit [post]
// @Security BearerAuth
func NewDepositHandler(svc Creditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DepositErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DepositErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		newBalance, fiat, referenceID, err := svc.Credit(ctx, userID, req.Amount, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DepositErrorResponse{
					Error: "Invalid amount",
				})
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DepositErrorResponse{
					Error: "Account not found",
				})
			default:
				logger.Log.Errorw("failed to deposit", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DepositErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DepositResponse{
			Message:        "Deposit successful",
			NewBalance:     newBalance,
			FiatEquivalent: fiat,
			ReferenceID:    referenceID,
		})
	}
}

// RegisterDepositHandler registers routes for depositing tokens
func RegisterDepositHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet/deposit", h)
}
