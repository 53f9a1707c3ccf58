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
	"github.com/Atulkumarjha/JusPay-sub000/internal/models"
	"github.com/Atulkumarjha/JusPay-sub000/internal/services"
)

// WithdrawalInitiator defines the service that creates withdrawal requests.
type WithdrawalInitiator interface {
	InitiateWithdrawal(ctx context.Context, userID uuid.UUID, tokenAmount float64, method string, beneficiary models.BeneficiaryDetails) (*models.WithdrawalRequestDB, error)
}

// Settler defines the service that settles a withdrawal request.
type Settler interface {
	Process(ctx context.Context, requestID uuid.UUID) (*models.WithdrawalRequestDB, error)
}

// WithdrawRequest represents the JSON body for a token withdrawal
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Token amount to withdraw
	// required: true
	// default: 40.0
	TokenAmount float64 `json:"token_amount"`

	// Payout method: bank_transfer or upi
	// required: true
	// default: bank_transfer
	Method string `json:"method"`

	// Beneficiary payout destination for the chosen method
	Beneficiary models.BeneficiaryDetails `json:"beneficiary"`
}

// WithdrawResponse represents a withdrawal response
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// Success message
	// default: Withdrawal settled
	Message string `json:"message"`

	// The withdrawal request after settlement
	Request *models.WithdrawalRequestDB `json:"request"`
}

// WithdrawErrorResponse represents an error response for withdrawals
// swagger:model WithdrawErrorResponse
type WithdrawErrorResponse struct {
	// Error message
	// default: Insufficient balance
	Error string `json:"error"`
}

// NewWithdrawHandler returns an HTTP handler that initiates a
// withdrawal and settles it in the same request. The token debit
// commits before settlement starts; a settlement failure therefore
// comes back as a failed request, not an HTTP error.
// @Summary Withdraw tokens
// @Description Debits tokens, converts to fiat at the fixed rate minus the processing fee, and settles to the beneficiary
// @Tags wallet
// @Accept json
// @Produce json
// @Param withdrawRequest body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} handlers.WithdrawResponse "Withdrawal settled"
// @Failure 400 {object} handlers.WithdrawErrorResponse "Validation failure or insufficient balance"
// @Failure 401 {object} handlers.WithdrawErrorResponse "Unauthorized"
// @Router /wallet/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(initiator WithdrawalInitiator, settler Settler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		request, err := initiator.InitiateWithdrawal(ctx, userID, req.TokenAmount, req.Method, req.Beneficiary)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, services.ErrMissingBeneficiaryDetails):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Missing beneficiary details"})
			case errors.Is(err, services.ErrBelowMinimumNet):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Net amount below minimum withdrawal"})
			case errors.Is(err, services.ErrInsufficientBalance):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Insufficient balance"})
			default:
				logger.Log.Errorw("failed to initiate withdrawal", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Internal server error"})
			}
			return
		}

		settled, err := settler.Process(ctx, request.RequestID)
		if err != nil {
			// The request row exists; report it as-is so the client can
			// poll its status.
			logger.Log.Errorw("settlement did not complete", "requestID", request.RequestID, "error", err)
			settled = request
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WithdrawResponse{
			Message: "Withdrawal " + settled.Status,
			Request: settled,
		})
	}
}

// RegisterWithdrawHandler registers routes for withdrawing tokens
func RegisterWithdrawHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet/withdraw", h)
}
