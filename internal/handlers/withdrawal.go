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

// WithdrawalGetter defines the service that looks up withdrawal requests.
type WithdrawalGetter interface {
	GetWithdrawal(ctx context.Context, requestID uuid.UUID) (*models.WithdrawalRequestDB, error)
}

// WithdrawalStatusResponse represents a withdrawal status response
// swagger:model WithdrawalStatusResponse
type WithdrawalStatusResponse struct {
	// The withdrawal request
	Request *models.WithdrawalRequestDB `json:"request"`
}

// WithdrawalStatusErrorResponse represents an error response for status lookups
// swagger:model WithdrawalStatusErrorResponse
type WithdrawalStatusErrorResponse struct {
	// Error message
	// default: Withdrawal request not found
	Error string `json:"error"`
}

// NewGetWithdrawalHandler returns an HTTP handler for withdrawal status lookups.
// @Summary Get withdrawal status
// @Description Returns a withdrawal request by id, restricted to the authenticated owner
// @Tags wallet
// @Produce json
// @Param id path string true "Withdrawal request id"
// @Success 200 {object} handlers.WithdrawalStatusResponse "Withdrawal request"
// @Failure 401 {object} handlers.WithdrawalStatusErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.WithdrawalStatusErrorResponse "Not found"
// @Router /wallet/withdrawals/{id} [get]
// @Security BearerAuth
func NewGetWithdrawalHandler(svc WithdrawalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WithdrawalStatusErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		requestID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawalStatusErrorResponse{
				Error: "invalid request id",
			})
			return
		}

		request, err := svc.GetWithdrawal(ctx, requestID)
		if err != nil {
			if errors.Is(err, services.ErrWithdrawalNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WithdrawalStatusErrorResponse{
					Error: "Withdrawal request not found",
				})
				return
			}
			logger.Log.Errorw("failed to get withdrawal", "requestID", requestID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WithdrawalStatusErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		// Another user's request is indistinguishable from a missing one.
		if request.AccountID != userID {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(WithdrawalStatusErrorResponse{
				Error: "Withdrawal request not found",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WithdrawalStatusResponse{
			Request: request,
		})
	}
}

// RegisterGetWithdrawalHandler registers routes for withdrawal status lookups
func RegisterGetWithdrawalHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/wallet/withdrawals/{id}", h)
}
