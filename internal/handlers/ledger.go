package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/Atulkumarjha/JusPay-sub000/internal/logger"
	"github.com/Atulkumarjha/JusPay-sub000/internal/middlewares"
	"github.com/Atulkumarjha/JusPay-sub000/internal/models"
)

// LedgerGetter defines the service that lists ledger entries.
type LedgerGetter interface {
	GetLedger(ctx context.Context, userID uuid.UUID, limit int) ([]models.LedgerEntryDB, error)
}

// LedgerResponse represents a ledger listing response
// swagger:model LedgerResponse
type LedgerResponse struct {
	// Ledger entries, newest first
	Entries []models.LedgerEntryDB `json:"entries"`
}

// LedgerErrorResponse represents an error response for ledger listings
// swagger:model LedgerErrorResponse
type LedgerErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetLedgerHandler returns an HTTP handler for listing ledger entries.
// @Summary List ledger entries
// @Description Returns the newest ledger entries for the authenticated user
// @Tags wallet
// @Produce json
// @Param limit query int false "Maximum entries to return (default 50)"
// @Success 200 {object} handlers.LedgerResponse "Ledger entries"
// @Failure 401 {object} handlers.LedgerErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.LedgerErrorResponse "Internal server error"
// @Router /wallet/ledger [get]
// @Security BearerAuth
func NewGetLedgerHandler(svc LedgerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LedgerErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		entries, err := svc.GetLedger(ctx, userID, limit)
		if err != nil {
			logger.Log.Errorw("failed to list ledger", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LedgerErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LedgerResponse{
			Entries: entries,
		})
	}
}

// RegisterGetLedgerHandler registers routes for listing ledger entries
func RegisterGetLedgerHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/wallet/ledger", h)
}
