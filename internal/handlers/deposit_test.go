package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/Atulkumarjha/JusPay-sub000/internal/middlewares"
	"github.com/Atulkumarjha/JusPay-sub000/internal/services"
)

func TestDepositHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	newRequest := func(body string, authenticated bool) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/wallet/deposit", bytes.NewBufferString(body))
		if authenticated {
			req = req.WithContext(middlewares.InjectUserID(req.Context(), userID))
		}
		return req
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockCreditor(ctrl)
		mockSvc.EXPECT().
			Credit(gomock.Any(), userID, 40.0, "signup bonus").
			Return(140.0, 420.0, "ref-1", nil)

		handler := NewDepositHandler(mockSvc)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(`{"amount": 40, "description": "signup bonus"}`, true))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp DepositResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 140.0, resp.NewBalance)
		assert.Equal(t, 420.0, resp.FiatEquivalent)
		assert.Equal(t, "ref-1", resp.ReferenceID)
	})

	t.Run("invalid amount", func(t *testing.T) {
		mockSvc := NewMockCreditor(ctrl)
		mockSvc.EXPECT().
			Credit(gomock.Any(), userID, -1.0, "").
			Return(0.0, 0.0, "", services.ErrInvalidAmount)

		handler := NewDepositHandler(mockSvc)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(`{"amount": -1}`, true))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("account not found", func(t *testing.T) {
		mockSvc := NewMockCreditor(ctrl)
		mockSvc.EXPECT().
			Credit(gomock.Any(), userID, 40.0, "").
			Return(0.0, 0.0, "", services.ErrAccountNotFound)

		handler := NewDepositHandler(mockSvc)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(`{"amount": 40}`, true))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		handler := NewDepositHandler(NewMockCreditor(ctrl))

		rr := httptest.NewRecorder()
		handler(rr, newRequest(`{"amount": 40}`, false))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		handler := NewDepositHandler(NewMockCreditor(ctrl))

		rr := httptest.NewRecorder()
		handler(rr, newRequest(`{invalid`, true))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
