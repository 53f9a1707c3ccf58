package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/Atulkumarjha/JusPay-sub000/internal/middlewares"
	"github.com/Atulkumarjha/JusPay-sub000/internal/models"
	"github.com/Atulkumarjha/JusPay-sub000/internal/services"
)

func newWithdrawRequest(t *testing.T, userID uuid.UUID, body WithdrawRequest) *http.Request {
	bodyBytes, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/wallet/withdraw", bytes.NewBuffer(bodyBytes))
	return req.WithContext(middlewares.InjectUserID(req.Context(), userID))
}

func TestWithdrawHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	requestID := uuid.New()

	initiator := NewMockWithdrawalInitiator(ctrl)
	settler := NewMockSettler(ctrl)

	beneficiary := models.BeneficiaryDetails{
		BankAccountNumber: "SIMB0000000001",
		RoutingCode:       "SIMB0000001",
	}
	pending := &models.WithdrawalRequestDB{
		RequestID:   requestID,
		AccountID:   userID,
		TokenAmount: 40,
		NetAmount:   117.6,
		Method:      models.MethodBankTransfer,
		Status:      models.WithdrawalPending,
	}
	completed := *pending
	completed.Status = models.WithdrawalCompleted
	completed.SettlementReferenceID = "settle_jp_order_1"

	initiator.EXPECT().
		InitiateWithdrawal(gomock.Any(), userID, 40.0, models.MethodBankTransfer, beneficiary).
		Return(pending, nil)
	settler.EXPECT().Process(gomock.Any(), requestID).Return(&completed, nil)

	handler := NewWithdrawHandler(initiator, settler)

	req := newWithdrawRequest(t, userID, WithdrawRequest{
		TokenAmount: 40,
		Method:      models.MethodBankTransfer,
		Beneficiary: beneficiary,
	})
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp WithdrawResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Withdrawal completed", resp.Message)
	assert.Equal(t, models.WithdrawalCompleted, resp.Request.Status)
	assert.Equal(t, "settle_jp_order_1", resp.Request.SettlementReferenceID)
}

func TestWithdrawHandler_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name          string
		serviceErr    error
		expectedError string
	}{
		{name: "invalid amount", serviceErr: services.ErrInvalidAmount, expectedError: "Invalid amount"},
		{name: "missing beneficiary", serviceErr: services.ErrMissingBeneficiaryDetails, expectedError: "Missing beneficiary details"},
		{name: "below minimum", serviceErr: services.ErrBelowMinimumNet, expectedError: "Net amount below minimum withdrawal"},
		{name: "insufficient balance", serviceErr: services.ErrInsufficientBalance, expectedError: "Insufficient balance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initiator := NewMockWithdrawalInitiator(ctrl)
			settler := NewMockSettler(ctrl)

			initiator.EXPECT().
				InitiateWithdrawal(gomock.Any(), userID, gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.serviceErr)

			handler := NewWithdrawHandler(initiator, settler)

			req := newWithdrawRequest(t, userID, WithdrawRequest{
				TokenAmount: 40,
				Method:      models.MethodUPI,
				Beneficiary: models.BeneficiaryDetails{UPIHandle: "alice@upi"},
			})
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedError, resp["error"])
		})
	}
}

func TestWithdrawHandler_SettlementErrorReturnsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	requestID := uuid.New()

	initiator := NewMockWithdrawalInitiator(ctrl)
	settler := NewMockSettler(ctrl)

	pending := &models.WithdrawalRequestDB{
		RequestID: requestID,
		AccountID: userID,
		Status:    models.WithdrawalPending,
	}

	initiator.EXPECT().
		InitiateWithdrawal(gomock.Any(), userID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pending, nil)
	settler.EXPECT().Process(gomock.Any(), requestID).Return(nil, errors.New("settlement unavailable"))

	handler := NewWithdrawHandler(initiator, settler)

	req := newWithdrawRequest(t, userID, WithdrawRequest{
		TokenAmount: 40,
		Method:      models.MethodUPI,
		Beneficiary: models.BeneficiaryDetails{UPIHandle: "alice@upi"},
	})
	rr := httptest.NewRecorder()
	handler(rr, req)

	// The tokens were debited and the request exists, so the client gets
	// the pending request back to poll.
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp WithdrawResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.WithdrawalPending, resp.Request.Status)
}

func TestWithdrawHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewWithdrawHandler(NewMockWithdrawalInitiator(ctrl), NewMockSettler(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/wallet/withdraw", bytes.NewBufferString("{}"))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
