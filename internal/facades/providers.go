package facades

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Mocked provider adapters. Each one fabricates tracking ids in the
// provider's id style; none of them talks to a real network.

// JusPayGateway mocks the JusPay order-tracking API.
type JusPayGateway struct{}

func NewJusPayGateway() *JusPayGateway { return &JusPayGateway{} }

func (g *JusPayGateway) Name() string { return "juspay" }

func (g *JusPayGateway) CreateTrackingOrder(ctx context.Context, order TrackingOrder) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("jp_order_%s", uuid.NewString()), nil
}

func (g *JusPayGateway) HealthCheck(ctx context.Context) error { return ctx.Err() }

// CashfreeGateway mocks the Cashfree order-tracking API.
type CashfreeGateway struct{}

func NewCashfreeGateway() *CashfreeGateway { return &CashfreeGateway{} }

func (g *CashfreeGateway) Name() string { return "cashfree" }

func (g *CashfreeGateway) CreateTrackingOrder(ctx context.Context, order TrackingOrder) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("cf_order_%s", uuid.NewString()), nil
}

func (g *CashfreeGateway) HealthCheck(ctx context.Context) error { return ctx.Err() }

// RazorpayGateway mocks the Razorpay order-tracking API.
type RazorpayGateway struct{}

func NewRazorpayGateway() *RazorpayGateway { return &RazorpayGateway{} }

func (g *RazorpayGateway) Name() string { return "razorpay" }

func (g *RazorpayGateway) CreateTrackingOrder(ctx context.Context, order TrackingOrder) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("rzp_order_%s", uuid.NewString()), nil
}

func (g *RazorpayGateway) HealthCheck(ctx context.Context) error { return ctx.Err() }
