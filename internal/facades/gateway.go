package facades

import (
	"context"
	"errors"
	"sync"

	"github.com/Atulkumarjha/JusPay-sub000/internal/logger"
)

var (
	// ErrUnknownGateway is returned when selecting a gateway that was never registered.
	ErrUnknownGateway = errors.New("unknown gateway")
	// ErrGatewayUnavailable is returned when the current gateway cannot produce a tracking order.
	ErrGatewayUnavailable = errors.New("gateway unavailable")
)

// TrackingOrder describes the order a gateway tracks for an outgoing
// settlement. Tracking is observability only, never correctness.
type TrackingOrder struct {
	Amount   float64 // Net fiat amount being settled
	Currency string  // Currency code of the settlement
	Receipt  string  // Caller-side reference, usually the withdrawal request id
}

// TrackingGateway is one payment-provider adapter.
type TrackingGateway interface {
	Name() string                                                        // Provider name, e.g. "juspay"
	CreateTrackingOrder(ctx context.Context, order TrackingOrder) (string, error) // Returns the provider's tracking id
	HealthCheck(ctx context.Context) error                               // Reports provider availability
}

// GatewayManager selects and proxies to one of several interchangeable
// tracking gateway adapters.
type GatewayManager struct {
	mu       sync.RWMutex
	gateways map[string]TrackingGateway
	current  string
}

// NewGatewayManager registers the given gateways; the first one becomes current.
func NewGatewayManager(gateways ...TrackingGateway) *GatewayManager {
	m := &GatewayManager{gateways: make(map[string]TrackingGateway, len(gateways))}
	for i, gw := range gateways {
		m.gateways[gw.Name()] = gw
		if i == 0 {
			m.current = gw.Name()
		}
	}
	return m
}

// SelectGateway switches the active gateway.
func (m *GatewayManager) SelectGateway(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.gateways[name]; !ok {
		return ErrUnknownGateway
	}
	m.current = name
	logger.Log.Infow("gateway selected", "gateway", name)
	return nil
}

// CurrentGatewayName returns the name of the active gateway.
func (m *GatewayManager) CurrentGatewayName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// CreateTrackingOrder asks the active gateway for a tracking id.
func (m *GatewayManager) CreateTrackingOrder(ctx context.Context, order TrackingOrder) (string, error) {
	m.mu.RLock()
	gw, ok := m.gateways[m.current]
	m.mu.RUnlock()

	if !ok {
		return "", ErrGatewayUnavailable
	}

	trackingID, err := gw.CreateTrackingOrder(ctx, order)
	if err != nil {
		logger.Log.Errorw("failed to create tracking order", "gateway", gw.Name(), "receipt", order.Receipt, "error", err)
		return "", ErrGatewayUnavailable
	}
	return trackingID, nil
}

// HealthCheck reports per-gateway availability: "ok" or the error text.
func (m *GatewayManager) HealthCheck(ctx context.Context) map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status := make(map[string]string, len(m.gateways))
	for name, gw := range m.gateways {
		if err := gw.HealthCheck(ctx); err != nil {
			status[name] = err.Error()
			continue
		}
		status[name] = "ok"
	}
	return status
}
