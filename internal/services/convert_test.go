package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConverter_ScenarioAmounts(t *testing.T) {
	// rate 3, fee 2%: withdrawing 40 tokens is 120 fiat, 2.4 fee, 117.6 net
	conv := Converter{Rate: 3, FeePercent: 2, MinNetAmount: 100}

	fiat := conv.TokenToFiat(40)
	assert.InDelta(t, 120.0, fiat, 1e-9)

	fee := conv.Fee(fiat)
	assert.InDelta(t, 2.4, fee, 1e-9)

	assert.InDelta(t, 117.6, fiat-fee, 1e-9)
}

func TestConverter_RoundTrip(t *testing.T) {
	conv := Converter{Rate: 3}

	for _, x := range []float64{0, 1, 40, 99.99, 12345.6789} {
		assert.InDelta(t, x, conv.FiatToToken(conv.TokenToFiat(x)), 1e-9)
	}
}

func TestConverter_ZeroFee(t *testing.T) {
	conv := Converter{Rate: 2, FeePercent: 0}
	assert.Equal(t, 0.0, conv.Fee(conv.TokenToFiat(50)))
}
