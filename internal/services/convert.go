package services

// Converter holds the fixed wallet conversion constants. All amount
// arithmetic goes through these pure methods so every calculation is
// reproducible in isolation.
type Converter struct {
	Rate         float64 // fiat units per token
	FeePercent   float64 // withdrawal processing fee, percent of the fiat amount
	MinNetAmount float64 // minimum fiat payout after the fee
}

// TokenToFiat converts a token amount to fiat at the fixed rate.
func (c Converter) TokenToFiat(tokens float64) float64 {
	return tokens * c.Rate
}

// FiatToToken converts a fiat amount back to tokens.
func (c Converter) FiatToToken(fiat float64) float64 {
	return fiat / c.Rate
}

// Fee computes the processing fee for a fiat amount.
func (c Converter) Fee(fiat float64) float64 {
	return fiat * c.FeePercent / 100
}
