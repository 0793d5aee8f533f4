package domain

import "github.com/shopspring/decimal"

// Price is the market price quoted from both sides of the pair.
type Price struct {
	BasePrice  decimal.Decimal
	QuotePrice decimal.Decimal
}

// Preview is a provider's non-binding quote for a (market, direction, amount,
// asset) query. It is transient and used only to rank orders.
type Preview struct {
	Price Price
	// Amount and Asset are the counter-amount and counter-asset quoted by the
	// provider for the queried amount.
	Amount uint64
	Asset  string
	// FeeAmount and FeeAsset are returned by V2 providers only.
	FeeAmount uint64
	FeeAsset  string
}

// MarketBalance is the liquidity of a market at preview time.
type MarketBalance struct {
	BaseAmount  uint64
	QuoteAmount uint64
}
