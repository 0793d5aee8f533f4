package domain

import "encoding/hex"

// Market is a tradable asset pair offered by one provider, along with its
// current liquidity and fee terms. Markets are re-fetched at every discovery
// cycle and never cached across calls.
type Market struct {
	Provider   Provider
	BaseAsset  string
	QuoteAsset string
	// BaseAmount and QuoteAmount are the provider's current liquidity.
	// A nil pointer means the balance could not be fetched and is undefined.
	BaseAmount  *uint64
	QuoteAmount *uint64
	// PercentageFee is expressed in basis points.
	PercentageFee uint64
	FixedBaseFee  uint64
	FixedQuoteFee uint64
	// FeeAsset is populated only by V2 providers, where trading fees can be
	// paid in either asset of the pair.
	FeeAsset string
}

// Validate cheks whether the current market is well-formed.
func (m *Market) Validate() error {
	if !isValidAsset(m.BaseAsset) {
		return ErrMarketInvalidBaseAsset
	}
	if !isValidAsset(m.QuoteAsset) {
		return ErrMarketInvalidQuoteAsset
	}
	return nil
}

// AccountsFor returns whether the market can satisfy a swap of the given
// (sent, received) asset pair in either direction.
func (m *Market) AccountsFor(sentAsset, receivedAsset string) bool {
	sell := sentAsset == m.BaseAsset && receivedAsset == m.QuoteAsset
	buy := sentAsset == m.QuoteAsset && receivedAsset == m.BaseAsset
	return sell || buy
}

func isValidAsset(asset string) bool {
	buf, err := hex.DecodeString(asset)
	return err == nil && len(buf) == 32
}
