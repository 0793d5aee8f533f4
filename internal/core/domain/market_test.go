package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
)

const (
	baseAsset  = "5ac9f65c0efcc4775e0baec4ec03abdde22473cd3cf33c0419ca290e0751b225"
	quoteAsset = "2dcf5a8834645654911964ec3602426fd3b9b4017554d3f9c19403e7fc1411d3"
	otherAsset = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func TestMarketValidate(t *testing.T) {
	t.Parallel()

	m := domain.Market{BaseAsset: baseAsset, QuoteAsset: quoteAsset}
	require.NoError(t, m.Validate())
}

func TestFailingMarketValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		market        domain.Market
		expectedError error
	}{
		{
			name:          "missing_base_asset",
			market:        domain.Market{QuoteAsset: quoteAsset},
			expectedError: domain.ErrMarketInvalidBaseAsset,
		},
		{
			name: "invalid_base_asset",
			market: domain.Market{
				BaseAsset: "invalidasset", QuoteAsset: quoteAsset,
			},
			expectedError: domain.ErrMarketInvalidBaseAsset,
		},
		{
			name:          "missing_quote_asset",
			market:        domain.Market{BaseAsset: baseAsset},
			expectedError: domain.ErrMarketInvalidQuoteAsset,
		},
		{
			name: "invalid_quote_asset",
			market: domain.Market{
				BaseAsset: baseAsset, QuoteAsset: "invalidasset",
			},
			expectedError: domain.ErrMarketInvalidQuoteAsset,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.market.Validate()
			require.EqualError(t, err, tt.expectedError.Error())
		})
	}
}

func TestMarketAccountsFor(t *testing.T) {
	t.Parallel()

	m := domain.Market{BaseAsset: baseAsset, QuoteAsset: quoteAsset}

	require.True(t, m.AccountsFor(baseAsset, quoteAsset))
	require.True(t, m.AccountsFor(quoteAsset, baseAsset))
	require.False(t, m.AccountsFor(baseAsset, otherAsset))
	require.False(t, m.AccountsFor(otherAsset, quoteAsset))
	require.False(t, m.AccountsFor(baseAsset, baseAsset))
}
