package discovery_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/internal/core/application/discovery"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
)

func TestComputeOrdersV1(t *testing.T) {
	t.Parallel()

	markets := []domain.Market{
		{BaseAsset: baseAsset, QuoteAsset: quoteAsset},
		{BaseAsset: baseAsset, QuoteAsset: otherAsset},
		{BaseAsset: quoteAsset, QuoteAsset: baseAsset},
	}
	newClient := func(domain.Provider) (domain.TraderClientV1, error) {
		return &mockClientV1{}, nil
	}

	orders, err := discovery.ComputeOrdersV1(
		markets, baseAsset, quoteAsset, newClient,
	)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	// Selling base for quote on the first market, buying base with quote on
	// the reversed one. The market on a foreign pair yields nothing.
	require.Equal(t, domain.TradeSell, orders[0].Type)
	require.Equal(t, markets[0], orders[0].Market)
	require.Equal(t, domain.TradeBuy, orders[1].Type)
	require.Equal(t, markets[2], orders[1].Market)
	for _, o := range orders {
		require.Equal(t, domain.ProtocolVersionV1, o.Version())
		require.NotNil(t, o.V1)
		require.Nil(t, o.V2)
	}
}

func TestComputeOrdersV2(t *testing.T) {
	t.Parallel()

	markets := []domain.Market{
		{BaseAsset: baseAsset, QuoteAsset: quoteAsset},
	}
	newClient := func(domain.Provider) (domain.TraderClientV2, error) {
		return &mockClientV2{}, nil
	}

	orders, err := discovery.ComputeOrdersV2(
		markets, quoteAsset, baseAsset, newClient,
	)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, domain.TradeBuy, orders[0].Type)
	require.Equal(t, domain.ProtocolVersionV2, orders[0].Version())
}

func TestFailingComputeOrders(t *testing.T) {
	t.Parallel()

	markets := []domain.Market{
		{BaseAsset: baseAsset, QuoteAsset: quoteAsset},
	}
	expectedErr := errors.New("failed to dial provider")
	newClient := func(domain.Provider) (domain.TraderClientV1, error) {
		return nil, expectedErr
	}

	orders, err := discovery.ComputeOrdersV1(
		markets, baseAsset, quoteAsset, newClient,
	)
	require.EqualError(t, err, expectedErr.Error())
	require.Nil(t, orders)
}
