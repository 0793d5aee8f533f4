package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
)

func TestTradeTypeForPair(t *testing.T) {
	t.Parallel()

	m := domain.Market{BaseAsset: baseAsset, QuoteAsset: quoteAsset}

	tradeType, err := domain.TradeTypeForPair(m, baseAsset, quoteAsset)
	require.NoError(t, err)
	require.Equal(t, domain.TradeSell, tradeType)

	tradeType, err = domain.TradeTypeForPair(m, quoteAsset, baseAsset)
	require.NoError(t, err)
	require.Equal(t, domain.TradeBuy, tradeType)

	_, err = domain.TradeTypeForPair(m, baseAsset, otherAsset)
	require.EqualError(t, err, domain.ErrMarketPairMismatch.Error())
}

func TestTradeTypeValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, domain.TradeBuy.Validate())
	require.NoError(t, domain.TradeSell.Validate())
	require.EqualError(
		t, domain.TradeType(42).Validate(), domain.ErrInvalidTradeType.Error(),
	)
}

func TestTradeOrderAssets(t *testing.T) {
	t.Parallel()

	m := domain.Market{BaseAsset: baseAsset, QuoteAsset: quoteAsset}

	sell := domain.NewTradeOrderV1(m, domain.TradeSell, nil)
	require.Equal(t, baseAsset, sell.SentAsset())
	require.Equal(t, quoteAsset, sell.ReceivedAsset())
	require.Equal(t, domain.ProtocolVersionV1, sell.Version())
	require.NotEmpty(t, sell.ID)

	buy := domain.NewTradeOrderV2(m, domain.TradeBuy, fakeClientV2{})
	require.Equal(t, quoteAsset, buy.SentAsset())
	require.Equal(t, baseAsset, buy.ReceivedAsset())
	require.Equal(t, domain.ProtocolVersionV2, buy.Version())
	require.NotEqual(t, sell.ID, buy.ID)
}
