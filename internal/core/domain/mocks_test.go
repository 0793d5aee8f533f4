package domain_test

import (
	"context"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
)

type fakeClientV2 struct{}

func (fakeClientV2) Provider() domain.Provider {
	return domain.Provider{Version: domain.ProtocolVersionV2}
}
func (fakeClientV2) ListMarkets(context.Context) ([]domain.Market, error) {
	return nil, nil
}
func (fakeClientV2) GetMarketBalance(
	context.Context, domain.Market,
) (*domain.MarketBalance, error) {
	return nil, nil
}
func (fakeClientV2) PreviewTrade(
	context.Context, domain.PreviewTradeArgs,
) (*domain.Preview, error) {
	return nil, nil
}
func (fakeClientV2) ProposeTrade(
	context.Context, domain.ProposeTradeArgs,
) ([]byte, error) {
	return nil, nil
}
func (fakeClientV2) CompleteTrade(context.Context, []byte) (string, error) {
	return "", nil
}
func (fakeClientV2) Close() error { return nil }
