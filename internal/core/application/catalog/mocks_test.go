package catalog_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
)

/*
 * TraderClientV1
 */
type mockClientV1 struct {
	mock.Mock
}

func (m *mockClientV1) Provider() domain.Provider {
	args := m.Called()
	return args.Get(0).(domain.Provider)
}

func (m *mockClientV1) ListMarkets(
	ctx context.Context,
) ([]domain.Market, error) {
	args := m.Called(ctx)

	var res []domain.Market
	if a := args.Get(0); a != nil {
		res = a.([]domain.Market)
	}
	return res, args.Error(1)
}

func (m *mockClientV1) GetMarketBalance(
	ctx context.Context, mkt domain.Market,
) (*domain.MarketBalance, error) {
	args := m.Called(ctx, mkt)

	var res *domain.MarketBalance
	if a := args.Get(0); a != nil {
		res = a.(*domain.MarketBalance)
	}
	return res, args.Error(1)
}

func (m *mockClientV1) PreviewTrade(
	ctx context.Context, previewArgs domain.PreviewTradeArgs,
) (*domain.Preview, error) {
	args := m.Called(ctx, previewArgs)

	var res *domain.Preview
	if a := args.Get(0); a != nil {
		res = a.(*domain.Preview)
	}
	return res, args.Error(1)
}

func (m *mockClientV1) ProposeTrade(
	ctx context.Context, proposeArgs domain.ProposeTradeArgs,
) ([]byte, error) {
	args := m.Called(ctx, proposeArgs)

	var res []byte
	if a := args.Get(0); a != nil {
		res = a.([]byte)
	}
	return res, args.Error(1)
}

func (m *mockClientV1) CompleteTrade(
	ctx context.Context, swapComplete []byte,
) (string, error) {
	args := m.Called(ctx, swapComplete)
	return args.String(0), args.Error(1)
}

func (m *mockClientV1) Close() error {
	args := m.Called()
	return args.Error(0)
}

/*
 * TraderClientV2
 */
type mockClientV2 struct {
	mock.Mock
}

func (m *mockClientV2) Provider() domain.Provider {
	args := m.Called()
	return args.Get(0).(domain.Provider)
}

func (m *mockClientV2) ListMarkets(
	ctx context.Context,
) ([]domain.Market, error) {
	args := m.Called(ctx)

	var res []domain.Market
	if a := args.Get(0); a != nil {
		res = a.([]domain.Market)
	}
	return res, args.Error(1)
}

func (m *mockClientV2) GetMarketBalance(
	ctx context.Context, mkt domain.Market,
) (*domain.MarketBalance, error) {
	args := m.Called(ctx, mkt)

	var res *domain.MarketBalance
	if a := args.Get(0); a != nil {
		res = a.(*domain.MarketBalance)
	}
	return res, args.Error(1)
}

func (m *mockClientV2) PreviewTrade(
	ctx context.Context, previewArgs domain.PreviewTradeArgs,
) (*domain.Preview, error) {
	args := m.Called(ctx, previewArgs)

	var res *domain.Preview
	if a := args.Get(0); a != nil {
		res = a.(*domain.Preview)
	}
	return res, args.Error(1)
}

func (m *mockClientV2) ProposeTrade(
	ctx context.Context, proposeArgs domain.ProposeTradeArgs,
) ([]byte, error) {
	args := m.Called(ctx, proposeArgs)

	var res []byte
	if a := args.Get(0); a != nil {
		res = a.([]byte)
	}
	return res, args.Error(1)
}

func (m *mockClientV2) CompleteTrade(
	ctx context.Context, swapComplete []byte,
) (string, error) {
	args := m.Called(ctx, swapComplete)
	return args.String(0), args.Error(1)
}

func (m *mockClientV2) Close() error {
	args := m.Called()
	return args.Error(0)
}
