// Package providerv2 implements the trader client for providers speaking the
// current trade protocol, fully unary rpcs exchanging swap messages over
// PSETv2 transactions with unblinded input disclosures.
package providerv2

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	tdexv2 "github.com/tdex-network/tdex-daemon/api-spec/protobuf/gen/tdex/v2"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
	grpcutil "github.com/tdex-network/tdex-trader/internal/infrastructure/provider"
	"github.com/tdex-network/tdex-trader/pkg/circuitbreaker"
)

type client struct {
	provider domain.Provider
	conn     *grpc.ClientConn
	client   tdexv2.TradeServiceClient
	cb       *gobreaker.CircuitBreaker
}

// NewTraderClient dials the provider endpoint and returns a client for its
// trade interface.
func NewTraderClient(provider domain.Provider) (domain.TraderClientV2, error) {
	if err := provider.Validate(); err != nil {
		return nil, err
	}
	conn, err := grpcutil.Dial(provider.Endpoint)
	if err != nil {
		return nil, err
	}
	return &client{
		provider: provider,
		conn:     conn,
		client:   tdexv2.NewTradeServiceClient(conn),
		cb:       circuitbreaker.NewCircuitBreaker(provider.Endpoint),
	}, nil
}

func (c *client) Provider() domain.Provider {
	return c.provider
}

func (c *client) ListMarkets(ctx context.Context) ([]domain.Market, error) {
	iRes, err := c.cb.Execute(func() (interface{}, error) {
		return c.client.ListMarkets(ctx, &tdexv2.ListMarketsRequest{})
	})
	if err != nil {
		return nil, err
	}
	res := iRes.(*tdexv2.ListMarketsResponse)

	// Fee terms are direction-dependent and come with every preview, the
	// listing only pins the tradable pairs.
	markets := make([]domain.Market, 0, len(res.GetMarkets()))
	for _, m := range res.GetMarkets() {
		markets = append(markets, domain.Market{
			Provider:   c.provider,
			BaseAsset:  m.GetMarket().GetBaseAsset(),
			QuoteAsset: m.GetMarket().GetQuoteAsset(),
		})
	}
	return markets, nil
}

func (c *client) GetMarketBalance(
	ctx context.Context, mkt domain.Market,
) (*domain.MarketBalance, error) {
	if err := mkt.Validate(); err != nil {
		return nil, err
	}

	iRes, err := c.cb.Execute(func() (interface{}, error) {
		return c.client.GetMarketBalance(ctx, &tdexv2.GetMarketBalanceRequest{
			Market: &tdexv2.Market{
				BaseAsset:  mkt.BaseAsset,
				QuoteAsset: mkt.QuoteAsset,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	res := iRes.(*tdexv2.GetMarketBalanceResponse)

	balance := res.GetBalance()
	if balance == nil {
		return nil, fmt.Errorf(
			"provider %s returned no balance for market %s-%s",
			c.provider.Endpoint, mkt.BaseAsset, mkt.QuoteAsset,
		)
	}
	return &domain.MarketBalance{
		BaseAmount:  balance.GetBaseAmount(),
		QuoteAmount: balance.GetQuoteAmount(),
	}, nil
}

func (c *client) PreviewTrade(
	ctx context.Context, args domain.PreviewTradeArgs,
) (*domain.Preview, error) {
	if err := args.Validate(); err != nil {
		return nil, err
	}

	iRes, err := c.cb.Execute(func() (interface{}, error) {
		return c.client.PreviewTrade(ctx, &tdexv2.PreviewTradeRequest{
			Market: &tdexv2.Market{
				BaseAsset:  args.Market.BaseAsset,
				QuoteAsset: args.Market.QuoteAsset,
			},
			Type:     tdexv2.TradeType(args.Type),
			Amount:   args.Amount,
			Asset:    args.Asset,
			FeeAsset: args.FeeAsset,
		})
	})
	if err != nil {
		return nil, err
	}
	res := iRes.(*tdexv2.PreviewTradeResponse)

	previews := res.GetPreviews()
	if len(previews) <= 0 {
		return nil, fmt.Errorf(
			"provider %s returned no preview for market %s-%s",
			c.provider.Endpoint, args.Market.BaseAsset, args.Market.QuoteAsset,
		)
	}
	preview := previews[0]
	return &domain.Preview{
		Price: domain.Price{
			BasePrice:  decimal.NewFromFloat(preview.GetPrice().GetBasePrice()),
			QuotePrice: decimal.NewFromFloat(preview.GetPrice().GetQuotePrice()),
		},
		Amount:    preview.GetAmount(),
		Asset:     preview.GetAsset(),
		FeeAmount: preview.GetFeeAmount(),
		FeeAsset:  preview.GetFeeAsset(),
	}, nil
}

func (c *client) ProposeTrade(
	ctx context.Context, args domain.ProposeTradeArgs,
) ([]byte, error) {
	if err := args.Market.Validate(); err != nil {
		return nil, err
	}
	swapRequest := &tdexv2.SwapRequest{}
	if err := proto.Unmarshal(args.SwapRequest, swapRequest); err != nil {
		return nil, fmt.Errorf("invalid swap request message: %w", err)
	}

	iRes, err := c.cb.Execute(func() (interface{}, error) {
		return c.client.ProposeTrade(ctx, &tdexv2.ProposeTradeRequest{
			Market: &tdexv2.Market{
				BaseAsset:  args.Market.BaseAsset,
				QuoteAsset: args.Market.QuoteAsset,
			},
			Type:        tdexv2.TradeType(args.Type),
			SwapRequest: swapRequest,
			FeeAsset:    args.FeeAsset,
			FeeAmount:   args.FeeAmount,
		})
	})
	if err != nil {
		return nil, err
	}
	res := iRes.(*tdexv2.ProposeTradeResponse)

	if swapFail := res.GetSwapFail(); swapFail != nil {
		return nil, fmt.Errorf(
			"proposal rejected: %s", swapFail.GetFailureMessage(),
		)
	}
	swapAccept := res.GetSwapAccept()
	if swapAccept == nil {
		return nil, fmt.Errorf(
			"provider %s replied without accepting nor rejecting the proposal",
			c.provider.Endpoint,
		)
	}
	return proto.Marshal(swapAccept)
}

func (c *client) CompleteTrade(
	ctx context.Context, swapComplete []byte,
) (string, error) {
	msg := &tdexv2.SwapComplete{}
	if err := proto.Unmarshal(swapComplete, msg); err != nil {
		return "", fmt.Errorf("invalid swap complete message: %w", err)
	}

	iRes, err := c.cb.Execute(func() (interface{}, error) {
		return c.client.CompleteTrade(ctx, &tdexv2.CompleteTradeRequest{
			SwapComplete: msg,
		})
	})
	if err != nil {
		return "", err
	}
	res := iRes.(*tdexv2.CompleteTradeResponse)

	if swapFail := res.GetSwapFail(); swapFail != nil {
		return "", fmt.Errorf(
			"completion rejected: %s", swapFail.GetFailureMessage(),
		)
	}
	return res.GetTxid(), nil
}

func (c *client) Close() error {
	return c.conn.Close()
}
