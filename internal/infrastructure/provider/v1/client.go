// Package providerv1 implements the trader client for providers speaking the
// legacy trade protocol, a mix of unary and server-streaming rpcs exchanging
// swap messages over blinded pset v0 transactions.
package providerv1

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	pbswap "github.com/tdex-network/tdex-protobuf/generated/go/swap"
	pbtrade "github.com/tdex-network/tdex-protobuf/generated/go/trade"
	pbtypes "github.com/tdex-network/tdex-protobuf/generated/go/types"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
	grpcutil "github.com/tdex-network/tdex-trader/internal/infrastructure/provider"
	"github.com/tdex-network/tdex-trader/pkg/circuitbreaker"
)

type client struct {
	provider domain.Provider
	conn     *grpc.ClientConn
	client   pbtrade.TradeClient
	cb       *gobreaker.CircuitBreaker
}

// NewTraderClient dials the provider endpoint and returns a client for its
// legacy trade interface.
func NewTraderClient(provider domain.Provider) (domain.TraderClientV1, error) {
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
		client:   pbtrade.NewTradeClient(conn),
		cb:       circuitbreaker.NewCircuitBreaker(provider.Endpoint),
	}, nil
}

func (c *client) Provider() domain.Provider {
	return c.provider
}

func (c *client) ListMarkets(ctx context.Context) ([]domain.Market, error) {
	iReply, err := c.cb.Execute(func() (interface{}, error) {
		return c.client.Markets(ctx, &pbtrade.MarketsRequest{})
	})
	if err != nil {
		return nil, err
	}
	reply := iReply.(*pbtrade.MarketsReply)

	markets := make([]domain.Market, 0, len(reply.GetMarkets()))
	for _, m := range reply.GetMarkets() {
		mkt := domain.Market{
			Provider:   c.provider,
			BaseAsset:  m.GetMarket().GetBaseAsset(),
			QuoteAsset: m.GetMarket().GetQuoteAsset(),
		}
		if fee := m.GetFee(); fee != nil {
			mkt.PercentageFee = uint64(fee.GetBasisPoint())
		}
		markets = append(markets, mkt)
	}
	return markets, nil
}

func (c *client) GetMarketBalance(
	ctx context.Context, mkt domain.Market,
) (*domain.MarketBalance, error) {
	if err := mkt.Validate(); err != nil {
		return nil, err
	}

	iReply, err := c.cb.Execute(func() (interface{}, error) {
		return c.client.Balances(ctx, &pbtrade.BalancesRequest{
			Market: &pbtypes.Market{
				BaseAsset:  mkt.BaseAsset,
				QuoteAsset: mkt.QuoteAsset,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	reply := iReply.(*pbtrade.BalancesReply)

	balances := reply.GetBalances()
	if len(balances) <= 0 {
		return nil, fmt.Errorf(
			"provider %s returned no balance for market %s-%s",
			c.provider.Endpoint, mkt.BaseAsset, mkt.QuoteAsset,
		)
	}
	balance := balances[0].GetBalance()
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

	iReply, err := c.cb.Execute(func() (interface{}, error) {
		return c.client.MarketPrice(ctx, &pbtrade.MarketPriceRequest{
			Market: &pbtypes.Market{
				BaseAsset:  args.Market.BaseAsset,
				QuoteAsset: args.Market.QuoteAsset,
			},
			Type:   pbtypes.TradeType(args.Type),
			Amount: args.Amount,
			Asset:  args.Asset,
		})
	})
	if err != nil {
		return nil, err
	}
	reply := iReply.(*pbtrade.MarketPriceReply)

	prices := reply.GetPrices()
	if len(prices) <= 0 {
		return nil, fmt.Errorf(
			"provider %s returned no preview for market %s-%s",
			c.provider.Endpoint, args.Market.BaseAsset, args.Market.QuoteAsset,
		)
	}
	// The legacy preview does not echo the counter asset, it is implied by
	// the queried one.
	counterAsset := args.Market.QuoteAsset
	if args.Asset == args.Market.QuoteAsset {
		counterAsset = args.Market.BaseAsset
	}

	preview := prices[0]
	return &domain.Preview{
		Price: domain.Price{
			BasePrice:  decimal.NewFromFloat(float64(preview.GetPrice().GetBasePrice())),
			QuotePrice: decimal.NewFromFloat(float64(preview.GetPrice().GetQuotePrice())),
		},
		Amount: preview.GetAmount(),
		Asset:  counterAsset,
	}, nil
}

func (c *client) ProposeTrade(
	ctx context.Context, args domain.ProposeTradeArgs,
) ([]byte, error) {
	if err := args.Market.Validate(); err != nil {
		return nil, err
	}
	swapRequest := &pbswap.SwapRequest{}
	if err := proto.Unmarshal(args.SwapRequest, swapRequest); err != nil {
		return nil, fmt.Errorf("invalid swap request message: %w", err)
	}

	iReply, err := c.cb.Execute(func() (interface{}, error) {
		stream, err := c.client.TradePropose(ctx, &pbtrade.TradeProposeRequest{
			Market: &pbtypes.Market{
				BaseAsset:  args.Market.BaseAsset,
				QuoteAsset: args.Market.QuoteAsset,
			},
			Type:        pbtypes.TradeType(args.Type),
			SwapRequest: swapRequest,
		})
		if err != nil {
			return nil, err
		}
		return stream.Recv()
	})
	if err != nil {
		return nil, err
	}
	reply := iReply.(*pbtrade.TradeProposeReply)

	if swapFail := reply.GetSwapFail(); swapFail != nil {
		return nil, fmt.Errorf(
			"proposal rejected: %s", swapFail.GetFailureMessage(),
		)
	}
	swapAccept := reply.GetSwapAccept()
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
	msg := &pbswap.SwapComplete{}
	if err := proto.Unmarshal(swapComplete, msg); err != nil {
		return "", fmt.Errorf("invalid swap complete message: %w", err)
	}

	iReply, err := c.cb.Execute(func() (interface{}, error) {
		stream, err := c.client.TradeComplete(ctx, &pbtrade.TradeCompleteRequest{
			SwapComplete: msg,
		})
		if err != nil {
			return nil, err
		}
		return stream.Recv()
	})
	if err != nil {
		return "", err
	}
	reply := iReply.(*pbtrade.TradeCompleteReply)

	if swapFail := reply.GetSwapFail(); swapFail != nil {
		return "", fmt.Errorf(
			"completion rejected: %s", swapFail.GetFailureMessage(),
		)
	}
	return reply.GetTxid(), nil
}

func (c *client) Close() error {
	return c.conn.Close()
}
