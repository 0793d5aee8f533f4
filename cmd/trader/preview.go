package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/tdex-network/tdex-trader/internal/config"
	"github.com/tdex-network/tdex-trader/internal/core/application/catalog"
	"github.com/tdex-network/tdex-trader/internal/core/application/discovery"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	providerv1 "github.com/tdex-network/tdex-trader/internal/infrastructure/provider/v1"
	providerv2 "github.com/tdex-network/tdex-trader/internal/infrastructure/provider/v2"
)

var preview = cli.Command{
	Name:   "preview",
	Usage:  "find the best order for a swap and preview its terms",
	Flags:  tradeQueryFlags(),
	Action: previewAction,
}

func tradeQueryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "sent-asset",
			Usage:    "hash of the asset to send",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "received-asset",
			Usage:    "hash of the asset to receive",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "amount",
			Usage:    "amount in satoshis denominated in --asset",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "asset",
			Usage: "hash of the asset the amount refers to, defaults to the sent one",
		},
		&cli.StringFlag{
			Name:  "fee-asset",
			Usage: "hash of the asset to pay provider fees with (V2 only), defaults to the sent one",
		},
	}
}

func previewAction(ctx *cli.Context) error {
	order, cleanup, err := findBestOrder(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	timeout := time.Duration(config.GetInt(config.TradeTimeoutKey)) * time.Second
	tctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	args := domain.PreviewTradeArgs{
		Market: order.Market,
		Type:   order.Type,
		Amount: ctx.Uint64("amount"),
		Asset:  queryAsset(ctx),
	}

	var quote *domain.Preview
	if order.Version() == domain.ProtocolVersionV2 {
		args.FeeAsset = ctx.String("fee-asset")
		if len(args.FeeAsset) <= 0 {
			args.FeeAsset = order.SentAsset()
		}
		quote, err = order.V2.PreviewTrade(tctx, args)
	} else {
		quote, err = order.V1.PreviewTrade(tctx, args)
	}
	if err != nil {
		return err
	}

	printJSON(map[string]interface{}{
		"provider":     order.Market.Provider.Endpoint,
		"version":      order.Version().String(),
		"type":         order.Type.String(),
		"base_asset":   order.Market.BaseAsset,
		"quote_asset":  order.Market.QuoteAsset,
		"amount":       quote.Amount,
		"asset":        quote.Asset,
		"fee_amount":   quote.FeeAmount,
		"fee_asset":    quote.FeeAsset,
		"base_price":   quote.Price.BasePrice.String(),
		"quote_price":  quote.Price.QuotePrice.String(),
	})
	return nil
}

// findBestOrder runs catalog and discovery for the queried pair and returns
// the winning order along with a cleanup for its open connection.
func findBestOrder(ctx *cli.Context) (*domain.TradeOrder, func(), error) {
	providers, err := getProviders(ctx)
	if err != nil {
		return nil, nil, err
	}

	sentAsset := ctx.String("sent-asset")
	receivedAsset := ctx.String("received-asset")

	marketsV1, marketsV2 := catalog.FetchMarkets(
		context.Background(), providers,
		providerv1.NewTraderClient, providerv2.NewTraderClient, nil,
	)

	selector, err := discovery.NewSelector(discovery.SelectorOpts{
		MarketsV1:     marketsV1,
		MarketsV2:     marketsV2,
		SentAsset:     sentAsset,
		ReceivedAsset: receivedAsset,
		NewClientV1:   providerv1.NewTraderClient,
		NewClientV2:   providerv2.NewTraderClient,
	})
	if err != nil {
		return nil, nil, err
	}

	timeout := time.Duration(config.GetInt(config.TradeTimeoutKey)) * time.Second
	tctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	order, err := selector.SelectBestOrder(
		tctx, queryAsset(ctx), ctx.Uint64("amount"),
	)
	if err != nil {
		selector.Close(nil)
		return nil, nil, err
	}

	// Losing candidates are released right away, the winner's connection
	// stays open until the caller is done with it.
	selector.Close(order)
	cleanup := func() {
		var cerr error
		if order.Version() == domain.ProtocolVersionV2 {
			cerr = order.V2.Close()
		} else {
			cerr = order.V1.Close()
		}
		if cerr != nil {
			fmt.Printf("failed to close provider connection: %s\n", cerr)
		}
	}
	return order, cleanup, nil
}

func queryAsset(ctx *cli.Context) string {
	if asset := ctx.String("asset"); len(asset) > 0 {
		return asset
	}
	return ctx.String("sent-asset")
}
