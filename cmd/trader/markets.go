package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/tdex-network/tdex-trader/internal/core/application/catalog"
	providerv1 "github.com/tdex-network/tdex-trader/internal/infrastructure/provider/v1"
	providerv2 "github.com/tdex-network/tdex-trader/internal/infrastructure/provider/v2"
)

var markets = cli.Command{
	Name:   "markets",
	Usage:  "list the tradable markets across all reachable providers",
	Action: marketsAction,
}

func marketsAction(ctx *cli.Context) error {
	providers, err := getProviders(ctx)
	if err != nil {
		return err
	}

	marketsV1, marketsV2 := catalog.FetchMarkets(
		context.Background(), providers,
		providerv1.NewTraderClient, providerv2.NewTraderClient, nil,
	)

	type marketInfo struct {
		Provider    string  `json:"provider"`
		Version     string  `json:"version"`
		BaseAsset   string  `json:"base_asset"`
		QuoteAsset  string  `json:"quote_asset"`
		BaseAmount  *uint64 `json:"base_amount,omitempty"`
		QuoteAmount *uint64 `json:"quote_amount,omitempty"`
	}
	info := make([]marketInfo, 0, len(marketsV1)+len(marketsV2))
	for _, m := range append(marketsV1, marketsV2...) {
		info = append(info, marketInfo{
			Provider:    m.Provider.Endpoint,
			Version:     m.Provider.Version.String(),
			BaseAsset:   m.BaseAsset,
			QuoteAsset:  m.QuoteAsset,
			BaseAmount:  m.BaseAmount,
			QuoteAmount: m.QuoteAmount,
		})
	}

	printJSON(info)
	return nil
}
