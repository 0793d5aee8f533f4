// Package catalog builds the flat list of tradable markets out of a set of
// provider endpoints, one protocol version at a time.
package catalog

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
)

// ListMarketsV1 returns the markets offered by the V1 provider behind the
// given client, each merged with its current balance. A market whose balance
// cannot be fetched is kept with undefined balance; a market missing its base
// asset descriptor is dropped. The error is scoped to this provider only.
func ListMarketsV1(
	ctx context.Context, client domain.TraderClientV1,
) ([]domain.Market, error) {
	markets, err := client.ListMarkets(ctx)
	if err != nil {
		return nil, fmt.Errorf(
			"list markets for provider %s: %w", client.Provider().Endpoint, err,
		)
	}

	markets = dropMalformed(markets)
	mergeBalances(markets, func(i int) (*domain.MarketBalance, error) {
		return client.GetMarketBalance(ctx, markets[i])
	})
	return markets, nil
}

// ListMarketsV2 is the V2 counterpart of ListMarketsV1.
func ListMarketsV2(
	ctx context.Context, client domain.TraderClientV2,
) ([]domain.Market, error) {
	markets, err := client.ListMarkets(ctx)
	if err != nil {
		return nil, fmt.Errorf(
			"list markets for provider %s: %w", client.Provider().Endpoint, err,
		)
	}

	markets = dropMalformed(markets)
	mergeBalances(markets, func(i int) (*domain.MarketBalance, error) {
		return client.GetMarketBalance(ctx, markets[i])
	})
	return markets, nil
}

// FetchMarkets builds the catalog for a whole provider list, fanning out one
// goroutine per provider and skipping those that fail. Failures are reported
// to onError and never abort the sibling fetches. The returned lists preserve
// the provider order.
func FetchMarkets(
	ctx context.Context, providers []domain.Provider,
	newClientV1 domain.TraderClientV1Factory,
	newClientV2 domain.TraderClientV2Factory,
	onError func(domain.Provider, error),
) ([]domain.Market, []domain.Market) {
	if onError == nil {
		onError = func(p domain.Provider, err error) {
			log.WithError(err).Warnf(
				"skipping provider %s (%s)", p.Name, p.Endpoint,
			)
		}
	}

	results := make([][]domain.Market, len(providers))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range providers {
		i, p := i, p
		g.Go(func() error {
			markets, err := fetchForProvider(ctx, p, newClientV1, newClientV2)
			if err != nil {
				onError(p, err)
				return nil
			}
			results[i] = markets
			return nil
		})
	}
	g.Wait()

	marketsV1 := make([]domain.Market, 0)
	marketsV2 := make([]domain.Market, 0)
	for _, markets := range results {
		for _, m := range markets {
			if m.Provider.Version == domain.ProtocolVersionV2 {
				marketsV2 = append(marketsV2, m)
			} else {
				marketsV1 = append(marketsV1, m)
			}
		}
	}
	return marketsV1, marketsV2
}

func fetchForProvider(
	ctx context.Context, p domain.Provider,
	newClientV1 domain.TraderClientV1Factory,
	newClientV2 domain.TraderClientV2Factory,
) ([]domain.Market, error) {
	switch p.Version {
	case domain.ProtocolVersionV2:
		client, err := newClientV2(p)
		if err != nil {
			return nil, err
		}
		defer client.Close()
		return ListMarketsV2(ctx, client)
	default:
		client, err := newClientV1(p)
		if err != nil {
			return nil, err
		}
		defer client.Close()
		return ListMarketsV1(ctx, client)
	}
}

func dropMalformed(markets []domain.Market) []domain.Market {
	list := make([]domain.Market, 0, len(markets))
	for _, m := range markets {
		if len(m.BaseAsset) <= 0 {
			log.Debugf(
				"dropped market without base asset from provider %s",
				m.Provider.Endpoint,
			)
			continue
		}
		list = append(list, m)
	}
	return list
}

// mergeBalances fetches all balances concurrently and merges them in place.
// A failed fetch leaves the market's balance undefined.
func mergeBalances(
	markets []domain.Market,
	getBalance func(i int) (*domain.MarketBalance, error),
) {
	wg := &sync.WaitGroup{}
	wg.Add(len(markets))
	for i := range markets {
		go func(i int) {
			defer wg.Done()
			balance, err := getBalance(i)
			if err != nil {
				log.WithError(err).Debugf(
					"failed to fetch balance for market %s/%s",
					markets[i].BaseAsset, markets[i].QuoteAsset,
				)
				return
			}
			baseAmount, quoteAmount := balance.BaseAmount, balance.QuoteAmount
			markets[i].BaseAmount = &baseAmount
			markets[i].QuoteAmount = &quoteAmount
		}(i)
	}
	wg.Wait()
}
