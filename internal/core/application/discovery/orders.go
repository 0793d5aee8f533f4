// Package discovery turns a market catalog into candidate trade orders,
// queries their providers concurrently for quotes and reduces the results to
// the economically best order.
package discovery

import (
	"github.com/tdex-network/tdex-trader/internal/core/domain"
)

// ComputeOrdersV1 enumerates every V1 market able to satisfy the given
// (sent, received) pair, emitting one order per matching market with the
// derived direction. Markets matching neither direction yield nothing. The
// output preserves the input market order.
func ComputeOrdersV1(
	markets []domain.Market, sentAsset, receivedAsset string,
	newClient domain.TraderClientV1Factory,
) ([]*domain.TradeOrder, error) {
	orders := make([]*domain.TradeOrder, 0, len(markets))
	for _, mkt := range markets {
		tradeType, err := domain.TradeTypeForPair(mkt, sentAsset, receivedAsset)
		if err != nil {
			continue
		}
		client, err := newClient(mkt.Provider)
		if err != nil {
			return nil, err
		}
		orders = append(orders, domain.NewTradeOrderV1(mkt, tradeType, client))
	}
	return orders, nil
}

// ComputeOrdersV2 is the V2 counterpart of ComputeOrdersV1.
func ComputeOrdersV2(
	markets []domain.Market, sentAsset, receivedAsset string,
	newClient domain.TraderClientV2Factory,
) ([]*domain.TradeOrder, error) {
	orders := make([]*domain.TradeOrder, 0, len(markets))
	for _, mkt := range markets {
		tradeType, err := domain.TradeTypeForPair(mkt, sentAsset, receivedAsset)
		if err != nil {
			continue
		}
		client, err := newClient(mkt.Provider)
		if err != nil {
			return nil, err
		}
		orders = append(orders, domain.NewTradeOrderV2(mkt, tradeType, client))
	}
	return orders, nil
}
