package discovery

import (
	"context"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
)

// ErrorHandler is the fire-and-forget side channel notified for every
// candidate dropped during discovery. It is not part of the control flow.
type ErrorHandler func(order *domain.TradeOrder, err error)

// Discoverer queries a fixed set of candidate orders for quotes and ranks
// the survivors with its policy. Candidates and policy are fixed at
// construction time.
type Discoverer struct {
	orders  []*domain.TradeOrder
	policy  Policy
	onError ErrorHandler
}

// DiscovererOpts is the struct given to NewDiscoverer.
type DiscovererOpts struct {
	Orders []*domain.TradeOrder
	Policy Policy
	// OnError defaults to a logged warning when not set.
	OnError ErrorHandler
}

// NewDiscoverer returns a new discoverer over the given candidate set.
func NewDiscoverer(opts DiscovererOpts) *Discoverer {
	onError := opts.OnError
	if onError == nil {
		onError = func(order *domain.TradeOrder, err error) {
			log.WithError(err).Warnf(
				"discovery: dropped order %s of provider %s",
				order.ID, order.Market.Provider.Endpoint,
			)
		}
	}
	policy := opts.Policy
	if policy == nil {
		policy = Combine(BestPrice, BestBalance)
	}
	return &Discoverer{
		orders:  opts.Orders,
		policy:  policy,
		onError: onError,
	}
}

// Discover previews every candidate concurrently for the given (asset,
// amount) query and returns the surviving orders ranked best first. All
// requests are issued before any is awaited; a failing request drops its
// candidate without aborting the others. Zero survivors yield an empty list,
// not an error. Ranking depends only on the policy, never on completion
// order.
func (d *Discoverer) Discover(
	ctx context.Context, asset string, amount uint64,
) []*domain.TradeOrder {
	previews := make([]*domain.Preview, len(d.orders))

	wg := &sync.WaitGroup{}
	wg.Add(len(d.orders))
	for i, order := range d.orders {
		go func(i int, order *domain.TradeOrder) {
			defer wg.Done()
			preview, err := previewOrder(ctx, order, asset, amount)
			if err != nil {
				d.onError(order, err)
				return
			}
			previews[i] = preview
		}(i, order)
	}
	wg.Wait()

	ranked := make([]OrderPreview, 0, len(d.orders))
	for i, order := range d.orders {
		if previews[i] == nil {
			continue
		}
		ranked = append(ranked, OrderPreview{Order: order, Preview: previews[i]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return d.policy(ranked[i], ranked[j]) < 0
	})

	orders := make([]*domain.TradeOrder, 0, len(ranked))
	for _, r := range ranked {
		orders = append(orders, r.Order)
	}
	return orders
}

// previewOrder dispatches the quote request to the order's bound client.
// The fee asset of V2 previews defaults to the asset being sent.
func previewOrder(
	ctx context.Context, order *domain.TradeOrder, asset string, amount uint64,
) (*domain.Preview, error) {
	args := domain.PreviewTradeArgs{
		Market: order.Market,
		Type:   order.Type,
		Amount: amount,
		Asset:  asset,
	}
	if order.V2 != nil {
		args.FeeAsset = order.SentAsset()
		return order.V2.PreviewTrade(ctx, args)
	}
	return order.V1.PreviewTrade(ctx, args)
}
