package discovery

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
)

// Selector reconciles the two protocol generations into a single best order.
// Candidate orders for both versions are computed synchronously at
// construction; discovery runs once per requested amount.
type Selector struct {
	ordersV1 []*domain.TradeOrder
	ordersV2 []*domain.TradeOrder
	onError  ErrorHandler
}

// SelectorOpts is the struct given to NewSelector.
type SelectorOpts struct {
	MarketsV1     []domain.Market
	MarketsV2     []domain.Market
	SentAsset     string
	ReceivedAsset string
	NewClientV1   domain.TraderClientV1Factory
	NewClientV2   domain.TraderClientV2Factory
	// OnError is handed to the per-version discoverers.
	OnError ErrorHandler
}

// NewSelector computes the candidate orders for both protocol versions and
// fails with ErrNoMarketsForPair when neither yields any, before any network
// call is made.
func NewSelector(opts SelectorOpts) (*Selector, error) {
	ordersV1, err := ComputeOrdersV1(
		opts.MarketsV1, opts.SentAsset, opts.ReceivedAsset, opts.NewClientV1,
	)
	if err != nil {
		return nil, err
	}
	ordersV2, err := ComputeOrdersV2(
		opts.MarketsV2, opts.SentAsset, opts.ReceivedAsset, opts.NewClientV2,
	)
	if err != nil {
		return nil, err
	}

	if len(ordersV1) <= 0 && len(ordersV2) <= 0 {
		return nil, domain.ErrNoMarketsForPair
	}

	return &Selector{
		ordersV1: ordersV1,
		ordersV2: ordersV2,
		onError:  opts.OnError,
	}, nil
}

// SelectBestOrder returns the best order for swapping the given amount of
// the given asset.
//
// A zero amount short-circuits to the first candidate without any discovery,
// V1 first: callers use it as a placeholder where price does not matter yet.
// Otherwise both versions are discovered concurrently with the combined
// best-price/best-balance policy and the top V2 result is preferred, falling
// back to the top V1 result only when V2 ranked nothing. When both rankings
// are empty the selector degrades to an unranked candidate rather than
// failing: some order is still better than none for the caller.
func (s *Selector) SelectBestOrder(
	ctx context.Context, asset string, amount uint64,
) (*domain.TradeOrder, error) {
	if amount <= 0 {
		return s.firstCandidate(), nil
	}

	var bestV1, bestV2 []*domain.TradeOrder
	policy := Combine(BestPrice, BestBalance)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bestV1 = NewDiscoverer(DiscovererOpts{
			Orders:  s.ordersV1,
			Policy:  policy,
			OnError: s.onError,
		}).Discover(ctx, asset, amount)
		return nil
	})
	g.Go(func() error {
		bestV2 = NewDiscoverer(DiscovererOpts{
			Orders:  s.ordersV2,
			Policy:  policy,
			OnError: s.onError,
		}).Discover(ctx, asset, amount)
		return nil
	})
	g.Wait()

	if len(bestV1) <= 0 && len(bestV2) <= 0 {
		fallback := s.firstCandidate()
		if fallback == nil {
			return nil, domain.ErrNoBestOrders
		}
		log.Warnf(
			"discovery exhausted for pair, falling back to unranked %s order "+
				"of provider %s", fallback.Version(),
			fallback.Market.Provider.Endpoint,
		)
		return fallback, nil
	}

	// V2 always wins over V1 when both rankings are non empty. Prices are
	// only compared within one protocol generation, never across.
	if len(bestV2) > 0 {
		return bestV2[0], nil
	}
	return bestV1[0], nil
}

// Close releases the provider connections of every candidate except the
// given one, typically the selected order whose client stays in use. A nil
// exception closes them all.
func (s *Selector) Close(except *domain.TradeOrder) {
	for _, orders := range [][]*domain.TradeOrder{s.ordersV1, s.ordersV2} {
		for _, o := range orders {
			if except != nil && o.ID == except.ID {
				continue
			}
			var err error
			if o.V2 != nil {
				err = o.V2.Close()
			} else {
				err = o.V1.Close()
			}
			if err != nil {
				log.WithError(err).Debugf(
					"failed to close connection to provider %s",
					o.Market.Provider.Endpoint,
				)
			}
		}
	}
}

func (s *Selector) firstCandidate() *domain.TradeOrder {
	if len(s.ordersV1) > 0 {
		return s.ordersV1[0]
	}
	if len(s.ordersV2) > 0 {
		return s.ordersV2[0]
	}
	return nil
}
