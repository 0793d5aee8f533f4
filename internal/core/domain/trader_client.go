package domain

import "context"

// PreviewTradeArgs is the query for a trade preview.
type PreviewTradeArgs struct {
	Market Market
	Type   TradeType
	Amount uint64
	Asset  string
	// FeeAsset is meaningful for V2 providers only and ignored by V1 ones.
	FeeAsset string
}

func (a PreviewTradeArgs) Validate() error {
	if err := a.Market.Validate(); err != nil {
		return err
	}
	if err := a.Type.Validate(); err != nil {
		return err
	}
	if a.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !isValidAsset(a.Asset) {
		return ErrInvalidAsset
	}
	return nil
}

// ProposeTradeArgs carries a serialized swap request message to be proposed
// to the provider for the given market and direction.
type ProposeTradeArgs struct {
	Market      Market
	Type        TradeType
	SwapRequest []byte
	// FeeAsset and FeeAmount are part of the V2 proposal only.
	FeeAsset  string
	FeeAmount uint64
}

// TraderClientV1 is the handle to a provider speaking the legacy protocol.
// Implementations live in the infrastructure layer; the swap protocol's
// multi-round exchange is theirs to carry, this package only consumes the
// terminal results.
type TraderClientV1 interface {
	Provider() Provider
	ListMarkets(ctx context.Context) ([]Market, error)
	GetMarketBalance(ctx context.Context, mkt Market) (*MarketBalance, error)
	PreviewTrade(ctx context.Context, args PreviewTradeArgs) (*Preview, error)
	// ProposeTrade returns the serialized SwapAccept message, or an error if
	// the proposal was rejected.
	ProposeTrade(ctx context.Context, args ProposeTradeArgs) ([]byte, error)
	// CompleteTrade returns the txid of the broadcasted swap transaction.
	CompleteTrade(ctx context.Context, swapComplete []byte) (string, error)
	Close() error
}

// TraderClientV1Factory dials a new client for a V1 provider.
type TraderClientV1Factory func(Provider) (TraderClientV1, error)

// TraderClientV2Factory dials a new client for a V2 provider.
type TraderClientV2Factory func(Provider) (TraderClientV2, error)

// TraderClientV2 is the handle to a provider speaking the current protocol.
// Structurally identical to TraderClientV1 but deliberately a distinct type:
// the two generations are independent pipelines reconciled only at the
// selector boundary.
type TraderClientV2 interface {
	Provider() Provider
	ListMarkets(ctx context.Context) ([]Market, error)
	GetMarketBalance(ctx context.Context, mkt Market) (*MarketBalance, error)
	PreviewTrade(ctx context.Context, args PreviewTradeArgs) (*Preview, error)
	ProposeTrade(ctx context.Context, args ProposeTradeArgs) ([]byte, error)
	CompleteTrade(ctx context.Context, swapComplete []byte) (string, error)
	Close() error
}
