package domain

import (
	"github.com/google/uuid"
	pbtypes "github.com/tdex-network/tdex-protobuf/generated/go/trade"
)

const (
	// TradeBuy means the wallet spends quote asset to receive base asset.
	TradeBuy TradeType = TradeType(pbtypes.TradeType_BUY)
	// TradeSell means the wallet spends base asset to receive quote asset.
	TradeSell TradeType = TradeType(pbtypes.TradeType_SELL)
)

// TradeType is the direction of a trade with respect to the market's base
// asset. The integer values match those of the wire protocol.
type TradeType int

// Validate makes sure that the current trade type is either BUY or SELL.
func (t TradeType) Validate() error {
	if t != TradeBuy && t != TradeSell {
		return ErrInvalidTradeType
	}
	return nil
}

// IsBuy returns whether the current trade type is BUY.
func (t TradeType) IsBuy() bool {
	return t == TradeBuy
}

// IsSell returns whether the current trade type is SELL.
func (t TradeType) IsSell() bool {
	return t == TradeSell
}

func (t TradeType) String() string {
	return pbtypes.TradeType(t).String()
}

// TradeOrder is a candidate trading opportunity binding a market to a trade
// direction and to a client handle reaching the market's provider. Orders are
// ephemeral, constructed fresh at every discovery request.
//
// The order is a tagged variant: exactly one of V1, V2 is set, matching
// Market.Provider.Version. The two client generations are kept as distinct
// types on purpose, their preview semantics differ (fee-asset handling exists
// only in V2) and hiding that behind one interface would mask it.
type TradeOrder struct {
	ID     string
	Type   TradeType
	Market Market
	V1     TraderClientV1
	V2     TraderClientV2
}

// NewTradeOrderV1 returns an order for a V1 market. The direction must agree
// with the market pair, enforced by the caller via TradeTypeForPair.
func NewTradeOrderV1(
	mkt Market, tradeType TradeType, client TraderClientV1,
) *TradeOrder {
	return &TradeOrder{
		ID:     uuid.NewString(),
		Type:   tradeType,
		Market: mkt,
		V1:     client,
	}
}

// NewTradeOrderV2 returns an order for a V2 market.
func NewTradeOrderV2(
	mkt Market, tradeType TradeType, client TraderClientV2,
) *TradeOrder {
	return &TradeOrder{
		ID:     uuid.NewString(),
		Type:   tradeType,
		Market: mkt,
		V2:     client,
	}
}

// Version returns the protocol generation of the bound client.
func (o *TradeOrder) Version() ProtocolVersion {
	if o.V2 != nil {
		return ProtocolVersionV2
	}
	return ProtocolVersionV1
}

// SentAsset returns the asset the wallet spends when executing the order.
func (o *TradeOrder) SentAsset() string {
	if o.Type.IsSell() {
		return o.Market.BaseAsset
	}
	return o.Market.QuoteAsset
}

// ReceivedAsset returns the asset the wallet receives when executing the order.
func (o *TradeOrder) ReceivedAsset() string {
	if o.Type.IsSell() {
		return o.Market.QuoteAsset
	}
	return o.Market.BaseAsset
}

// TradeTypeForPair derives the direction for trading the given (sent, received)
// pair on the given market. It returns an error if the market does not match
// the pair in either direction.
func TradeTypeForPair(mkt Market, sentAsset, receivedAsset string) (TradeType, error) {
	if sentAsset == mkt.BaseAsset && receivedAsset == mkt.QuoteAsset {
		return TradeSell, nil
	}
	if sentAsset == mkt.QuoteAsset && receivedAsset == mkt.BaseAsset {
		return TradeBuy, nil
	}
	return -1, ErrMarketPairMismatch
}
