package discovery

import (
	"github.com/shopspring/decimal"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
)

// OrderPreview pairs a candidate order with the quote its provider returned
// for the discovery query.
type OrderPreview struct {
	Order   *domain.TradeOrder
	Preview *domain.Preview
}

// Policy compares two quoted candidates and returns a negative value when a
// is strictly preferred, a positive value when b is, and zero when it has no
// strict preference. Policies are pure and never perform I/O; a neutral
// result keeps the original candidate order.
type Policy func(a, b OrderPreview) int

// BestPrice prefers the candidate with the better effective price. The quoted
// counter-amount is read against the query direction: when the query is
// denominated in the sent asset the quote is what the wallet receives and
// more wins, when it is denominated in the received asset the quote is what
// the wallet must send and less wins.
func BestPrice(a, b OrderPreview) int {
	amountA := decimal.NewFromInt(int64(a.Preview.Amount))
	amountB := decimal.NewFromInt(int64(b.Preview.Amount))
	if a.Preview.Asset == a.Order.SentAsset() {
		return amountA.Cmp(amountB)
	}
	return amountB.Cmp(amountA)
}

// BestBalance prefers the candidate whose market holds more liquidity in the
// asset the wallet would receive. An undefined balance counts as zero.
func BestBalance(a, b OrderPreview) int {
	balanceA, balanceB := receivedBalance(a.Order), receivedBalance(b.Order)
	if balanceA > balanceB {
		return -1
	}
	if balanceB > balanceA {
		return 1
	}
	return 0
}

// Combine chains policies left to right: the first strict preference wins,
// a fully neutral chain keeps the candidate order.
func Combine(policies ...Policy) Policy {
	return func(a, b OrderPreview) int {
		for _, policy := range policies {
			if res := policy(a, b); res != 0 {
				return res
			}
		}
		return 0
	}
}

func receivedBalance(o *domain.TradeOrder) uint64 {
	var balance *uint64
	if o.Type.IsSell() {
		balance = o.Market.QuoteAmount
	} else {
		balance = o.Market.BaseAmount
	}
	if balance == nil {
		return 0
	}
	return *balance
}
