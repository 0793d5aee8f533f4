// Package trade drives a selected order through the swap protocol up to the
// broadcast of the resulting transaction.
package trade

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-daemon/pkg/explorer"
	"github.com/vulpemventures/go-elements/address"
	"github.com/vulpemventures/go-elements/elementsutil"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/tdex-network/tdex-trader/pkg/swap"
)

var (
	// ErrNullOrder ...
	ErrNullOrder = errors.New("order must not be null")
	// ErrNullWallet ...
	ErrNullWallet = errors.New("wallet must not be null")
	// ErrNullExplorer ...
	ErrNullExplorer = errors.New("explorer must not be null")
	// ErrMissingTxid ...
	ErrMissingTxid = errors.New(
		"swap completed without returning a transaction id",
	)
)

// Service executes trades for selected orders. The multi-round message
// exchange goes through the order's bound client; this service assembles the
// protocol arguments and interprets the terminal result.
type Service struct {
	explorer explorer.Service
	store    domain.WalletStore
}

// NewService returns a new trade executor backed by the given explorer and
// wallet store. The store is only read, to resolve the confidential inputs
// of V2 swap transactions.
func NewService(
	explorerSvc explorer.Service, store domain.WalletStore,
) (*Service, error) {
	if explorerSvc == nil {
		return nil, ErrNullExplorer
	}
	return &Service{explorer: explorerSvc, store: store}, nil
}

// ExecuteTradeArgs is the struct given to ExecuteTrade.
type ExecuteTradeArgs struct {
	Order  *domain.TradeOrder
	Amount uint64
	Asset  string
	// FeeAsset applies to V2 orders only and defaults to the asset the
	// wallet sends.
	FeeAsset string
	Wallet   ports.TradeWallet
}

func (a ExecuteTradeArgs) validate() error {
	if a.Order == nil {
		return ErrNullOrder
	}
	if err := a.Order.Type.Validate(); err != nil {
		return err
	}
	if a.Amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if a.Wallet == nil {
		return ErrNullWallet
	}
	if _, err := address.ToOutputScript(a.Wallet.Address()); err != nil {
		return fmt.Errorf("invalid wallet address: %w", err)
	}
	return nil
}

// ExecuteTrade runs the buy or sell flow of the order's protocol generation
// to completion and returns the txid of the broadcasted swap transaction.
// Any failure is terminal and wraps the underlying cause.
func (s *Service) ExecuteTrade(
	ctx context.Context, args ExecuteTradeArgs,
) (string, error) {
	if err := args.validate(); err != nil {
		return "", err
	}

	var txid string
	var err error
	if args.Order.Version() == domain.ProtocolVersionV2 {
		txid, err = s.executeV2(ctx, args)
	} else {
		txid, err = s.executeV1(ctx, args)
	}
	if err != nil {
		return "", fmt.Errorf("trade has failed: %w", err)
	}

	log.Debugf(
		"completed %s trade with provider %s, txid %s",
		args.Order.Type, args.Order.Market.Provider.Endpoint, txid,
	)
	return txid, nil
}

func (s *Service) executeV1(
	ctx context.Context, args ExecuteTradeArgs,
) (string, error) {
	order, wallet := args.Order, args.Wallet
	blindKey := wallet.BlindingPrivateKey()

	unspents, err := s.explorer.GetUnspents(
		wallet.Address(), [][]byte{blindKey},
	)
	if err != nil {
		return "", err
	}
	if len(unspents) <= 0 {
		return "", fmt.Errorf("address '%s' is not funded", wallet.Address())
	}

	preview, err := order.V1.PreviewTrade(ctx, domain.PreviewTradeArgs{
		Market: order.Market,
		Type:   order.Type,
		Amount: args.Amount,
		Asset:  args.Asset,
	})
	if err != nil {
		return "", err
	}
	legs := swapLegs(order, args.Amount, args.Asset, preview)

	outScript, _ := address.ToOutputScript(wallet.Address())
	changeScript, err := address.ToOutputScript(wallet.ChangeAddress())
	if err != nil {
		return "", fmt.Errorf("invalid wallet change address: %w", err)
	}

	psetBase64, err := newSwapTxV0(
		unspents, legs, outScript, changeScript,
	)
	if err != nil {
		return "", err
	}

	blindingKeys := map[string][]byte{
		hex.EncodeToString(outScript):    blindKey,
		hex.EncodeToString(changeScript): blindKey,
	}
	swapRequest, err := swap.Request(swap.RequestOpts{
		AssetToSend:        legs.assetToSend,
		AmountToSend:       legs.amountToSend,
		AssetToReceive:     legs.assetToReceive,
		AmountToReceive:    legs.amountToReceive,
		Transaction:        psetBase64,
		InputBlindingKeys:  blindingKeys,
		OutputBlindingKeys: blindingKeys,
	})
	if err != nil {
		return "", err
	}

	swapAccept, err := order.V1.ProposeTrade(ctx, domain.ProposeTradeArgs{
		Market:      order.Market,
		Type:        order.Type,
		SwapRequest: swapRequest,
	})
	if err != nil {
		return "", err
	}

	swapComplete, err := s.counterSign(swapAccept, wallet)
	if err != nil {
		return "", err
	}

	txid, err := order.V1.CompleteTrade(ctx, swapComplete)
	if err != nil {
		return "", err
	}
	if len(txid) <= 0 {
		return "", ErrMissingTxid
	}
	return txid, nil
}

func (s *Service) executeV2(
	ctx context.Context, args ExecuteTradeArgs,
) (string, error) {
	order, wallet := args.Order, args.Wallet
	blindKey := wallet.BlindingPrivateKey()

	feeAsset := args.FeeAsset
	if len(feeAsset) <= 0 {
		feeAsset = order.SentAsset()
	}

	unspents, err := s.explorer.GetUnspents(
		wallet.Address(), [][]byte{blindKey},
	)
	if err != nil {
		return "", err
	}
	if len(unspents) <= 0 {
		return "", fmt.Errorf("address '%s' is not funded", wallet.Address())
	}

	preview, err := order.V2.PreviewTrade(ctx, domain.PreviewTradeArgs{
		Market:   order.Market,
		Type:     order.Type,
		Amount:   args.Amount,
		Asset:    args.Asset,
		FeeAsset: feeAsset,
	})
	if err != nil {
		return "", err
	}
	legs := swapLegs(order, args.Amount, args.Asset, preview)

	// The provider fee is either added on top of the sent amount or taken
	// out of the received one, depending on the chosen fee asset. The swap
	// message still carries the quoted amounts.
	feesToAdd := preview.FeeAsset == legs.assetToSend
	fundAmount := legs.amountToSend
	receiveAmount := legs.amountToReceive
	if feesToAdd {
		fundAmount += preview.FeeAmount
	} else {
		if receiveAmount < preview.FeeAmount {
			return "", fmt.Errorf(
				"provider fee %d exceeds the amount to receive %d",
				preview.FeeAmount, receiveAmount,
			)
		}
		receiveAmount -= preview.FeeAmount
	}

	outScript, _ := address.ToOutputScript(wallet.Address())
	changeScript, err := address.ToOutputScript(wallet.ChangeAddress())
	if err != nil {
		return "", fmt.Errorf("invalid wallet change address: %w", err)
	}
	blindPubKey, err := blindingPubKey(blindKey)
	if err != nil {
		return "", err
	}

	ptx, selectedUnspents, err := newSwapTxV2(
		unspents, legs, fundAmount, receiveAmount,
		outScript, changeScript, blindPubKey,
	)
	if err != nil {
		return "", err
	}

	// The freshly built template is first resolved against the wallet's own
	// history, then any input still missing unblinding data falls back to
	// the revelation obtained from the explorer with the wallet blinding key.
	resolved := make(map[uint32]domain.UnblindedInput)
	for _, in := range ResolveUnblindedInputs(ptx, s.store) {
		resolved[in.Index] = in
	}
	swapIns := make([]swap.UnblindedInput, 0, len(selectedUnspents))
	for i, u := range selectedUnspents {
		in, ok := resolved[uint32(i)]
		if !ok {
			in = domain.UnblindedInput{
				Index:  uint32(i),
				Asset:  u.Asset(),
				Amount: u.Value(),
				AssetBlinder: hex.EncodeToString(
					elementsutil.ReverseBytes(u.AssetBlinder()),
				),
				AmountBlinder: hex.EncodeToString(
					elementsutil.ReverseBytes(u.ValueBlinder()),
				),
			}
		}
		swapIns = append(swapIns, swap.UnblindedInput(in))
	}

	psetBase64, err := ptx.ToBase64()
	if err != nil {
		return "", err
	}
	swapRequest, err := swap.Request(swap.RequestOpts{
		AssetToSend:     legs.assetToSend,
		AmountToSend:    legs.amountToSend,
		AssetToReceive:  legs.assetToReceive,
		AmountToReceive: legs.amountToReceive,
		Transaction:     psetBase64,
		UnblindedInputs: swapIns,
	})
	if err != nil {
		return "", err
	}

	swapAccept, err := order.V2.ProposeTrade(ctx, domain.ProposeTradeArgs{
		Market:      order.Market,
		Type:        order.Type,
		SwapRequest: swapRequest,
		FeeAsset:    preview.FeeAsset,
		FeeAmount:   preview.FeeAmount,
	})
	if err != nil {
		return "", err
	}

	swapComplete, err := s.counterSign(swapAccept, wallet)
	if err != nil {
		return "", err
	}

	txid, err := order.V2.CompleteTrade(ctx, swapComplete)
	if err != nil {
		return "", err
	}
	if len(txid) <= 0 {
		return "", ErrMissingTxid
	}
	return txid, nil
}

func (s *Service) counterSign(
	swapAccept []byte, wallet ports.TradeWallet,
) ([]byte, error) {
	accept, err := swap.ParseAccept(swapAccept)
	if err != nil {
		return nil, err
	}
	signedTx, err := wallet.SignPset(accept.Transaction)
	if err != nil {
		return nil, fmt.Errorf("sign accepted swap transaction: %w", err)
	}
	return swap.Complete(swap.CompleteOpts{
		Message:     swapAccept,
		Transaction: signedTx,
	})
}

type legs struct {
	assetToSend     string
	amountToSend    uint64
	assetToReceive  string
	amountToReceive uint64
}

// swapLegs pins the send and receive legs of the swap out of the queried
// amount and the provider's quoted counter-amount.
func swapLegs(
	order *domain.TradeOrder, amount uint64, asset string,
	preview *domain.Preview,
) legs {
	if asset == order.SentAsset() {
		return legs{
			assetToSend:     asset,
			amountToSend:    amount,
			assetToReceive:  preview.Asset,
			amountToReceive: preview.Amount,
		}
	}
	return legs{
		assetToSend:     preview.Asset,
		amountToSend:    preview.Amount,
		assetToReceive:  asset,
		amountToReceive: amount,
	}
}
