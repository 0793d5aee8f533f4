package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"

	"github.com/tdex-network/tdex-daemon/pkg/explorer/esplora"
	"github.com/urfave/cli/v2"

	"github.com/tdex-network/tdex-trader/internal/config"
	"github.com/tdex-network/tdex-trader/internal/core/application/trade"
	walletstore "github.com/tdex-network/tdex-trader/internal/infrastructure/storage/badger"
	"github.com/tdex-network/tdex-trader/pkg/singlekeywallet"
)

var tradeCmd = cli.Command{
	Name:  "trade",
	Usage: "swap with the best provider for the requested pair",
	Flags: append(
		tradeQueryFlags(),
		&cli.StringFlag{
			Name:     "signing-key",
			Usage:    "hex of the wallet signing private key",
			Required: true,
			EnvVars:  []string{"TRADER_SIGNING_KEY"},
		},
		&cli.StringFlag{
			Name:     "blinding-key",
			Usage:    "hex of the wallet blinding private key",
			Required: true,
			EnvVars:  []string{"TRADER_BLINDING_KEY"},
		},
	),
	Action: tradeAction,
}

func tradeAction(ctx *cli.Context) error {
	signingKey, err := hex.DecodeString(ctx.String("signing-key"))
	if err != nil {
		return fmt.Errorf("invalid signing key: %w", err)
	}
	blindingKey, err := hex.DecodeString(ctx.String("blinding-key"))
	if err != nil {
		return fmt.Errorf("invalid blinding key: %w", err)
	}

	wallet, err := singlekeywallet.NewWalletFromKeys(
		signingKey, blindingKey, config.GetNetwork(),
	)
	if err != nil {
		return err
	}

	explorerSvc, err := esplora.NewService(config.GetString(config.ExplorerURLKey))
	if err != nil {
		return fmt.Errorf("failed to setup explorer: %w", err)
	}

	store, err := walletstore.NewWalletStore(
		filepath.Join(config.GetDatadir(), config.DbLocation), nil,
	)
	if err != nil {
		return err
	}
	defer store.Close()

	order, cleanup, err := findBestOrder(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	svc, err := trade.NewService(explorerSvc, store)
	if err != nil {
		return err
	}

	timeout := time.Duration(config.GetInt(config.TradeTimeoutKey)) * time.Second
	tctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	txid, err := svc.ExecuteTrade(tctx, trade.ExecuteTradeArgs{
		Order:    order,
		Amount:   ctx.Uint64("amount"),
		Asset:    queryAsset(ctx),
		FeeAsset: ctx.String("fee-asset"),
		Wallet:   wallet,
	})
	if err != nil {
		return err
	}

	printJSON(map[string]string{"txid": txid})
	return nil
}
