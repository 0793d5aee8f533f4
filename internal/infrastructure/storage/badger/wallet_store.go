// Package walletstore persists the wallet's script index and the unblinding
// data of its outputs on a badger store.
package walletstore

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
)

type walletStore struct {
	store *badgerhold.Store
}

// WalletStore combines the read-only view consumed by the trade flows with
// the write side fed by the wallet while scanning its own history.
type WalletStore interface {
	domain.WalletStore
	AddScriptDetails(details domain.ScriptDetails) error
	AddUtxoSecrets(outpoint domain.Outpoint, secrets domain.UtxoSecrets) error
	Close()
}

// NewWalletStore opens (or creates if missing) the wallet db under the given
// base dir. An empty baseDbDir opens a volatile in-memory store.
func NewWalletStore(
	baseDbDir string, logger badger.Logger,
) (WalletStore, error) {
	var walletDir string
	if len(baseDbDir) > 0 {
		walletDir = filepath.Join(baseDbDir, "wallet")
	}

	store, err := createDb(walletDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening wallet db: %w", err)
	}
	return &walletStore{store}, nil
}

func (w *walletStore) AddScriptDetails(details domain.ScriptDetails) error {
	if len(details.Script) <= 0 {
		return fmt.Errorf("missing script")
	}
	if err := w.store.Upsert(
		scriptKey(details.Script), &details,
	); err != nil {
		return err
	}
	return nil
}

func (w *walletStore) AddUtxoSecrets(
	outpoint domain.Outpoint, secrets domain.UtxoSecrets,
) error {
	if err := w.store.Upsert(utxoKey(outpoint.String()), &secrets); err != nil {
		return err
	}
	return nil
}

func (w *walletStore) GetScriptDetails(
	script string,
) (*domain.ScriptDetails, bool) {
	var details domain.ScriptDetails
	if err := w.store.Get(scriptKey(script), &details); err != nil {
		if err != badgerhold.ErrNotFound {
			log.Errorf("wallet store: failed to get script details: %s", err)
		}
		return nil, false
	}
	return &details, true
}

func (w *walletStore) GetUtxoSecrets(key string) (*domain.UtxoSecrets, bool) {
	var secrets domain.UtxoSecrets
	if err := w.store.Get(utxoKey(key), &secrets); err != nil {
		if err != badgerhold.ErrNotFound {
			log.Errorf("wallet store: failed to get utxo secrets: %s", err)
		}
		return nil, false
	}
	return &secrets, true
}

func (w *walletStore) Close() {
	w.store.Close()
}

// Scripts and outpoints live in the same store, keys are namespaced to keep
// the two families apart.
func scriptKey(script string) string {
	return fmt.Sprintf("script:%s", script)
}

func utxoKey(outpoint string) string {
	return fmt.Sprintf("utxo:%s", outpoint)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, err
	}

	if !isInMemory {
		ticker := time.NewTicker(30 * time.Minute)

		go func() {
			for {
				<-ticker.C
				if err := db.Badger().RunValueLogGC(0.5); err != nil &&
					err != badger.ErrNoRewrite {
					log.Error(err)
				}
			}
		}()
	}

	return db, nil
}
