package trade

import (
	"encoding/hex"

	log "github.com/sirupsen/logrus"
	"github.com/vulpemventures/go-elements/psetv2"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
)

// ResolveUnblindedInputs matches the inputs of the given partial transaction
// against the wallet store and returns the unblinding data of those spending
// coins the wallet knows about. Inputs with an unknown script or outpoint are
// skipped, the returned list keeps the original input indexes. Blinders are
// stored by the wallet in internal byte order and revealed here in the
// reversed one expected on the wire.
func ResolveUnblindedInputs(
	ptx *psetv2.Pset, store domain.WalletStore,
) []domain.UnblindedInput {
	list := make([]domain.UnblindedInput, 0, len(ptx.Inputs))
	if store == nil {
		return list
	}

	for i, in := range ptx.Inputs {
		prevout := in.GetUtxo()
		if prevout == nil {
			continue
		}
		script := hex.EncodeToString(prevout.Script)
		if _, ok := store.GetScriptDetails(script); !ok {
			continue
		}

		outpoint := domain.Outpoint{
			Hash:  bufferutil.TxIDFromBytes(in.PreviousTxid),
			Index: in.PreviousTxIndex,
		}
		secrets, ok := store.GetUtxoSecrets(outpoint.String())
		if !ok {
			log.Debugf(
				"missing unblinding data for wallet outpoint %s", outpoint,
			)
			continue
		}

		assetBlinder, err := bufferutil.ReverseHex(secrets.AssetBlinder)
		if err != nil {
			log.Warnf(
				"skipping outpoint %s with malformed asset blinder: %s",
				outpoint, err,
			)
			continue
		}
		amountBlinder, err := bufferutil.ReverseHex(secrets.ValueBlinder)
		if err != nil {
			log.Warnf(
				"skipping outpoint %s with malformed amount blinder: %s",
				outpoint, err,
			)
			continue
		}

		list = append(list, domain.UnblindedInput{
			Index:         uint32(i),
			Asset:         secrets.Asset,
			Amount:        secrets.Value,
			AssetBlinder:  assetBlinder,
			AmountBlinder: amountBlinder,
		})
	}
	return list
}
