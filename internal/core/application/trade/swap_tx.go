package trade

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/txscript"
	"github.com/tdex-network/tdex-daemon/pkg/explorer"
	"github.com/vulpemventures/go-elements/pset"
	"github.com/vulpemventures/go-elements/psetv2"
	"github.com/vulpemventures/go-elements/transaction"

	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
)

// newSwapTxV0 assembles the partial transaction backing a V1 swap request:
// the wallet's funding of the send leg plus the unfunded receive leg output.
// Change for the sent asset, if any, goes to the change script.
func newSwapTxV0(
	unspents []explorer.Utxo, legs legs, outScript, changeScript []byte,
) (string, error) {
	ptx, err := pset.New(
		[]*transaction.TxInput{}, []*transaction.TxOutput{}, 2, 0,
	)
	if err != nil {
		return "", err
	}
	updater, err := pset.NewUpdater(ptx)
	if err != nil {
		return "", err
	}

	selectedUnspents, change, err := explorer.SelectUnspents(
		unspents, legs.amountToSend, legs.assetToSend,
	)
	if err != nil {
		return "", err
	}

	for _, in := range selectedUnspents {
		input, witnessUtxo, err := in.Parse()
		if err != nil {
			return "", err
		}
		updater.AddInput(input)
		if err := updater.AddInWitnessUtxo(
			witnessUtxo, len(ptx.Inputs)-1,
		); err != nil {
			return "", err
		}
	}

	output, err := newTxOutput(
		legs.assetToReceive, legs.amountToReceive, outScript,
	)
	if err != nil {
		return "", err
	}
	updater.AddOutput(output)

	if change > 0 {
		changeOutput, err := newTxOutput(
			legs.assetToSend, change, changeScript,
		)
		if err != nil {
			return "", err
		}
		updater.AddOutput(changeOutput)
	}

	return ptx.ToBase64()
}

// newSwapTxV2 assembles the PSETv2 backing a V2 swap request. fundAmount and
// receiveAmount are the fee-adjusted amounts of the two legs, while the swap
// message keeps the quoted ones. Outputs carry the wallet's blinding pubkey
// so the counter-party can blind them when completing the transaction.
func newSwapTxV2(
	unspents []explorer.Utxo, legs legs, fundAmount, receiveAmount uint64,
	outScript, changeScript, blindPubKey []byte,
) (*psetv2.Pset, []explorer.Utxo, error) {
	selectedUnspents, change, err := explorer.SelectUnspents(
		unspents, fundAmount, legs.assetToSend,
	)
	if err != nil {
		return nil, nil, err
	}

	ins := make([]psetv2.InputArgs, 0, len(selectedUnspents))
	for _, u := range selectedUnspents {
		ins = append(ins, psetv2.InputArgs{
			Txid:    u.Hash(),
			TxIndex: u.Index(),
		})
	}

	outs := []psetv2.OutputArgs{{
		Asset:        legs.assetToReceive,
		Amount:       receiveAmount,
		Script:       outScript,
		BlindingKey:  blindPubKey,
		BlinderIndex: 0,
	}}
	if change > 0 {
		outs = append(outs, psetv2.OutputArgs{
			Asset:        legs.assetToSend,
			Amount:       change,
			Script:       changeScript,
			BlindingKey:  blindPubKey,
			BlinderIndex: 0,
		})
	}

	ptx, err := psetv2.New(ins, outs, nil)
	if err != nil {
		return nil, nil, err
	}
	updater, err := psetv2.NewUpdater(ptx)
	if err != nil {
		return nil, nil, err
	}
	for i, u := range selectedUnspents {
		_, prevout, err := u.Parse()
		if err != nil {
			return nil, nil, err
		}
		if err := updater.AddInWitnessUtxo(i, prevout); err != nil {
			return nil, nil, err
		}
		if err := updater.AddInUtxoRangeProof(i, u.RangeProof()); err != nil {
			return nil, nil, err
		}
		if err := updater.AddInSighashType(i, txscript.SigHashAll); err != nil {
			return nil, nil, err
		}
	}

	return ptx, selectedUnspents, nil
}

func newTxOutput(
	asset string, value uint64, script []byte,
) (*transaction.TxOutput, error) {
	assetBytes, err := bufferutil.AssetHashToBytes(asset)
	if err != nil {
		return nil, err
	}
	valueBytes, err := bufferutil.ValueToBytes(value)
	if err != nil {
		return nil, err
	}
	return transaction.NewTxOutput(assetBytes, valueBytes, script), nil
}

func blindingPubKey(blindingPrvKey []byte) ([]byte, error) {
	if len(blindingPrvKey) != 32 {
		return nil, errors.New("invalid blinding private key")
	}
	prvKey := btcec.PrivKeyFromBytes(blindingPrvKey)
	return prvKey.PubKey().SerializeCompressed(), nil
}
