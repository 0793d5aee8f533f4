// Package singlekeywallet is a minimal confidential wallet backed by one
// signing key and one blinding key. It funds and counter-signs swap
// transactions of either pset generation.
package singlekeywallet

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/txscript"
	"github.com/vulpemventures/go-elements/network"
	"github.com/vulpemventures/go-elements/payment"
	"github.com/vulpemventures/go-elements/pset"
	"github.com/vulpemventures/go-elements/psetv2"
)

var (
	// ErrInvalidSigningKey ...
	ErrInvalidSigningKey = errors.New("signing key must be 32 bytes")
	// ErrInvalidBlindingKey ...
	ErrInvalidBlindingKey = errors.New("blinding key must be 32 bytes")
	// ErrNullNetwork ...
	ErrNullNetwork = errors.New("network must not be null")
)

// Wallet holds the keypair and derives a single confidential segwit address
// used both for receiving and for change.
type Wallet struct {
	prvKey      *btcec.PrivateKey
	blindPrvKey *btcec.PrivateKey
	net         *network.Network
}

// NewWalletFromKeys returns a wallet for the given raw signing and blinding
// private keys.
func NewWalletFromKeys(
	signingKey, blindingKey []byte, net *network.Network,
) (*Wallet, error) {
	if len(signingKey) != 32 {
		return nil, ErrInvalidSigningKey
	}
	if len(blindingKey) != 32 {
		return nil, ErrInvalidBlindingKey
	}
	if net == nil {
		return nil, ErrNullNetwork
	}
	return &Wallet{
		prvKey:      btcec.PrivKeyFromBytes(signingKey),
		blindPrvKey: btcec.PrivKeyFromBytes(blindingKey),
		net:         net,
	}, nil
}

// Address returns the wallet's confidential p2wpkh address.
func (w *Wallet) Address() string {
	p2wpkh := w.payment()
	addr, _ := p2wpkh.ConfidentialWitnessPubKeyHash()
	return addr
}

// ChangeAddress returns the address change outputs are locked to. A single
// key wallet sends change back to its only address.
func (w *Wallet) ChangeAddress() string {
	return w.Address()
}

// BlindingPrivateKey returns the raw blinding key of the wallet address.
func (w *Wallet) BlindingPrivateKey() []byte {
	return w.blindPrvKey.Serialize()
}

// SignPset signs every input of the given base64 partial transaction that
// spends one of the wallet's coins, leaving the others untouched. Both pset
// generations are supported, detected from the serialization itself.
func (w *Wallet) SignPset(psetBase64 string) (string, error) {
	if ptx, err := psetv2.NewPsetFromBase64(psetBase64); err == nil {
		return w.signPsetV2(ptx)
	}
	ptx, err := pset.NewPsetFromBase64(psetBase64)
	if err != nil {
		return "", fmt.Errorf("invalid partial transaction format")
	}
	return w.signPsetV0(ptx)
}

func (w *Wallet) signPsetV0(ptx *pset.Pset) (string, error) {
	updater, err := pset.NewUpdater(ptx)
	if err != nil {
		return "", err
	}

	signingScript, outputScript := w.scripts()
	for i, in := range ptx.Inputs {
		if in.WitnessUtxo == nil {
			continue
		}
		if !bytes.Equal(in.WitnessUtxo.Script, outputScript) {
			continue
		}

		hashForSignature := ptx.UnsignedTx.HashForWitnessV0(
			i, signingScript, in.WitnessUtxo.Value, txscript.SigHashAll,
		)
		sig := ecdsa.Sign(w.prvKey, hashForSignature[:])
		if !sig.Verify(hashForSignature[:], w.prvKey.PubKey()) {
			return "", fmt.Errorf(
				"signature verification failed for input %d", i,
			)
		}

		sigWithSigHashType := append(sig.Serialize(), byte(txscript.SigHashAll))
		if _, err := updater.Sign(
			i, sigWithSigHashType, w.prvKey.PubKey().SerializeCompressed(),
			nil, nil,
		); err != nil {
			return "", err
		}
	}

	return ptx.ToBase64()
}

func (w *Wallet) signPsetV2(ptx *psetv2.Pset) (string, error) {
	signer, err := psetv2.NewSigner(ptx)
	if err != nil {
		return "", err
	}
	tx, err := ptx.UnsignedTx()
	if err != nil {
		return "", err
	}

	signingScript, outputScript := w.scripts()
	for i, in := range ptx.Inputs {
		prevout := in.GetUtxo()
		if prevout == nil {
			continue
		}
		if !bytes.Equal(prevout.Script, outputScript) {
			continue
		}

		sighashType := in.SigHashType
		if sighashType == 0 {
			sighashType = txscript.SigHashAll
		}
		sighash := tx.HashForWitnessV0(
			i, signingScript, prevout.Value, sighashType,
		)
		sig := ecdsa.Sign(w.prvKey, sighash[:])
		sigWithSigHashType := append(sig.Serialize(), byte(sighashType))

		if err := signer.SignInput(
			i, sigWithSigHashType, w.prvKey.PubKey().SerializeCompressed(),
			nil, nil,
		); err != nil {
			return "", err
		}
	}

	return ptx.ToBase64()
}

func (w *Wallet) payment() *payment.Payment {
	return payment.FromPublicKey(
		w.prvKey.PubKey(), w.net, w.blindPrvKey.PubKey(),
	)
}

func (w *Wallet) scripts() ([]byte, []byte) {
	p2wpkh := w.payment()
	return p2wpkh.Script, p2wpkh.WitnessScript
}
