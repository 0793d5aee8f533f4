package domain

// ScriptDetails is the wallet-side knowledge attached to one of its output
// scripts.
type ScriptDetails struct {
	Script             string
	Address            string
	BlindingPrivateKey []byte
	DerivationPath     string
}

// UtxoSecrets is the unblinding data recorded for one wallet output, with
// blinders hex encoded in the internal (non-reversed) byte order they are
// revealed in.
type UtxoSecrets struct {
	Asset        string
	Value        uint64
	AssetBlinder string
	ValueBlinder string
}

// WalletStore is the read-only view of the wallet's script index and output
// history needed to resolve confidential inputs. No writer runs concurrently
// with the flows consuming it.
type WalletStore interface {
	// GetScriptDetails looks up a hex-encoded output script in the wallet's
	// script index. A miss means the script is not owned by the wallet.
	GetScriptDetails(script string) (*ScriptDetails, bool)
	// GetUtxoSecrets looks up the output history by its canonical "txid:vout"
	// key. A miss means no unblinding data is cached for that output yet.
	GetUtxoSecrets(key string) (*UtxoSecrets, bool)
}
