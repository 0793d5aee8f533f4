package ports

// Signer signs the wallet-owned inputs of a partially signed transaction.
// The template and the returned counterpart are base64 encoded; internals
// (key storage, sighash policy) are out of scope for this module.
type Signer interface {
	SignPset(psetBase64 string) (string, error)
}

// TradeWallet exposes what the trade executor needs from a wallet: addresses
// for the swap and change outputs, the blinding key of those addresses, and
// a signer for the accepted swap transaction.
type TradeWallet interface {
	Signer
	Address() string
	ChangeAddress() string
	BlindingPrivateKey() []byte
}
