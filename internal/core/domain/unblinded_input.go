package domain

// UnblindedInput is the wallet-local record proving ownership and plaintext
// value of one transaction input. Indices are unique and refer to the inputs
// of the transaction the record was resolved against. Blinders are hex
// encoded in serialization (reversed) byte order.
type UnblindedInput struct {
	Index         uint32
	Asset         string
	Amount        uint64
	AssetBlinder  string
	AmountBlinder string
}

func (i UnblindedInput) GetIndex() uint32 {
	return i.Index
}
func (i UnblindedInput) GetAsset() string {
	return i.Asset
}
func (i UnblindedInput) GetAmount() uint64 {
	return i.Amount
}
func (i UnblindedInput) GetAssetBlinder() string {
	return i.AssetBlinder
}
func (i UnblindedInput) GetAmountBlinder() string {
	return i.AmountBlinder
}
