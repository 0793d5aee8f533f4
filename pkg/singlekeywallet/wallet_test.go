package singlekeywallet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/go-elements/address"
	"github.com/vulpemventures/go-elements/network"

	"github.com/tdex-network/tdex-trader/pkg/singlekeywallet"
)

func TestNewWalletFromKeys(t *testing.T) {
	t.Parallel()

	signingKey := bytes.Repeat([]byte{0x01}, 32)
	blindingKey := bytes.Repeat([]byte{0x02}, 32)

	wallet, err := singlekeywallet.NewWalletFromKeys(
		signingKey, blindingKey, &network.Regtest,
	)
	require.NoError(t, err)
	require.NotNil(t, wallet)
	require.Equal(t, blindingKey, wallet.BlindingPrivateKey())

	// The confidential address decodes to a p2wpkh script and change goes
	// back to the same address.
	addr := wallet.Address()
	require.NotEmpty(t, addr)
	require.Equal(t, addr, wallet.ChangeAddress())

	script, err := address.ToOutputScript(addr)
	require.NoError(t, err)
	require.Len(t, script, 22)

	info, err := address.FromConfidential(addr)
	require.NoError(t, err)
	require.NotEmpty(t, info.BlindingKey)
}

func TestFailingNewWalletFromKeys(t *testing.T) {
	t.Parallel()

	signingKey := bytes.Repeat([]byte{0x01}, 32)
	blindingKey := bytes.Repeat([]byte{0x02}, 32)

	tests := []struct {
		name          string
		signingKey    []byte
		blindingKey   []byte
		net           *network.Network
		expectedError error
	}{
		{
			name:          "invalid_signing_key",
			signingKey:    signingKey[:16],
			blindingKey:   blindingKey,
			net:           &network.Regtest,
			expectedError: singlekeywallet.ErrInvalidSigningKey,
		},
		{
			name:          "invalid_blinding_key",
			signingKey:    signingKey,
			blindingKey:   nil,
			net:           &network.Regtest,
			expectedError: singlekeywallet.ErrInvalidBlindingKey,
		},
		{
			name:          "missing_network",
			signingKey:    signingKey,
			blindingKey:   blindingKey,
			net:           nil,
			expectedError: singlekeywallet.ErrNullNetwork,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			wallet, err := singlekeywallet.NewWalletFromKeys(
				tt.signingKey, tt.blindingKey, tt.net,
			)
			require.Nil(t, wallet)
			require.EqualError(t, err, tt.expectedError.Error())
		})
	}
}

func TestFailingSignPset(t *testing.T) {
	t.Parallel()

	wallet, err := singlekeywallet.NewWalletFromKeys(
		bytes.Repeat([]byte{0x01}, 32),
		bytes.Repeat([]byte{0x02}, 32),
		&network.Regtest,
	)
	require.NoError(t, err)

	signedTx, err := wallet.SignPset("not a partial transaction")
	require.Error(t, err)
	require.Empty(t, signedTx)
}
