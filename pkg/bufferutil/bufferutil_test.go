package bufferutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
)

// An asymmetric txid so byte-order mistakes cannot cancel out.
var txid = strings.Repeat("01", 31) + "ff"

func TestTxIDByteOrder(t *testing.T) {
	t.Parallel()

	buf, err := bufferutil.TxIDToBytes(txid)
	require.NoError(t, err)
	// The serialization order starts with the last display byte.
	require.Equal(t, byte(0xff), buf[0])
	require.Equal(t, txid, bufferutil.TxIDFromBytes(buf))

	_, err = bufferutil.TxIDToBytes("not hex")
	require.Error(t, err)
}

func TestAssetHashByteOrder(t *testing.T) {
	t.Parallel()

	asset := strings.Repeat("02", 31) + "ee"
	buf, err := bufferutil.AssetHashToBytes(asset)
	require.NoError(t, err)
	// Unconfidential prefix byte plus the reversed hash.
	require.Len(t, buf, 33)
	require.Equal(t, byte(0x01), buf[0])
	require.Equal(t, byte(0xee), buf[1])
	require.Equal(t, asset, bufferutil.AssetHashFromBytes(buf))
}

func TestValueRoundTrip(t *testing.T) {
	t.Parallel()

	buf, err := bufferutil.ValueToBytes(100000000)
	require.NoError(t, err)
	require.Equal(t, uint64(100000000), bufferutil.ValueFromBytes(buf))
}

func TestReverseHex(t *testing.T) {
	t.Parallel()

	reversed, err := bufferutil.ReverseHex("0102ff")
	require.NoError(t, err)
	require.Equal(t, "ff0201", reversed)

	_, err = bufferutil.ReverseHex("not hex")
	require.Error(t, err)
}
