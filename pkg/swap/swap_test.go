package swap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/go-elements/psetv2"
	"google.golang.org/protobuf/proto"

	tdexv2 "github.com/tdex-network/tdex-daemon/api-spec/protobuf/gen/tdex/v2"
)

const (
	lbtc = "5ac9f65c0efcc4775e0baec4ec03abdde22473cd3cf33c0419ca290e0751b225"
	usdt = "2dcf5a8834645654911964ec3602426fd3b9b4017554d3f9c19403e7fc1411d3"
)

func newPsetV2Base64(t *testing.T, numIns int) string {
	t.Helper()

	ins := make([]psetv2.InputArgs, 0, numIns)
	for i := 0; i < numIns; i++ {
		ins = append(ins, psetv2.InputArgs{
			Txid:    strings.Repeat("11", 32),
			TxIndex: uint32(i),
		})
	}
	outs := []psetv2.OutputArgs{{Asset: usdt, Amount: 1000}}

	ptx, err := psetv2.New(ins, outs, nil)
	require.NoError(t, err)
	psetBase64, err := ptx.ToBase64()
	require.NoError(t, err)
	return psetBase64
}

func TestRequestV2(t *testing.T) {
	psetBase64 := newPsetV2Base64(t, 2)

	message, err := Request(RequestOpts{
		AssetToSend:     lbtc,
		AmountToSend:    5000000,
		AssetToReceive:  usdt,
		AmountToReceive: 30000000000,
		Transaction:     psetBase64,
		UnblindedInputs: []UnblindedInput{
			{Index: 0, Asset: lbtc, Amount: 2500000},
			{Index: 1, Asset: lbtc, Amount: 2500000},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, message)

	decoded := &tdexv2.SwapRequest{}
	require.NoError(t, proto.Unmarshal(message, decoded))
	require.NotEmpty(t, decoded.GetId())
	require.Equal(t, lbtc, decoded.GetAssetP())
	require.Equal(t, uint64(5000000), decoded.GetAmountP())
	require.Equal(t, usdt, decoded.GetAssetR())
	require.Equal(t, uint64(30000000000), decoded.GetAmountR())
	require.Equal(t, psetBase64, decoded.GetTransaction())
	require.Len(t, decoded.GetUnblindedInputs(), 2)
}

func TestFailingRequest(t *testing.T) {
	psetBase64 := newPsetV2Base64(t, 1)

	tests := []struct {
		name string
		opts RequestOpts
	}{
		{
			name: "invalid_transaction_format",
			opts: RequestOpts{
				AssetToSend:     lbtc,
				AmountToSend:    5000000,
				AssetToReceive:  usdt,
				AmountToReceive: 30000000000,
				Transaction:     "not a pset",
			},
		},
		{
			name: "missing_unblinded_inputs",
			opts: RequestOpts{
				AssetToSend:     lbtc,
				AmountToSend:    5000000,
				AssetToReceive:  usdt,
				AmountToReceive: 30000000000,
				Transaction:     psetBase64,
			},
		},
		{
			name: "unblinded_input_out_of_range",
			opts: RequestOpts{
				AssetToSend:     lbtc,
				AmountToSend:    5000000,
				AssetToReceive:  usdt,
				AmountToReceive: 30000000000,
				Transaction:     psetBase64,
				UnblindedInputs: []UnblindedInput{
					{Index: 4, Asset: lbtc, Amount: 5000000},
				},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			message, err := Request(tt.opts)
			require.Error(t, err)
			require.Nil(t, message)
		})
	}
}

func TestParseAcceptRoundTrip(t *testing.T) {
	psetBase64 := newPsetV2Base64(t, 1)

	accept := &tdexv2.SwapAccept{
		Id:          "accept-id",
		RequestId:   "request-id",
		Transaction: psetBase64,
	}
	message, err := proto.Marshal(accept)
	require.NoError(t, err)

	info, err := ParseAccept(message)
	require.NoError(t, err)
	require.Equal(t, "accept-id", info.Id)
	require.Equal(t, "request-id", info.RequestId)
	require.Equal(t, psetBase64, info.Transaction)
}

func TestCompleteV2(t *testing.T) {
	psetBase64 := newPsetV2Base64(t, 1)

	accept := &tdexv2.SwapAccept{
		Id:          "accept-id",
		RequestId:   "request-id",
		Transaction: psetBase64,
	}
	acceptMsg, err := proto.Marshal(accept)
	require.NoError(t, err)

	message, err := Complete(CompleteOpts{
		Message:     acceptMsg,
		Transaction: psetBase64,
	})
	require.NoError(t, err)

	decoded := &tdexv2.SwapComplete{}
	require.NoError(t, proto.Unmarshal(message, decoded))
	require.Equal(t, "accept-id", decoded.GetAcceptId())
	require.Equal(t, psetBase64, decoded.GetTransaction())
}
