// Package swap assembles and parses the messages exchanged during a TDEX
// swap, for both protocol generations. The generation is inferred from the
// format of the transaction carried by the message: PSETv0 for V1, PSETv2
// for V2.
package swap

import (
	"fmt"

	pbswap "github.com/tdex-network/tdex-protobuf/generated/go/swap"
	"github.com/thanhpk/randstr"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	tdexv2 "github.com/tdex-network/tdex-daemon/api-spec/protobuf/gen/tdex/v2"
)

// UnblindedInput mirrors the unblinding data attached to V2 swap requests.
type UnblindedInput struct {
	Index         uint32
	Asset         string
	Amount        uint64
	AssetBlinder  string
	AmountBlinder string
}

// RequestOpts is the struct to be given to the Request method.
type RequestOpts struct {
	Id              string
	AssetToSend     string
	AmountToSend    uint64
	AssetToReceive  string
	AmountToReceive uint64
	Transaction     string
	// Blinding keys of the swap transaction, keyed by hex script. V1 only.
	InputBlindingKeys  map[string][]byte
	OutputBlindingKeys map[string][]byte
	// Unblinded inputs of the swap transaction. V2 only.
	UnblindedInputs []UnblindedInput
}

func (o RequestOpts) validate() error {
	if isPsetV0(o.Transaction) {
		return checkTxAndBlindKeys(
			o.Transaction, o.InputBlindingKeys, o.OutputBlindingKeys,
		)
	}
	if isPsetV2(o.Transaction) {
		return checkTxAndUnblindedIns(o.Transaction, o.UnblindedInputs)
	}
	return fmt.Errorf("invalid swap transaction format")
}

func (o RequestOpts) forV1() bool {
	return isPsetV0(o.Transaction)
}

func (o RequestOpts) id() string {
	if o.Id != "" {
		return o.Id
	}
	return randstr.Hex(8)
}

func (o RequestOpts) unblindedIns() []*tdexv2.UnblindedInput {
	if len(o.UnblindedInputs) <= 0 {
		return nil
	}
	list := make([]*tdexv2.UnblindedInput, 0, len(o.UnblindedInputs))
	for _, in := range o.UnblindedInputs {
		list = append(list, &tdexv2.UnblindedInput{
			Index:         in.Index,
			Asset:         in.Asset,
			Amount:        in.Amount,
			AssetBlinder:  in.AssetBlinder,
			AmountBlinder: in.AmountBlinder,
		})
	}
	return list
}

// Request takes a RequestOpts struct and returns a serialized SwapRequest
// message of the generation matching the transaction format.
func Request(opts RequestOpts) ([]byte, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	id := opts.id()
	var message protoreflect.ProtoMessage

	if opts.forV1() {
		message = &pbswap.SwapRequest{
			Id: id,
			// Proposer
			AssetP:  opts.AssetToSend,
			AmountP: opts.AmountToSend,
			// Receiver
			AssetR:  opts.AssetToReceive,
			AmountR: opts.AmountToReceive,
			// PSETv0
			Transaction: opts.Transaction,
			// Blinding keys
			InputBlindingKey:  opts.InputBlindingKeys,
			OutputBlindingKey: opts.OutputBlindingKeys,
		}
	} else {
		message = &tdexv2.SwapRequest{
			Id: id,
			// Proposer
			AssetP:  opts.AssetToSend,
			AmountP: opts.AmountToSend,
			// Receiver
			AssetR:  opts.AssetToReceive,
			AmountR: opts.AmountToReceive,
			// PSETv2
			Transaction: opts.Transaction,
			// Unblinded inputs
			UnblindedInputs: opts.unblindedIns(),
		}
	}

	return proto.Marshal(message)
}
