package swap

import (
	"fmt"

	pbswap "github.com/tdex-network/tdex-protobuf/generated/go/swap"
	"github.com/thanhpk/randstr"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	tdexv2 "github.com/tdex-network/tdex-daemon/api-spec/protobuf/gen/tdex/v2"
)

// CompleteOpts is the struct given to the Complete method.
type CompleteOpts struct {
	// Message is the serialized SwapAccept returned by the counter-party.
	Message []byte
	// Transaction is the accepted swap transaction counter-signed by the
	// proposer, base64 encoded.
	Transaction string
}

// Complete takes a CompleteOpts and returns a serialized SwapComplete
// message of the generation matching the transaction format.
func Complete(opts CompleteOpts) ([]byte, error) {
	accept, err := ParseAccept(opts.Message)
	if err != nil {
		return nil, err
	}

	var message protoreflect.ProtoMessage
	switch {
	case isPsetV0(opts.Transaction):
		message = &pbswap.SwapComplete{
			Id:          randstr.Hex(8),
			AcceptId:    accept.Id,
			Transaction: opts.Transaction,
		}
	case isPsetV2(opts.Transaction):
		message = &tdexv2.SwapComplete{
			Id:          randstr.Hex(8),
			AcceptId:    accept.Id,
			Transaction: opts.Transaction,
		}
	default:
		return nil, fmt.Errorf("invalid swap transaction format")
	}

	return proto.Marshal(message)
}
