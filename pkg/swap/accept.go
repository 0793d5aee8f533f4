package swap

import (
	"fmt"

	pbswap "github.com/tdex-network/tdex-protobuf/generated/go/swap"
	"google.golang.org/protobuf/proto"

	tdexv2 "github.com/tdex-network/tdex-daemon/api-spec/protobuf/gen/tdex/v2"
)

// AcceptInfo is the generation-independent content of a SwapAccept message.
type AcceptInfo struct {
	Id          string
	RequestId   string
	Transaction string
}

// ParseAccept decodes a serialized SwapAccept message of either generation.
// The V2 message is tried first, falling back to the legacy one.
func ParseAccept(message []byte) (*AcceptInfo, error) {
	msgV2 := &tdexv2.SwapAccept{}
	if err := proto.Unmarshal(message, msgV2); err == nil &&
		isPsetV2(msgV2.GetTransaction()) {
		return &AcceptInfo{
			Id:          msgV2.GetId(),
			RequestId:   msgV2.GetRequestId(),
			Transaction: msgV2.GetTransaction(),
		}, nil
	}

	msgV1 := &pbswap.SwapAccept{}
	if err := proto.Unmarshal(message, msgV1); err != nil {
		return nil, fmt.Errorf("unmarshal swap accept: %w", err)
	}
	if !isPsetV0(msgV1.GetTransaction()) {
		return nil, fmt.Errorf("swap accept transaction is not a valid pset")
	}
	return &AcceptInfo{
		Id:          msgV1.GetId(),
		RequestId:   msgV1.GetRequestId(),
		Transaction: msgV1.GetTransaction(),
	}, nil
}
