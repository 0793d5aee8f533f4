package domain

import "fmt"

const (
	// ProtocolVersionV1 identifies providers speaking the legacy trade protocol.
	ProtocolVersionV1 ProtocolVersion = iota + 1
	// ProtocolVersionV2 identifies providers speaking the current trade protocol.
	ProtocolVersionV2
)

// ProtocolVersion is the wire protocol generation spoken by a provider.
type ProtocolVersion int

func (v ProtocolVersion) String() string {
	switch v {
	case ProtocolVersionV1:
		return "v1"
	case ProtocolVersionV2:
		return "v2"
	default:
		return fmt.Sprintf("unknown(%d)", int(v))
	}
}

// Provider is the identity of a swap counter-party. It is immutable once
// discovered, either from the public registry or from manual entry.
type Provider struct {
	Name     string
	Endpoint string
	Version  ProtocolVersion
}

func (p Provider) Validate() error {
	if len(p.Endpoint) <= 0 {
		return ErrInvalidProviderEndpoint
	}
	if p.Version != ProtocolVersionV1 && p.Version != ProtocolVersionV2 {
		return ErrInvalidProtocolVersion
	}
	return nil
}
