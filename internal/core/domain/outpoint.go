package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Outpoint references a transaction output by its txid in display (reversed)
// byte order and its output index. Its string form is the canonical key of
// the wallet's output history.
type Outpoint struct {
	Hash  string
	Index uint32
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.Hash, o.Index)
}

// ParseOutpoint decodes the canonical "txid:vout" key back to its components.
func ParseOutpoint(key string) (*Outpoint, error) {
	i := strings.LastIndex(key, ":")
	if i < 0 {
		return nil, ErrInvalidOutpoint
	}
	hash := key[:i]
	if len(hash) != 64 {
		return nil, ErrInvalidOutpoint
	}
	index, err := strconv.ParseUint(key[i+1:], 10, 32)
	if err != nil {
		return nil, ErrInvalidOutpoint
	}
	return &Outpoint{Hash: hash, Index: uint32(index)}, nil
}
