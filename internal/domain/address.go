package domain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/onflow/flow-go/model/flow"
)

// Address is a Flow account address.
type Address = flow.Address

// ParseAddress parses a hex Flow address with or without the 0x prefix.
// Short forms are left-padded to 8 bytes ("0x1" is a valid address).
func ParseAddress(s string) (Address, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if h == "" {
		return flow.EmptyAddress, fmt.Errorf("empty address")
	}
	if len(h) > 2*flow.AddressLength {
		return flow.EmptyAddress, fmt.Errorf("address %q longer than %d bytes", s, flow.AddressLength)
	}
	if len(h)%2 == 1 {
		h = "0" + h
	}
	if _, err := hex.DecodeString(h); err != nil {
		return flow.EmptyAddress, fmt.Errorf("address %q is not hex: %w", s, err)
	}
	return flow.HexToAddress(h), nil
}

// FormatAddress returns the 0x-prefixed, zero-padded hex form used in Cadence arguments.
func FormatAddress(a Address) string {
	return "0x" + a.Hex()
}
