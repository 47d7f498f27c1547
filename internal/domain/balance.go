package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BalanceKeyPrefix namespaces FUSD balance keys.
const BalanceKeyPrefix = "fusd-balance:"

// BalanceKey identifies one account's FUSD balance. It is opaque to callers;
// ExpandBalanceKey recovers the account address.
type BalanceKey string

// NewBalanceKey builds the key for the given address.
func NewBalanceKey(addr Address) BalanceKey {
	return BalanceKey(BalanceKeyPrefix + FormatAddress(addr))
}

// ExpandBalanceKey derives the account address from a key. Both prefixed keys and
// bare addresses are accepted. The boolean is false when no address can be derived.
func ExpandBalanceKey(key BalanceKey) (Address, bool) {
	raw := strings.TrimPrefix(string(key), BalanceKeyPrefix)
	addr, err := ParseAddress(raw)
	if err != nil {
		return Address{}, false
	}
	return addr, true
}

// BalanceStatus tags the outcome of a balance query.
type BalanceStatus string

const (
	// BalanceAmount means the account holds a balance resource.
	BalanceAmount BalanceStatus = "amount"
	// BalanceAbsent means the address is valid but no balance capability was found.
	BalanceAbsent BalanceStatus = "absent"
	// BalanceUnavailable means no address could be derived, so no query was issued.
	BalanceUnavailable BalanceStatus = "unavailable"
)

// BalanceResult is the decoded outcome of a single balance query.
type BalanceResult struct {
	Status  BalanceStatus       `json:"status"`
	Address string              `json:"address,omitempty"`
	Amount  decimal.NullDecimal `json:"amount"`
}

// AmountResult returns a result carrying a balance.
func AmountResult(addr Address, amount decimal.Decimal) BalanceResult {
	return BalanceResult{
		Status:  BalanceAmount,
		Address: FormatAddress(addr),
		Amount:  decimal.NewNullDecimal(amount),
	}
}

// AbsentResult returns a result for an address without a balance resource.
func AbsentResult(addr Address) BalanceResult {
	return BalanceResult{Status: BalanceAbsent, Address: FormatAddress(addr)}
}

// UnavailableResult returns the result for keys that did not expand to an address.
func UnavailableResult() BalanceResult {
	return BalanceResult{Status: BalanceUnavailable}
}

// HasAmount reports whether the result carries a balance.
func (r BalanceResult) HasAmount() bool {
	return r.Status == BalanceAmount && r.Amount.Valid
}
