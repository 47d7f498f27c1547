package access

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mtlprog/itemstore/internal/domain"
)

// ErrUnexpectedValue is returned when a JSON-Cadence value has a different type than requested.
var ErrUnexpectedValue = errors.New("unexpected cadence value")

// Cadence type names used by the balance script.
const (
	TypeAddress  = "Address"
	TypeOptional = "Optional"
	TypeUFix64   = "UFix64"
)

// Value is a JSON-Cadence encoded value: {"type": "...", "value": ...}.
type Value struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// AddressValue encodes a Flow address argument.
func AddressValue(addr domain.Address) Value {
	raw, _ := json.Marshal(domain.FormatAddress(addr))
	return Value{Type: TypeAddress, Value: raw}
}

// Optional unwraps an Optional value. The boolean is false for nil.
func (v Value) Optional() (*Value, bool, error) {
	if v.Type != TypeOptional {
		return nil, false, fmt.Errorf("%w: want %s, got %s", ErrUnexpectedValue, TypeOptional, v.Type)
	}
	if len(v.Value) == 0 || bytes.Equal(bytes.TrimSpace(v.Value), []byte("null")) {
		return nil, false, nil
	}
	var inner Value
	if err := json.Unmarshal(v.Value, &inner); err != nil {
		return nil, false, fmt.Errorf("parsing optional value: %w", err)
	}
	return &inner, true, nil
}

// UFix64 decodes a UFix64 value into a decimal.
func (v Value) UFix64() (decimal.Decimal, error) {
	if v.Type != TypeUFix64 {
		return decimal.Zero, fmt.Errorf("%w: want %s, got %s", ErrUnexpectedValue, TypeUFix64, v.Type)
	}
	var s string
	if err := json.Unmarshal(v.Value, &s); err != nil {
		return decimal.Zero, fmt.Errorf("parsing UFix64 literal: %w", err)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing UFix64 %q: %w", s, err)
	}
	return d, nil
}
