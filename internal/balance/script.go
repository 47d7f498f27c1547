package balance

import (
	"strings"

	"github.com/mtlprog/itemstore/internal/domain"
)

// Import placeholders substituted with the network's contract addresses.
const (
	PlaceholderFungibleToken = "0xFungibleToken"
	PlaceholderFUSD          = "0xFUSD"
)

// fusdBalanceScript returns nil when the account has no FUSD balance capability.
const fusdBalanceScript = `
import FungibleToken from 0xFungibleToken
import FUSD from 0xFUSD

pub fun main(address: Address): UFix64? {
  if let vault = getAccount(address).getCapability<&{FungibleToken.Balance}>(/public/fusdBalance).borrow() {
    return vault.balance
  }
  return nil
}
`

// Contracts holds the deployed contract addresses the script imports.
type Contracts struct {
	FungibleToken domain.Address
	FUSD          domain.Address
}

// Script renders the FUSD balance script for the given contracts.
func (c Contracts) Script() []byte {
	r := strings.NewReplacer(
		PlaceholderFungibleToken, domain.FormatAddress(c.FungibleToken),
		PlaceholderFUSD, domain.FormatAddress(c.FUSD),
	)
	return []byte(r.Replace(fusdBalanceScript))
}
