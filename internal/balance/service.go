package balance

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mtlprog/itemstore/internal/access"
	"github.com/mtlprog/itemstore/internal/domain"
)

// ScriptExecutor runs read-only Cadence scripts. *access.Client implements it.
type ScriptExecutor interface {
	ExecuteScript(ctx context.Context, script []byte, args []access.Value) (access.Value, error)
}

// KeyExpander derives the account address from a balance key.
type KeyExpander func(domain.BalanceKey) (domain.Address, bool)

// Service queries FUSD balances. Every call is an independent round trip.
type Service struct {
	executor    ScriptExecutor
	expand      KeyExpander
	script      []byte
	concurrency int
}

// NewService creates a balance Service. A nil expander defaults to domain.ExpandBalanceKey;
// concurrency bounds FetchBalances and defaults to 1 when not positive.
func NewService(executor ScriptExecutor, contracts Contracts, expand KeyExpander, concurrency int) *Service {
	if expand == nil {
		expand = domain.ExpandBalanceKey
	}
	return &Service{
		executor:    executor,
		expand:      expand,
		script:      contracts.Script(),
		concurrency: max(concurrency, 1),
	}
}

// FetchBalance resolves the key's address and queries its FUSD balance.
// Keys without an address resolve to an unavailable result without touching the network.
func (s *Service) FetchBalance(ctx context.Context, key domain.BalanceKey) (domain.BalanceResult, error) {
	addr, ok := s.expand(key)
	if !ok {
		slog.Debug("balance key has no address", "key", key)
		return domain.UnavailableResult(), nil
	}

	v, err := s.executor.ExecuteScript(ctx, s.script, []access.Value{access.AddressValue(addr)})
	if err != nil {
		return domain.BalanceResult{}, fmt.Errorf("querying FUSD balance of %s: %w", domain.FormatAddress(addr), err)
	}

	result, err := decodeBalance(addr, v)
	if err != nil {
		return domain.BalanceResult{}, fmt.Errorf("decoding FUSD balance of %s: %w", domain.FormatAddress(addr), err)
	}
	return result, nil
}

// FetchBalances fetches balances for all keys concurrently, preserving key order.
// The first error cancels outstanding queries and is returned.
func (s *Service) FetchBalances(ctx context.Context, keys []domain.BalanceKey) ([]domain.BalanceResult, error) {
	results := make([]domain.BalanceResult, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, key := range keys {
		g.Go(func() error {
			r, err := s.FetchBalance(gctx, key)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// decodeBalance accepts UFix64? (the script's declared type) and a bare UFix64.
func decodeBalance(addr domain.Address, v access.Value) (domain.BalanceResult, error) {
	if v.Type == access.TypeOptional {
		inner, ok, err := v.Optional()
		if err != nil {
			return domain.BalanceResult{}, err
		}
		if !ok {
			return domain.AbsentResult(addr), nil
		}
		v = *inner
	}

	amount, err := v.UFix64()
	if err != nil {
		return domain.BalanceResult{}, err
	}
	return domain.AmountResult(addr, amount), nil
}
