package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"FLOW_ACCESS_URL", "FLOW_RETRY_MAX", "FLOW_RETRY_BASE_DELAY",
		"FUNGIBLE_TOKEN_ADDRESS", "FUSD_ADDRESS", "BALANCE_CONCURRENCY", "HTTP_PORT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.AccessURL != "https://rest-testnet.onflow.org" {
		t.Errorf("AccessURL = %q, want default", cfg.AccessURL)
	}
	if cfg.AccessRetryMax != 5 {
		t.Errorf("AccessRetryMax = %d, want 5", cfg.AccessRetryMax)
	}
	if cfg.AccessRetryBaseDelay != 2*time.Second {
		t.Errorf("AccessRetryBaseDelay = %v, want 2s", cfg.AccessRetryBaseDelay)
	}
	if cfg.FungibleTokenAddress != TestnetFungibleTokenAddress {
		t.Errorf("FungibleTokenAddress = %q, want testnet default", cfg.FungibleTokenAddress)
	}
	if cfg.FUSDAddress != TestnetFUSDAddress {
		t.Errorf("FUSDAddress = %q, want testnet default", cfg.FUSDAddress)
	}
	if cfg.BalanceConcurrency != 8 {
		t.Errorf("BalanceConcurrency = %d, want 8", cfg.BalanceConcurrency)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FLOW_ACCESS_URL", "https://rest-mainnet.onflow.org")
	t.Setenv("FLOW_RETRY_MAX", "10")
	t.Setenv("FLOW_RETRY_BASE_DELAY", "5s")
	t.Setenv("FUSD_ADDRESS", "0x3c5959b568896393")
	t.Setenv("HTTP_PORT", "9090")

	cfg := Load()

	if cfg.AccessURL != "https://rest-mainnet.onflow.org" {
		t.Errorf("AccessURL = %q, want override", cfg.AccessURL)
	}
	if cfg.AccessRetryMax != 10 {
		t.Errorf("AccessRetryMax = %d, want 10", cfg.AccessRetryMax)
	}
	if cfg.AccessRetryBaseDelay != 5*time.Second {
		t.Errorf("AccessRetryBaseDelay = %v, want 5s", cfg.AccessRetryBaseDelay)
	}
	if cfg.FUSDAddress != "0x3c5959b568896393" {
		t.Errorf("FUSDAddress = %q, want override", cfg.FUSDAddress)
	}
	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q, want 9090", cfg.HTTPPort)
	}
}

func TestLoadInvalidEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("FLOW_RETRY_MAX", "not-a-number")
	t.Setenv("FLOW_RETRY_BASE_DELAY", "invalid-duration")
	t.Setenv("BALANCE_CONCURRENCY", "many")

	cfg := Load()

	if cfg.AccessRetryMax != 5 {
		t.Errorf("AccessRetryMax = %d, want default 5 on invalid input", cfg.AccessRetryMax)
	}
	if cfg.AccessRetryBaseDelay != 2*time.Second {
		t.Errorf("AccessRetryBaseDelay = %v, want default 2s on invalid input", cfg.AccessRetryBaseDelay)
	}
	if cfg.BalanceConcurrency != 8 {
		t.Errorf("BalanceConcurrency = %d, want default 8 on invalid input", cfg.BalanceConcurrency)
	}
}
