package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Testnet contract addresses used when no override is configured.
const (
	TestnetFungibleTokenAddress = "0x9a0766d93b6608b7"
	TestnetFUSDAddress          = "0xe223d8a629e49c68"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	AccessURL            string
	AccessRetryMax       int
	AccessRetryBaseDelay time.Duration
	FungibleTokenAddress string
	FUSDAddress          string
	BalanceConcurrency   int
	HTTPPort             string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		AccessURL:            envOrDefault("FLOW_ACCESS_URL", "https://rest-testnet.onflow.org"),
		AccessRetryMax:       envOrDefaultInt("FLOW_RETRY_MAX", 5),
		AccessRetryBaseDelay: envOrDefaultDuration("FLOW_RETRY_BASE_DELAY", 2*time.Second),
		FungibleTokenAddress: envOrDefault("FUNGIBLE_TOKEN_ADDRESS", TestnetFungibleTokenAddress),
		FUSDAddress:          envOrDefault("FUSD_ADDRESS", TestnetFUSDAddress),
		BalanceConcurrency:   envOrDefaultInt("BALANCE_CONCURRENCY", 8),
		HTTPPort:             envOrDefault("HTTP_PORT", "8080"),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return n
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
