package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/mtlprog/itemstore/internal/access"
	"github.com/mtlprog/itemstore/internal/api"
	"github.com/mtlprog/itemstore/internal/balance"
	"github.com/mtlprog/itemstore/internal/config"
	"github.com/mtlprog/itemstore/internal/domain"
	"github.com/mtlprog/itemstore/internal/rarity"
)

func main() {
	app := &cli.App{
		Name:  "itemstore",
		Usage: "FUSD balances and item rarity styles",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:      "balance",
				Usage:     "print FUSD balances for balance keys or addresses",
				ArgsUsage: "<key-or-address>...",
				Action:    printBalances,
			},
			{
				Name:      "rarity",
				Usage:     "print CSS classes for rarity values",
				ArgsUsage: "<rarity>...",
				Action:    printRarity,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newBalanceService(cfg config.Config) (*balance.Service, error) {
	ft, err := domain.ParseAddress(cfg.FungibleTokenAddress)
	if err != nil {
		return nil, fmt.Errorf("FUNGIBLE_TOKEN_ADDRESS: %w", err)
	}
	fusd, err := domain.ParseAddress(cfg.FUSDAddress)
	if err != nil {
		return nil, fmt.Errorf("FUSD_ADDRESS: %w", err)
	}

	client := access.NewClient(cfg.AccessURL, cfg.AccessRetryMax, cfg.AccessRetryBaseDelay)
	contracts := balance.Contracts{FungibleToken: ft, FUSD: fusd}
	return balance.NewService(client, contracts, domain.ExpandBalanceKey, cfg.BalanceConcurrency), nil
}

func serve(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	balances, err := newBalanceService(cfg)
	if err != nil {
		return err
	}

	srv := api.NewServer(cfg.HTTPPort, balances)

	go func() {
		slog.Info("HTTP server listening", "port", cfg.HTTPPort, "access_url", cfg.AccessURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	slog.Info("Shutdown complete")
	return nil
}

func printBalances(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("at least one key or address is required", 2)
	}

	balances, err := newBalanceService(config.Load())
	if err != nil {
		return err
	}

	keys := lo.Map(c.Args().Slice(), func(s string, _ int) domain.BalanceKey { return domain.BalanceKey(s) })
	results, err := balances.FetchBalances(c.Context, keys)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.App.Writer)
	for i, r := range results {
		if err := enc.Encode(struct {
			Key domain.BalanceKey `json:"key"`
			domain.BalanceResult
		}{keys[i], r}); err != nil {
			return err
		}
	}
	return nil
}

func printRarity(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("at least one rarity value is required", 2)
	}
	enc := json.NewEncoder(c.App.Writer)
	for _, r := range c.Args().Slice() {
		if err := enc.Encode(rarity.Styles(r)); err != nil {
			return err
		}
	}
	return nil
}
