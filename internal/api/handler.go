package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"github.com/mtlprog/itemstore/internal/domain"
	"github.com/mtlprog/itemstore/internal/rarity"
)

// maxBatchKeys caps the number of keys accepted by ListBalances.
const maxBatchKeys = 100

// BalanceFetcher is the balance service as seen by the HTTP layer.
type BalanceFetcher interface {
	FetchBalance(ctx context.Context, key domain.BalanceKey) (domain.BalanceResult, error)
	FetchBalances(ctx context.Context, keys []domain.BalanceKey) ([]domain.BalanceResult, error)
}

// Handler provides HTTP endpoints for balances and rarity styles.
type Handler struct {
	balances BalanceFetcher
}

// NewHandler creates a new API handler.
func NewHandler(balances BalanceFetcher) *Handler {
	return &Handler{balances: balances}
}

// GetBalance handles GET /api/v1/balances/{key}.
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	key := domain.BalanceKey(r.PathValue("key"))

	result, err := h.balances.FetchBalance(r.Context(), key)
	if err != nil {
		slog.Error("failed to fetch balance", "key", key, "error", err)
		writeError(w, http.StatusBadGateway, "balance query failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ListBalances handles GET /api/v1/balances?key=...&key=....
func (h *Handler) ListBalances(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query()["key"]
	if len(raw) == 0 {
		writeError(w, http.StatusBadRequest, "at least one key parameter is required")
		return
	}
	if len(raw) > maxBatchKeys {
		writeError(w, http.StatusBadRequest, "too many keys")
		return
	}
	keys := lo.Map(raw, func(k string, _ int) domain.BalanceKey { return domain.BalanceKey(k) })

	results, err := h.balances.FetchBalances(r.Context(), keys)
	if err != nil {
		slog.Error("failed to fetch balances", "count", len(keys), "error", err)
		writeError(w, http.StatusBadGateway, "balance query failed")
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// GetRarityStyle handles GET /api/v1/rarity/{rarity}.
func (h *Handler) GetRarityStyle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rarity.Styles(r.PathValue("rarity")))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
