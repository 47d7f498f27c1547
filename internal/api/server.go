package api

import (
	"net/http"
	"time"
)

// NewServer creates an HTTP server with all routes configured.
func NewServer(port string, balances BalanceFetcher) *http.Server {
	return &http.Server{
		Addr:         ":" + port,
		Handler:      NewMux(balances),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewMux registers the API routes.
func NewMux(balances BalanceFetcher) *http.ServeMux {
	handler := NewHandler(balances)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/balances/{key}", handler.GetBalance)
	mux.HandleFunc("GET /api/v1/balances", handler.ListBalances)
	mux.HandleFunc("GET /api/v1/rarity/{rarity}", handler.GetRarityStyle)
	return mux
}
