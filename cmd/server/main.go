package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/Wichtowski/whobought/internal/auth"
	"github.com/Wichtowski/whobought/internal/config"
	"github.com/Wichtowski/whobought/internal/server"
	"github.com/Wichtowski/whobought/internal/storage/mongodb"
	"github.com/Wichtowski/whobought/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, err := mongodb.New(ctx, mongodb.Config{
		URI:       cfg.MongoURI,
		Database:  cfg.Database,
		Users:     cfg.UsersCollection,
		Items:     cfg.ItemsCollection,
		Groups:    cfg.GroupsCollection,
		Purchases: cfg.PurchasesCollection,
		Payments:  cfg.PaymentsCollection,
	})
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close(ctx)
	slog.Info("Storage initialized", "database", cfg.Database)

	authenticator := auth.NewPasswordAuthenticator(store.Users())
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL, cfg.Issuer, cfg.Audience)

	srv := server.New(store, authenticator, tokens, slog.Default())

	// h2c allows HTTP/2 without TLS for local and in-cluster traffic.
	handler := h2c.NewHandler(srv.Handler(), &http2.Server{})

	slog.Info("Server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
