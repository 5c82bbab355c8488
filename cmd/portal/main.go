package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
	"github.com/ahmedgamal1254/lms-portal/internal/app"
	"github.com/ahmedgamal1254/lms-portal/internal/authstore"
	"github.com/ahmedgamal1254/lms-portal/internal/config"
	"github.com/ahmedgamal1254/lms-portal/internal/controller/screens"
	"github.com/ahmedgamal1254/lms-portal/internal/query"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	auth := authstore.NewManager(authstore.NewFileStore(cfg.AuthStateFile), logger)
	if !auth.IsAuthenticated() {
		logger.Fatal("No valid session found, sign in through the web portal first")
	}
	session, _ := auth.Load()

	client := api.NewClient(cfg.APIBaseURL, cfg.Language, cfg.HTTPTimeout, auth, logger)
	cache := query.New(0, logger)

	chatRepo := repository.NewChatRepository(client, cache, logger)
	lookupRepo := repository.NewLookupRepository(client, cache, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Warm the form selects so the first dialog opens instantly.
	if _, err := lookupRepo.All(ctx); err != nil {
		logger.Sugar().Warnw("Could not prefetch lookup data", "error", err)
	}

	chat := screens.NewChatScreen(chatRepo, logger)
	poller := app.NewUnreadPoller(chat, cfg.PollInterval, logger)
	poller.Start(ctx)
	defer poller.Stop()

	logger.Sugar().Infow("Portal session restored",
		"user_id", session.User.ID,
		"role", session.User.Role,
		"environment", cfg.Environment)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
}
