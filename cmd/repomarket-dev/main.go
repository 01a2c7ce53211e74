// Command repomarket-dev runs the local development backend the client
// defaults to: the auth slice of the RepoMarket REST contract on
// localhost:8081, with in-memory users unless Mongo is configured.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/repomarket/repomarket/internal/api"
	"github.com/repomarket/repomarket/internal/config"
	"github.com/repomarket/repomarket/internal/core/ports"
	"github.com/repomarket/repomarket/internal/core/service"
	"github.com/repomarket/repomarket/internal/infrastructure/db/memory"
	"github.com/repomarket/repomarket/internal/infrastructure/db/mongo"
	"github.com/repomarket/repomarket/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	var (
		repo ports.UserRepository
		db   *mongodriver.Database
	)
	switch cfg.Server.UserStore {
	case "mongo":
		client, database, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		repo = mongo.NewUserRepository(database)
		db = database
	default:
		repo = memory.NewUserRepository()
	}

	authService := service.NewAuthService(repo, cfg.Server.JWTSecret, cfg.Server.TokenTTL)
	e := api.NewRouter(api.Deps{
		AuthService: authService,
		JWTSecret:   cfg.Server.JWTSecret,
		Mongo:       db,
		Log:         log,
	})

	go func() {
		addr := ":" + cfg.Server.Port
		log.Info().Str("addr", addr).Str("user_store", cfg.Server.UserStore).Msg("dev backend listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
