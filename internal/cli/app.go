package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/repomarket/repomarket/internal/client"
	"github.com/repomarket/repomarket/internal/config"
	"github.com/repomarket/repomarket/internal/guard"
	"github.com/repomarket/repomarket/internal/infrastructure/db/redis"
	"github.com/repomarket/repomarket/internal/session"
	"github.com/repomarket/repomarket/internal/sessionstore"
	"github.com/repomarket/repomarket/pkg/logger"
)

// app wires the client core together for one command invocation: config →
// store → HTTP client → session manager, with the 401/403 hooks installed
// and the stored session rehydrated.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	store   sessionstore.Store
	client  *client.Client
	manager *session.Manager
	nav     *logNavigator
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cl := client.New(client.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
	}, log)
	mgr := session.NewManager(cl, store, log)
	nav := &logNavigator{log: log}

	cl.SetTokenSource(mgr.CurrentToken)
	cl.OnUnauthorized(func() {
		mgr.Invalidate()
		nav.Navigate(guard.RouteLogin)
	})
	cl.OnForbidden(func() {
		nav.Navigate(guard.RouteForbidden)
	})

	mgr.Hydrate()

	return &app{cfg: cfg, log: log, store: store, client: cl, manager: mgr, nav: nav}, nil
}

func buildStore(ctx context.Context, cfg *config.Config) (sessionstore.Store, error) {
	switch cfg.SessionStore {
	case "memory":
		return sessionstore.NewMemory(), nil
	case "redis":
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		return sessionstore.NewRedis(ctx, rdb), nil
	case "file", "":
		path := cfg.SessionFile
		if path == "" {
			var err error
			path, err = sessionstore.DefaultPath()
			if err != nil {
				return nil, err
			}
		}
		return sessionstore.NewFile(path), nil
	default:
		return nil, fmt.Errorf("unknown session store %q (want file, memory or redis)", cfg.SessionStore)
	}
}

// logNavigator satisfies ports.Navigator for a terminal UI: navigation is a
// message, not a page load.
type logNavigator struct {
	log  zerolog.Logger
	last string
}

func (n *logNavigator) Navigate(route string) {
	n.last = route
	n.log.Info().Str("route", route).Msg("navigating")
}

// printJSON renders command output for both humans and pipelines.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
