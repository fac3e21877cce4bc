// Package commands implements the eduline CLI, a terminal shell over
// the platform client SDK.
package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eduline/eduline-client/internal/core/ports"
	"github.com/eduline/eduline-client/internal/core/service"
	"github.com/eduline/eduline-client/internal/core/session"
	"github.com/eduline/eduline-client/internal/infrastructure/config"
	"github.com/eduline/eduline-client/internal/infrastructure/httpclient"
	filestore "github.com/eduline/eduline-client/internal/infrastructure/storage/file"
	redisstore "github.com/eduline/eduline-client/internal/infrastructure/storage/redis"
	"github.com/eduline/eduline-client/pkg/logger"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "eduline",
		Short:         "Client for the eduline e-learning platform",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newLoginCommand(),
		newRegisterCommand(),
		newLogoutCommand(),
		newProfileCommand(),
		newNotificationsCommand(),
		newCoursesCommand(),
		newEnrollmentsCommand(),
		newCertificatesCommand(),
	)

	return rootCmd
}

// app bundles the wired SDK components behind each command.
type app struct {
	cfg           *config.Config
	log           zerolog.Logger
	sess          *session.Session
	sessions      *service.SessionService
	notifications *service.NotificationService
	catalog       *service.CatalogService
	guard         *service.RouteGuard
}

// newApp wires config, logger, session state, pipeline, storage and
// services, registers the 401 hook, and restores any persisted
// session. Called once per command invocation.
func newApp(ctx context.Context) (*app, error) {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	sess := session.New()
	api := httpclient.New(cfg.APIBase, sess, log)
	nav := &consoleNavigator{log: log}

	var store ports.RecordStore
	switch cfg.Session.Backend {
	case "redis":
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect session store: %w", err)
		}
		store = redisstore.NewStore(client)
	case "file":
		store = filestore.New(cfg.Session.Path)
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}

	sessions := service.NewSessionService(api, sess, store, nav, log)
	api.OnUnauthorized(sessions.HandleUnauthorized)
	sessions.Restore(ctx)

	return &app{
		cfg:           cfg,
		log:           log,
		sess:          sess,
		sessions:      sessions,
		notifications: service.NewNotificationService(api, log),
		catalog:       service.NewCatalogService(api, log),
		guard:         service.NewRouteGuard(sess, nav),
	}, nil
}

// requireAuth runs the route guard for a protected destination.
func (a *app) requireAuth(path string) error {
	if !a.guard.Allow(path) {
		return fmt.Errorf("you are not logged in; run `eduline login` first")
	}
	return nil
}

// consoleNavigator is the terminal stand-in for a router: navigation
// targets are reported, not followed.
type consoleNavigator struct {
	log zerolog.Logger
}

func (n *consoleNavigator) NavigateTo(path string) {
	n.log.Info().Str("path", path).Msg("navigate")
}
