package main

import (
	"context"
	"errors"
	"leadgen/internal/account"
	"leadgen/internal/api"
	"leadgen/internal/api/handler/v1handler"
	"leadgen/internal/config"
	"leadgen/internal/dispatch"
	"leadgen/internal/drafts"
	"leadgen/internal/leads"
	"leadgen/internal/settings"
	"leadgen/internal/worker"
	"leadgen/pkg/logger"
	"leadgen/pkg/webhook"
	"leadgen/pkg/webhook/httpwebhook"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			rdb, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			hooks := httpwebhook.New(&http.Client{Timeout: cfg.Webhooks.Timeout}, cfg.Webhooks.Token,
				map[webhook.Name]string{
					webhook.Search: cfg.Webhooks.SearchURL,
					webhook.Emails: cfg.Webhooks.EmailsURL,
				})

			draftsService := drafts.New(strg, drafts.NewOptions(cfg))
			deps := api.Deps{Deps: v1handler.Deps{
				Accounts:   account.New(strg),
				Leads:      leads.New(strg, leads.NewOptions(cfg)),
				Settings:   settings.New(strg, rdb, settings.NewOptions(cfg)),
				Dispatcher: dispatch.New(strg, rdb, hooks, dispatch.NewOptions(cfg)),
				Drafts:     draftsService,
			}}

			riverClient, err := worker.Start(ctx, strg.Pool, draftsService, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start job queue", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, deps)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping job queue...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop job queue", zap.Error(err))
			}
		},
	}

	return cmd
}
