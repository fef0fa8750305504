package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"

	"dpq/internal/api"
	"dpq/internal/api/handler/v1handler"
	"dpq/internal/assessor"
	"dpq/internal/config"
	"dpq/internal/video"
	"dpq/internal/worker"
	"dpq/pkg/behaviorist/anthropic"
	"dpq/pkg/logger"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
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
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			claude := anthropic.New(
				&http.Client{Timeout: cfg.Claude.RequestTimeout},
				cfg.Claude.APIKey,
				cfg.Claude.Model,
				cfg.Claude.MaxTokens,
				cfg.Claude.BaseURL)
			pipeline := video.NewPipeline(cfg.Video.FFmpegPath, cfg.Video.FFprobePath, cfg.Video.SceneThreshold)
			assessorSvc := assessor.New(strg, claude, pipeline, assessor.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, assessorSvc, cfg.Assessor.MaxWorkers)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			jobsUI, err := riverui.NewServer(&riverui.ServerOpts{
				Client: riverClient,
				DB:     strg.Pool,
				Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
				Prefix: "/riverui",
			})
			if err != nil {
				logger.Fatal(ctx, "could not create river UI server", zap.Error(err))
			}
			if err := jobsUI.Start(ctx); err != nil {
				logger.Fatal(ctx, "could not start river UI server", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:   v1handler.Deps{Assessor: assessorSvc},
				JobsUI: jobsUI,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(ctx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop background workers", zap.Error(err))
			}

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
