package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Chalhotra/LibMgmt/library/httpapi"
	"github.com/Chalhotra/LibMgmt/library/httpapi/auth"
	"github.com/Chalhotra/LibMgmt/library/shell/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := opts.loadSettings()
			if err != nil {
				return err
			}

			if err = settings.RequireJWTSecret(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, settings)
		},
	}
}

func serve(ctx context.Context, settings config.Settings) error {
	obs, err := setupObservability(ctx, settings)
	if err != nil {
		return err
	}
	defer obs.close()

	libraryStore, closeStore, err := config.OpenStore(ctx, settings, obs.storeOptions()...)
	if err != nil {
		return err
	}
	defer closeStore()

	handlers, err := httpapi.NewHandlers(libraryStore, settings.Policy.ToPolicy(), obs.handlers())
	if err != nil {
		return err
	}

	issuer, err := auth.NewIssuer(settings.JWTSecret, settings.JWTTTL)
	if err != nil {
		return err
	}

	router := httpapi.NewRouter(
		httpapi.Dependencies{
			Handlers: handlers,
			Issuer:   issuer,
			Registry: obs.registry,
			Pinger:   libraryStore,
		},
		httpapi.WithLogger(obs.logger),
	)

	server := &http.Server{
		Addr:              settings.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	obs.logger.InfoContext(ctx, "http server listening", "addr", settings.HTTPAddr, "db_adapter", settings.DBAdapter)

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil

	case <-ctx.Done():
		obs.logger.Info("shutting down http server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
