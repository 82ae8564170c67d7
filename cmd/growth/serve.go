package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpgo/growth-calculator/internal/web"
)

func newServeCmd(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the interactive comparison page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := web.NewServer(":"+port, a.engine, a.logger, a.settings.Currency)
			srv.ReadTimeout = 10 * time.Second
			srv.WriteTimeout = 10 * time.Second
			srv.IdleTimeout = 60 * time.Second
			srv.MaxHeaderBytes = 1 << 16

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, srv, a)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", a.settings.Port, "port to listen on")
	return cmd
}

// runServer serves until ctx is done, then shuts down with a bounded grace period.
func runServer(ctx context.Context, srv *web.Server, a *app) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting growth server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error("Server error", "error", err, "addr", srv.Addr)
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server shutdown error", "error", err)
		return err
	}
	a.logger.Info("Server stopped gracefully")
	return nil
}
