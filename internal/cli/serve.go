package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/iwvelando/earning-formula/internal/server"
	"github.com/iwvelando/earning-formula/pkg/shutdown"
	"github.com/iwvelando/earning-formula/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (s *session) serveCommand() *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := s.app.Config
			if address == "" {
				address = conf.Server.Address
			}
			if err := validation.ValidateAddress(address); err != nil {
				return err
			}

			logger := s.app.Logger
			handler := server.NewHandler(logger, s.app.Manager, conf.Server.ImportSizeBytes(), s.opts.Version)
			srv := server.New(address, handler)
			timeout := time.Duration(conf.Server.ShutdownTimeoutSeconds) * time.Second

			return serve(cmd.Context(), srv, timeout, logger)
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "listen address override, e.g. :8080")
	return cmd
}

func serve(parent context.Context, srv *http.Server, timeout time.Duration, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var listenErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Info("API server starting",
			zap.String("op", "cli.serve"),
			zap.String("address", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr = err
			cancel()
		}
	}()

	shutdownErr := shutdown.Graceful(ctx,
		[]os.Signal{os.Interrupt, syscall.SIGTERM},
		srv,
		timeout,
		logger,
	)
	<-done

	if listenErr != nil {
		return fmt.Errorf("API server failed: %w", listenErr)
	}
	return shutdownErr
}
