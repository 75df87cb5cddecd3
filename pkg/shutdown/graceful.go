// Package shutdown stops long-running components when the process is asked to exit.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

// Stoppable is anything that can drain within a deadline, e.g. *http.Server.
type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Graceful blocks until one of signals arrives or parent is done, then calls
// s.Shutdown bounded by timeout.
func Graceful(parent context.Context, signals []os.Signal, s Stoppable, timeout time.Duration, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	sigCtx, stop := signal.NotifyContext(parent, signals...)
	defer stop()

	<-sigCtx.Done()
	logger.Info("shutdown signal received",
		zap.String("op", "shutdown.Graceful"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown completed with error",
			zap.String("op", "shutdown.Graceful"),
			zap.Error(err),
		)
		return err
	}
	logger.Info("graceful shutdown completed successfully",
		zap.String("op", "shutdown.Graceful"),
	)
	return nil
}
