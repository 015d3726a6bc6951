package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/constants"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/logger"
)

type ShutdownHook func(ctx context.Context) error

// Run serves on server.Addr until ctx is cancelled, then drains in-flight
// requests and runs hooks in order. A listen failure is returned as is.
func Run(ctx context.Context, server *http.Server, log *logger.Logger, serviceName string, hooks []ShutdownHook) error {
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}
	return Serve(ctx, server, ln, log, serviceName, hooks)
}

func Serve(ctx context.Context, server *http.Server, ln net.Listener, log *logger.Logger, serviceName string, hooks []ShutdownHook) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Infof("%s service listening on %s", serviceName, ln.Addr())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			runHooks(context.Background(), log, serviceName, hooks)
			return fmt.Errorf("%s service stopped: %w", serviceName, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infof("shutting down %s service...", serviceName)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer shutdownCancel()

	log.Infof("%s service: stopping accepting new connections (drain period: %v)", serviceName, constants.DrainTimeout)
	server.SetKeepAlivesEnabled(false)

	drainCtx, drainCancel := context.WithTimeout(shutdownCtx, constants.DrainTimeout)
	defer drainCancel()

	var shutdownErr error
	if err := server.Shutdown(drainCtx); err != nil {
		log.Errorf("%s service forced to shutdown: %v", serviceName, err)
		shutdownErr = err
	} else {
		log.Infof("%s service stopped gracefully", serviceName)
	}

	runHooks(shutdownCtx, log, serviceName, hooks)
	return shutdownErr
}

func runHooks(ctx context.Context, log *logger.Logger, serviceName string, hooks []ShutdownHook) {
	if len(hooks) == 0 {
		return
	}
	log.Infof("%s service: executing shutdown hooks", serviceName)
	for i, hook := range hooks {
		if err := hook(ctx); err != nil {
			log.Errorf("%s service: shutdown hook %d failed: %v", serviceName, i, err)
		}
	}
}
