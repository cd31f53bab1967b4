package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ethstore/internal/config"
	"ethstore/internal/core"
	"ethstore/internal/http/handler"
	"ethstore/internal/http/handler/middleware"
	"ethstore/internal/http/payload"
	"ethstore/internal/http/server"
	"ethstore/pkg/jwt"
	"ethstore/pkg/log"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the records HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return start()
		},
	}
}

func start() error {
	cfg, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.NewZapLogger(serviceName, log.ParseLevel(cfg.LogLevel))
	defer logger.Sync()

	store, err := openStorage(cfg.Database, logger)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer store.Close()

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	authenticator := core.NewAuthenticator(logger, jwtService, core.Operator{
		Username:     cfg.Username,
		PasswordHash: cfg.PasswordHash,
	})

	// handler
	recordHdlr := handler.NewRecordHandler(
		logger,
		payload.DecodeValidator{},
		store.recorder,
		authenticator)

	// register routes
	mux := http.NewServeMux()
	recordHdlr.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
