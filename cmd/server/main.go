package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"ufl-rankings/internal/config"
	"ufl-rankings/internal/constants"
	fxmodules "ufl-rankings/internal/fx"
	"ufl-rankings/internal/httpapi"
	"ufl-rankings/internal/middleware"
	"ufl-rankings/internal/server"

	"connectrpc.com/connect"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func newMux(rankingServer *server.RankingServer, rest *httpapi.Handler, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	path, handler := rankingServer.Handler()
	mux.Handle(path, handler)
	mux.Handle("/", rest.Routes())

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader, "X-Degraded", "Connect-Protocol-Version"},
		MaxAge:         300,
	})

	return middleware.RequestID(logger)(c.Handler(mux))
}

func runServer(
	lc fx.Lifecycle,
	rankingServer *server.RankingServer,
	rest *httpapi.Handler,
	cfg *config.Config,
	db *sql.DB,
	logger zerolog.Logger,
) {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:      http.TimeoutHandler(newMux(rankingServer, rest, logger), constants.RequestTimeout, "request timed out"),
		ReadTimeout:  constants.RequestTimeout,
		WriteTimeout: constants.RequestTimeout + constants.ShutdownTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info().Str("addr", srv.Addr).Str("rpc", connect.Version).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}

			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
