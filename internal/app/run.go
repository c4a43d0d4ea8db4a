package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/Flarenzy/inetstore/internal/auth"
	appdb "github.com/Flarenzy/inetstore/internal/db"
	sqlcdb "github.com/Flarenzy/inetstore/internal/db/sqlc"
	"github.com/Flarenzy/inetstore/internal/domain"
	apihttp "github.com/Flarenzy/inetstore/internal/http"
)

const shutdownTimeout = 5 * time.Second

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, cfg, listener)
}

// Serve owns listener and closes it on return.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger, err := newLogger(cfg.LogLevel, os.Stdout)
	if err != nil {
		_ = listener.Close()
		return err
	}

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		_ = listener.Close()
		return err
	}

	pool, err := appdb.NewPool(ctx, cfg.DSN)
	if err != nil {
		_ = listener.Close()
		return err
	}
	defer pool.Close()

	engine, err := appdb.DetectEngine(ctx, pool)
	if err != nil {
		_ = listener.Close()
		return err
	}
	logger.InfoContext(ctx, "connected to database", "engine", string(engine))

	if cfg.AutoMigrate {
		if err := appdb.NewSchema(pool).CreateTable(ctx); err != nil {
			_ = listener.Close()
			return err
		}
		logger.InfoContext(ctx, "schema ready", "table", appdb.AddressesTable)
	}

	queries := sqlcdb.New(pool)
	addressRepo := appdb.NewAddressRepository(queries)
	addressService := domain.NewLoggingAddressService(logger, domain.NewAddressService(addressRepo))

	api := apihttp.NewAPI(logger, pool, addressService, authenticator)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving http", "addr", listener.Addr().String(), "auth_enabled", authenticator != nil)
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.AuthIssuer,
		JWKSURL:  cfg.AuthJWKSURL,
		Audience: cfg.AuthAudience,
	})
}
