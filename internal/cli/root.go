// Package cli implements inetctl, a command line client for the addresses
// table.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	appdb "github.com/Flarenzy/inetstore/internal/db"
	sqlcdb "github.com/Flarenzy/inetstore/internal/db/sqlc"
	"github.com/Flarenzy/inetstore/internal/domain"
)

type options struct {
	dsn      string
	logLevel string
}

// store is an open database session for one command.
type store struct {
	schema  *appdb.Schema
	service domain.AddressService
	close   func()
}

func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func NewRootCmd() *cobra.Command {
	opts := &options{}
	c := &cobra.Command{
		Use:          "inetctl",
		Short:        "inetctl: store and inspect INET values",
		SilenceUsage: true,
	}
	c.PersistentFlags().StringVar(&opts.dsn, "dsn", os.Getenv("DB_CONN"), "database connection string")
	c.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	c.AddCommand(newParseCmd())
	c.AddCommand(newSchemaCmd(opts))
	c.AddCommand(newSaveCmd(opts))
	c.AddCommand(newFirstCmd(opts))
	c.AddCommand(newListCmd(opts))
	c.AddCommand(newGetCmd(opts))
	c.AddCommand(newDeleteCmd(opts))
	return c
}

func (o *options) logger(cmd *cobra.Command) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})), nil
}

func (o *options) open(cmd *cobra.Command) (*store, error) {
	if o.dsn == "" {
		return nil, fmt.Errorf("no database: pass --dsn or set DB_CONN")
	}
	logger, err := o.logger(cmd)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	pool, err := appdb.NewPool(ctx, o.dsn)
	if err != nil {
		return nil, err
	}
	engine, err := appdb.DetectEngine(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	logger.DebugContext(ctx, "connected to database", "engine", string(engine))

	repo := appdb.NewAddressRepository(sqlcdb.New(pool))
	return &store{
		schema:  appdb.NewSchema(pool),
		service: domain.NewLoggingAddressService(logger, domain.NewAddressService(repo)),
		close:   pool.Close,
	}, nil
}
