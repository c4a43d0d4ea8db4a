package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sqlc "github.com/Flarenzy/inetstore/internal/db/sqlc"
)

// Engine is a database server with a native INET type.
type Engine string

const (
	EnginePostgres  Engine = "postgres"
	EngineCockroach Engine = "cockroach"
)

var ErrUnsupportedEngine = errors.New("unsupported database engine")

func DetectEngine(ctx context.Context, db sqlc.DBTX) (Engine, error) {
	var version string
	if err := db.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		return "", fmt.Errorf("query server version: %w", err)
	}
	return engineFromVersion(version)
}

func engineFromVersion(version string) (Engine, error) {
	switch {
	case strings.Contains(version, "CockroachDB"):
		return EngineCockroach, nil
	case strings.HasPrefix(version, "PostgreSQL"):
		return EnginePostgres, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEngine, version)
}
