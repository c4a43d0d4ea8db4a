package db

import (
	"context"
	"fmt"

	sqlc "github.com/Flarenzy/inetstore/internal/db/sqlc"
)

const AddressesTable = "addresses"

// Keep in sync with db/migrations.
const createAddressesTable = `CREATE TABLE IF NOT EXISTS addresses (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    ip_address INET NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const dropAddressesTable = `DROP TABLE IF EXISTS addresses`

// Schema creates and drops the addresses table. Both operations are
// idempotent.
type Schema struct {
	db sqlc.DBTX
}

func NewSchema(db sqlc.DBTX) *Schema {
	return &Schema{db: db}
}

func (s *Schema) CreateTable(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createAddressesTable); err != nil {
		return fmt.Errorf("create table %s: %w", AddressesTable, err)
	}
	return nil
}

func (s *Schema) DropTable(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, dropAddressesTable); err != nil {
		return fmt.Errorf("drop table %s: %w", AddressesTable, err)
	}
	return nil
}
