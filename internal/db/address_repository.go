package db

import (
	"context"
	"errors"
	"fmt"

	sqlc "github.com/Flarenzy/inetstore/internal/db/sqlc"
	"github.com/Flarenzy/inetstore/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// SQLSTATE codes the server uses when it refuses an inet literal.
const (
	invalidTextRepresentation = "22P02"
	invalidParameterValue     = "22023"
)

type AddressRepository struct {
	queries *sqlc.Queries
}

func NewAddressRepository(queries *sqlc.Queries) *AddressRepository {
	return &AddressRepository{queries: queries}
}

func (r *AddressRepository) List(ctx context.Context) ([]domain.Address, error) {
	addresses, err := r.queries.ListAddresses(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Address, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, toDomainAddress(address))
	}

	return out, nil
}

func (r *AddressRepository) First(ctx context.Context) (domain.Address, error) {
	address, err := r.queries.FirstAddress(ctx)
	if err != nil {
		if isNoRows(err) {
			return domain.Address{}, domain.ErrNotFound
		}
		return domain.Address{}, err
	}

	return toDomainAddress(address), nil
}

func (r *AddressRepository) FindByID(ctx context.Context, id domain.AddressID) (domain.Address, error) {
	parsedID, err := parseAddressID(id)
	if err != nil {
		return domain.Address{}, fmt.Errorf("%w: invalid address id", domain.ErrInvalidInput)
	}

	address, err := r.queries.GetAddressByID(ctx, parsedID)
	if err != nil {
		if isNoRows(err) {
			return domain.Address{}, domain.ErrNotFound
		}
		return domain.Address{}, err
	}

	return toDomainAddress(address), nil
}

func (r *AddressRepository) Create(ctx context.Context, record domain.SaveAddressRecord) (domain.Address, error) {
	address, err := r.queries.CreateAddress(ctx, record.IPAddress)
	if err != nil {
		if isInvalidValue(err) {
			return domain.Address{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		return domain.Address{}, err
	}

	return toDomainAddress(address), nil
}

func (r *AddressRepository) Update(ctx context.Context, id domain.AddressID, record domain.SaveAddressRecord) (domain.Address, error) {
	parsedID, err := parseAddressID(id)
	if err != nil {
		return domain.Address{}, fmt.Errorf("%w: invalid address id", domain.ErrInvalidInput)
	}

	address, err := r.queries.UpdateAddressByID(ctx, sqlc.UpdateAddressByIDParams{
		IpAddress: record.IPAddress,
		ID:        parsedID,
	})
	if err != nil {
		if isNoRows(err) {
			return domain.Address{}, domain.ErrNotFound
		}
		if isInvalidValue(err) {
			return domain.Address{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		return domain.Address{}, err
	}

	return toDomainAddress(address), nil
}

func (r *AddressRepository) Delete(ctx context.Context, id domain.AddressID) (bool, error) {
	parsedID, err := parseAddressID(id)
	if err != nil {
		return false, fmt.Errorf("%w: invalid address id", domain.ErrInvalidInput)
	}

	deleted, err := r.queries.DeleteAddressByID(ctx, parsedID)
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func toDomainAddress(address sqlc.Address) domain.Address {
	return domain.Address{
		ID:        domain.AddressID(uuid.UUID(address.ID.Bytes).String()),
		IPAddress: address.IpAddress,
		CreatedAt: address.CreatedAt.Time,
		UpdatedAt: address.UpdatedAt.Time,
	}
}

func parseAddressID(id domain.AddressID) (pgtype.UUID, error) {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return pgtype.UUID{}, err
	}

	return pgtype.UUID{Bytes: u, Valid: true}, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func isInvalidValue(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == invalidTextRepresentation || pgErr.Code == invalidParameterValue
}
