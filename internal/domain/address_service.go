package domain

import (
	"context"
	"fmt"

	"github.com/Flarenzy/inetstore/internal/inet"
)

type addressService struct {
	addresses AddressRepository
}

func NewAddressService(addresses AddressRepository) AddressService {
	return &addressService{addresses: addresses}
}

func (s *addressService) ListAddresses(ctx context.Context) ([]Address, error) {
	return s.addresses.List(ctx)
}

func (s *addressService) FirstAddress(ctx context.Context) (Address, error) {
	return s.addresses.First(ctx)
}

func (s *addressService) GetAddress(ctx context.Context, id AddressID) (Address, error) {
	return s.addresses.FindByID(ctx, id)
}

func (s *addressService) CreateAddress(ctx context.Context, input SaveAddressInput) (Address, error) {
	record, err := validateSaveAddress(input)
	if err != nil {
		return Address{}, err
	}
	return s.addresses.Create(ctx, record)
}

func (s *addressService) UpdateAddress(ctx context.Context, id AddressID, input SaveAddressInput) (Address, error) {
	record, err := validateSaveAddress(input)
	if err != nil {
		return Address{}, err
	}
	return s.addresses.Update(ctx, id, record)
}

func (s *addressService) DeleteAddress(ctx context.Context, id AddressID) error {
	deleted, err := s.addresses.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// validateSaveAddress parses the assignment before anything is written. The
// returned error matches both ErrInvalidInput and the inet failure kind.
func validateSaveAddress(input SaveAddressInput) (SaveAddressRecord, error) {
	if input.IPAddress == nil {
		return SaveAddressRecord{}, nil
	}

	ip, err := inet.Parse(*input.IPAddress)
	if err != nil {
		return SaveAddressRecord{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return SaveAddressRecord{IPAddress: ip}, nil
}
