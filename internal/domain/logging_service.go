package domain

import (
	"context"
	"log/slog"
)

type loggingAddressService struct {
	logger *slog.Logger
	next   AddressService
}

func NewLoggingAddressService(logger *slog.Logger, next AddressService) AddressService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingAddressService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingAddressService) ListAddresses(ctx context.Context) ([]Address, error) {
	addresses, err := s.next.ListAddresses(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list addresses failed", "err", err.Error())
	}
	return addresses, err
}

func (s *loggingAddressService) FirstAddress(ctx context.Context) (Address, error) {
	address, err := s.next.FirstAddress(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "first address failed", "err", err.Error())
	}
	return address, err
}

func (s *loggingAddressService) GetAddress(ctx context.Context, id AddressID) (Address, error) {
	address, err := s.next.GetAddress(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "get address failed", "id", string(id), "err", err.Error())
	}
	return address, err
}

func (s *loggingAddressService) CreateAddress(ctx context.Context, input SaveAddressInput) (Address, error) {
	address, err := s.next.CreateAddress(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create address failed", "ip_address", rawIPAddress(input), "err", err.Error())
		return Address{}, err
	}

	s.logger.InfoContext(ctx, "address created", "id", string(address.ID), "ip_address", address.IPAddress.String())
	return address, nil
}

func (s *loggingAddressService) UpdateAddress(ctx context.Context, id AddressID, input SaveAddressInput) (Address, error) {
	address, err := s.next.UpdateAddress(ctx, id, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "update address failed", "id", string(id), "ip_address", rawIPAddress(input), "err", err.Error())
		return Address{}, err
	}

	s.logger.InfoContext(ctx, "address updated", "id", string(address.ID), "ip_address", address.IPAddress.String())
	return address, nil
}

func (s *loggingAddressService) DeleteAddress(ctx context.Context, id AddressID) error {
	err := s.next.DeleteAddress(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete address failed", "id", string(id), "err", err.Error())
		return err
	}

	s.logger.DebugContext(ctx, "address deleted", "id", string(id))
	return nil
}

func rawIPAddress(input SaveAddressInput) string {
	if input.IPAddress == nil {
		return "<null>"
	}
	return *input.IPAddress
}
