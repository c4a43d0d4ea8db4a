package domain

import "context"

type AddressService interface {
	ListAddresses(ctx context.Context) ([]Address, error)
	FirstAddress(ctx context.Context) (Address, error)
	GetAddress(ctx context.Context, id AddressID) (Address, error)
	CreateAddress(ctx context.Context, input SaveAddressInput) (Address, error)
	UpdateAddress(ctx context.Context, id AddressID, input SaveAddressInput) (Address, error)
	DeleteAddress(ctx context.Context, id AddressID) error
}
