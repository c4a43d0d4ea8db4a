package domain

import "context"

type AddressRepository interface {
	List(ctx context.Context) ([]Address, error)
	First(ctx context.Context) (Address, error)
	FindByID(ctx context.Context, id AddressID) (Address, error)
	Create(ctx context.Context, record SaveAddressRecord) (Address, error)
	Update(ctx context.Context, id AddressID, record SaveAddressRecord) (Address, error)
	Delete(ctx context.Context, id AddressID) (bool, error)
}
