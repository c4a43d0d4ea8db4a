package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/Flarenzy/inetstore/internal/inet"
)

type stubAddressRepository struct {
	listFn   func(context.Context) ([]Address, error)
	firstFn  func(context.Context) (Address, error)
	findFn   func(context.Context, AddressID) (Address, error)
	createFn func(context.Context, SaveAddressRecord) (Address, error)
	updateFn func(context.Context, AddressID, SaveAddressRecord) (Address, error)
	deleteFn func(context.Context, AddressID) (bool, error)
}

func (s stubAddressRepository) List(ctx context.Context) ([]Address, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s stubAddressRepository) First(ctx context.Context) (Address, error) {
	if s.firstFn == nil {
		return Address{}, nil
	}
	return s.firstFn(ctx)
}

func (s stubAddressRepository) FindByID(ctx context.Context, id AddressID) (Address, error) {
	if s.findFn == nil {
		return Address{}, nil
	}
	return s.findFn(ctx, id)
}

func (s stubAddressRepository) Create(ctx context.Context, record SaveAddressRecord) (Address, error) {
	if s.createFn == nil {
		return Address{}, nil
	}
	return s.createFn(ctx, record)
}

func (s stubAddressRepository) Update(ctx context.Context, id AddressID, record SaveAddressRecord) (Address, error) {
	if s.updateFn == nil {
		return Address{}, nil
	}
	return s.updateFn(ctx, id, record)
}

func (s stubAddressRepository) Delete(ctx context.Context, id AddressID) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id)
}

func ptr(s string) *string {
	return &s
}

func TestCreateAddressStoresCanonicalValue(t *testing.T) {
	var stored SaveAddressRecord
	svc := NewAddressService(stubAddressRepository{
		createFn: func(_ context.Context, record SaveAddressRecord) (Address, error) {
			stored = record
			return Address{ID: "a-1", IPAddress: record.IPAddress}, nil
		},
	})

	address, err := svc.CreateAddress(context.Background(), SaveAddressInput{IPAddress: ptr("2001:db8:3333:4444:5555:6666:1.2.3.4/96")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stored.IPAddress != inet.MustParse("2001:db8:3333:4444:5555:6666:102:304/96") {
		t.Fatalf("unexpected stored value: %s", stored.IPAddress)
	}
	if address.ID != "a-1" {
		t.Fatalf("unexpected address id: %v", address.ID)
	}
}

func TestCreateAddressAllowsNull(t *testing.T) {
	called := false
	svc := NewAddressService(stubAddressRepository{
		createFn: func(_ context.Context, record SaveAddressRecord) (Address, error) {
			called = true
			if record.IPAddress.IsValid() {
				t.Fatalf("expected null value, got %s", record.IPAddress)
			}
			return Address{ID: "a-1"}, nil
		},
	})

	if _, err := svc.CreateAddress(context.Background(), SaveAddressInput{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !called {
		t.Fatal("expected repository create to be called")
	}
}

func TestSaveAddressRejectsInvalidValueWithoutWriting(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind error
	}{
		{name: "ipv4 prefix out of range", in: "10.1.1.1/322", kind: inet.ErrInvalidPrefixLength},
		{name: "malformed ipv6", in: "2001:db8:3333:4444:5555:6666:88/96", kind: inet.ErrInvalidAddress},
		{name: "empty", in: "", kind: inet.ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := stubAddressRepository{
				createFn: func(context.Context, SaveAddressRecord) (Address, error) {
					t.Fatal("repository create must not be called")
					return Address{}, nil
				},
				updateFn: func(context.Context, AddressID, SaveAddressRecord) (Address, error) {
					t.Fatal("repository update must not be called")
					return Address{}, nil
				},
			}
			svc := NewAddressService(repo)

			_, err := svc.CreateAddress(context.Background(), SaveAddressInput{IPAddress: ptr(tt.in)})
			if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, tt.kind) {
				t.Fatalf("expected ErrInvalidInput and %v, got %v", tt.kind, err)
			}

			_, err = svc.UpdateAddress(context.Background(), "a-1", SaveAddressInput{IPAddress: ptr(tt.in)})
			if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, tt.kind) {
				t.Fatalf("expected ErrInvalidInput and %v, got %v", tt.kind, err)
			}
		})
	}
}

func TestUpdateAddressPassesIDAndValue(t *testing.T) {
	svc := NewAddressService(stubAddressRepository{
		updateFn: func(_ context.Context, id AddressID, record SaveAddressRecord) (Address, error) {
			return Address{ID: id, IPAddress: record.IPAddress}, nil
		},
	})

	address, err := svc.UpdateAddress(context.Background(), "a-7", SaveAddressInput{IPAddress: ptr("2001:db8:0:0:0:0:0:0/96")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if address.ID != "a-7" {
		t.Fatalf("unexpected id: %v", address.ID)
	}
	if got := address.IPAddress.String(); got != "2001:db8::/96" {
		t.Fatalf("unexpected ip address: %s", got)
	}
}

func TestFirstAddressPropagatesNotFound(t *testing.T) {
	svc := NewAddressService(stubAddressRepository{
		firstFn: func(context.Context) (Address, error) {
			return Address{}, ErrNotFound
		},
	})

	_, err := svc.FirstAddress(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAddressReturnsNotFoundWhenRepositoryReportsNoDelete(t *testing.T) {
	svc := NewAddressService(stubAddressRepository{
		deleteFn: func(context.Context, AddressID) (bool, error) {
			return false, nil
		},
	})

	err := svc.DeleteAddress(context.Background(), "a-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
