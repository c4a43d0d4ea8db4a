package http

import (
	"time"

	"github.com/Flarenzy/inetstore/internal/domain"
	"github.com/Flarenzy/inetstore/internal/inet"
)

// AddressResponse is a row of the addresses table as returned to clients.
// Derived fields are empty when ip_address is null.
type AddressResponse struct {
	ID           string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	IPAddress    inet.Inet `json:"ip_address" swaggertype:"string" example:"2001:db8::/96"`
	Family       string    `json:"family,omitempty" example:"ipv6"`
	PrefixLength *int      `json:"prefix_length,omitempty" example:"96"`
	Network      string    `json:"network,omitempty" example:"2001:db8::/96"`
	RangeStart   string    `json:"range_start,omitempty" example:"2001:db8::"`
	RangeEnd     string    `json:"range_end,omitempty" example:"2001:db8::ffff:ffff"`
	CreatedAt    time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt    time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// SaveAddressRequest is the payload accepted when creating or overwriting a
// row. A missing or null ip_address stores NULL.
type SaveAddressRequest struct {
	IPAddress *string `json:"ip_address" example:"10.1.1.1/32"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid prefix length"`
}

func addressToResponse(a domain.Address) AddressResponse {
	resp := AddressResponse{
		ID:        string(a.ID),
		IPAddress: a.IPAddress,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if !a.IPAddress.IsValid() {
		return resp
	}

	bits := a.IPAddress.Bits()
	r := a.IPAddress.Range()
	resp.Family = a.IPAddress.Family()
	resp.PrefixLength = &bits
	resp.Network = a.IPAddress.Network().String()
	resp.RangeStart = r.From().String()
	resp.RangeEnd = r.To().String()
	return resp
}

func addressesToResponse(addresses []domain.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, addressToResponse(a))
	}
	return out
}

func (r SaveAddressRequest) toInput() domain.SaveAddressInput {
	return domain.SaveAddressInput{IPAddress: r.IPAddress}
}
