package domain

import "github.com/Flarenzy/inetstore/internal/inet"

// SaveAddressInput is the raw assignment to the ip_address column. A nil
// IPAddress stores NULL.
type SaveAddressInput struct {
	IPAddress *string
}

// SaveAddressRecord is a validated SaveAddressInput.
type SaveAddressRecord struct {
	IPAddress inet.Inet
}
