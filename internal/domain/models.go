package domain

import (
	"time"

	"github.com/Flarenzy/inetstore/internal/inet"
)

type AddressID string

type Address struct {
	ID        AddressID
	IPAddress inet.Inet
	CreatedAt time.Time
	UpdatedAt time.Time
}
