package http

import (
	"errors"

	"github.com/Flarenzy/inetstore/internal/inet"
	"github.com/google/uuid"
)

func validateAddressID(id string) error {
	_, err := uuid.Parse(id)
	return err
}

// rejectionReason names why an address value was refused, or "" when err is
// not a parse failure.
func rejectionReason(err error) string {
	var parseErr *inet.ParseError
	if !errors.As(err, &parseErr) {
		return ""
	}
	switch {
	case errors.Is(err, inet.ErrInvalidPrefixLength):
		return "prefix_length"
	case errors.Is(err, inet.ErrInvalidAddress):
		return "address"
	case errors.Is(err, inet.ErrEmpty):
		return "empty"
	}
	return "other"
}

func invalidInputMessage(err error) string {
	switch rejectionReason(err) {
	case "prefix_length":
		return "invalid prefix length"
	case "address":
		return "invalid address"
	case "empty":
		return "empty address"
	}
	return "bad request"
}
