package inet

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"net/netip"
)

func (i Inet) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText parses text with Parse. Empty text yields the zero value.
func (i *Inet) UnmarshalText(text []byte) error {
	if len(bytes.TrimSpace(text)) == 0 {
		*i = Inet{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

func (i Inet) MarshalJSON() ([]byte, error) {
	if !i.IsValid() {
		return []byte("null"), nil
	}
	return json.Marshal(i.String())
}

func (i *Inet) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*i = Inet{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("inet: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// Value implements driver.Valuer for database/sql drivers.
func (i Inet) Value() (driver.Value, error) {
	if !i.IsValid() {
		return nil, nil
	}
	return i.String(), nil
}

// Scan implements sql.Scanner.
func (i *Inet) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*i = Inet{}
		return nil
	case string:
		return i.UnmarshalText([]byte(v))
	case []byte:
		return i.UnmarshalText(v)
	case netip.Prefix:
		return i.ScanNetipPrefix(v)
	}
	return fmt.Errorf("inet: cannot scan %T", src)
}

// NetipPrefixValue lets the pgx inet codec encode the value natively.
// The zero value encodes as NULL.
func (i Inet) NetipPrefixValue() (netip.Prefix, error) {
	return i.prefix, nil
}

// ScanNetipPrefix lets the pgx inet codec decode into an Inet. pgx passes the
// zero prefix for NULL.
func (i *Inet) ScanNetipPrefix(v netip.Prefix) error {
	if !v.IsValid() {
		*i = Inet{}
		return nil
	}
	if v.Addr().Zone() != "" {
		return &ParseError{Input: v.String(), Err: ErrInvalidAddress}
	}
	*i = Inet{prefix: v}
	return nil
}
