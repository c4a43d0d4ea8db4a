// Package inet implements the value stored in INET columns: an IP address
// together with a prefix length. Unlike a network prefix, host bits are kept,
// so 10.1.1.1/24 and 10.1.1.0/24 are different values.
package inet

import (
	"errors"
	"net/netip"
	"strconv"
	"strings"

	"go4.org/netipx"
)

var (
	ErrEmpty               = errors.New("empty address")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidPrefixLength = errors.New("invalid prefix length")
)

// ParseError reports the input that failed to parse and the kind of failure,
// one of ErrEmpty, ErrInvalidAddress or ErrInvalidPrefixLength.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return "inet: parse " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

const (
	FamilyIPv4 = "ipv4"
	FamilyIPv6 = "ipv6"
)

// Inet is an address with a prefix length. The zero value holds no address
// and is stored as NULL.
type Inet struct {
	prefix netip.Prefix
}

// Parse parses "<address>" or "<address>/<bits>". A bare address gets the
// full prefix length of its family.
func Parse(s string) (Inet, error) {
	in := s
	s = strings.TrimSpace(s)
	if s == "" {
		return Inet{}, &ParseError{Input: in, Err: ErrEmpty}
	}

	addrPart, bitsPart, hasBits := strings.Cut(s, "/")
	addr, err := netip.ParseAddr(addrPart)
	if err != nil || addr.Zone() != "" {
		return Inet{}, &ParseError{Input: in, Err: ErrInvalidAddress}
	}

	bits := addr.BitLen()
	if hasBits {
		n, ok := parseBits(bitsPart)
		if !ok || n > addr.BitLen() {
			return Inet{}, &ParseError{Input: in, Err: ErrInvalidPrefixLength}
		}
		bits = n
	}

	return Inet{prefix: netip.PrefixFrom(addr, bits)}, nil
}

func MustParse(s string) Inet {
	i, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return i
}

// FromPrefix keeps p as is, host bits included. An invalid p gives the zero
// value.
func FromPrefix(p netip.Prefix) Inet {
	if !p.IsValid() || p.Addr().Zone() != "" {
		return Inet{}
	}
	return Inet{prefix: p}
}

func FromAddr(a netip.Addr) Inet {
	if !a.IsValid() {
		return Inet{}
	}
	return FromPrefix(netip.PrefixFrom(a, a.BitLen()))
}

// parseBits accepts a non-empty run of ASCII digits. Values past 128 are
// clamped to 129 so callers only need a range check.
func parseBits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		if n <= 128 {
			n = n*10 + int(c-'0')
		}
	}
	if n > 128 {
		n = 129
	}
	return n, true
}

func (i Inet) IsValid() bool {
	return i.prefix.IsValid()
}

func (i Inet) Addr() netip.Addr {
	return i.prefix.Addr()
}

// Bits returns the prefix length, or -1 for the zero value.
func (i Inet) Bits() int {
	return i.prefix.Bits()
}

func (i Inet) Prefix() netip.Prefix {
	return i.prefix
}

func (i Inet) Is4() bool {
	return i.prefix.IsValid() && i.prefix.Addr().Is4()
}

func (i Inet) Is6() bool {
	return i.prefix.IsValid() && i.prefix.Addr().Is6()
}

func (i Inet) Family() string {
	switch {
	case i.Is4():
		return FamilyIPv4
	case i.Is6():
		return FamilyIPv6
	}
	return ""
}

// Network returns the prefix with the host bits cleared.
func (i Inet) Network() netip.Prefix {
	if !i.IsValid() {
		return netip.Prefix{}
	}
	return i.prefix.Masked()
}

// Range returns the first and last address of Network.
func (i Inet) Range() netipx.IPRange {
	if !i.IsValid() {
		return netipx.IPRange{}
	}
	return netipx.RangeOfPrefix(i.prefix)
}

// String returns the canonical form, e.g. 2001:db8::/96. IPv6 zero runs are
// compressed and an embedded IPv4 tail is rewritten as hextets, except for
// IPv4-mapped addresses which keep the dotted form.
func (i Inet) String() string {
	if !i.IsValid() {
		return ""
	}
	return i.prefix.String()
}
