package ipv6

import "fmt"

// InRange reports whether the address written in addressText falls within
// the CIDR range written in cidrText. Membership is exact network-address
// equality at the range's prefix length; no longest-prefix semantics.
//
// The error distinguishes which input failed: ErrInvalidCIDR and
// ErrInvalidPrefix for the range syntax, ErrInvalidRangeAddress for the
// range's own address and ErrInvalidAddress for the target address.
func InRange(addressText, cidrText string) (bool, error) {
	c, err := ParseCIDR(cidrText)
	if err != nil {
		return false, err
	}
	addr, err := Expand(addressText)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidAddress, addressText)
	}
	return c.Contains(addr), nil
}
