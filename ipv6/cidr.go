package ipv6

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// countCeiling is the largest address count still rendered as a plain
// decimal; anything bigger is shown as a power of two.
var countCeiling = big.NewInt(1_000_000)

// CIDR identifies an IPv6 network by an address and a prefix length.
type CIDR struct {
	addr Address
	plen int
}

// NewCIDR pairs an address with a prefix length in [0, 128].
func NewCIDR(addr Address, plen int) (CIDR, error) {
	if plen < 0 || plen > 128 {
		return CIDR{}, fmt.Errorf("%w: %d", ErrInvalidPrefix, plen)
	}
	return CIDR{addr: addr, plen: plen}, nil
}

// ParseCIDR parses "address/prefix" text. The address part may use any
// shorthand Expand accepts.
func ParseCIDR(s string) (CIDR, error) {
	addrText, prefixText, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return CIDR{}, fmt.Errorf("%w: missing \"/\" in %q", ErrInvalidCIDR, s)
	}
	plen, err := strconv.Atoi(prefixText)
	if err != nil || plen < 0 || plen > 128 {
		return CIDR{}, fmt.Errorf("%w: %q", ErrInvalidPrefix, prefixText)
	}
	addr, err := Expand(addrText)
	if err != nil {
		return CIDR{}, fmt.Errorf("%w: %q", ErrInvalidRangeAddress, addrText)
	}
	return CIDR{addr: addr, plen: plen}, nil
}

// Addr returns the address the range was built from, unmasked.
func (c CIDR) Addr() Address { return c.addr }

// PrefixLength returns the prefix length.
func (c CIDR) PrefixLength() int { return c.plen }

// String renders the range in canonical compressed form.
func (c CIDR) String() string { return fmt.Sprintf("%s/%d", c.Network(), c.plen) }

// Network returns the address with every bit beyond the prefix cleared.
func (c CIDR) Network() Address {
	return FromBigInt(new(big.Int).And(c.addr.BigInt(), prefixMask(c.plen)))
}

// First returns the first address of the range. IPv6 has no reserved
// network/broadcast pair, so this is the network address itself.
func (c CIDR) First() Address { return c.Network() }

// Last returns the last address of the range: the network address with all
// host bits set.
func (c CIDR) Last() Address {
	last := new(big.Int).Or(c.Network().BigInt(), hostMask(c.plen))
	return FromBigInt(last)
}

// TotalAddresses returns the exact address count, 2^(128-plen), as decimal
// text. Counts above 1,000,000 are rendered as "2^<hostBits>" instead; the
// switch is an output policy, not an arithmetic limit.
func (c CIDR) TotalAddresses() string {
	hostBits := 128 - c.plen
	count := new(big.Int).Lsh(big.NewInt(1), uint(hostBits))
	if count.Cmp(countCeiling) > 0 {
		return fmt.Sprintf("2^%d", hostBits)
	}
	return count.String()
}

// Contains reports whether a falls within the range: the two network
// addresses at the range's prefix length must be identical.
func (c CIDR) Contains(a Address) bool {
	return CIDR{addr: a, plen: c.plen}.Network() == c.Network()
}

// prefixMask builds the 128-bit mask with the top plen bits set. big.Int
// keeps the plen == 0 case well defined (shifting an empty value by 128
// simply yields zero).
func prefixMask(plen int) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(plen))
	m.Sub(m, big.NewInt(1))
	return m.Lsh(m, uint(128-plen))
}

// hostMask builds 2^(128-plen) - 1, the complement of prefixMask within 128
// bits.
func hostMask(plen int) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(128-plen))
	return m.Sub(m, big.NewInt(1))
}
