// Package ipv6 provides pure utilities for working with IPv6 addresses and
// CIDR ranges: expansion and compression of textual forms, conversion to and
// from the 128-bit integer domain, network arithmetic and range membership
// tests.
package ipv6

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors
var (
	ErrInvalidAddress      = errors.New("invalid IPv6 address")
	ErrInvalidRangeAddress = errors.New("invalid IPv6 range address")
	ErrInvalidCIDR         = errors.New("invalid CIDR notation")
	ErrInvalidPrefix       = errors.New("prefix length must be between 0 and 128")
)

// Address represents a single 128-bit IPv6 address as 8 ordered 16-bit
// hextets, most significant first. The zero value is "::".
type Address struct {
	hextets [8]uint16
}

// Expand parses a textual IPv6 address, accepting at most one "::" elision.
// Zone indices and IPv4-mapped notations are rejected.
func Expand(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, "::") > 1 {
		return Address{}, fmt.Errorf("%w: more than one \"::\" in %q", ErrInvalidAddress, s)
	}

	var groups []string
	if strings.Contains(s, "::") {
		left, right, _ := strings.Cut(s, "::")
		leftGroups := splitGroups(left)
		rightGroups := splitGroups(right)
		missing := 8 - len(leftGroups) - len(rightGroups)
		if missing < 0 {
			return Address{}, fmt.Errorf("%w: too many groups in %q", ErrInvalidAddress, s)
		}
		groups = make([]string, 0, 8)
		groups = append(groups, leftGroups...)
		for i := 0; i < missing; i++ {
			groups = append(groups, "0")
		}
		groups = append(groups, rightGroups...)
	} else {
		groups = strings.Split(s, ":")
		if len(groups) != 8 {
			return Address{}, fmt.Errorf("%w: expected 8 groups, got %d in %q", ErrInvalidAddress, len(groups), s)
		}
	}

	var a Address
	for i, g := range groups {
		v, err := parseHextet(g)
		if err != nil {
			return Address{}, fmt.Errorf("%w: bad group %q in %q", ErrInvalidAddress, g, s)
		}
		a.hextets[i] = v
	}
	return a, nil
}

// splitGroups splits one side of a "::" elision; an empty side carries no
// groups at all rather than a single empty one.
func splitGroups(side string) []string {
	if side == "" {
		return nil
	}
	return strings.Split(side, ":")
}

// parseHextet parses 1 to 4 hex digits into a 16-bit group.
func parseHextet(g string) (uint16, error) {
	if len(g) == 0 || len(g) > 4 {
		return 0, errors.New("group must be 1-4 hex digits")
	}
	v, err := strconv.ParseUint(g, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

// Hextets returns the 8 groups of the address, most significant first.
func (a Address) Hextets() [8]uint16 { return a.hextets }

// Expanded returns the fully expanded 8 * 16-bit hex block representation.
func (a Address) Expanded() string {
	parts := make([]string, 8)
	for i, h := range a.hextets {
		parts[i] = fmt.Sprintf("%04x", h)
	}
	return strings.Join(parts, ":")
}

// Compressed returns the shortest textual form: leading zeros stripped from
// every group and the longest run of zero groups (first occurrence on ties,
// length at least 2) replaced by "::".
func (a Address) Compressed() string {
	groups := make([]string, 8)
	for i, h := range a.hextets {
		groups[i] = strconv.FormatUint(uint64(h), 16)
	}

	// explicit linear scan so equal-length runs keep the earliest start
	bestStart, bestLen := -1, 0
	runStart, runLen := -1, 0
	for i, g := range groups {
		if g != "0" {
			runLen = 0
			continue
		}
		if runLen == 0 {
			runStart = i
		}
		runLen++
		if runLen > bestLen {
			bestStart, bestLen = runStart, runLen
		}
	}

	if bestLen < 2 {
		return strings.Join(groups, ":")
	}
	left := groups[:bestStart]
	right := groups[bestStart+bestLen:]
	switch {
	case len(left) == 0 && len(right) == 0:
		return "::"
	case len(left) == 0:
		return "::" + strings.Join(right, ":")
	case len(right) == 0:
		return strings.Join(left, ":") + "::"
	default:
		return strings.Join(left, ":") + "::" + strings.Join(right, ":")
	}
}

// String returns the compressed textual representation.
func (a Address) String() string { return a.Compressed() }
