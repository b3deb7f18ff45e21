package ipv6

// RangeSummary is the display-ready view of an address and the CIDR range it
// spans at a given prefix length. FullAddress is the expanded form; every
// other address field is compressed.
type RangeSummary struct {
	FullAddress       string `json:"full_address" yaml:"full_address"`
	CompressedAddress string `json:"compressed_address" yaml:"compressed_address"`
	NetworkAddress    string `json:"network_address" yaml:"network_address"`
	PrefixLength      int    `json:"prefix_length" yaml:"prefix_length"`
	FirstAddress      string `json:"first_address" yaml:"first_address"`
	LastAddress       string `json:"last_address" yaml:"last_address"`
	TotalAddresses    string `json:"total_addresses" yaml:"total_addresses"`
}

// RangeResult is the outcome of a range membership check.
type RangeResult struct {
	InRange bool `json:"in_range" yaml:"in_range"`
}

// Convert expands addressText and derives its range summary at prefixLength.
// It is one of the two entry points intended for presentation-layer callers.
func Convert(addressText string, prefixLength int) (RangeSummary, error) {
	addr, err := Expand(addressText)
	if err != nil {
		return RangeSummary{}, err
	}
	c, err := NewCIDR(addr, prefixLength)
	if err != nil {
		return RangeSummary{}, err
	}
	return RangeSummary{
		FullAddress:       addr.Expanded(),
		CompressedAddress: addr.Compressed(),
		NetworkAddress:    c.Network().Compressed(),
		PrefixLength:      prefixLength,
		FirstAddress:      c.First().Compressed(),
		LastAddress:       c.Last().Compressed(),
		TotalAddresses:    c.TotalAddresses(),
	}, nil
}

// CheckRange reports whether addressText belongs to the range cidrText,
// delegating the parse and membership rules to InRange.
func CheckRange(addressText, cidrText string) (RangeResult, error) {
	in, err := InRange(addressText, cidrText)
	if err != nil {
		return RangeResult{}, err
	}
	return RangeResult{InRange: in}, nil
}
