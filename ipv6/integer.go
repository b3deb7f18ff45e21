package ipv6

import "math/big"

// BigInt returns a new big.Int holding the unsigned 128-bit value, folding
// the hextets most significant first.
func (a Address) BigInt() *big.Int {
	v := new(big.Int)
	for _, h := range a.hextets {
		v.Lsh(v, 16)
		v.Or(v, new(big.Int).SetUint64(uint64(h)))
	}
	return v
}

// FromBigInt converts an unsigned integer back into an Address by peeling
// 16-bit groups off the low end. Bits above 128 are discarded, so
// FromBigInt(a.BigInt()) == a for every Address.
func FromBigInt(v *big.Int) Address {
	var a Address
	rest := new(big.Int).Set(v)
	low := new(big.Int)
	for i := 7; i >= 0; i-- {
		a.hextets[i] = uint16(low.And(rest, hextetMask).Uint64())
		rest.Rsh(rest, 16)
	}
	return a
}

var hextetMask = big.NewInt(0xffff)
