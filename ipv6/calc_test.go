package ipv6

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	sum, err := Convert("2001:db8::1", 32)
	require.NoError(t, err)
	require.Equal(t, RangeSummary{
		FullAddress:       "2001:0db8:0000:0000:0000:0000:0000:0001",
		CompressedAddress: "2001:db8::1",
		NetworkAddress:    "2001:db8::",
		PrefixLength:      32,
		FirstAddress:      "2001:db8::",
		LastAddress:       "2001:db8:ffff:ffff:ffff:ffff:ffff:ffff",
		TotalAddresses:    "2^96",
	}, sum)
}

func TestConvertSingleAddress(t *testing.T) {
	sum, err := Convert("::1", 128)
	require.NoError(t, err)
	require.Equal(t, "::1", sum.FirstAddress)
	require.Equal(t, "::1", sum.LastAddress)
	require.Equal(t, "1", sum.TotalAddresses)
}

func TestConvertErrors(t *testing.T) {
	_, err := Convert("2001:db8:::1", 64)
	require.ErrorIs(t, err, ErrInvalidAddress)

	_, err = Convert("2001:db8::1", 129)
	require.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestCheckRange(t *testing.T) {
	res, err := CheckRange("2001:db8::1", "2001:db8::/32")
	require.NoError(t, err)
	require.True(t, res.InRange)

	res, err = CheckRange("2001:db9::1", "2001:db8::/32")
	require.NoError(t, err)
	require.False(t, res.InRange)

	_, err = CheckRange("2001:db8::1", "no-slash")
	require.ErrorIs(t, err, ErrInvalidCIDR)
}
