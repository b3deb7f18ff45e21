package ipv6

import (
	"errors"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	cases := map[string]string{
		"2001:db8::1":             "2001:0db8:0000:0000:0000:0000:0000:0001",
		"::":                      "0000:0000:0000:0000:0000:0000:0000:0000",
		"::1":                     "0000:0000:0000:0000:0000:0000:0000:0001",
		"1::":                     "0001:0000:0000:0000:0000:0000:0000:0000",
		"1:2:3:4:5:6:7:8":         "0001:0002:0003:0004:0005:0006:0007:0008",
		"fe80::1":                 "fe80:0000:0000:0000:0000:0000:0000:0001",
		"  2001:db8::1  ":         "2001:0db8:0000:0000:0000:0000:0000:0001",
		"2001:DB8::A":             "2001:0db8:0000:0000:0000:0000:0000:000a",
		"1:2:3:4::5:6:7":          "0001:0002:0003:0004:0000:0005:0006:0007",
		"1:2:3:4::5:6:7:8":        "0001:0002:0003:0004:0005:0006:0007:0008", // elision of zero groups

		"ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff": "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
	}
	for in, want := range cases {
		addr, err := Expand(in)
		require.NoError(t, err, in)
		require.Equal(t, want, addr.Expanded(), in)
	}
}

func TestExpandErrors(t *testing.T) {
	bad := []string{
		"",
		"2001:db8:::1",   // triple colon
		"1::2::3",        // two elisions
		"1:2:3:4:5:6:7",  // too few groups
		"1:2:3:4:5:6:7:8:9",
		"1:2:3:4:5:6:7:8:9::", // nine groups around an elision
		"g001::",
		"12345::",
		"2001:db8::1%eth0",
		"192.168.0.1",
	}
	for _, in := range bad {
		_, err := Expand(in)
		require.ErrorIs(t, err, ErrInvalidAddress, in)
	}
}

func TestCompress(t *testing.T) {
	cases := map[string]string{
		"2001:0db8:0000:0000:0000:0000:0000:0001": "2001:db8::1",
		"0000:0000:0000:0000:0000:0000:0000:0000": "::",
		"0000:0000:0000:0000:0000:0000:0000:0001": "::1",
		"0001:0000:0000:0000:0000:0000:0000:0000": "1::",
		"0001:0002:0003:0004:0005:0006:0007:0008": "1:2:3:4:5:6:7:8",
		// lone zero stays literal, only the longer run is elided
		"2001:0db8:0000:0001:0000:0000:0000:0001": "2001:db8:0:1::1",
		// equal-length runs: earliest start wins
		"0001:0000:0000:0002:0000:0000:0001:0001": "1::2:0:0:1:1",
		// run touching the end
		"0001:0002:0003:0004:0000:0000:0000:0000": "1:2:3:4::",
		// single zero group is never replaced by "::"
		"2001:0db8:0000:0001:0001:0001:0001:0001": "2001:db8:0:1:1:1:1:1",
	}
	for in, want := range cases {
		addr, err := Expand(in)
		require.NoError(t, err, in)
		require.Equal(t, want, addr.Compressed(), in)
	}
}

func TestQuickRoundTrip(t *testing.T) {
	f := func(hextets [8]uint16) bool {
		a := Address{hextets: hextets}
		viaCompressed, err := Expand(a.Compressed())
		if err != nil || viaCompressed != a {
			return false
		}
		viaExpanded, err := Expand(a.Expanded())
		return err == nil && viaExpanded == a
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestQuickIntegerRoundTrip(t *testing.T) {
	f := func(hextets [8]uint16) bool {
		a := Address{hextets: hextets}
		return FromBigInt(a.BigInt()) == a
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestErrorsAreSentinels(t *testing.T) {
	_, err := Expand("2001:db8:::1")
	if !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
}
