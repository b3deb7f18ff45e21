// Package detect discovers candidate IPv6 addresses for the local host. The
// core library stays decoupled from any transport: callers plug in a Source
// (local interfaces, proxy headers, a fixed list) and get back classified,
// compressed candidates.
package detect

import (
	"log/slog"
	"net"

	"github.com/zlobste/ip6range/ipv6"
)

// Source yields raw candidate address strings for the running host.
type Source interface {
	Addresses() ([]string, error)
}

// Candidate is one usable address with its scope classification.
type Candidate struct {
	Address string `json:"address" yaml:"address"`
	ULA     bool   `json:"ula" yaml:"ula"`
}

// Special-purpose ranges relevant to candidate filtering.
var (
	ulaRange       = mustRange("fc00::/7")
	linkLocalRange = mustRange("fe80::/10")
	loopbackRange  = mustRange("::1/128")
)

func mustRange(s string) ipv6.CIDR {
	c, err := ipv6.ParseCIDR(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Candidates expands and classifies everything the source yields. Entries
// that are not IPv6 text are skipped, as are loopback and link-local scopes;
// unique local addresses are kept but flagged.
func Candidates(src Source, logger *slog.Logger) ([]Candidate, error) {
	if logger == nil {
		logger = slog.Default()
	}
	raw, err := src.Addresses()
	if err != nil {
		return nil, err
	}
	var out []Candidate
	for _, s := range raw {
		addr, err := ipv6.Expand(s)
		if err != nil {
			logger.Debug("skipping non-IPv6 candidate", "address", s)
			continue
		}
		if loopbackRange.Contains(addr) || linkLocalRange.Contains(addr) {
			logger.Debug("skipping local-scope candidate", "address", addr.Compressed())
			continue
		}
		out = append(out, Candidate{
			Address: addr.Compressed(),
			ULA:     ulaRange.Contains(addr),
		})
	}
	return out, nil
}

// StaticSource returns a fixed list of address strings. Presentation-layer
// callers use it to inject header-derived candidates.
type StaticSource []string

// Addresses implements Source.
func (s StaticSource) Addresses() ([]string, error) { return s, nil }

// InterfaceSource enumerates the addresses assigned to the host's network
// interfaces.
type InterfaceSource struct{}

// Addresses implements Source.
func (InterfaceSource) Addresses() ([]string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		switch v := addr.(type) {
		case *net.IPNet:
			out = append(out, v.IP.String())
		case *net.IPAddr:
			out = append(out, v.IP.String())
		}
	}
	return out, nil
}
