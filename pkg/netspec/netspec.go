package netspec

import (
	"net"
	"strings"

	"github.com/projectdiscovery/gologger"
)

// Network is a validated sweep target. The embedded IPNet holds the
// canonical network address (host bits zeroed by parsing), and its String
// form is the network's identity wherever a network keys a map.
type Network struct {
	*net.IPNet
}

// Parse parses a single CIDR expression. Host bits are tolerated and
// normalized away, so "10.0.0.5/24" and "10.0.0.0/24" yield the same
// network.
func Parse(token string) (Network, error) {
	_, ipNet, err := net.ParseCIDR(strings.TrimSpace(token))
	if err != nil {
		return Network{}, err
	}
	return Network{IPNet: ipNet}, nil
}

// ParseList splits a comma separated list of CIDR expressions and parses
// each token. Invalid tokens produce a warning and are dropped; the order
// of the valid networks is preserved since it decides table column order.
func ParseList(spec string) []Network {
	var networks []Network
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		network, err := Parse(token)
		if err != nil {
			gologger.Warning().Msgf("Invalid network '%s' - skipping", token)
			continue
		}
		networks = append(networks, network)
	}
	return networks
}

// Prefix returns the prefix length in bits.
func (n Network) Prefix() int {
	ones, _ := n.Mask.Size()
	return ones
}

// Compare orders two addresses numerically. IPv4 always comes before IPv6.
// Returns -1 if ip1 < ip2, 0 if equal, 1 if ip1 > ip2.
func Compare(ip1, ip2 net.IP) int {
	ip1v4 := ip1.To4()
	ip2v4 := ip2.To4()

	if ip1v4 != nil && ip2v4 == nil {
		return -1
	}
	if ip1v4 == nil && ip2v4 != nil {
		return 1
	}

	if ip1v4 != nil && ip2v4 != nil {
		ip1, ip2 = ip1v4, ip2v4
	}
	for i := 0; i < len(ip1) && i < len(ip2); i++ {
		if ip1[i] < ip2[i] {
			return -1
		}
		if ip1[i] > ip2[i] {
			return 1
		}
	}
	return 0
}
