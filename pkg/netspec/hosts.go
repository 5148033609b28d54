package netspec

import (
	"fmt"
	"math"
	"net"

	"github.com/projectdiscovery/mapcidr"
)

// DefaultMaxHosts caps how many addresses a single network may expand to
// before the caller should skip it instead of exhausting memory.
const DefaultMaxHosts = 1 << 20

// Count returns the total number of addresses the network spans, including
// the network and broadcast addresses. Very large IPv6 prefixes saturate
// at MaxUint64.
func (n Network) Count() uint64 {
	ones, bits := n.Mask.Size()
	hostBits := uint(bits - ones)
	if hostBits >= 64 {
		return math.MaxUint64
	}
	return 1 << hostBits
}

// Hosts enumerates the usable host addresses of the network.
//
// IPv4 prefixes shorter than /31 exclude the network and broadcast
// addresses. A /31 yields both addresses and a /32 the single address.
// IPv6 skips the network (subnet-router anycast) address and multicast
// addresses, except on /127 and /128 which yield all addresses.
func (n Network) Hosts() ([]net.IP, error) {
	ips, err := mapcidr.IPAddresses(n.String())
	if err != nil {
		return nil, fmt.Errorf("failed to expand %s: %w", n.String(), err)
	}

	ones, bits := n.Mask.Size()
	includeAll := ones >= bits-1

	hosts := make([]net.IP, 0, len(ips))
	for _, ipStr := range ips {
		ip := net.ParseIP(ipStr)
		if ip == nil {
			continue
		}
		if !includeAll && isNetworkOrBroadcast(ip, n.IPNet) {
			continue
		}
		hosts = append(hosts, ip)
	}
	return hosts, nil
}

// isNetworkOrBroadcast checks if an IP is the network address, the IPv4
// broadcast address, or an IPv6 multicast address of the given network.
func isNetworkOrBroadcast(ip net.IP, network *net.IPNet) bool {
	if ip.Equal(network.IP) {
		return true
	}

	// For IPv4, check the broadcast address
	if ip4 := ip.To4(); ip4 != nil {
		broadcast := make(net.IP, len(network.IP))
		copy(broadcast, network.IP)
		for i := range broadcast {
			broadcast[i] |= ^network.Mask[i]
		}
		return ip.Equal(broadcast)
	}

	return ip.IsMulticast()
}
