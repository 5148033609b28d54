package netspec

import "net"

// LocalNetworks returns the networks directly attached to the up,
// non-loopback interfaces of this machine: private IPv4 addresses as /24
// ranges and link-local or ULA IPv6 addresses as /64 ranges, deduplicated.
func LocalNetworks() ([]Network, error) {
	interfaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var networks []Network
	seen := make(map[string]struct{})

	add := func(ip net.IP, prefix, bits int) {
		mask := net.CIDRMask(prefix, bits)
		network := Network{IPNet: &net.IPNet{IP: ip.Mask(mask), Mask: mask}}
		if _, exists := seen[network.String()]; exists {
			return
		}
		seen[network.String()] = struct{}{}
		networks = append(networks, network)
	}

	for _, iface := range interfaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}

			ip := ipNet.IP

			if ip4 := ip.To4(); ip4 != nil {
				if !ip4.IsPrivate() {
					continue
				}
				add(ip4, 24, 32)
				continue
			}

			if len(ip) != net.IPv6len || ip.IsLoopback() || ip.IsMulticast() {
				continue
			}
			// Link-local (fe80::/10) and ULA (fd00::/8) only
			if !ip.IsLinkLocalUnicast() && ip[0] != 0xfd {
				continue
			}
			add(ip, 64, 128)
		}
	}

	return networks, nil
}
