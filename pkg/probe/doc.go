// Package probe provides the reachability tests behind a sweep.
//
// A Prober answers a single question, "did this address respond within the
// timeout", and hides how. Two implementations are provided:
//   - ICMP: one echo request per address via pro-bing
//   - TCP: connect attempts against a short list of common ports
//
// Example usage:
//
//	prober, err := probe.New(probe.Options{Kind: probe.ICMP, Timeout: time.Second})
//	if prober.Probe(ctx, "192.168.1.10") {
//		// host is up
//	}
//
// Privilege Requirements:
// - Raw ICMP sockets require root/admin privileges on most systems
// - Unprivileged ICMP on linux needs the ping_group_range sysctl to cover
//   the process group; the TCP probe needs no privileges at all
//
// Limitations:
// - Hosts with ICMP disabled or firewalled will not respond
// - The TCP probe misses hosts that silently drop packets on every probed port
// - Some networks rate-limit ICMP traffic
package probe
