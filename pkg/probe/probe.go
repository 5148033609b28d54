package probe

import (
	"context"
	"fmt"
	"time"
)

// DefaultTimeout bounds a single probe when the caller does not override it.
const DefaultTimeout = time.Second

// Kind selects the probe mechanism.
type Kind string

const (
	// ICMP probes with a single echo request.
	ICMP Kind = "icmp"
	// TCP probes by dialing a short list of common ports.
	TCP Kind = "tcp"
)

// Prober answers whether a single address is reachable. Implementations
// must return within their configured timeout and treat every internal
// failure as "unreachable"; a probe never aborts a sweep.
type Prober interface {
	Probe(ctx context.Context, address string) bool
}

// Options configure probe construction.
type Options struct {
	Kind       Kind
	Timeout    time.Duration
	Ports      []int // tcp only
	Privileged bool  // icmp only
}

// New builds the configured prober.
func New(options Options) (Prober, error) {
	if options.Timeout <= 0 {
		options.Timeout = DefaultTimeout
	}
	switch options.Kind {
	case ICMP, "":
		return &ICMPProber{timeout: options.Timeout, privileged: options.Privileged}, nil
	case TCP:
		ports := options.Ports
		if len(ports) == 0 {
			ports = DefaultPorts
		}
		return &TCPProber{timeout: options.Timeout, ports: ports}, nil
	default:
		return nil, fmt.Errorf("unknown probe mechanism: %s", options.Kind)
	}
}

// DefaultPrivileged reports whether ICMP probing should default to raw
// sockets on this platform.
func DefaultPrivileged() bool {
	return defaultPrivileged
}
