package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"syscall"
	"time"

	sliceutil "github.com/projectdiscovery/utils/slice"
)

// DefaultPorts are the ports dialed by the TCP probe when none are given.
var DefaultPorts = []int{80, 443, 22, 3389}

// TCPProber tests reachability by dialing a short list of common ports.
// Both an accepted and a refused connection prove a live stack on the
// address; only silence means unreachable.
type TCPProber struct {
	timeout time.Duration
	ports   []int
}

// Probe dials each port in turn until one answers, splitting the timeout
// across the ports so the total stays bounded.
func (p *TCPProber) Probe(ctx context.Context, address string) bool {
	perPort := p.timeout / time.Duration(len(p.ports))
	if perPort <= 0 {
		perPort = p.timeout
	}
	dialer := &net.Dialer{Timeout: perPort}

	for _, port := range p.ports {
		if ctx.Err() != nil {
			return false
		}
		conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(address, strconv.Itoa(port)))
		if err == nil {
			_ = conn.Close()
			return true
		}
		// A refusal comes from the host's stack, so the host is up.
		if errors.Is(err, syscall.ECONNREFUSED) {
			return true
		}
	}
	return false
}

// ParsePorts parses a comma separated port list for the TCP probe.
func ParsePorts(spec string) ([]int, error) {
	var ports []int
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		port, err := strconv.Atoi(token)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid port: %s", token)
		}
		ports = append(ports, port)
	}
	if len(ports) == 0 {
		return nil, fmt.Errorf("no ports in %q", spec)
	}
	return sliceutil.Dedupe(ports), nil
}
