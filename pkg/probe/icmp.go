package probe

import (
	"context"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// ICMPProber tests reachability with a single ICMP echo request.
type ICMPProber struct {
	timeout    time.Duration
	privileged bool
}

// Probe sends one echo request and waits up to the timeout for the reply.
// Socket and send errors count as unreachable.
func (p *ICMPProber) Probe(ctx context.Context, address string) bool {
	if ctx.Err() != nil {
		return false
	}

	pinger, err := probing.NewPinger(address)
	if err != nil {
		return false
	}
	pinger.Count = 1
	pinger.Timeout = p.timeout
	pinger.SetPrivileged(p.privileged)

	if err := pinger.Run(); err != nil {
		return false
	}
	return pinger.Statistics().PacketsRecv > 0
}
