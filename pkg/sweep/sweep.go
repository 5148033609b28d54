// Package sweep runs the reachability scan: it fans a bounded number of
// concurrent probes over every usable host of a network, resolves the
// addresses that answered, and imposes a deterministic order on the
// results regardless of probe completion order.
package sweep

import (
	"context"
	"net"
	"sort"
	"strings"

	"github.com/projectdiscovery/gologger"
	mapsutil "github.com/projectdiscovery/utils/maps"
	syncutil "github.com/projectdiscovery/utils/sync"
	"github.com/rs/xid"

	"github.com/rollcalldev/rollcall/pkg/netspec"
	"github.com/rollcalldev/rollcall/pkg/probe"
	"github.com/rollcalldev/rollcall/pkg/resolve"
)

// DefaultConcurrency bounds in-flight probes per network. A /16 enumerates
// 65534 hosts; unbounded dispatch would exhaust descriptors.
const DefaultConcurrency = 100

// Options tune a Sweeper.
type Options struct {
	// Concurrency is the maximum number of in-flight probes, clamped to
	// the process descriptor budget on unix.
	Concurrency int
	// MaxHosts skips networks that expand beyond this many addresses.
	MaxHosts uint64
}

// Sweeper scans networks one at a time, all probes within a network
// running concurrently under the ceiling.
type Sweeper struct {
	prober   probe.Prober
	resolver *resolve.Resolver
	options  Options
	id       string
}

// entry pairs a reachable address with its display string until ordering
// is decided.
type entry struct {
	address string
	ip      net.IP
	display string
}

// New builds a Sweeper around a prober and a resolver.
func New(prober probe.Prober, resolver *resolve.Resolver, options Options) *Sweeper {
	if options.Concurrency <= 0 {
		options.Concurrency = DefaultConcurrency
	}
	if ceiling := maxConcurrency(); options.Concurrency > ceiling {
		gologger.Verbose().Msgf("Lowering concurrency from %d to %d to fit the descriptor limit",
			options.Concurrency, ceiling)
		options.Concurrency = ceiling
	}
	if options.MaxHosts == 0 {
		options.MaxHosts = netspec.DefaultMaxHosts
	}
	return &Sweeper{
		prober:   prober,
		resolver: resolver,
		options:  options,
		id:       xid.New().String(),
	}
}

// Scan probes every usable host of the network and returns the display
// strings of the reachable ones in final table order: named entries first,
// case-insensitively by name, then unnamed ones by address. Individual
// probe failures never abort the scan.
func (s *Sweeper) Scan(ctx context.Context, network netspec.Network) ([]string, error) {
	if count := network.Count(); count > s.options.MaxHosts {
		gologger.Warning().Msgf("Skipping %s: %d addresses exceed the %d host ceiling",
			network.String(), count, s.options.MaxHosts)
		return nil, nil
	}

	hosts, err := network.Hosts()
	if err != nil {
		return nil, err
	}

	gologger.Verbose().Msgf("sweep %s: probing %d hosts in %s with %d workers",
		s.id, len(hosts), network.String(), s.options.Concurrency)

	// Completion order is meaningless; results land keyed by address and
	// ordering is imposed after the fan-in.
	results := mapsutil.NewSyncLockMap[string, string]()

	awg, err := syncutil.New(syncutil.WithSize(s.options.Concurrency))
	if err != nil {
		return nil, err
	}

	for _, host := range hosts {
		if ctx.Err() != nil {
			break
		}

		awg.Add()
		go func(ip net.IP) {
			defer awg.Done()
			address := ip.String()
			if s.prober.Probe(ctx, address) {
				_ = results.Set(address, s.resolver.Resolve(ctx, address))
			}
		}(host)
	}
	awg.Wait()

	entries := make([]entry, 0, 16)
	_ = results.Iterate(func(address, display string) error {
		entries = append(entries, entry{
			address: address,
			ip:      net.ParseIP(address),
			display: display,
		})
		return nil
	})

	return order(entries), nil
}

// order partitions entries into named (display differs from the address)
// and unnamed, sorts the first case-insensitively by display and the
// second numerically by address, and concatenates named-then-unnamed.
// Ties inside a partition break by address ascending.
func order(entries []entry) []string {
	var named, unnamed []entry
	for _, e := range entries {
		if e.display != e.address {
			named = append(named, e)
		} else {
			unnamed = append(unnamed, e)
		}
	}

	sort.Slice(named, func(i, j int) bool {
		a, b := strings.ToLower(named[i].display), strings.ToLower(named[j].display)
		if a != b {
			return a < b
		}
		return netspec.Compare(named[i].ip, named[j].ip) < 0
	})
	sort.Slice(unnamed, func(i, j int) bool {
		return netspec.Compare(unnamed[i].ip, unnamed[j].ip) < 0
	})

	out := make([]string, 0, len(entries))
	for _, e := range named {
		out = append(out, e.display)
	}
	for _, e := range unnamed {
		out = append(out, e.display)
	}
	return out
}
