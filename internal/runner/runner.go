package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"

	"github.com/rollcalldev/rollcall/pkg/labels"
	"github.com/rollcalldev/rollcall/pkg/netspec"
	"github.com/rollcalldev/rollcall/pkg/probe"
	"github.com/rollcalldev/rollcall/pkg/render"
	"github.com/rollcalldev/rollcall/pkg/resolve"
	"github.com/rollcalldev/rollcall/pkg/sweep"
)

// Runner contains the internal logic of the program
type Runner struct {
	options *Options
	store   *labels.Store
	sweeper *sweep.Sweeper
}

// NewRunner instance
func NewRunner(options *Options) (*Runner, error) {
	ports := probe.DefaultPorts
	if options.Ports != "" {
		parsed, err := probe.ParsePorts(options.Ports)
		if err != nil {
			return nil, errorutil.NewWithErr(err).Msgf("could not parse ports")
		}
		ports = parsed
	}

	prober, err := probe.New(probe.Options{
		Kind:       probe.Kind(options.ProbeKind),
		Timeout:    time.Duration(options.Timeout) * time.Second,
		Ports:      ports,
		Privileged: options.Privileged,
	})
	if err != nil {
		return nil, err
	}

	store := labels.Empty()
	switch {
	case options.NoLabels:
	case options.LabelFile != "":
		store = labels.Load(options.LabelFile)
	default:
		store = labels.Discover()
	}

	sweeper := sweep.New(prober, resolve.New(store, options.DNS), sweep.Options{
		Concurrency: options.Concurrency,
		MaxHosts:    uint64(options.MaxHosts),
	})

	return &Runner{options: options, store: store, sweeper: sweeper}, nil
}

// Run scans the requested networks one after another and prints the
// side-by-side results table.
func (r *Runner) Run(ctx context.Context) error {
	networks := r.networks()
	if len(networks) == 0 {
		return errorutil.New("no valid networks to scan")
	}

	started := time.Now()
	columns := make([][]string, 0, len(networks))
	total := 0

	for _, network := range networks {
		if ctx.Err() != nil {
			break
		}
		gologger.Info().Msgf("Scanning network %s...", network.String())
		results, err := r.sweeper.Scan(ctx, network)
		if err != nil {
			gologger.Warning().Msgf("Could not scan %s: %s", network.String(), err)
			results = nil
		}
		total += len(results)
		columns = append(columns, results)
	}

	if len(columns) > 0 {
		table := render.New(r.options.ColWidth)
		gologger.Silent().Msgf("%s", table.Render(r.titles(networks[:len(columns)]), columns))
	}

	gologger.Info().Msgf("%s hosts up across %d networks in %s",
		au.Bold(total), len(columns), time.Since(started).Round(time.Millisecond))

	return nil
}

// networks assembles the scan targets from the positional list and, with
// -local, the discovered interface networks, deduplicated in order.
func (r *Runner) networks() []netspec.Network {
	networks := netspec.ParseList(r.options.Targets)

	if r.options.Local {
		local, err := netspec.LocalNetworks()
		if err != nil {
			gologger.Warning().Msgf("Could not discover local networks: %s", err)
		}
		networks = append(networks, local...)
	}

	seen := make(map[string]struct{}, len(networks))
	deduped := networks[:0]
	for _, network := range networks {
		if _, exists := seen[network.String()]; exists {
			continue
		}
		seen[network.String()] = struct{}{}
		deduped = append(deduped, network)
	}
	return deduped
}

// titles composes the header for each network: the store's network label
// when present, else the positional name, else the bare network.
func (r *Runner) titles(networks []netspec.Network) []string {
	titles := make([]string, 0, len(networks))
	for i, network := range networks {
		title := network.String()
		if label, ok := r.store.Network(network.String()); ok {
			title = fmt.Sprintf("%s %s", network.String(), label)
		} else if i < len(r.options.Names) && r.options.Names[i] != "" {
			title = fmt.Sprintf("%s %s", network.String(), r.options.Names[i])
		}
		titles = append(titles, title)
	}
	return titles
}

// Close the runner instance
func (r *Runner) Close() {}
