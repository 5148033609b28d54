// Package resolve turns reachable addresses into display strings through a
// three-tier precedence: explicit host label, reverse DNS shortname, raw
// address. The first tier that produces a value wins.
package resolve

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/projectdiscovery/gcache"

	"github.com/rollcalldev/rollcall/pkg/labels"
)

const (
	cacheSize     = 4096
	cacheTTL      = 10 * time.Minute
	lookupTimeout = 2 * time.Second
)

// NameService is the reverse-lookup collaborator. *net.Resolver satisfies
// it, and tests substitute their own.
type NameService interface {
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// Resolver resolves addresses to display strings. It is safe for
// concurrent use: the label store is read-only and the DNS cache is
// internally synchronized.
type Resolver struct {
	store *labels.Store
	ns    NameService
	dns   bool
	cache gcache.Cache[string, string]
}

// New builds a Resolver over the given label store. dns enables the
// reverse lookup tier through the system resolver.
func New(store *labels.Store, dns bool) *Resolver {
	return NewWithNameService(store, dns, net.DefaultResolver)
}

// NewWithNameService builds a Resolver with a custom name service.
func NewWithNameService(store *labels.Store, dns bool, ns NameService) *Resolver {
	return &Resolver{
		store: store,
		ns:    ns,
		dns:   dns,
		cache: gcache.New[string, string](cacheSize).
			LRU().
			Expiration(cacheTTL).
			Build(),
	}
}

// Resolve returns the display string for an address. A host label always
// wins, even over a DNS name that would resolve; any lookup failure
// degrades to the raw address.
func (r *Resolver) Resolve(ctx context.Context, address string) string {
	if label, ok := r.store.Host(address); ok {
		return label
	}
	if !r.dns {
		return address
	}
	if name := r.lookup(ctx, address); name != "" {
		return name
	}
	return address
}

// lookup performs the cached reverse DNS query and returns the shortname,
// or "" when the address has no usable record. Negative answers are cached
// too so a sweep never queries the same address twice.
func (r *Resolver) lookup(ctx context.Context, address string) string {
	if name, err := r.cache.Get(address); err == nil {
		return name
	}

	lookupCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	name := ""
	if names, err := r.ns.LookupAddr(lookupCtx, address); err == nil && len(names) > 0 {
		name = Shortname(names[0])
	}
	_ = r.cache.Set(address, name)
	return name
}

// Shortname reduces a fully qualified name to its first label:
// "web01.lan.example.com." becomes "web01".
func Shortname(fqdn string) string {
	name := strings.TrimSuffix(fqdn, ".")
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	return name
}
