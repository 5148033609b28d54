// Package labels loads the optional network and host display names from a
// two-section configuration file and serves them to lookups.
//
// The file format is plain text with `[networks]` and `[hosts]` sections,
// one `<key> <label...>` pair per line, `#` comments and case-insensitive
// headers. Lines outside a recognized section and malformed lines are
// ignored. The store is immutable after load and safe for concurrent
// readers without locking.
package labels

import (
	"net"
	"strings"
	"unicode"

	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/rollcalldev/rollcall/pkg/netspec"
)

// CandidateFiles are probed in order by Discover; the first one found wins
// and the others are never read.
var CandidateFiles = []string{"rollcall_private.conf", "rollcall.conf"}

type section int

const (
	sectionNone section = iota
	sectionNetworks
	sectionHosts
)

// Store holds the network and host labels loaded from a configuration
// file, keyed by canonical network string and address string.
type Store struct {
	networks map[string]string
	hosts    map[string]string
}

// Empty returns a store with no entries.
func Empty() *Store {
	return &Store{
		networks: make(map[string]string),
		hosts:    make(map[string]string),
	}
}

// Discover loads labels from the preferred candidate file in the working
// directory. Missing files are not an error: the store is simply empty.
func Discover() *Store {
	for _, filename := range CandidateFiles {
		if fileutil.FileExists(filename) {
			return Load(filename)
		}
	}
	return Empty()
}

// Load reads a label file. Unreadable files degrade to an empty store with
// a warning; malformed lines are skipped silently and duplicate keys are
// last-write-wins.
func Load(filename string) *Store {
	store := Empty()

	lines, err := fileutil.ReadFile(filename)
	if err != nil {
		gologger.Warning().Msgf("Could not read label file %s: %s", filename, err)
		return store
	}

	current := sectionNone
	for line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch strings.ToLower(line) {
		case "[networks]":
			current = sectionNetworks
			continue
		case "[hosts]":
			current = sectionHosts
			continue
		}

		key, label, ok := splitEntry(line)
		if !ok {
			continue
		}

		switch current {
		case sectionNetworks:
			if network, err := netspec.Parse(key); err == nil {
				store.networks[network.String()] = label
			}
		case sectionHosts:
			if ip := net.ParseIP(key); ip != nil {
				store.hosts[ip.String()] = label
			}
		}
	}

	gologger.Verbose().Msgf("Loaded %d network and %d host labels from %s",
		len(store.networks), len(store.hosts), filename)
	return store
}

// splitEntry cuts a line at its first whitespace run into a key and the
// remaining label text.
func splitEntry(line string) (key, label string, ok bool) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return "", "", false
	}
	key = line[:i]
	label = strings.TrimSpace(line[i+1:])
	if label == "" {
		return "", "", false
	}
	return key, label, true
}

// Network returns the label for a network by its canonical string form.
func (s *Store) Network(key string) (string, bool) {
	label, ok := s.networks[key]
	return label, ok
}

// Host returns the label for an address.
func (s *Store) Host(addr string) (string, bool) {
	label, ok := s.hosts[addr]
	return label, ok
}

// Len returns how many entries the store holds.
func (s *Store) Len() int {
	return len(s.networks) + len(s.hosts)
}
