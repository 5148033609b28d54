// Package netspec parses network targets and enumerates their usable host
// addresses.
//
// A comma separated target list is parsed into validated networks with
// ParseList; invalid tokens are warned about and dropped while the input
// order of the valid ones is preserved. Hosts expands a network into its
// probe targets with the /31 and /32 edge prefixes handled explicitly, and
// LocalNetworks discovers the private networks attached to the machine's
// interfaces.
package netspec
