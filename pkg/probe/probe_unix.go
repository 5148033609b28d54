//go:build !windows

package probe

// Unprivileged UDP echo works on unix when net.ipv4.ping_group_range
// allows it; raw sockets need root. Callers opt into privileged mode.
const defaultPrivileged = false
