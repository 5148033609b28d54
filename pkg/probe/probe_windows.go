//go:build windows

package probe

// Windows has no unprivileged UDP echo; ICMP always uses raw sockets.
const defaultPrivileged = true
