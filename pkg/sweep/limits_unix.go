//go:build !windows

package sweep

import "golang.org/x/sys/unix"

// maxConcurrency caps the probe ceiling to the soft descriptor limit,
// keeping headroom for stdio, the resolver and the log writer. Each
// in-flight probe may hold a socket.
func maxConcurrency() int {
	var rlimit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rlimit); err != nil {
		return DefaultConcurrency
	}
	cur := rlimit.Cur
	if cur > 1<<20 {
		cur = 1 << 20
	}
	headroom := int(cur) - 64
	if headroom < 1 {
		return 1
	}
	return headroom
}
