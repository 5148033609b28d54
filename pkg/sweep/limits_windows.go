//go:build windows

package sweep

// Winsock handles are not bound by RLIMIT_NOFILE.
func maxConcurrency() int {
	return 1 << 20
}
