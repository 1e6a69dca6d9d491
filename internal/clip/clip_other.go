//go:build !darwin && !windows && !linux

package clip

// New returns a no-op backend on platforms without clipboard support.
func New() Backend {
	return &headlessBackend{}
}
