package pos

import "os"

// FileProber answers existence checks for the pairing heuristic, so the
// heuristic can be exercised without a real directory.
type FileProber interface {
	Exists(path string) bool
}

var _ FileProber = (*OSProber)(nil)

// OSProber probes the real filesystem.
type OSProber struct{}

func (OSProber) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
