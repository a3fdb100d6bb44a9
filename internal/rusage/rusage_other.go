//go:build !linux && !darwin

package rusage

// Supported reports whether Now returns real measurements on this platform.
const Supported = false

// Now returns a zero sample on platforms without getrusage.
func Now() (Sample, error) {
	return Sample{}, nil
}
