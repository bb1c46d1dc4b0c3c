//go:build !unix

package proc

// Alive cannot probe processes on this platform.
func Alive(string) Liveness {
	return Unknown
}
