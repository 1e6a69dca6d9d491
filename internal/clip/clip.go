// Package clip provides read access to the system clipboard. Build
// constraints select the implementation:
//
//	clip_system.go   — Linux / macOS / Windows via golang.design/x/clipboard
//	clip_other.go    — headless / container stub
//
// The interface is shaped around the two exchanges with the clipboard
// owner: enumerate the type identifiers it advertises, then request the
// raw payload for one of them. Between the two calls ownership can
// change hands, so a Read after a successful Targets may legitimately
// return nothing.
package clip

// Type identifiers a backend may advertise. These are the names the
// selection rule in internal/export matches against; a backend is free
// to advertise others (e.g. further image/* types).
const (
	TargetImagePNG   = "image/png"
	TargetTextPlain  = "text/plain"
	TargetUTF8String = "UTF8_STRING"
)

// Backend is the interface all clipboard implementations satisfy.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Targets returns the type identifiers the clipboard owner
	// currently advertises, in the owner's order. An empty slice means
	// the clipboard is empty or holds only types the backend cannot
	// represent.
	Targets() []string

	// Read returns the raw payload for the given type identifier.
	// A nil or empty result means the owner had nothing for that type,
	// or lost ownership since enumeration. That is a valid outcome,
	// not an error.
	Read(target string) []byte

	// Close releases any resources held by the backend.
	Close()
}
