//go:build linux || darwin || windows

package clip

import (
	"log/slog"
	"strings"

	"golang.design/x/clipboard"
)

type systemBackend struct{}

// New returns the system clipboard backend, or a headless no-op backend
// if the display environment is unavailable (e.g. a server without X11
// or Wayland). clipboard.Init is called here rather than in init() so
// the warning is only emitted when a backend is actually constructed.
func New() Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return &headlessBackend{}
	}
	return &systemBackend{}
}

func (b *systemBackend) Name() string { return "system clipboard" }

// Targets probes the formats golang.design/x/clipboard exposes. Image
// content is always delivered as PNG bytes, so an image owner is
// advertised as image/png; text owners are advertised under both
// identifiers X11 text owners commonly use.
func (b *systemBackend) Targets() []string {
	var ts []string
	if img := clipboard.Read(clipboard.FmtImage); len(img) > 0 {
		ts = append(ts, TargetImagePNG)
	}
	if text := clipboard.Read(clipboard.FmtText); len(text) > 0 {
		ts = append(ts, TargetUTF8String, TargetTextPlain)
	}
	return ts
}

func (b *systemBackend) Read(target string) []byte {
	switch {
	case strings.HasPrefix(target, "image/"):
		return clipboard.Read(clipboard.FmtImage)
	case target == TargetTextPlain, target == TargetUTF8String:
		return clipboard.Read(clipboard.FmtText)
	default:
		return nil
	}
}

func (b *systemBackend) Close() {}
