package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"

	"go.klb.dev/clipsave/internal/clip"
	"go.klb.dev/clipsave/internal/dialog"
	"go.klb.dev/clipsave/internal/export"
)

// defaultTimeout bounds the exchanges with the clipboard owner. A hung
// owner would otherwise stall the run forever; 0 restores the unbounded
// behaviour.
const defaultTimeout = 30 * time.Second

// runExport performs the single clipboard-to-file transfer. It always
// returns nil: every outcome in the taxonomy (saved, canceled, empty,
// unsupported, write failure, timeout) is reported via printed messages
// and exits with status 0.
func runExport(v *viper.Viper) error {
	setupLogging(v)

	backend := clip.New()
	defer backend.Close()

	ctx := context.Background()
	if timeout := v.GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ex := export.New(backend, dialog.System(), os.Stdout, os.Stderr)
	outcome := ex.Run(ctx)
	slog.Debug("run finished", "outcome", outcome)
	return nil
}
