// Package export drives one clipboard-to-file transfer: enumerate the
// clipboard's advertised targets, select one, retrieve its payload,
// show the matching save dialog, and persist the result.
//
// Every path through Run terminates the program normally; outcomes are
// communicated to the user through printed messages, never through the
// process exit code.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.klb.dev/clipsave/internal/clip"
	"go.klb.dev/clipsave/internal/content"
	"go.klb.dev/clipsave/internal/dialog"
)

// Outcome is the terminal state of a run.
type Outcome int

const (
	// OutcomeSaved means content was written to the user-chosen path.
	OutcomeSaved Outcome = iota
	// OutcomeCanceled means the user dismissed the save dialog.
	OutcomeCanceled
	// OutcomeSaveFailed means the write or encode failed after the
	// user confirmed a path.
	OutcomeSaveFailed
	// OutcomeNoFormat means no advertised target was supported, or the
	// payload was neither a bitmap nor text. No dialog is shown.
	OutcomeNoFormat
	// OutcomeEmpty means the selected target produced a zero-length
	// payload (owner lost ownership between enumeration and
	// retrieval, or had nothing). No dialog is shown.
	OutcomeEmpty
	// OutcomeTimedOut means the clipboard owner did not respond within
	// the configured deadline.
	OutcomeTimedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeCanceled:
		return "canceled"
	case OutcomeSaveFailed:
		return "save failed"
	case OutcomeNoFormat:
		return "no supported format"
	case OutcomeEmpty:
		return "empty clipboard"
	case OutcomeTimedOut:
		return "timed out"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Exporter holds the collaborators for one run. Out receives the
// user-facing progress and success messages, Err the failure ones,
// mirroring stdout/stderr of the CLI.
type Exporter struct {
	Clip   clip.Backend
	Dialog dialog.Saver
	Out    io.Writer
	Err    io.Writer
}

// New returns an Exporter wired to the given collaborators.
func New(backend clip.Backend, saver dialog.Saver, out, errw io.Writer) *Exporter {
	return &Exporter{Clip: backend, Dialog: saver, Out: out, Err: errw}
}

const unsupportedMsg = "Clipboard is empty or contains an unsupported format."

// Run performs the single transfer and returns its terminal outcome.
// The context bounds the exchanges with the clipboard owner; it does
// not bound the dialog, where blocking on the user is intended.
func (e *Exporter) Run(ctx context.Context) Outcome {
	targets, err := e.enumerateTargets(ctx)
	if err != nil {
		fmt.Fprintln(e.Err, "Clipboard owner did not respond:", err)
		return OutcomeTimedOut
	}
	slog.Debug("clipboard targets", "backend", e.Clip.Name(), "targets", targets)

	target, ok := SelectTarget(targets)
	if !ok {
		fmt.Fprintln(e.Out, unsupportedMsg)
		if len(targets) > 0 {
			fmt.Fprintf(e.Out, "Found targets: %s\n", strings.Join(targets, ", "))
		}
		return OutcomeNoFormat
	}
	slog.Debug("target selected", "target", target)

	payload, err := e.retrievePayload(ctx, target)
	if err != nil {
		fmt.Fprintln(e.Err, "Clipboard owner did not respond:", err)
		return OutcomeTimedOut
	}
	if len(payload) == 0 {
		fmt.Fprintln(e.Out, unsupportedMsg)
		return OutcomeEmpty
	}

	item, err := content.Classify(target, payload)
	if err != nil {
		fmt.Fprintln(e.Out, unsupportedMsg)
		return OutcomeNoFormat
	}
	slog.Debug("payload classified", "kind", item.Kind, "bytes", len(payload))

	if item.Kind == content.KindImage {
		return e.saveImage(item)
	}
	return e.saveText(item)
}

func (e *Exporter) saveText(item content.Item) Outcome {
	fmt.Fprintln(e.Out, "Text data detected. Opening save dialog...")

	path, err := e.Dialog.Save(dialog.TextOptions())
	if errors.Is(err, dialog.ErrCanceled) {
		fmt.Fprintln(e.Out, "Text save canceled.")
		return OutcomeCanceled
	}
	if err != nil {
		fmt.Fprintln(e.Err, "Error saving text file:", err)
		return OutcomeSaveFailed
	}

	if err := content.Save(path, item); err != nil {
		fmt.Fprintln(e.Err, "Error saving text file:", err)
		return OutcomeSaveFailed
	}
	fmt.Fprintf(e.Out, "Text successfully saved to: %s\n", path)
	return OutcomeSaved
}

func (e *Exporter) saveImage(item content.Item) Outcome {
	fmt.Fprintln(e.Out, "Image data detected. Opening save dialog...")

	path, err := e.Dialog.Save(dialog.ImageOptions())
	if errors.Is(err, dialog.ErrCanceled) {
		fmt.Fprintln(e.Out, "Image save canceled.")
		return OutcomeCanceled
	}
	if err != nil {
		fmt.Fprintln(e.Err, "Error saving image:", err)
		return OutcomeSaveFailed
	}

	if err := content.Save(path, item); err != nil {
		fmt.Fprintln(e.Err, "Error saving image:", err)
		return OutcomeSaveFailed
	}
	fmt.Fprintf(e.Out, "Image successfully saved to: %s\n", path)
	return OutcomeSaved
}

// enumerateTargets runs the target enumeration under the context's
// deadline. golang.design/x/clipboard blocks while the owner converts
// the selection, so the exchange runs in its own goroutine; on timeout
// the goroutine is abandoned along with its eventual result.
func (e *Exporter) enumerateTargets(ctx context.Context) ([]string, error) {
	ch := make(chan []string, 1)
	go func() { ch <- e.Clip.Targets() }()
	select {
	case ts := <-ch:
		return ts, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (e *Exporter) retrievePayload(ctx context.Context, target string) ([]byte, error) {
	ch := make(chan []byte, 1)
	go func() { ch <- e.Clip.Read(target) }()
	select {
	case payload := <-ch:
		return payload, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
