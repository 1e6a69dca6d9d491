// Package dialog presents the native "save as" file picker.
//
// The system implementation uses github.com/ncruces/zenity, which talks
// to the platform's own dialog (GTK/portal on Linux, NSSavePanel on
// macOS, IFileSaveDialog on Windows) rather than drawing its own.
package dialog

import (
	"errors"

	"github.com/ncruces/zenity"
)

// ErrCanceled is returned when the user dismisses the dialog without
// choosing a path. It is an outcome, not a fault; callers report it
// and exit cleanly.
var ErrCanceled = errors.New("save dialog canceled")

// Filter is one (display label, glob patterns) entry offered by the dialog.
type Filter struct {
	Name     string
	Patterns []string
}

// Options describes one save dialog invocation.
type Options struct {
	Title       string
	DefaultName string
	Filters     []Filter
}

// TextOptions returns the dialog configuration for saving text content.
func TextOptions() Options {
	return Options{
		Title:       "Save Text File",
		DefaultName: "clipboard_text.txt",
		Filters: []Filter{
			{Name: "Text Files (*.txt)", Patterns: []string{"*.txt"}},
		},
	}
}

// ImageOptions returns the dialog configuration for saving image content.
func ImageOptions() Options {
	return Options{
		Title:       "Save Image File",
		DefaultName: "clipboard_image.png",
		Filters: []Filter{
			{Name: "PNG Image (*.png)", Patterns: []string{"*.png"}},
			{Name: "JPEG Image (*.jpg)", Patterns: []string{"*.jpg"}},
		},
	}
}

// Saver shows a modal save dialog and blocks until the user confirms a
// path or cancels. Implementations return ErrCanceled on cancel.
type Saver interface {
	Save(opts Options) (string, error)
}

// System returns the native dialog implementation.
func System() Saver {
	return systemSaver{}
}

type systemSaver struct{}

func (systemSaver) Save(opts Options) (string, error) {
	filters := make(zenity.FileFilters, 0, len(opts.Filters))
	for _, f := range opts.Filters {
		filters = append(filters, zenity.FileFilter{
			Name:     f.Name,
			Patterns: f.Patterns,
		})
	}

	path, err := zenity.SelectFileSave(
		zenity.Title(opts.Title),
		zenity.Filename(opts.DefaultName),
		filters,
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", ErrCanceled
		}
		return "", err
	}
	return path, nil
}
