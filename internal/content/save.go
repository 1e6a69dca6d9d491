package content

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"strings"
)

// SaveText writes text verbatim to path, overwriting an existing file.
// No transcoding, no trailing newline.
func SaveText(path, text string) error {
	return os.WriteFile(path, []byte(text), 0o644)
}

// SaveImage encodes img to path. The codec follows the path's
// extension: a path ending in .jpg or .jpeg (case-sensitive) encodes
// JPEG, every other extension (including .JPG, .bmp, .gif, or none at
// all) encodes PNG. Intentional: the dialog offers PNG and JPEG
// filters only, and anything else falls back to the lossless codec
// rather than failing.
func SaveImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeImage(f, path, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeImage(f *os.File, path string, img image.Image) error {
	switch {
	case strings.HasSuffix(path, ".jpg"), strings.HasSuffix(path, ".jpeg"):
		if err := jpeg.Encode(f, img, nil); err != nil {
			return fmt.Errorf("jpeg encode: %w", err)
		}
	default:
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
	}
	return nil
}

// Save persists the item to path using the codec appropriate to its Kind.
func Save(path string, item Item) error {
	if item.Kind == KindImage {
		return SaveImage(path, item.Image)
	}
	return SaveText(path, item.Text)
}
