// Package content classifies retrieved clipboard payloads and writes
// them to disk.
//
// Classification follows the payload, not the advertised type
// identifier: a payload that decodes as a bitmap is an image no matter
// which target delivered it; otherwise it is text if it is valid UTF-8.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"unicode/utf8"

	// Bitmap decoders available to Classify. Encoding is restricted to
	// PNG and JPEG; see Save.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// ErrUnsupported is returned by Classify for payloads that are neither
// a decodable bitmap nor valid UTF-8 text.
var ErrUnsupported = errors.New("unsupported clipboard payload")

// Kind discriminates the two content shapes a run can produce.
type Kind int

const (
	KindText Kind = iota
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Item is the single piece of content a run processes. Exactly one of
// Text or Image is populated, per Kind. Target records the clipboard
// type identifier the payload was retrieved under.
type Item struct {
	Target string
	Kind   Kind
	Text   string
	Image  image.Image
}

// NewTextItem builds a text Item.
func NewTextItem(target, text string) Item {
	return Item{Target: target, Kind: KindText, Text: text}
}

// NewImageItem builds an image Item.
func NewImageItem(target string, img image.Image) Item {
	return Item{Target: target, Kind: KindImage, Image: img}
}

// Classify inspects a non-empty payload and returns the decoded Item.
// Image wins: if the payload decodes as a bitmap it is an image even
// when retrieved under a text target. Otherwise the payload is text if
// it is valid UTF-8.
func Classify(target string, payload []byte) (Item, error) {
	if img, _, err := image.Decode(bytes.NewReader(payload)); err == nil {
		return NewImageItem(target, img), nil
	}
	if utf8.Valid(payload) {
		return NewTextItem(target, string(payload)), nil
	}
	return Item{}, ErrUnsupported
}
