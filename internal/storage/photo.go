package storage

import (
	"bytes"
	"errors"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// MaxPhotoSize is the upload limit for a complaint photo
const MaxPhotoSize = 5 << 20

var (
	ErrPhotoTooLarge = errors.New("photo exceeds 5 MB")
	ErrNotAnImage    = errors.New("Not an image! Please upload an image.")
)

// Photo is a validated image ready to be stored
type Photo struct {
	Name        string
	ContentType string
	Data        []byte
}

// PreparePhoto validates an upload by content, downscales images wider
// than maxWidth and assigns a unique complaint-<uuid><ext> name.
func PreparePhoto(data []byte, maxWidth int) (*Photo, error) {
	if len(data) > MaxPhotoSize {
		return nil, ErrPhotoTooLarge
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, ErrNotAnImage
	}

	ext := mtype.Extension()
	photo := &Photo{
		Name:        "complaint-" + uuid.New().String() + ext,
		ContentType: mtype.String(),
		Data:        data,
	}

	if maxWidth > 0 {
		if resized, ok := downscale(data, ext, maxWidth); ok {
			photo.Data = resized
		}
	}

	return photo, nil
}

// downscale re-encodes the image when it is wider than maxWidth.
// Formats imaging cannot encode are kept as uploaded.
func downscale(data []byte, ext string, maxWidth int) ([]byte, bool) {
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return nil, false
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, false
	}
	if img.Bounds().Dx() <= maxWidth {
		return nil, false
	}

	img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(85)); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}
