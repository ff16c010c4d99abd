package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
)

const (
	// MaxPhotoSide bounds the longer edge of a stored photo, in pixels.
	MaxPhotoSide = 512

	// MaxUploadBytes caps the accepted upload size.
	MaxUploadBytes = 5 << 20

	// MaxPixels caps the decoded size stated in the image header.
	MaxPixels = 40_000_000

	webpQuality = 80
)

// Normalize decodes a JPEG, PNG or WebP image, scales it down so that
// neither side exceeds MaxPhotoSide and re-encodes it as WebP.
func Normalize(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, httperr.Internal(err)
	}
	if len(data) > MaxUploadBytes {
		return nil, httperr.Validation("photo_too_large", "photo must be at most 5 MB")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, unsupported()
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, httperr.Validation("unsupported_image", "photo dimensions are too large")
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, unsupported()
	}

	dst := fit(src, MaxPhotoSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, httperr.Internal(err)
	}
	return buf.Bytes(), nil
}

func unsupported() error {
	return httperr.Validation("unsupported_image", "photo must be a JPEG, PNG or WebP image")
}

func fit(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return src
	}

	if w >= h {
		h = h * maxSide / w
		w = maxSide
	} else {
		w = w * maxSide / h
		h = maxSide
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
